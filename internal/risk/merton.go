package risk

import (
	"fmt"
	"math"

	"github.com/wonny/creditrisk/internal/contracts"
)

// =============================================================================
// Structural Default Model (Merton)
// =============================================================================

// DistanceToDefault DD = (ln(V/D) + (r + σ²/2)·T) / (σ·√T)
// V, D ≤ 0 → ErrDomain; σ = 0 or T = 0 → ErrDivision.
func DistanceToDefault(in MertonInput) (float64, error) {
	if !isFinite(in.AssetValue, in.DebtValue, in.RiskFreeRate, in.HorizonYears, in.Volatility) {
		return 0, fmt.Errorf("%w: structural input contains a non-finite value", ErrDomain)
	}
	if in.AssetValue <= 0 || in.DebtValue <= 0 {
		return 0, fmt.Errorf("%w: ln(V/D) needs V > 0 and D > 0, got V=%.2f D=%.2f",
			ErrDomain, in.AssetValue, in.DebtValue)
	}
	if in.Volatility < 0 || in.HorizonYears < 0 {
		return 0, fmt.Errorf("%w: volatility and horizon must be non-negative, got σ=%.4f T=%.4f",
			ErrDomain, in.Volatility, in.HorizonYears)
	}

	denominator := in.Volatility * math.Sqrt(in.HorizonYears)
	if denominator == 0 {
		return 0, fmt.Errorf("%w: σ·√T is zero (σ=%.4f, T=%.4f)", ErrDivision, in.Volatility, in.HorizonYears)
	}

	sigma2 := in.Volatility * in.Volatility
	numerator := math.Log(in.AssetValue/in.DebtValue) + (in.RiskFreeRate+sigma2/2)*in.HorizonYears

	dd := numerator / denominator
	if !isFinite(dd) {
		return 0, fmt.Errorf("%w: distance to default overflowed", ErrDomain)
	}
	return dd, nil
}

// PDFromDD PD = 1 - Φ(DD)
func PDFromDD(dd float64) float64 {
	return 1 - NormCDF(dd)
}

// ProbabilityOfDefault DD 계산 실패 시 동일 에러 전파 (mask 금지)
func ProbabilityOfDefault(in MertonInput) (contracts.DefaultRiskResult, error) {
	dd, err := DistanceToDefault(in)
	if err != nil {
		return contracts.DefaultRiskResult{}, err
	}

	return contracts.DefaultRiskResult{
		DistanceToDefault:    dd,
		ProbabilityOfDefault: PDFromDD(dd),
	}, nil
}
