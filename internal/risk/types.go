package risk

import (
	"errors"

	"github.com/wonny/creditrisk/internal/contracts"
)

// =============================================================================
// Errors
// =============================================================================

// 계산 에러는 항상 구체적인 종류로 전파 (NaN/Inf placeholder 금지)
var (
	ErrInsufficientData = errors.New("insufficient data")
	ErrDomain           = errors.New("input outside mathematical domain")
	ErrDivision         = errors.New("division by zero")
	ErrInvalidConfig    = errors.New("invalid configuration")
)

// TradingDaysPerYear annualisation factor, fixed
const TradingDaysPerYear = 252

// =============================================================================
// Structural model input
// =============================================================================

// MertonInput 구조적 부도 모형 입력
type MertonInput struct {
	AssetValue   float64 `json:"asset_value"`    // V (total assets)
	DebtValue    float64 `json:"debt_value"`     // D (total liabilities)
	RiskFreeRate float64 `json:"risk_free_rate"` // r, annualised
	HorizonYears float64 `json:"horizon_years"`  // T
	Volatility   float64 `json:"volatility"`     // σ, annualised
}

// NewMertonInput builds the structural input from a snapshot
func NewMertonInput(s contracts.FinancialSnapshot, riskFreeRate, horizonYears, volatility float64) MertonInput {
	return MertonInput{
		AssetValue:   s.TotalAssets,
		DebtValue:    s.TotalLiabilities,
		RiskFreeRate: riskFreeRate,
		HorizonYears: horizonYears,
		Volatility:   volatility,
	}
}

// =============================================================================
// VaR Types
// =============================================================================

// VaRResult VaR 계산 결과
// ⭐ SSOT: Loss를 양수로 표현
// - VaR=0.05 → 95% 신뢰수준에서 최대 5% 손실 가능
// - CVaR=0.07 → 5% tail에서 평균 7% 손실 예상
type VaRResult struct {
	Confidence float64 `json:"confidence"`
	VaR        float64 `json:"var"`
	CVaR       float64 `json:"cvar"`
}
