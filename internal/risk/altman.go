package risk

import (
	"fmt"

	"github.com/wonny/creditrisk/internal/contracts"
)

// =============================================================================
// Accounting Score (Altman lineage, five weighted ratios)
// =============================================================================

// 가중치 고정 (설정 불가). Calibrated against EBIT=Operating Income, Sales=Total Revenue.
const (
	WeightX1 = 0.717 // Working Capital / Total Assets
	WeightX2 = 0.847 // Retained Earnings / Total Assets
	WeightX3 = 3.107 // EBIT / Total Assets
	WeightX4 = 0.420 // Market Value of Equity / Total Liabilities
	WeightX5 = 0.998 // Sales / Total Assets
)

// ComputeRatios derives x1..x5 from a snapshot.
// Zero total assets or liabilities fail with ErrDivision, negative ones with ErrDomain.
func ComputeRatios(s contracts.FinancialSnapshot) (contracts.AccountingRatios, error) {
	if !isFinite(s.TotalAssets, s.WorkingCapital, s.RetainedEarnings, s.TotalLiabilities,
		s.EBIT, s.Sales, s.MarketValueEquity) {
		return contracts.AccountingRatios{}, fmt.Errorf("%w: snapshot contains a non-finite value", ErrDomain)
	}
	if err := checkDivisor("total assets", s.TotalAssets); err != nil {
		return contracts.AccountingRatios{}, err
	}
	if err := checkDivisor("total liabilities", s.TotalLiabilities); err != nil {
		return contracts.AccountingRatios{}, err
	}

	return contracts.AccountingRatios{
		X1: s.WorkingCapital / s.TotalAssets,
		X2: s.RetainedEarnings / s.TotalAssets,
		X3: s.EBIT / s.TotalAssets,
		X4: s.MarketValueEquity / s.TotalLiabilities,
		X5: s.Sales / s.TotalAssets,
	}, nil
}

// CompositeScore 가중합 (상/하한 없음, 3.0 기준으로 외부에서 해석)
func CompositeScore(r contracts.AccountingRatios) float64 {
	return WeightX1*r.X1 +
		WeightX2*r.X2 +
		WeightX3*r.X3 +
		WeightX4*r.X4 +
		WeightX5*r.X5
}

// ComputeScore computes the ratios and their composite score in one step
func ComputeScore(s contracts.FinancialSnapshot) (contracts.AccountingRatios, float64, error) {
	ratios, err := ComputeRatios(s)
	if err != nil {
		return contracts.AccountingRatios{}, 0, err
	}
	return ratios, CompositeScore(ratios), nil
}

func checkDivisor(name string, v float64) error {
	if v == 0 {
		return fmt.Errorf("%w: %s is zero", ErrDivision, name)
	}
	if v < 0 {
		return fmt.Errorf("%w: %s must be positive, got %.2f", ErrDomain, name, v)
	}
	return nil
}
