package risk

import (
	"fmt"
	"math"

	"github.com/wonny/creditrisk/internal/contracts"
)

// =============================================================================
// Annualized Volatility
// =============================================================================

// minVolatilityPoints two returns are the least a sample standard deviation is defined for
const minVolatilityPoints = 3

// SimpleReturns 일별 단순 수익률 r_i = p_i/p_{i-1} - 1
func SimpleReturns(closes []float64) ([]float64, error) {
	if len(closes) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 prices, got %d", ErrInsufficientData, len(closes))
	}

	returns := make([]float64, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		prev, cur := closes[i-1], closes[i]
		if prev <= 0 || cur <= 0 || !isFinite(prev, cur) {
			return nil, fmt.Errorf("%w: price at index %d is not a positive number", ErrDomain, i)
		}
		returns[i-1] = cur/prev - 1
	}
	return returns, nil
}

// AnnualizedVolatility 표본 표준편차(n-1) × sqrt(252)
// A constant series yields exactly 0, which is valid here and rejected by the structural model.
func AnnualizedVolatility(series contracts.PriceSeries) (float64, error) {
	if series.Len() < minVolatilityPoints {
		return 0, fmt.Errorf("%w: need at least %d prices for a sample volatility, got %d",
			ErrInsufficientData, minVolatilityPoints, series.Len())
	}

	returns, err := SimpleReturns(series.Closes())
	if err != nil {
		return 0, err
	}

	return StdDev(returns) * math.Sqrt(TradingDaysPerYear), nil
}
