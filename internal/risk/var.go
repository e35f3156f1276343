package risk

import (
	"math"
	"sort"

	"github.com/wonny/creditrisk/internal/contracts"
)

// =============================================================================
// Historical VaR / CVaR
// =============================================================================

// StatsConfidence confidence level reported in PriceStats
const StatsConfidence = 0.95

// CalculateVaR 과거 수익률 기반 VaR 계산 (Historical Simulation)
// returns: 일별 수익률 배열 (양수=이익, 음수=손실)
// 반환값: VaR는 손실을 양수로 표현 (예: 0.05 = 5% 손실 가능)
func CalculateVaR(returns []float64, confidence float64) VaRResult {
	if len(returns) == 0 {
		return VaRResult{Confidence: confidence}
	}

	sorted := make([]float64, len(returns))
	copy(sorted, returns)
	sort.Float64s(sorted)

	// 95% VaR = 하위 5% 백분위수
	idx := int(math.Floor((1.0 - confidence) * float64(len(sorted))))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}

	var varValue float64
	if sorted[idx] < 0 {
		varValue = -sorted[idx]
	}

	return VaRResult{
		Confidence: confidence,
		VaR:        varValue,
		CVaR:       CalculateCVaR(sorted, idx),
	}
}

// CalculateCVaR Conditional VaR (Expected Shortfall)
// sorted: 오름차순 정렬된 수익률, varIdx 이하가 tail
func CalculateCVaR(sorted []float64, varIdx int) float64 {
	if len(sorted) == 0 || varIdx < 0 {
		return 0
	}

	var sum float64
	count := 0
	for i := 0; i <= varIdx && i < len(sorted); i++ {
		sum += sorted[i]
		count++
	}

	avgTailReturn := sum / float64(count)
	if avgTailReturn < 0 {
		return -avgTailReturn
	}
	return 0
}

// PriceStatistics 평균 일간 수익률, 누적 수익률, 1일 VaR/CVaR
func PriceStatistics(series contracts.PriceSeries) (contracts.PriceStats, error) {
	closes := series.Closes()
	returns, err := SimpleReturns(closes)
	if err != nil {
		return contracts.PriceStats{}, err
	}

	v := CalculateVaR(returns, StatsConfidence)

	return contracts.PriceStats{
		Observations:     len(closes),
		MeanDailyReturn:  Mean(returns),
		CumulativeReturn: closes[len(closes)-1]/closes[0] - 1,
		VaR95:            v.VaR,
		CVaR95:           v.CVaR,
	}, nil
}
