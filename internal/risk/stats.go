package risk

import "math"

// =============================================================================
// 통계 유틸리티
// =============================================================================

// cdfSaturation beyond ±cdfSaturation Φ is clamped to exactly 0 or 1
const cdfSaturation = 10.0

// NormCDF 표준정규 누적분포함수 Φ(x)
// erfc form keeps full double precision in both tails; NormCDF(0) == 0.5 exactly.
func NormCDF(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case x <= -cdfSaturation:
		return 0
	case x >= cdfSaturation:
		return 1
	}
	return 0.5 * math.Erfc(-x/math.Sqrt2)
}

// Mean 평균 계산
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev 표본 표준편차 (n-1)
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := Mean(values)
	var sumSq float64
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(values)-1))
}

func isFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
