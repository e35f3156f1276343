package risk

import (
	"fmt"

	"github.com/wonny/creditrisk/internal/contracts"
)

// Default lending thresholds
const (
	DefaultMinScore = 3.0
	DefaultMaxPD    = 0.35
)

// DefaultThresholds 기본 의사결정 기준
func DefaultThresholds() contracts.DecisionThresholds {
	return contracts.DecisionThresholds{
		MinScore: DefaultMinScore,
		MaxPD:    DefaultMaxPD,
	}
}

// ValidateThresholds PD 한도는 (0, 1] 범위
func ValidateThresholds(t contracts.DecisionThresholds) error {
	if !isFinite(t.MinScore, t.MaxPD) {
		return fmt.Errorf("%w: thresholds must be finite", ErrInvalidConfig)
	}
	if t.MaxPD <= 0 || t.MaxPD > 1 {
		return fmt.Errorf("%w: max_pd must be in (0, 1], got %.4f", ErrInvalidConfig, t.MaxPD)
	}
	return nil
}

// Decide favorable iff score > MinScore AND pd < MaxPD, both strict
func Decide(score, pd float64, t contracts.DecisionThresholds) contracts.Recommendation {
	if score > t.MinScore && pd < t.MaxPD {
		return contracts.RecommendFavorable
	}
	return contracts.RecommendCaution
}
