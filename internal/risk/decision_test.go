package risk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wonny/creditrisk/internal/contracts"
)

func TestDecide(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		name  string
		score float64
		pd    float64
		want  contracts.Recommendation
	}{
		{"strong score, acceptable pd", 3.5, 0.30, contracts.RecommendFavorable},
		{"weak score, low pd", 2.9, 0.10, contracts.RecommendCaution},
		{"strong score, high pd", 4.0, 0.50, contracts.RecommendCaution},
		{"score at threshold", 3.0, 0.01, contracts.RecommendCaution},
		{"pd at threshold", 5.0, 0.35, contracts.RecommendCaution},
		{"both bad", 1.0, 0.90, contracts.RecommendCaution},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.score, tt.pd, th))
		})
	}
}

func TestValidateThresholds(t *testing.T) {
	assert.NoError(t, ValidateThresholds(DefaultThresholds()))
	assert.NoError(t, ValidateThresholds(contracts.DecisionThresholds{MinScore: 1.8, MaxPD: 1}))

	assert.ErrorIs(t, ValidateThresholds(contracts.DecisionThresholds{MinScore: 3, MaxPD: 0}), ErrInvalidConfig)
	assert.ErrorIs(t, ValidateThresholds(contracts.DecisionThresholds{MinScore: 3, MaxPD: 1.2}), ErrInvalidConfig)
	assert.ErrorIs(t, ValidateThresholds(contracts.DecisionThresholds{MinScore: math.NaN(), MaxPD: 0.3}), ErrInvalidConfig)
}
