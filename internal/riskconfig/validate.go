package riskconfig

import (
	"fmt"
	"math"
)

// ValidationError 검증 실패 (프로그램 중단)
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks all required constraints
func Validate(p *Policy) error {
	// === Meta ===
	if p.Meta.PolicyID == "" {
		return ValidationError{"meta.policy_id", "required"}
	}

	// === Decision ===
	if !finite(p.Decision.MinScore) {
		return ValidationError{"decision.min_score", "must be a finite number"}
	}
	if !finite(p.Decision.MaxPD) || p.Decision.MaxPD <= 0 || p.Decision.MaxPD > 1 {
		return ValidationError{"decision.max_pd", "must be in (0, 1]"}
	}

	// === Analysis ===
	if r := p.Analysis.RiskFreeRate; r != nil && (!finite(*r) || *r < -1 || *r > 1) {
		return ValidationError{"analysis.risk_free_rate", "must be in [-1, 1]"}
	}
	if h := p.Analysis.HorizonYears; h != nil && (!finite(*h) || *h <= 0) {
		return ValidationError{"analysis.horizon_years", "must be > 0"}
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
