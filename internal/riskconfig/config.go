package riskconfig

import "github.com/wonny/creditrisk/internal/contracts"

// Policy 신용 판단 정책 (YAML)
// ⭐ SSOT: 의사결정 임계값은 코드 기본값 또는 이 파일에서만
type Policy struct {
	Meta     Meta     `yaml:"meta" json:"meta"`
	Decision Decision `yaml:"decision" json:"decision"`
	Analysis Analysis `yaml:"analysis" json:"analysis"`
}

// Meta identifies the policy
type Meta struct {
	PolicyID    string `yaml:"policy_id" json:"policy_id"`
	Description string `yaml:"description" json:"description"`
}

// Decision lending thresholds
type Decision struct {
	MinScore float64 `yaml:"min_score" json:"min_score"` // favorable iff score > min_score
	MaxPD    float64 `yaml:"max_pd" json:"max_pd"`       // ... and pd < max_pd
}

// Analysis default inputs; nil falls back to the environment defaults
type Analysis struct {
	RiskFreeRate *float64 `yaml:"risk_free_rate" json:"risk_free_rate,omitempty"`
	HorizonYears *float64 `yaml:"horizon_years" json:"horizon_years,omitempty"`
}

// Thresholds converts the decision block
func (p *Policy) Thresholds() contracts.DecisionThresholds {
	return contracts.DecisionThresholds{
		MinScore: p.Decision.MinScore,
		MaxPD:    p.Decision.MaxPD,
	}
}

// Default built-in policy (score > 3.0, PD < 35%)
func Default() *Policy {
	return &Policy{
		Meta: Meta{PolicyID: "default"},
		Decision: Decision{
			MinScore: 3.0,
			MaxPD:    0.35,
		},
	}
}
