package risk

import (
	"fmt"

	"github.com/wonny/creditrisk/internal/contracts"
)

// =============================================================================
// Engine - 순수 계산기
// =============================================================================

// Engine 신용 리스크 엔진 (순수 계산기)
// ⭐ SSOT: 데이터 수집/리포트 조립은 상위 레이어(internal/analysis)에서 담당
// internal/risk는 순수 계산만 담당 (상태 없음, 로깅 없음, 동시 호출 안전)
type Engine struct{}

// NewEngine 새 리스크 엔진 생성
func NewEngine() *Engine {
	return &Engine{}
}

// AssessmentInput everything one assessment needs, passed explicitly
type AssessmentInput struct {
	Snapshot     contracts.FinancialSnapshot
	Prices       contracts.PriceSeries
	RiskFreeRate float64
	HorizonYears float64
	Thresholds   contracts.DecisionThresholds
}

// Assessment outputs of both models plus the decision
type Assessment struct {
	Ratios         contracts.AccountingRatios
	Score          float64
	Volatility     float64
	DefaultRisk    contracts.DefaultRiskResult
	PriceStats     contracts.PriceStats
	Recommendation contracts.Recommendation
}

// Assess 순차 계산: ratios → score → volatility → DD/PD → stats → decision
// The first failing step's error is returned unchanged in kind.
func (e *Engine) Assess(in AssessmentInput) (*Assessment, error) {
	if err := ValidateThresholds(in.Thresholds); err != nil {
		return nil, err
	}

	ratios, score, err := ComputeScore(in.Snapshot)
	if err != nil {
		return nil, fmt.Errorf("accounting score: %w", err)
	}

	vol, err := AnnualizedVolatility(in.Prices)
	if err != nil {
		return nil, fmt.Errorf("volatility: %w", err)
	}

	dr, err := ProbabilityOfDefault(NewMertonInput(in.Snapshot, in.RiskFreeRate, in.HorizonYears, vol))
	if err != nil {
		return nil, fmt.Errorf("structural model: %w", err)
	}

	stats, err := PriceStatistics(in.Prices)
	if err != nil {
		return nil, fmt.Errorf("price statistics: %w", err)
	}

	return &Assessment{
		Ratios:         ratios,
		Score:          score,
		Volatility:     vol,
		DefaultRisk:    dr,
		PriceStats:     stats,
		Recommendation: Decide(score, dr.ProbabilityOfDefault, in.Thresholds),
	}, nil
}
