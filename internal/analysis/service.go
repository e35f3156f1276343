package analysis

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wonny/creditrisk/internal/contracts"
	"github.com/wonny/creditrisk/internal/risk"
	"github.com/wonny/creditrisk/internal/riskconfig"
	"github.com/wonny/creditrisk/pkg/logger"
	"github.com/wonny/creditrisk/pkg/metrics"
)

// MarketDataSource fetches everything one analysis needs in a single call
type MarketDataSource interface {
	Build(ctx context.Context, ticker string) (*contracts.MarketData, error)
}

// Request is one single-ticker analysis
type Request struct {
	Ticker       string
	RiskFreeRate float64 // annualised, e.g. 0.05
	HorizonYears float64 // T
}

// Service assembles credit reports
// ⭐ SSOT: fetch → score → volatility → DD/PD → stats → decision 순서는 여기서만
type Service struct {
	source     MarketDataSource
	engine     *risk.Engine
	policy     *riskconfig.Policy
	policyHash string
	logger     *logger.Logger
	now        func() time.Time
}

// NewService creates a new analysis service; a nil policy uses riskconfig.Default()
func NewService(source MarketDataSource, policy *riskconfig.Policy, log *logger.Logger) (*Service, error) {
	if policy == nil {
		policy = riskconfig.Default()
	}
	if err := risk.ValidateThresholds(policy.Thresholds()); err != nil {
		return nil, err
	}

	hash, err := riskconfig.Hash(policy)
	if err != nil {
		return nil, fmt.Errorf("hash policy: %w", err)
	}

	return &Service{
		source:     source,
		engine:     risk.NewEngine(),
		policy:     policy,
		policyHash: hash,
		logger:     log,
		now:        time.Now,
	}, nil
}

// Analyze runs one analysis. Errors keep their kind (see Kind) through the wrapping.
func (s *Service) Analyze(ctx context.Context, req Request) (*contracts.CreditReport, error) {
	runID := uuid.NewString()
	ticker := strings.ToUpper(strings.TrimSpace(req.Ticker))

	log := s.logger.WithFields(map[string]interface{}{
		"run_id":  runID,
		"ticker":  ticker,
		"rate":    req.RiskFreeRate,
		"horizon": req.HorizonYears,
	})

	report, err := s.analyze(ctx, runID, ticker, req)
	if err != nil {
		kind := Kind(err)
		metrics.ObserveAnalysis(kind)
		log.WithError(err).WithField("kind", kind).Warn("Credit analysis failed")
		return nil, err
	}

	metrics.ObserveAnalysis(string(report.Recommendation))
	log.WithFields(map[string]interface{}{
		"score":          report.Score,
		"pd":             report.DefaultRisk.ProbabilityOfDefault,
		"recommendation": report.Recommendation,
	}).Info("Credit analysis completed")

	return report, nil
}

func (s *Service) analyze(ctx context.Context, runID, ticker string, req Request) (*contracts.CreditReport, error) {
	if ticker == "" {
		return nil, fmt.Errorf("%w: ticker is required", ErrInvalidRequest)
	}
	if math.IsNaN(req.RiskFreeRate) || math.IsInf(req.RiskFreeRate, 0) {
		return nil, fmt.Errorf("%w: risk-free rate must be a finite number", ErrInvalidRequest)
	}

	// 1. 데이터 수집 (1회)
	md, err := s.source.Build(ctx, ticker)
	if err != nil {
		return nil, err
	}

	// 2~6. 순수 계산
	thresholds := s.policy.Thresholds()
	a, err := s.engine.Assess(risk.AssessmentInput{
		Snapshot:     md.Snapshot,
		Prices:       md.Prices,
		RiskFreeRate: req.RiskFreeRate,
		HorizonYears: req.HorizonYears,
		Thresholds:   thresholds,
	})
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", ticker, err)
	}

	return &contracts.CreditReport{
		RunID:          runID,
		Ticker:         ticker,
		GeneratedAt:    s.now().UTC(),
		RiskFreeRate:   req.RiskFreeRate,
		HorizonYears:   req.HorizonYears,
		Snapshot:       md.Snapshot,
		Ratios:         a.Ratios,
		Score:          a.Score,
		Volatility:     a.Volatility,
		DefaultRisk:    a.DefaultRisk,
		PriceStats:     a.PriceStats,
		Recommendation: a.Recommendation,
		Thresholds:     thresholds,
		PolicyHash:     s.policyHash,
		BalanceSheet:   md.BalanceSheet,
	}, nil
}
