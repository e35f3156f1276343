package commands

import (
	"fmt"

	"github.com/wonny/creditrisk/internal/analysis"
	"github.com/wonny/creditrisk/internal/external/yahoo"
	"github.com/wonny/creditrisk/internal/riskconfig"
	"github.com/wonny/creditrisk/internal/snapshot"
	"github.com/wonny/creditrisk/pkg/config"
	"github.com/wonny/creditrisk/pkg/httputil"
	"github.com/wonny/creditrisk/pkg/logger"
	"github.com/wonny/creditrisk/pkg/redis"
)

// app holds everything a command needs, wired once
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	service *analysis.Service
	redis   *redis.Client

	defaultRate    float64
	defaultHorizon float64
}

// bootstrap config → logger → http client → provider → service
func bootstrap() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if policyFile != "" {
		cfg.Analysis.PolicyFile = policyFile
	}

	log := logger.New(cfg)

	policy, err := riskconfig.LoadOrDefault(cfg.Analysis.PolicyFile)
	if err != nil {
		return nil, fmt.Errorf("load policy: %w", err)
	}

	rdb, err := redis.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	httpClient := httputil.New(cfg, log)
	if limiter := rdb.SharedLimiter("creditrisk"); limiter != nil {
		httpClient.WithRateLimiter(limiter, redis.YahooRateLimit)
		log.WithField("redis", rdb.Addr()).Info("Shared Yahoo rate limit enabled")
	}

	provider := yahoo.NewClient(httpClient, log, cfg.Yahoo.BaseURL, cfg.Yahoo.QuoteURL)
	builder := snapshot.NewBuilder(provider, cfg.Analysis.FetchTimeout)

	service, err := analysis.NewService(builder, policy, log)
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("create analysis service: %w", err)
	}

	a := &app{
		cfg:            cfg,
		log:            log,
		service:        service,
		redis:          rdb,
		defaultRate:    cfg.Analysis.RiskFreeRate,
		defaultHorizon: cfg.Analysis.HorizonYears,
	}

	// 정책 파일의 analysis 블록이 환경변수 기본값보다 우선
	if r := policy.Analysis.RiskFreeRate; r != nil {
		a.defaultRate = *r
	}
	if h := policy.Analysis.HorizonYears; h != nil {
		a.defaultHorizon = *h
	}

	log.WithFields(map[string]interface{}{
		"policy_id": policy.Meta.PolicyID,
		"min_score": policy.Decision.MinScore,
		"max_pd":    policy.Decision.MaxPD,
	}).Debug("Decision policy loaded")

	return a, nil
}

func (a *app) close() {
	_ = a.redis.Close()
}

// request builds an analysis request; unchanged flags fall back to defaults
func (a *app) request(ticker string, rate float64, rateSet bool, horizon float64, horizonSet bool) analysis.Request {
	if !rateSet {
		rate = a.defaultRate
	}
	if !horizonSet {
		horizon = a.defaultHorizon
	}
	return analysis.Request{Ticker: ticker, RiskFreeRate: rate, HorizonYears: horizon}
}
