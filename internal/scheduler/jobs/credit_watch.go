package jobs

import (
	"context"
	"errors"

	"github.com/wonny/creditrisk/internal/analysis"
	"github.com/wonny/creditrisk/internal/contracts"
	"github.com/wonny/creditrisk/pkg/logger"
)

// Analyzer runs one credit analysis
type Analyzer interface {
	Analyze(ctx context.Context, req analysis.Request) (*contracts.CreditReport, error)
}

// CreditWatchJob re-runs the single-ticker analysis on a schedule
type CreditWatchJob struct {
	analyzer Analyzer
	request  analysis.Request
	schedule string
	logger   *logger.Logger
	onReport func(*contracts.CreditReport)

	last *contracts.CreditReport
}

// NewCreditWatchJob creates a new credit watch job; onReport may be nil
func NewCreditWatchJob(analyzer Analyzer, req analysis.Request, schedule string, log *logger.Logger, onReport func(*contracts.CreditReport)) *CreditWatchJob {
	return &CreditWatchJob{
		analyzer: analyzer,
		request:  req,
		schedule: schedule,
		logger:   log,
		onReport: onReport,
	}
}

// Name returns the job name
func (j *CreditWatchJob) Name() string {
	return "credit_watch"
}

// Schedule returns the cron schedule
func (j *CreditWatchJob) Schedule() string {
	return j.schedule
}

// Run executes one analysis and reports recommendation changes
func (j *CreditWatchJob) Run(ctx context.Context) error {
	report, err := j.analyzer.Analyze(ctx, j.request)
	if err != nil {
		return err
	}

	if j.last != nil && j.last.Recommendation != report.Recommendation {
		j.logger.WithFields(map[string]interface{}{
			"ticker": report.Ticker,
			"from":   j.last.Recommendation,
			"to":     report.Recommendation,
		}).Warn("Recommendation changed")
	}
	j.last = report

	if j.onReport != nil {
		j.onReport(report)
	}
	return nil
}

// ShouldRetry only provider failures are transient; model errors repeat identically
func (j *CreditWatchJob) ShouldRetry(err error) bool {
	return errors.Is(err, contracts.ErrDataUnavailable)
}
