package contracts

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// LineItems is one statement's latest-period values keyed by display name ("Total Assets")
// ⭐ SSOT: Provider → Snapshot 전달 포맷
type LineItems map[string]decimal.Decimal

// Lookup returns the value of a line item and whether it was reported
func (l LineItems) Lookup(name string) (decimal.Decimal, bool) {
	v, ok := l[name]
	return v, ok
}

// FinancialSnapshot holds the statement figures both models consume.
// Built once per analysis run and never mutated afterwards.
type FinancialSnapshot struct {
	Ticker            string    `json:"ticker"`
	AsOf              time.Time `json:"as_of"`
	TotalAssets       float64   `json:"total_assets"`
	WorkingCapital    float64   `json:"working_capital"`   // may be negative
	RetainedEarnings  float64   `json:"retained_earnings"` // may be negative
	TotalLiabilities  float64   `json:"total_liabilities"`
	EBIT              float64   `json:"ebit"`  // Operating Income proxy
	Sales             float64   `json:"sales"` // Total Revenue proxy
	MarketValueEquity float64   `json:"market_value_equity"`
}

// PricePoint is one daily close
type PricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// PriceSeries is a chronological daily closing-price history
type PriceSeries struct {
	Ticker string       `json:"ticker"`
	Points []PricePoint `json:"points"`
}

// Len returns the number of observations
func (s PriceSeries) Len() int {
	return len(s.Points)
}

// Closes returns the closing prices in chronological order
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}

// Validate checks chronological order and positive closes
func (s PriceSeries) Validate() error {
	for i, p := range s.Points {
		if p.Close <= 0 {
			return fmt.Errorf("%w: non-positive close %.4f on %s",
				ErrDataUnavailable, p.Close, p.Date.Format("2006-01-02"))
		}
		if i > 0 && !p.Date.After(s.Points[i-1].Date) {
			return fmt.Errorf("%w: price series not chronological at %s",
				ErrDataUnavailable, p.Date.Format("2006-01-02"))
		}
	}
	return nil
}

// MarketData is the single fetch shared by both models
type MarketData struct {
	Snapshot        FinancialSnapshot `json:"snapshot"`
	Prices          PriceSeries       `json:"prices"`
	BalanceSheet    LineItems         `json:"balance_sheet"`
	IncomeStatement LineItems         `json:"income_statement"`
}

// =============================================================================
// Derived values
// =============================================================================

// AccountingRatios are the five dimensionless inputs of the composite score
type AccountingRatios struct {
	X1 float64 `json:"x1"` // Working Capital / Total Assets (liquidity)
	X2 float64 `json:"x2"` // Retained Earnings / Total Assets (profitability)
	X3 float64 `json:"x3"` // EBIT / Total Assets (operating efficiency)
	X4 float64 `json:"x4"` // Market Value of Equity / Total Liabilities (leverage)
	X5 float64 `json:"x5"` // Sales / Total Assets (asset turnover)
}

// Scale returns the ratios multiplied by k
func (r AccountingRatios) Scale(k float64) AccountingRatios {
	return AccountingRatios{X1: r.X1 * k, X2: r.X2 * k, X3: r.X3 * k, X4: r.X4 * k, X5: r.X5 * k}
}

// DefaultRiskResult is the structural model output
type DefaultRiskResult struct {
	DistanceToDefault    float64 `json:"distance_to_default"`
	ProbabilityOfDefault float64 `json:"probability_of_default"` // 0.0 ~ 1.0
}

// PriceStats summarises the daily return history shown next to the models
type PriceStats struct {
	Observations     int     `json:"observations"`
	MeanDailyReturn  float64 `json:"mean_daily_return"`
	CumulativeReturn float64 `json:"cumulative_return"`
	VaR95            float64 `json:"var_95"`  // 1-day historical VaR, loss positive
	CVaR95           float64 `json:"cvar_95"` // 1-day historical CVaR, loss positive
}

// Recommendation is the lending decision
type Recommendation string

const (
	RecommendFavorable Recommendation = "favorable"
	RecommendCaution   Recommendation = "caution"
)

// DecisionThresholds are the cut-offs the recommendation was made with
type DecisionThresholds struct {
	MinScore float64 `json:"min_score"`
	MaxPD    float64 `json:"max_pd"`
}

// CreditReport is the read-only result handed to the presentation layer
// ⭐ SSOT: 분석 결과는 이 구조체로만 전달 (behavior 없음)
type CreditReport struct {
	RunID          string             `json:"run_id"`
	Ticker         string             `json:"ticker"`
	GeneratedAt    time.Time          `json:"generated_at"`
	RiskFreeRate   float64            `json:"risk_free_rate"`
	HorizonYears   float64            `json:"horizon_years"`
	Snapshot       FinancialSnapshot  `json:"snapshot"`
	Ratios         AccountingRatios   `json:"ratios"`
	Score          float64            `json:"score"`
	Volatility     float64            `json:"volatility"`
	DefaultRisk    DefaultRiskResult  `json:"default_risk"`
	PriceStats     PriceStats         `json:"price_stats"`
	Recommendation Recommendation     `json:"recommendation"`
	Thresholds     DecisionThresholds `json:"thresholds"`
	PolicyHash     string             `json:"policy_hash,omitempty"`

	// Display only, not consumed by either model
	BalanceSheet LineItems `json:"balance_sheet,omitempty"`
}
