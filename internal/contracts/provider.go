package contracts

import "context"

// PeriodOneYear is the trailing window the volatility estimate is taken over
const PeriodOneYear = "1y"

// FinancialDataProvider supplies the raw inputs of one analysis.
// Implementations must return ErrDataUnavailable (wrapped) on failure and never
// substitute zero for a value they could not obtain.
// ⭐ SSOT: 외부 시세/재무 데이터 경계
type FinancialDataProvider interface {
	// QuarterlyBalanceSheet returns the latest quarterly balance-sheet items
	QuarterlyBalanceSheet(ctx context.Context, ticker string) (LineItems, error)

	// QuarterlyIncomeStatement returns the latest quarterly income-statement items
	QuarterlyIncomeStatement(ctx context.Context, ticker string) (LineItems, error)

	// MarketCap returns the current market capitalization
	MarketCap(ctx context.Context, ticker string) (float64, error)

	// PriceHistory returns daily closes for the trailing period, e.g. "1y"
	PriceHistory(ctx context.Context, ticker string, period string) (PriceSeries, error)
}
