package snapshot

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wonny/creditrisk/internal/contracts"
	"github.com/wonny/creditrisk/pkg/metrics"
)

// Line item names the snapshot is built from.
// EBIT and Sales are proxies; the score weights are calibrated against them.
const (
	ItemTotalAssets      = "Total Assets"
	ItemWorkingCapital   = "Working Capital"
	ItemRetainedEarnings = "Retained Earnings"
	ItemTotalLiabilities = "Total Liabilities Net Minority Interest"
	ItemEBIT             = "Operating Income"
	ItemSales            = "Total Revenue"
)

const (
	statementBalanceSheet    = "balance_sheet"
	statementIncomeStatement = "income_statement"
)

// DefaultFetchTimeout bounds the whole four-call fetch
const DefaultFetchTimeout = 45 * time.Second

// Builder fetches the raw inputs once and assembles the immutable snapshot
// ⭐ SSOT: Provider 호출은 분석당 1회 (두 모델이 같은 데이터를 공유)
type Builder struct {
	provider contracts.FinancialDataProvider
	timeout  time.Duration
}

// NewBuilder creates a snapshot builder; timeout <= 0 uses DefaultFetchTimeout
func NewBuilder(provider contracts.FinancialDataProvider, timeout time.Duration) *Builder {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &Builder{provider: provider, timeout: timeout}
}

// Build 재무제표, 시가총액, 1년 가격을 병렬 수집 후 스냅샷 생성
func (b *Builder) Build(ctx context.Context, ticker string) (*contracts.MarketData, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	var (
		balance   contracts.LineItems
		income    contracts.LineItems
		marketCap float64
		prices    contracts.PriceSeries
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		defer observe("balance_sheet", time.Now())
		balance, err = b.provider.QuarterlyBalanceSheet(gctx, ticker)
		return err
	})
	g.Go(func() (err error) {
		defer observe("income_statement", time.Now())
		income, err = b.provider.QuarterlyIncomeStatement(gctx, ticker)
		return err
	})
	g.Go(func() (err error) {
		defer observe("market_cap", time.Now())
		marketCap, err = b.provider.MarketCap(gctx, ticker)
		return err
	})
	g.Go(func() (err error) {
		defer observe("price_history", time.Now())
		prices, err = b.provider.PriceHistory(gctx, ticker, contracts.PeriodOneYear)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", ticker, err)
	}

	snap, err := Assemble(ticker, balance, income, marketCap)
	if err != nil {
		return nil, err
	}
	if n := len(prices.Points); n > 0 {
		snap.AsOf = prices.Points[n-1].Date
	}

	return &contracts.MarketData{
		Snapshot:        snap,
		Prices:          prices,
		BalanceSheet:    balance,
		IncomeStatement: income,
	}, nil
}

// Assemble maps line items onto the snapshot; an absent item is a MissingFieldError, never zero
func Assemble(ticker string, balance, income contracts.LineItems, marketCap float64) (contracts.FinancialSnapshot, error) {
	snap := contracts.FinancialSnapshot{Ticker: ticker, MarketValueEquity: marketCap}

	fields := []struct {
		statement string
		items     contracts.LineItems
		name      string
		dest      *float64
	}{
		{statementBalanceSheet, balance, ItemTotalAssets, &snap.TotalAssets},
		{statementBalanceSheet, balance, ItemWorkingCapital, &snap.WorkingCapital},
		{statementBalanceSheet, balance, ItemRetainedEarnings, &snap.RetainedEarnings},
		{statementBalanceSheet, balance, ItemTotalLiabilities, &snap.TotalLiabilities},
		{statementIncomeStatement, income, ItemEBIT, &snap.EBIT},
		{statementIncomeStatement, income, ItemSales, &snap.Sales},
	}

	for _, f := range fields {
		v, ok := f.items.Lookup(f.name)
		if !ok {
			return contracts.FinancialSnapshot{}, &contracts.MissingFieldError{Statement: f.statement, Field: f.name}
		}
		*f.dest = v.InexactFloat64()
	}

	return snap, nil
}

func observe(call string, start time.Time) {
	metrics.ObserveFetch(call, time.Since(start))
}
