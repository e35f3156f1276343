package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/wonny/creditrisk/internal/contracts"
)

// Fundamentals-timeseries item types, without the "quarterly" prefix
var (
	balanceSheetTypes = []string{
		"TotalAssets",
		"WorkingCapital",
		"RetainedEarnings",
		"TotalLiabilitiesNetMinorityInterest",
		"CurrentAssets",
		"CurrentLiabilities",
		"StockholdersEquity",
		"TotalDebt",
		"CashAndCashEquivalents",
	}
	incomeStatementTypes = []string{
		"OperatingIncome",
		"TotalRevenue",
		"GrossProfit",
		"NetIncome",
		"EBIT",
		"EBITDA",
	}
)

const (
	quarterlyPrefix = "quarterly"
	// 최근 분기만 필요하지만 공시 지연을 고려해 2년 조회
	statementLookback = 2 * 365 * 24 * time.Hour
)

// timeseriesResponse fundamentals-timeseries 응답
// Each result carries its values under a key equal to meta.type[0].
type timeseriesResponse struct {
	Timeseries struct {
		Result []map[string]json.RawMessage `json:"result"`
		Error  *apiError                    `json:"error"`
	} `json:"timeseries"`
}

type timeseriesMeta struct {
	Type []string `json:"type"`
}

type timeseriesPoint struct {
	AsOfDate      string `json:"asOfDate"`
	PeriodType    string `json:"periodType"`
	ReportedValue struct {
		Raw decimal.NullDecimal `json:"raw"`
	} `json:"reportedValue"`
}

// valued reports whether the point carries a date and a non-null value
func (p *timeseriesPoint) valued() bool {
	return p != nil && p.AsOfDate != "" && p.ReportedValue.Raw.Valid
}

// QuarterlyBalanceSheet 최신 분기 재무상태표 항목
func (c *Client) QuarterlyBalanceSheet(ctx context.Context, ticker string) (contracts.LineItems, error) {
	return c.fetchStatement(ctx, "balance sheet", NormalizeTicker(ticker), balanceSheetTypes)
}

// QuarterlyIncomeStatement 최신 분기 손익계산서 항목
func (c *Client) QuarterlyIncomeStatement(ctx context.Context, ticker string) (contracts.LineItems, error) {
	return c.fetchStatement(ctx, "income statement", NormalizeTicker(ticker), incomeStatementTypes)
}

func (c *Client) fetchStatement(ctx context.Context, call, ticker string, types []string) (contracts.LineItems, error) {
	if ticker == "" {
		return nil, fmt.Errorf("%w: empty ticker", contracts.ErrDataUnavailable)
	}

	prefixed := make([]string, len(types))
	for i, t := range types {
		prefixed[i] = quarterlyPrefix + t
	}

	now := time.Now()
	params := url.Values{}
	params.Set("symbol", ticker)
	params.Set("type", strings.Join(prefixed, ","))
	params.Set("period1", strconv.FormatInt(now.Add(-statementLookback).Unix(), 10))
	params.Set("period2", strconv.FormatInt(now.Unix(), 10))

	fullURL := fmt.Sprintf("%s/ws/fundamentals-timeseries/v1/finance/timeseries/%s?%s",
		c.baseURL, url.PathEscape(ticker), params.Encode())

	var resp timeseriesResponse
	if err := c.getJSON(ctx, call, fullURL, &resp); err != nil {
		return nil, err
	}
	if err := resp.Timeseries.Error.err(call); err != nil {
		return nil, err
	}

	items, err := parseTimeseries(resp.Timeseries.Result)
	if err != nil {
		return nil, fmt.Errorf("%w: yahoo %s: %w", contracts.ErrDataUnavailable, call, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: yahoo returned no %s for %s", contracts.ErrDataUnavailable, call, ticker)
	}

	c.logger.WithFields(map[string]interface{}{
		"ticker": ticker,
		"call":   call,
		"items":  len(items),
	}).Debug("Fetched statement")

	return items, nil
}

// parseTimeseries reads every item at the statement's latest asOfDate, keyed by display name.
// An item with no value for that date stays absent; older quarters are never substituted.
func parseTimeseries(results []map[string]json.RawMessage) (contracts.LineItems, error) {
	byItem := make(map[string][]*timeseriesPoint)
	var latestDate string

	for _, r := range results {
		rawMeta, ok := r["meta"]
		if !ok {
			continue
		}
		var meta timeseriesMeta
		if err := json.Unmarshal(rawMeta, &meta); err != nil {
			return nil, fmt.Errorf("decode meta: %w", err)
		}
		if len(meta.Type) == 0 {
			continue
		}
		key := meta.Type[0]

		rawPoints, ok := r[key]
		if !ok {
			continue // type requested but never reported
		}
		var points []*timeseriesPoint
		if err := json.Unmarshal(rawPoints, &points); err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}

		name := DisplayName(strings.TrimPrefix(key, quarterlyPrefix))
		for _, p := range points {
			// null raw or missing reportedValue is a gap, not zero
			if !p.valued() {
				continue
			}
			byItem[name] = append(byItem[name], p)
			// YYYY-MM-DD sorts lexically
			if p.AsOfDate > latestDate {
				latestDate = p.AsOfDate
			}
		}
	}

	items := make(contracts.LineItems)
	for name, points := range byItem {
		for _, p := range points {
			if p.AsOfDate == latestDate {
				items[name] = p.ReportedValue.Raw.Decimal
			}
		}
	}

	return items, nil
}

// DisplayName "TotalLiabilitiesNetMinorityInterest" → "Total Liabilities Net Minority Interest"
// Acronym runs stay together: "EBITDA" → "EBITDA", "NetPPE" → "Net PPE".
func DisplayName(key string) string {
	runes := []rune(key)
	var b strings.Builder

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
