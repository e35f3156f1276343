package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/wonny/creditrisk/internal/contracts"
)

// chartResponse v8 chart API 응답
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *apiError `json:"error"`
	} `json:"chart"`
}

// PriceHistory 일별 종가 (period 예: "1y")
func (c *Client) PriceHistory(ctx context.Context, ticker string, period string) (contracts.PriceSeries, error) {
	ticker = NormalizeTicker(ticker)
	if ticker == "" {
		return contracts.PriceSeries{}, fmt.Errorf("%w: empty ticker", contracts.ErrDataUnavailable)
	}
	if period == "" {
		period = contracts.PeriodOneYear
	}

	params := url.Values{}
	params.Set("interval", "1d")
	params.Set("range", period)
	fullURL := fmt.Sprintf("%s/v8/finance/chart/%s?%s", c.baseURL, url.PathEscape(ticker), params.Encode())

	var resp chartResponse
	if err := c.getJSON(ctx, "chart", fullURL, &resp); err != nil {
		return contracts.PriceSeries{}, err
	}
	if err := resp.Chart.Error.err("chart"); err != nil {
		return contracts.PriceSeries{}, err
	}

	series, err := parseChart(ticker, &resp)
	if err != nil {
		return contracts.PriceSeries{}, err
	}

	c.logger.WithFields(map[string]interface{}{
		"ticker": ticker,
		"period": period,
		"points": series.Len(),
	}).Debug("Fetched price history")

	return series, nil
}

func parseChart(ticker string, resp *chartResponse) (contracts.PriceSeries, error) {
	if len(resp.Chart.Result) == 0 || len(resp.Chart.Result[0].Timestamp) == 0 ||
		len(resp.Chart.Result[0].Indicators.Quote) == 0 {
		return contracts.PriceSeries{}, fmt.Errorf("%w: yahoo returned no prices for %s", contracts.ErrDataUnavailable, ticker)
	}

	result := resp.Chart.Result[0]
	closes := result.Indicators.Quote[0].Close
	points := make([]contracts.PricePoint, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil || *closes[i] <= 0 {
			continue // skip null bars (holidays etc.)
		}
		points = append(points, contracts.PricePoint{
			Date:  time.Unix(ts, 0).UTC(),
			Close: *closes[i],
		})
	}

	if len(points) == 0 {
		return contracts.PriceSeries{}, fmt.Errorf("%w: yahoo returned only empty bars for %s", contracts.ErrDataUnavailable, ticker)
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })

	// 장중 조회 시 마지막 bar가 중복될 수 있음
	deduped := points[:1]
	for _, p := range points[1:] {
		if p.Date.Equal(deduped[len(deduped)-1].Date) {
			deduped[len(deduped)-1] = p
			continue
		}
		deduped = append(deduped, p)
	}
	points = deduped

	series := contracts.PriceSeries{Ticker: ticker, Points: points}
	if err := series.Validate(); err != nil {
		return contracts.PriceSeries{}, err
	}
	return series, nil
}
