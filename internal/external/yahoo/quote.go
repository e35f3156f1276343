package yahoo

import (
	"context"
	"fmt"
	"net/url"

	"github.com/wonny/creditrisk/internal/contracts"
)

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			Price struct {
				MarketCap *struct {
					Raw *float64 `json:"raw"`
				} `json:"marketCap"`
			} `json:"price"`
		} `json:"result"`
		Error *apiError `json:"error"`
	} `json:"quoteSummary"`
}

// MarketCap 현재 시가총액 (quoteSummary price 모듈)
func (c *Client) MarketCap(ctx context.Context, ticker string) (float64, error) {
	ticker = NormalizeTicker(ticker)
	if ticker == "" {
		return 0, fmt.Errorf("%w: empty ticker", contracts.ErrDataUnavailable)
	}

	fullURL := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=price",
		c.quoteURL, url.PathEscape(ticker))

	var resp quoteSummaryResponse
	if err := c.getJSON(ctx, "quote", fullURL, &resp); err != nil {
		return 0, err
	}
	if err := resp.QuoteSummary.Error.err("quote"); err != nil {
		return 0, err
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return 0, fmt.Errorf("%w: yahoo returned no quote for %s", contracts.ErrDataUnavailable, ticker)
	}

	mc := resp.QuoteSummary.Result[0].Price.MarketCap
	if mc == nil || mc.Raw == nil {
		return 0, &contracts.MissingFieldError{Statement: "quote", Field: "marketCap"}
	}
	return *mc.Raw, nil
}
