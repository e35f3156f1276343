package yahoo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wonny/creditrisk/internal/contracts"
	"github.com/wonny/creditrisk/pkg/httputil"
	"github.com/wonny/creditrisk/pkg/logger"
)

// Client handles communication with Yahoo Finance
// ⭐ SSOT: Yahoo Finance API 호출은 이 클라이언트에서만
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string // chart + fundamentals-timeseries
	quoteURL   string // quoteSummary
}

var _ contracts.FinancialDataProvider = (*Client)(nil)

// NewClient creates a new Yahoo Finance client
func NewClient(httpClient *httputil.Client, log *logger.Logger, baseURL, quoteURL string) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     log,
		baseURL:    strings.TrimRight(baseURL, "/"),
		quoteURL:   strings.TrimRight(quoteURL, "/"),
	}
}

// NormalizeTicker upper-cases and trims a ticker symbol
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// getJSON fetches url into dest; every failure is reported as ErrDataUnavailable
func (c *Client) getJSON(ctx context.Context, call, url string, dest interface{}) error {
	if err := c.httpClient.GetJSON(ctx, url, dest); err != nil {
		var se *httputil.StatusError
		if errors.As(err, &se) {
			return fmt.Errorf("%w: yahoo %s returned status %d", contracts.ErrDataUnavailable, call, se.StatusCode)
		}
		return fmt.Errorf("%w: yahoo %s: %w", contracts.ErrDataUnavailable, call, err)
	}
	return nil
}

// apiError is the error object Yahoo embeds in otherwise successful responses
type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (e *apiError) err(call string) error {
	if e == nil {
		return nil
	}
	return fmt.Errorf("%w: yahoo %s: %s (%s)", contracts.ErrDataUnavailable, call, e.Description, e.Code)
}
