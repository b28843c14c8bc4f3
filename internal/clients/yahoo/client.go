// Package yahoo provides a client for the Yahoo Finance API
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/sarbotrikbasu/Financial-Tracker/internal/common"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/interfaces"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/models"
)

const (
	DefaultBaseURL   = "https://query1.finance.yahoo.com"
	DefaultTimeout   = 10 * time.Second
	DefaultRateLimit = 5 // requests per second
)

// Client implements the StockDataClient interface
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new Yahoo Finance client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents an API error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("yahoo finance error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// get performs a rate-limited GET request
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	// Yahoo rejects requests without a browser-ish user agent
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; fintrack/"+common.GetVersion()+")")

	c.logger.Debug().Str("url", c.baseURL+path).Msg("Yahoo Finance request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// quoteSummaryResponse is the v10 quoteSummary payload, trimmed to the
// modules we request.
type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			AssetProfile struct {
				Sector   string `json:"sector"`
				Industry string `json:"industry"`
			} `json:"assetProfile"`
			Price struct {
				Symbol       string `json:"symbol"`
				LongName     string `json:"longName"`
				ShortName    string `json:"shortName"`
				ExchangeName string `json:"exchangeName"`
				MarketCap    struct {
					Raw float64 `json:"raw"`
				} `json:"marketCap"`
			} `json:"price"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

// chartResponse is the v8 chart payload, trimmed to daily closes.
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
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// candidateSymbols expands a bare symbol to NSE/BSE variants; symbols that
// already carry an exchange suffix are used as-is.
func candidateSymbols(symbol string) []string {
	if strings.Contains(symbol, ".") {
		return []string{symbol}
	}
	return []string{symbol + ".NS", symbol + ".BO"}
}

// LookupSymbol validates a ticker and returns its metadata.
// Bare symbols are retried with NSE (.NS) then BSE (.BO) suffixes.
func (c *Client) LookupSymbol(ctx context.Context, symbol string) (*models.StockMeta, error) {
	var lastErr error

	for _, candidate := range candidateSymbols(symbol) {
		meta, err := c.lookupOne(ctx, candidate)
		if err != nil {
			lastErr = err
			continue
		}
		return meta, nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("symbol '%s' not found", symbol)
	}
	return nil, lastErr
}

func (c *Client) lookupOne(ctx context.Context, symbol string) (*models.StockMeta, error) {
	params := url.Values{}
	params.Set("modules", "assetProfile,price")

	var resp quoteSummaryResponse
	if err := c.get(ctx, "/v10/finance/quoteSummary/"+url.PathEscape(symbol), params, &resp); err != nil {
		return nil, err
	}

	if resp.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("symbol '%s': %s", symbol, resp.QuoteSummary.Error.Description)
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("symbol '%s' not found", symbol)
	}

	r := resp.QuoteSummary.Result[0]
	name := r.Price.LongName
	if name == "" {
		name = r.Price.ShortName
	}
	if name == "" {
		name = symbol
	}

	return &models.StockMeta{
		Symbol:    r.Price.Symbol,
		Name:      name,
		Exchange:  r.Price.ExchangeName,
		Sector:    r.AssetProfile.Sector,
		Industry:  r.AssetProfile.Industry,
		MarketCap: r.Price.MarketCap.Raw,
	}, nil
}

// GetPriceHistory retrieves the full daily price history for a symbol.
// Gaps (null closes) are dropped.
func (c *Client) GetPriceHistory(ctx context.Context, symbol string) (models.TimeSeries, error) {
	params := url.Values{}
	params.Set("range", "max")
	params.Set("interval", "1d")

	var resp chartResponse
	if err := c.get(ctx, "/v8/finance/chart/"+url.PathEscape(symbol), params, &resp); err != nil {
		return models.TimeSeries{}, err
	}

	if resp.Chart.Error != nil {
		return models.TimeSeries{}, fmt.Errorf("symbol '%s': %s", symbol, resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 || len(resp.Chart.Result[0].Indicators.Quote) == 0 {
		return models.TimeSeries{}, nil
	}

	r := resp.Chart.Result[0]
	closes := r.Indicators.Quote[0].Close

	points := make([]models.PricePoint, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		points = append(points, models.PricePoint{
			Date:  time.Unix(ts, 0).UTC().Truncate(24 * time.Hour),
			Price: *closes[i],
		})
	}

	series := models.NewTimeSeries(points)
	c.logger.Debug().Str("symbol", symbol).Int("points", series.Len()).Msg("Price history fetched")

	return series, nil
}

// Ensure Client implements StockDataClient
var _ interfaces.StockDataClient = (*Client)(nil)
