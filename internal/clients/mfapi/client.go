// Package mfapi provides a client for the mfapi.in mutual fund API
package mfapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/sarbotrikbasu/Financial-Tracker/internal/common"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/interfaces"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/models"
)

const (
	DefaultBaseURL   = "https://api.mfapi.in/mf"
	DefaultTimeout   = 10 * time.Second
	DefaultRateLimit = 5 // requests per second
)

// navDateFormat is mfapi's NAV history date format (dd-mm-yyyy).
const navDateFormat = "02-01-2006"

// Client implements the FundDataClient interface
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

// NewClient creates a new mfapi.in client
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
	return fmt.Sprintf("mfapi error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
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

	c.logger.Debug().Str("url", c.baseURL+path).Msg("mfapi request")

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

// schemeResponse is the mfapi scheme detail payload. NAV values arrive as
// strings and dates as dd-mm-yyyy.
type schemeResponse struct {
	Meta struct {
		FundHouse      string `json:"fund_house"`
		SchemeType     string `json:"scheme_type"`
		SchemeCategory string `json:"scheme_category"`
		SchemeCode     any    `json:"scheme_code"` // number in detail, string in search
		SchemeName     string `json:"scheme_name"`
	} `json:"meta"`
	Data []struct {
		Date string `json:"date"`
		NAV  string `json:"nav"`
	} `json:"data"`
	Status string `json:"status"`
}

// searchResult is one mfapi search hit.
type searchResult struct {
	SchemeCode any    `json:"schemeCode"`
	SchemeName string `json:"schemeName"`
}

// schemeCodeString normalises mfapi's scheme code, which is sometimes a JSON
// number and sometimes a string.
func schemeCodeString(v any) string {
	switch code := v.(type) {
	case string:
		return code
	case float64:
		return strconv.FormatInt(int64(code), 10)
	default:
		return ""
	}
}

// SearchFunds searches schemes by name
func (c *Client) SearchFunds(ctx context.Context, query string) ([]models.FundSearchResult, error) {
	params := url.Values{}
	params.Set("q", query)

	var hits []searchResult
	if err := c.get(ctx, "/search", params, &hits); err != nil {
		return nil, err
	}

	results := make([]models.FundSearchResult, 0, len(hits))
	for _, h := range hits {
		results = append(results, models.FundSearchResult{
			SchemeCode: schemeCodeString(h.SchemeCode),
			SchemeName: h.SchemeName,
		})
	}

	return results, nil
}

// GetFundMeta retrieves scheme metadata
func (c *Client) GetFundMeta(ctx context.Context, schemeCode string) (*models.FundMeta, error) {
	var resp schemeResponse
	if err := c.get(ctx, "/"+schemeCode, nil, &resp); err != nil {
		return nil, err
	}

	if resp.Meta.SchemeName == "" {
		return nil, fmt.Errorf("scheme '%s' not found", schemeCode)
	}

	code := schemeCodeString(resp.Meta.SchemeCode)
	if code == "" {
		code = schemeCode
	}

	return &models.FundMeta{
		SchemeCode:     code,
		SchemeName:     resp.Meta.SchemeName,
		FundHouse:      resp.Meta.FundHouse,
		SchemeCategory: resp.Meta.SchemeCategory,
		SchemeType:     resp.Meta.SchemeType,
	}, nil
}

// GetNAVHistory retrieves the full NAV history for a scheme.
// mfapi returns newest-first rows; unparseable rows are dropped and the
// series is normalised to ascending date order.
func (c *Client) GetNAVHistory(ctx context.Context, schemeCode string) (models.TimeSeries, error) {
	var resp schemeResponse
	if err := c.get(ctx, "/"+schemeCode, nil, &resp); err != nil {
		return models.TimeSeries{}, err
	}

	points := make([]models.PricePoint, 0, len(resp.Data))
	for _, row := range resp.Data {
		date, err := time.Parse(navDateFormat, row.Date)
		if err != nil {
			continue
		}
		nav, err := strconv.ParseFloat(row.NAV, 64)
		if err != nil {
			continue
		}
		points = append(points, models.PricePoint{Date: date, Price: nav})
	}

	series := models.NewTimeSeries(points)
	c.logger.Debug().Str("scheme", schemeCode).Int("points", series.Len()).Msg("NAV history fetched")

	return series, nil
}

// Ensure Client implements FundDataClient
var _ interfaces.FundDataClient = (*Client)(nil)
