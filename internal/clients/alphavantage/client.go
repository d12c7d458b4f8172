// Package alphavantage provides a client for the Alpha Vantage API
package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/halcyonfin/voxfolio/internal/common"
	"github.com/halcyonfin/voxfolio/internal/interfaces"
	"github.com/halcyonfin/voxfolio/internal/models"
)

const (
	DefaultBaseURL   = "https://www.alphavantage.co"
	DefaultTimeout   = 10 * time.Second
	DefaultRateLimit = 1 // requests per second; the free tier is tight

	// summaryMaxLen trims news summaries to a spoken-friendly length, in runes
	summaryMaxLen = 250
)

// flexFloat64 handles JSON values that may be either a number or a string
// (Alpha Vantage quotes arrive as strings like "150.0000").
type flexFloat64 float64

func (f *flexFloat64) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = flexFloat64(num)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" || s == "N/A" {
			*f = 0
			return nil
		}
		num, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = flexFloat64(num)
		return nil
	}
	return fmt.Errorf("cannot unmarshal %s into float64", string(data))
}

// flexPercent parses percent strings like "1.2345%"; empty or malformed → 0.
type flexPercent float64

func (f *flexPercent) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var num float64
		if err := json.Unmarshal(data, &num); err == nil {
			*f = flexPercent(num)
			return nil
		}
		return fmt.Errorf("cannot unmarshal %s into percent", string(data))
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	if s == "" || s == "N/A" {
		*f = 0
		return nil
	}
	num, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexPercent(num)
	return nil
}

// Client implements the QuoteClient and NewsClient interfaces
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
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

// NewClient creates a new Alpha Vantage client
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
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

// HasKey reports whether an API key is configured
func (c *Client) HasKey() bool {
	return c.apiKey != ""
}

// APIError represents an API error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Alpha Vantage API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// get performs a rate-limited GET against the query endpoint
func (c *Client) get(ctx context.Context, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	if c.apiKey == "" {
		return fmt.Errorf("Alpha Vantage API key not configured")
	}

	params.Set("apikey", c.apiKey)
	reqURL := fmt.Sprintf("%s/query?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	c.logger.Debug().Str("function", params.Get("function")).Msg("Alpha Vantage API request")

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
			Endpoint:   "/query?function=" + params.Get("function"),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// GetQuote retrieves the latest price and percent change for a symbol
func (c *Client) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	params := url.Values{}
	params.Set("function", "GLOBAL_QUOTE")
	params.Set("symbol", symbol)

	var resp globalQuoteResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, err
	}

	return &models.Quote{
		Symbol:    symbol,
		Price:     float64(resp.Quote.Price),
		ChangePct: float64(resp.Quote.ChangePercent),
	}, nil
}

type globalQuoteResponse struct {
	Quote struct {
		Symbol        string      `json:"01. symbol"`
		Price         flexFloat64 `json:"05. price"`
		ChangePercent flexPercent `json:"10. change percent"`
	} `json:"Global Quote"`
}

// GetTickerNews retrieves news sentiment for specific tickers
func (c *Client) GetTickerNews(ctx context.Context, tickers []string, limit int) ([]*models.NewsItem, error) {
	params := url.Values{}
	params.Set("function", "NEWS_SENTIMENT")
	params.Set("tickers", strings.Join(tickers, ","))
	params.Set("limit", strconv.Itoa(limit))

	return c.getNews(ctx, params, limit)
}

// GetTopicNews retrieves news sentiment for macro topics
func (c *Client) GetTopicNews(ctx context.Context, topics []string, limit int) ([]*models.NewsItem, error) {
	params := url.Values{}
	params.Set("function", "NEWS_SENTIMENT")
	params.Set("topics", strings.Join(topics, ","))
	params.Set("limit", strconv.Itoa(limit))

	return c.getNews(ctx, params, limit)
}

func (c *Client) getNews(ctx context.Context, params url.Values, limit int) ([]*models.NewsItem, error) {
	var resp newsFeedResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, err
	}

	feed := resp.Feed
	if len(feed) > limit {
		feed = feed[:limit]
	}

	items := make([]*models.NewsItem, len(feed))
	for i, a := range feed {
		sentiment := a.SentimentLabel
		if sentiment == "" {
			sentiment = "Neutral"
		}
		summary := a.Summary
		if r := []rune(summary); len(r) > summaryMaxLen {
			summary = string(r[:summaryMaxLen])
		}
		items[i] = &models.NewsItem{
			Headline:  a.Title,
			Source:    a.Source,
			Sentiment: sentiment,
			Summary:   summary,
			URL:       a.URL,
		}
	}

	return items, nil
}

type newsFeedResponse struct {
	Feed []struct {
		Title          string `json:"title"`
		Source         string `json:"source"`
		SentimentLabel string `json:"overall_sentiment_label"`
		Summary        string `json:"summary"`
		URL            string `json:"url"`
	} `json:"feed"`
}

// Ensure Client implements the client interfaces
var (
	_ interfaces.QuoteClient = (*Client)(nil)
	_ interfaces.NewsClient  = (*Client)(nil)
)
