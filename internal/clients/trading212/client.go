// Package trading212 provides a client for the Trading 212 equity API
package trading212

import (
	"context"
	"encoding/base64"
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
	// DefaultBaseURL is the paper-trading environment. Live trading uses
	// https://live.trading212.com/api/v0.
	DefaultBaseURL   = "https://demo.trading212.com/api/v0"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 1 // requests per second; history endpoints allow 6/min

	// maxPageSize is the upstream cap on limit query parameters
	maxPageSize = 50
)

// Client implements the BrokerageClient interface
type Client struct {
	baseURL    string
	authHeader string
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

// NewClient creates a new Trading 212 client. The Basic auth header is built
// once from base64(key:secret).
func NewClient(apiKey, apiSecret string, opts ...ClientOption) *Client {
	credentials := base64.StdEncoding.EncodeToString([]byte(apiKey + ":" + apiSecret))

	c := &Client{
		baseURL:    DefaultBaseURL,
		authHeader: "Basic " + credentials,
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
	return fmt.Sprintf("Trading 212 API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// get performs a rate-limited GET against a full URL
func (c *Client) get(ctx context.Context, reqURL string, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("url", reqURL).Msg("Trading 212 API request")

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
			Endpoint:   reqURL,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// GetPositions retrieves all open positions
func (c *Client) GetPositions(ctx context.Context) ([]*models.Position, error) {
	var resp []positionResponse
	if err := c.get(ctx, c.baseURL+"/equity/positions", &resp); err != nil {
		return nil, err
	}

	positions := make([]*models.Position, len(resp))
	for i, p := range resp {
		positions[i] = &models.Position{
			Ticker:        p.Ticker,
			Shares:        p.Quantity,
			AvgPrice:      p.AveragePrice,
			CurrentPrice:  p.CurrentPrice,
			UnrealizedPnL: p.PPL,
		}
	}

	return positions, nil
}

type positionResponse struct {
	Ticker       string  `json:"ticker"`
	Quantity     float64 `json:"quantity"`
	AveragePrice float64 `json:"averagePrice"`
	CurrentPrice float64 `json:"currentPrice"`
	PPL          float64 `json:"ppl"`
}

// GetAccountSummary retrieves cash balance and overall account value
func (c *Client) GetAccountSummary(ctx context.Context) (*models.AccountSummary, error) {
	var resp accountSummaryResponse
	if err := c.get(ctx, c.baseURL+"/equity/account/summary", &resp); err != nil {
		return nil, err
	}

	return &models.AccountSummary{
		Cash:     resp.Cash.Free,
		Invested: resp.Cash.Invested,
		Total:    resp.Cash.Total,
		Result:   resp.Cash.Result,
		Currency: resp.CurrencyCode,
	}, nil
}

type accountSummaryResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Cash         struct {
		Free     float64 `json:"free"`
		Invested float64 `json:"invested"`
		Total    float64 `json:"total"`
		Result   float64 `json:"result"`
	} `json:"cash"`
}

// GetOrderHistory retrieves up to limit historical orders, newest first.
// The endpoint is cursor-paginated: nextPagePath is relative to the API host,
// so the absolute URL is rebuilt from the base URL with its /api suffix stripped.
func (c *Client) GetOrderHistory(ctx context.Context, limit int) ([]*models.Order, error) {
	if limit <= 0 {
		limit = maxPageSize
	}

	pageSize := limit
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	reqURL := fmt.Sprintf("%s/equity/history/orders?limit=%d", c.baseURL, pageSize)

	var orders []*models.Order
	for reqURL != "" && len(orders) < limit {
		var page orderPageResponse
		if err := c.get(ctx, reqURL, &page); err != nil {
			return nil, err
		}

		for _, item := range page.Items {
			orders = append(orders, &models.Order{
				Ticker:       item.Ticker,
				Quantity:     item.quantity(),
				FillPrice:    item.FillPrice,
				AveragePrice: item.AveragePrice,
				Status:       item.Status,
				DateCreated:  item.DateCreated,
				DateExecuted: item.DateExecuted,
			})
		}

		if page.NextPagePath != "" {
			reqURL = c.hostBase() + page.NextPagePath
		} else {
			reqURL = ""
		}
	}

	if len(orders) > limit {
		orders = orders[:limit]
	}

	c.logger.Debug().Int("orders", len(orders)).Msg("Order history fetched")

	return orders, nil
}

// hostBase strips the /api/... suffix from the base URL, leaving the scheme and host
func (c *Client) hostBase() string {
	if idx := strings.LastIndex(c.baseURL, "/api"); idx >= 0 {
		return c.baseURL[:idx]
	}
	return c.baseURL
}

type orderPageResponse struct {
	Items        []orderItemResponse `json:"items"`
	NextPagePath string              `json:"nextPagePath"`
}

// orderItemResponse tolerates the two quantity field names the API has used.
// filledQuantity wins when present.
type orderItemResponse struct {
	Ticker         string   `json:"ticker"`
	FilledQuantity *float64 `json:"filledQuantity"`
	Quantity       *float64 `json:"quantity"`
	FillPrice      float64  `json:"fillPrice"`
	AveragePrice   float64  `json:"averagePrice"`
	Status         string   `json:"status"`
	DateCreated    string   `json:"dateCreated"`
	DateExecuted   string   `json:"dateExecuted"`
}

func (o *orderItemResponse) quantity() float64 {
	if o.FilledQuantity != nil {
		return *o.FilledQuantity
	}
	if o.Quantity != nil {
		return *o.Quantity
	}
	return 0
}

// GetDividends retrieves up to limit paid dividend records
func (c *Client) GetDividends(ctx context.Context, limit int) ([]*models.DividendPayment, error) {
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))

	var resp dividendPageResponse
	if err := c.get(ctx, c.baseURL+"/equity/history/dividends?"+params.Encode(), &resp); err != nil {
		return nil, err
	}

	dividends := make([]*models.DividendPayment, len(resp.Items))
	for i, item := range resp.Items {
		dividends[i] = &models.DividendPayment{
			Ticker: item.Ticker,
			Amount: item.amount(),
			PaidOn: item.PaidOn,
		}
	}

	return dividends, nil
}

type dividendPageResponse struct {
	Items []dividendItemResponse `json:"items"`
}

// dividendItemResponse tolerates the amount field names the API has used;
// amount wins, then grossAmount, then grossAmountPerShare.
type dividendItemResponse struct {
	Ticker              string   `json:"ticker"`
	Amount              *float64 `json:"amount"`
	GrossAmount         *float64 `json:"grossAmount"`
	GrossAmountPerShare *float64 `json:"grossAmountPerShare"`
	PaidOn              string   `json:"paidOn"`
}

func (d *dividendItemResponse) amount() float64 {
	if d.Amount != nil {
		return *d.Amount
	}
	if d.GrossAmount != nil {
		return *d.GrossAmount
	}
	if d.GrossAmountPerShare != nil {
		return *d.GrossAmountPerShare
	}
	return 0
}

// GetInstruments retrieves the full tradable instrument list
func (c *Client) GetInstruments(ctx context.Context) ([]*models.Instrument, error) {
	var resp []instrumentResponse
	if err := c.get(ctx, c.baseURL+"/equity/metadata/instruments", &resp); err != nil {
		return nil, err
	}

	instruments := make([]*models.Instrument, len(resp))
	for i, item := range resp {
		instruments[i] = &models.Instrument{
			Ticker:   item.Ticker,
			Name:     item.Name,
			Exchange: item.Exchange,
			Type:     item.Type,
		}
	}

	c.logger.Debug().Int("instruments", len(instruments)).Msg("Instrument list fetched")

	return instruments, nil
}

type instrumentResponse struct {
	Ticker   string `json:"ticker"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
	Type     string `json:"type"`
}

// GetPies retrieves the account's investment pies
func (c *Client) GetPies(ctx context.Context) ([]*models.Pie, error) {
	var resp []pieResponse
	if err := c.get(ctx, c.baseURL+"/equity/pies", &resp); err != nil {
		return nil, err
	}

	pies := make([]*models.Pie, len(resp))
	for i, p := range resp {
		pies[i] = &models.Pie{
			ID:            p.ID,
			Cash:          p.Cash,
			Progress:      p.Progress,
			Status:        p.Status,
			InvestedValue: p.Result.InvestedValue,
			CurrentValue:  p.Result.Value,
			Result:        p.Result.Result,
		}
	}

	return pies, nil
}

type pieResponse struct {
	ID       int64   `json:"id"`
	Cash     float64 `json:"cash"`
	Progress float64 `json:"progress"`
	Status   string  `json:"status"`
	Result   struct {
		InvestedValue float64 `json:"priceAvgInvestedValue"`
		Value         float64 `json:"priceAvgValue"`
		Result        float64 `json:"priceAvgResult"`
	} `json:"result"`
}

// Ensure Client implements BrokerageClient
var _ interfaces.BrokerageClient = (*Client)(nil)
