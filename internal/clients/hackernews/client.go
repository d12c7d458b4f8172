// Package hackernews provides a client for the public Hacker News API.
// No authentication or rate limit applies.
package hackernews

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/halcyonfin/voxfolio/internal/common"
	"github.com/halcyonfin/voxfolio/internal/interfaces"
	"github.com/halcyonfin/voxfolio/internal/models"
)

const (
	DefaultBaseURL = "https://hacker-news.firebaseio.com/v0"
	DefaultTimeout = 10 * time.Second
)

// Client implements the StoryClient interface
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
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

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new Hacker News client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("Hacker News API error: %s (status: %d, endpoint: %s)", string(body), resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// GetTopStoryIDs retrieves the current top story ids
func (c *Client) GetTopStoryIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := c.get(ctx, "/topstories.json", &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// GetStory retrieves a single story by id. The API returns a JSON null for
// dead or missing items; that surfaces here as a nil story with no error.
func (c *Client) GetStory(ctx context.Context, id int64) (*models.Story, error) {
	var story *models.Story
	if err := c.get(ctx, fmt.Sprintf("/item/%d.json", id), &story); err != nil {
		return nil, err
	}
	if story != nil && story.URL == "" {
		story.URL = fmt.Sprintf("https://news.ycombinator.com/item?id=%d", id)
	}
	return story, nil
}

// Ensure Client implements StoryClient
var _ interfaces.StoryClient = (*Client)(nil)
