// Package interfaces defines service contracts for Voxfolio
package interfaces

import (
	"context"

	"github.com/halcyonfin/voxfolio/internal/models"
)

// BrokerageClient provides access to the Trading 212 REST API
type BrokerageClient interface {
	// GetPositions retrieves all open positions
	GetPositions(ctx context.Context) ([]*models.Position, error)

	// GetAccountSummary retrieves cash balance and overall account value
	GetAccountSummary(ctx context.Context) (*models.AccountSummary, error)

	// GetOrderHistory retrieves up to limit historical orders, newest first,
	// following cursor pagination
	GetOrderHistory(ctx context.Context, limit int) ([]*models.Order, error)

	// GetDividends retrieves up to limit paid dividend records
	GetDividends(ctx context.Context, limit int) ([]*models.DividendPayment, error)

	// GetInstruments retrieves the full tradable instrument list
	GetInstruments(ctx context.Context) ([]*models.Instrument, error)

	// GetPies retrieves the account's investment pies
	GetPies(ctx context.Context) ([]*models.Pie, error)
}

// QuoteClient provides latest price data for a symbol
type QuoteClient interface {
	// GetQuote retrieves the latest price and percent change
	GetQuote(ctx context.Context, symbol string) (*models.Quote, error)
}

// NewsClient provides sentiment-tagged financial news
type NewsClient interface {
	// GetTickerNews retrieves news for specific tickers
	GetTickerNews(ctx context.Context, tickers []string, limit int) ([]*models.NewsItem, error)

	// GetTopicNews retrieves news for macro topics
	GetTopicNews(ctx context.Context, topics []string, limit int) ([]*models.NewsItem, error)
}

// StoryClient provides access to the public Hacker News listing API
type StoryClient interface {
	// GetTopStoryIDs retrieves the current top story ids
	GetTopStoryIDs(ctx context.Context) ([]int64, error)

	// GetStory retrieves a single story by id
	GetStory(ctx context.Context, id int64) (*models.Story, error)
}
