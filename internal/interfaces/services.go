package interfaces

import (
	"context"

	"github.com/halcyonfin/voxfolio/internal/models"
)

// PortfolioService reads positions and account data from the brokerage
type PortfolioService interface {
	// GetPositions returns open positions with unrealized P&L computed
	GetPositions(ctx context.Context) ([]*models.Position, error)

	// GetAccountSummary returns cash balance and total portfolio value
	GetAccountSummary(ctx context.Context) (*models.AccountSummary, error)

	// Overview returns per-position spoken lines plus aggregate statistics.
	// A failed quote lookup degrades that line, never the whole overview.
	Overview(ctx context.Context) (*models.PortfolioOverview, error)

	// GetQuote returns the latest price for a symbol
	GetQuote(ctx context.Context, symbol string) (*models.Quote, error)
}

// HistoryService analyzes historical orders and dividends
type HistoryService interface {
	// AnalyzeTrades fetches up to limit orders and computes trade statistics
	AnalyzeTrades(ctx context.Context, limit int) (*models.TradeStats, error)

	// SummarizeDividends fetches up to limit dividend records and aggregates income
	SummarizeDividends(ctx context.Context, limit int) (*models.DividendSummary, error)

	// ListPies returns the account's investment pies
	ListPies(ctx context.Context) ([]*models.Pie, error)
}

// InstrumentService looks up tradable instruments by free-text query
type InstrumentService interface {
	// Search returns ranked instrument matches, at most limit. The backing
	// instrument list is cached and refreshed at most once per TTL window.
	Search(ctx context.Context, query string, limit int) ([]models.Instrument, error)
}

// NewsService aggregates ticker-scoped and macro news
type NewsService interface {
	// PortfolioNews returns sentiment-tagged news for the given tickers
	PortfolioNews(ctx context.Context, tickers []string) ([]*models.NewsItem, error)

	// MacroNews returns a merged macro feed; either upstream source failing
	// degrades to the other
	MacroNews(ctx context.Context) ([]*models.NewsItem, error)
}

// NoteService stores session-scoped notes
type NoteService interface {
	// Save stores a note and returns it with its assigned id
	Save(text string) models.Note

	// List returns all saved notes in insertion order
	List() []models.Note

	// Clear deletes all notes and returns how many were removed
	Clear() int
}
