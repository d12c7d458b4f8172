// Package news aggregates ticker-scoped and macro financial news
package news

import (
	"context"
	"strings"

	"github.com/halcyonfin/voxfolio/internal/common"
	"github.com/halcyonfin/voxfolio/internal/interfaces"
	"github.com/halcyonfin/voxfolio/internal/models"
)

const (
	// PortfolioNewsLimit caps ticker-scoped results
	PortfolioNewsLimit = 5

	// macroFeedLimit and hackerNewsQuota split the macro feed between sources
	macroFeedLimit  = 5
	hackerNewsQuota = 3

	// storyScanLimit caps how many top story ids are inspected per call,
	// whether or not the quota is met
	storyScanLimit = 40
)

// financeKeywords filters Hacker News headlines for market relevance.
// Matching is case-insensitive on the headline only.
var financeKeywords = []string{
	"stock", "market", "invest", "trade", "fund", "bank", "economy",
	"gdp", "inflation", "startup", "vc", "ipo", "crypto", "ai", "tech",
	"fed", "rate", "recession", "earnings", "revenue", "profit",
}

// macroTopics selects the Alpha Vantage general market feed
var macroTopics = []string{"financial_markets", "economy_macro"}

// Service implements NewsService
type Service struct {
	news    interfaces.NewsClient
	stories interfaces.StoryClient
	logger  *common.Logger
}

// NewService creates a new news service
func NewService(news interfaces.NewsClient, stories interfaces.StoryClient, logger *common.Logger) *Service {
	return &Service{
		news:    news,
		stories: stories,
		logger:  logger,
	}
}

// PortfolioNews returns sentiment-tagged news for the given tickers.
// No tickers means no holdings to report on: an empty result, not an error.
func (s *Service) PortfolioNews(ctx context.Context, tickers []string) ([]*models.NewsItem, error) {
	if len(tickers) == 0 {
		return nil, nil
	}

	items, err := s.news.GetTickerNews(ctx, tickers, PortfolioNewsLimit)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Portfolio news fetch failed")
		return nil, nil
	}
	return items, nil
}

// MacroNews merges the Alpha Vantage macro feed with finance-relevant Hacker
// News stories. Either source failing degrades to the other; only both
// failing yields an empty feed.
func (s *Service) MacroNews(ctx context.Context) ([]*models.NewsItem, error) {
	var feed []*models.NewsItem

	items, err := s.news.GetTopicNews(ctx, macroTopics, macroFeedLimit)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Macro news source failed, continuing with Hacker News only")
	} else {
		feed = append(feed, items...)
	}

	feed = append(feed, s.hackerNewsStories(ctx, hackerNewsQuota)...)

	return feed, nil
}

// hackerNewsStories scans at most storyScanLimit top story ids, keeping
// stories whose headline matches the finance keyword set, until the quota is
// met. Per-story failures are skipped; a listing failure yields nothing.
func (s *Service) hackerNewsStories(ctx context.Context, quota int) []*models.NewsItem {
	ids, err := s.stories.GetTopStoryIDs(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Hacker News listing failed, continuing without it")
		return nil
	}

	if len(ids) > storyScanLimit {
		ids = ids[:storyScanLimit]
	}

	var items []*models.NewsItem
	for _, id := range ids {
		story, err := s.stories.GetStory(ctx, id)
		if err != nil || story == nil || story.Type != "story" {
			continue
		}
		if !matchesKeywords(story.Title) {
			continue
		}

		items = append(items, &models.NewsItem{
			Headline: story.Title,
			Source:   "Hacker News",
			URL:      story.URL,
		})
		if len(items) >= quota {
			break
		}
	}
	return items
}

func matchesKeywords(headline string) bool {
	title := strings.ToLower(headline)
	for _, kw := range financeKeywords {
		if strings.Contains(title, kw) {
			return true
		}
	}
	return false
}

// Ensure Service implements NewsService
var _ interfaces.NewsService = (*Service)(nil)
