package main

import (
	"context"
	"fmt"

	"github.com/halcyonfin/voxfolio/internal/models"
)

// --- mockPortfolioService ---

type mockPortfolioService struct {
	getPositionsFn      func(ctx context.Context) ([]*models.Position, error)
	getAccountSummaryFn func(ctx context.Context) (*models.AccountSummary, error)
	overviewFn          func(ctx context.Context) (*models.PortfolioOverview, error)
	getQuoteFn          func(ctx context.Context, symbol string) (*models.Quote, error)
}

func (m *mockPortfolioService) GetPositions(ctx context.Context) ([]*models.Position, error) {
	if m.getPositionsFn != nil {
		return m.getPositionsFn(ctx)
	}
	return nil, nil
}

func (m *mockPortfolioService) GetAccountSummary(ctx context.Context) (*models.AccountSummary, error) {
	if m.getAccountSummaryFn != nil {
		return m.getAccountSummaryFn(ctx)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockPortfolioService) Overview(ctx context.Context) (*models.PortfolioOverview, error) {
	if m.overviewFn != nil {
		return m.overviewFn(ctx)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockPortfolioService) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	if m.getQuoteFn != nil {
		return m.getQuoteFn(ctx, symbol)
	}
	return nil, fmt.Errorf("not implemented")
}

// --- mockHistoryService ---

type mockHistoryService struct {
	analyzeTradesFn      func(ctx context.Context, limit int) (*models.TradeStats, error)
	summarizeDividendsFn func(ctx context.Context, limit int) (*models.DividendSummary, error)
	listPiesFn           func(ctx context.Context) ([]*models.Pie, error)
}

func (m *mockHistoryService) AnalyzeTrades(ctx context.Context, limit int) (*models.TradeStats, error) {
	if m.analyzeTradesFn != nil {
		return m.analyzeTradesFn(ctx, limit)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockHistoryService) SummarizeDividends(ctx context.Context, limit int) (*models.DividendSummary, error) {
	if m.summarizeDividendsFn != nil {
		return m.summarizeDividendsFn(ctx, limit)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockHistoryService) ListPies(ctx context.Context) ([]*models.Pie, error) {
	if m.listPiesFn != nil {
		return m.listPiesFn(ctx)
	}
	return nil, fmt.Errorf("not implemented")
}

// --- mockInstrumentService ---

type mockInstrumentService struct {
	searchFn func(ctx context.Context, query string, limit int) ([]models.Instrument, error)
}

func (m *mockInstrumentService) Search(ctx context.Context, query string, limit int) ([]models.Instrument, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query, limit)
	}
	return nil, nil
}

// --- mockNewsService ---

type mockNewsService struct {
	portfolioNewsFn func(ctx context.Context, tickers []string) ([]*models.NewsItem, error)
	macroNewsFn     func(ctx context.Context) ([]*models.NewsItem, error)
}

func (m *mockNewsService) PortfolioNews(ctx context.Context, tickers []string) ([]*models.NewsItem, error) {
	if m.portfolioNewsFn != nil {
		return m.portfolioNewsFn(ctx, tickers)
	}
	return nil, nil
}

func (m *mockNewsService) MacroNews(ctx context.Context) ([]*models.NewsItem, error) {
	if m.macroNewsFn != nil {
		return m.macroNewsFn(ctx)
	}
	return nil, nil
}
