package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/halcyonfin/voxfolio/internal/common"
	"github.com/halcyonfin/voxfolio/internal/models"
	"github.com/halcyonfin/voxfolio/internal/services/notes"
)

func testLogger() *common.Logger {
	return common.NewSilentLogger()
}

func callRequest(args map[string]interface{}) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = args
	return request
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("Result has no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("Expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func TestHandleGetVersion(t *testing.T) {
	handler := handleGetVersion()

	result, err := handler(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("Expected success, got error: %v", result.Content)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "Voxfolio MCP Server") {
		t.Error("Result should contain server name")
	}
	if !strings.Contains(text, "Status: OK") {
		t.Error("Result should contain status")
	}
}

func TestHandleGetPrice_Success(t *testing.T) {
	svc := &mockPortfolioService{
		getQuoteFn: func(ctx context.Context, symbol string) (*models.Quote, error) {
			return &models.Quote{Symbol: symbol, Price: 150.25, ChangePct: 1.23}, nil
		},
	}
	handler := handleGetPrice(svc, testLogger())

	result, err := handler(context.Background(), callRequest(map[string]interface{}{"symbol": "AAPL"}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("Expected success, got error: %v", result.Content)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "AAPL") {
		t.Error("Result should contain the symbol")
	}
	if !strings.Contains(text, "$150.25") {
		t.Error("Result should contain the price")
	}
	if !strings.Contains(text, "+1.2%") {
		t.Error("Result should contain the percent change")
	}
}

func TestHandleGetPrice_MissingSymbol(t *testing.T) {
	handler := handleGetPrice(&mockPortfolioService{}, testLogger())

	result, err := handler(context.Background(), callRequest(map[string]interface{}{}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.IsError {
		t.Error("Expected error result for missing symbol")
	}
}

func TestHandleGetPrice_QuoteFailure(t *testing.T) {
	svc := &mockPortfolioService{
		getQuoteFn: func(ctx context.Context, symbol string) (*models.Quote, error) {
			return nil, errors.New("upstream down")
		},
	}
	handler := handleGetPrice(svc, testLogger())

	result, err := handler(context.Background(), callRequest(map[string]interface{}{"symbol": "AAPL"}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.IsError {
		t.Error("Expected error result when the quote lookup fails")
	}
	if !strings.Contains(resultText(t, result), "isn't available right now") {
		t.Error("Error message should be spoken-friendly")
	}
}

func TestHandleReadPortfolio_Success(t *testing.T) {
	svc := &mockPortfolioService{
		getPositionsFn: func(ctx context.Context) ([]*models.Position, error) {
			return []*models.Position{
				{Ticker: "AAPL", Shares: 10, AvgPrice: 100, CurrentPrice: 150, UnrealizedPnL: 500, PnLPct: 50},
			}, nil
		},
	}
	handler := handleReadPortfolio(svc, testLogger())

	result, err := handler(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "You hold 1 position") {
		t.Error("Result should state the position count")
	}
	if !strings.Contains(text, "AAPL") {
		t.Error("Result should contain the ticker")
	}
	if !strings.Contains(text, "+$500.00") {
		t.Error("Result should contain the unrealized P&L")
	}
}

func TestHandleReadPortfolio_Empty(t *testing.T) {
	handler := handleReadPortfolio(&mockPortfolioService{}, testLogger())

	result, err := handler(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(resultText(t, result), "don't have any open positions") {
		t.Error("Empty portfolio should read as a sentence")
	}
}

func TestHandlePortfolioOverview_Success(t *testing.T) {
	svc := &mockPortfolioService{
		overviewFn: func(ctx context.Context) (*models.PortfolioOverview, error) {
			return &models.PortfolioOverview{
				Positions: 2,
				Lines: []models.PositionLine{
					{Ticker: "AAPL", Shares: 10, ApproxPnL: 550, PriceAvailable: true},
					{Ticker: "OBSCURE", Shares: 5},
				},
				TotalUnrealizedPnL:  505,
				Best:                &models.Performer{Ticker: "AAPL", PnL: 500},
				Worst:               &models.Performer{Ticker: "OBSCURE", PnL: 5},
				TopConcentrationPct: 100,
			}, nil
		},
	}
	handler := handlePortfolioOverview(svc, testLogger())

	result, err := handler(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "P/L approx +$550.00") {
		t.Error("Result should contain the approximate P&L line")
	}
	if !strings.Contains(text, "price unavailable") {
		t.Error("Result should degrade the line without a quote")
	}
	if !strings.Contains(text, "Best performer: AAPL") {
		t.Error("Result should name the best performer")
	}
	if !strings.Contains(text, "100.0% of the portfolio") {
		t.Error("Result should state concentration")
	}
}

func TestHandleAccountSummary_Success(t *testing.T) {
	svc := &mockPortfolioService{
		getAccountSummaryFn: func(ctx context.Context) (*models.AccountSummary, error) {
			return &models.AccountSummary{Cash: 1000.5, Invested: 5000, Total: 6000.5, Result: 250, Currency: "USD"}, nil
		},
	}
	handler := handleAccountSummary(svc, testLogger())

	result, err := handler(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "$1,000.50 in free cash") {
		t.Error("Result should contain the cash balance")
	}
	if !strings.Contains(text, "USD") {
		t.Error("Result should contain the currency")
	}
}

func TestHandleTradeHistory_PassesLimit(t *testing.T) {
	var gotLimit int
	svc := &mockHistoryService{
		analyzeTradesFn: func(ctx context.Context, limit int) (*models.TradeStats, error) {
			gotLimit = limit
			return &models.TradeStats{}, nil
		},
	}
	handler := handleTradeHistory(svc, testLogger())

	_, err := handler(context.Background(), callRequest(map[string]interface{}{"limit": 25}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if gotLimit != 25 {
		t.Errorf("Expected limit 25, got %d", gotLimit)
	}
}

func TestHandleTradeHistory_DefaultLimit(t *testing.T) {
	var gotLimit int
	svc := &mockHistoryService{
		analyzeTradesFn: func(ctx context.Context, limit int) (*models.TradeStats, error) {
			gotLimit = limit
			return &models.TradeStats{}, nil
		},
	}
	handler := handleTradeHistory(svc, testLogger())

	_, err := handler(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if gotLimit != 50 {
		t.Errorf("Expected default limit 50, got %d", gotLimit)
	}
}

func TestHandleTradeHistory_ServiceFailure(t *testing.T) {
	svc := &mockHistoryService{
		analyzeTradesFn: func(ctx context.Context, limit int) (*models.TradeStats, error) {
			return nil, errors.New("broker down")
		},
	}
	handler := handleTradeHistory(svc, testLogger())

	result, err := handler(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.IsError {
		t.Error("Expected error result when analysis fails")
	}
}

func TestHandleDividendSummary_Success(t *testing.T) {
	svc := &mockHistoryService{
		summarizeDividendsFn: func(ctx context.Context, limit int) (*models.DividendSummary, error) {
			return &models.DividendSummary{
				TotalIncome: 35,
				Payments:    2,
				TopPayer:    "AAPL",
				ByTicker: []models.TickerIncome{
					{Ticker: "AAPL", Amount: 25},
					{Ticker: "MSFT", Amount: 10},
				},
			}, nil
		},
	}
	handler := handleDividendSummary(svc, testLogger())

	result, err := handler(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "$35.00 in dividends") {
		t.Error("Result should contain total income")
	}
	if !strings.Contains(text, "Top payer: AAPL") {
		t.Error("Result should name the top payer")
	}
}

func TestHandleFindInstrument_Success(t *testing.T) {
	svc := &mockInstrumentService{
		searchFn: func(ctx context.Context, query string, limit int) ([]models.Instrument, error) {
			return []models.Instrument{
				{Ticker: "AAPL_US_EQ", Name: "Apple Inc", Exchange: "NASDAQ", Type: "STOCK"},
			}, nil
		},
	}
	handler := handleFindInstrument(svc, testLogger())

	result, err := handler(context.Background(), callRequest(map[string]interface{}{"query": "apple"}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "Found 1 match for 'apple'") {
		t.Error("Result should state the match count and query")
	}
	if !strings.Contains(text, "AAPL_US_EQ — Apple Inc") {
		t.Error("Result should contain the instrument")
	}
}

func TestHandleFindInstrument_MissingQuery(t *testing.T) {
	handler := handleFindInstrument(&mockInstrumentService{}, testLogger())

	result, err := handler(context.Background(), callRequest(map[string]interface{}{}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.IsError {
		t.Error("Expected error result for missing query")
	}
}

func TestHandleFindInstrument_NoMatches(t *testing.T) {
	handler := handleFindInstrument(&mockInstrumentService{}, testLogger())

	result, err := handler(context.Background(), callRequest(map[string]interface{}{"query": "zzzz"}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("No matches should not be an error")
	}
	if !strings.Contains(resultText(t, result), "No instruments matched 'zzzz'") {
		t.Error("Result should state that nothing matched")
	}
}

func TestHandlePortfolioNews_UsesHoldings(t *testing.T) {
	portfolioSvc := &mockPortfolioService{
		getPositionsFn: func(ctx context.Context) ([]*models.Position, error) {
			return []*models.Position{{Ticker: "AAPL"}, {Ticker: "MSFT"}}, nil
		},
	}
	var gotTickers []string
	newsSvc := &mockNewsService{
		portfolioNewsFn: func(ctx context.Context, tickers []string) ([]*models.NewsItem, error) {
			gotTickers = tickers
			return []*models.NewsItem{
				{Headline: "Apple beats estimates", Source: "Reuters", Sentiment: "Bullish", Summary: "Strong quarter."},
			}, nil
		},
	}
	handler := handlePortfolioNews(portfolioSvc, newsSvc, testLogger())

	result, err := handler(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(gotTickers) != 2 || gotTickers[0] != "AAPL" || gotTickers[1] != "MSFT" {
		t.Errorf("Expected holdings tickers, got %v", gotTickers)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "Apple beats estimates [Reuters]") {
		t.Error("Result should contain the headline and source")
	}
	if !strings.Contains(text, "Sentiment: Bullish") {
		t.Error("Result should contain the sentiment")
	}
}

func TestHandlePortfolioNews_NoNews(t *testing.T) {
	portfolioSvc := &mockPortfolioService{
		getPositionsFn: func(ctx context.Context) ([]*models.Position, error) {
			return []*models.Position{{Ticker: "AAPL"}}, nil
		},
	}
	handler := handlePortfolioNews(portfolioSvc, &mockNewsService{}, testLogger())

	result, err := handler(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("Empty news should not be an error")
	}
	if !strings.Contains(resultText(t, result), "No recent news found") {
		t.Error("Result should state that no news was found")
	}
}

func TestHandlePortfolioNews_PositionsFailure(t *testing.T) {
	portfolioSvc := &mockPortfolioService{
		getPositionsFn: func(ctx context.Context) ([]*models.Position, error) {
			return nil, errors.New("broker down")
		},
	}
	handler := handlePortfolioNews(portfolioSvc, &mockNewsService{}, testLogger())

	result, err := handler(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.IsError {
		t.Error("Expected error result when holdings are unavailable")
	}
}

func TestHandleMacroNews_Success(t *testing.T) {
	newsSvc := &mockNewsService{
		macroNewsFn: func(ctx context.Context) ([]*models.NewsItem, error) {
			return []*models.NewsItem{
				{Headline: "Fed signals rate cut", Source: "Hacker News"},
			}, nil
		},
	}
	handler := handleMacroNews(newsSvc, testLogger())

	result, err := handler(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(resultText(t, result), "Fed signals rate cut [Hacker News]") {
		t.Error("Result should contain the merged headline")
	}
}

func TestHandleMacroNews_Empty(t *testing.T) {
	handler := handleMacroNews(&mockNewsService{}, testLogger())

	result, err := handler(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(resultText(t, result), "No macro news available") {
		t.Error("Result should state that no news is available")
	}
}

func TestNoteHandlers_FullCycle(t *testing.T) {
	store := notes.NewStore()

	save := handleSaveNote(store)
	get := handleGetNotes(store)
	del := handleDeleteNotes(store)

	result, err := save(context.Background(), callRequest(map[string]interface{}{"note": "buy the dip"}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(resultText(t, result), "Saved note #1: buy the dip") {
		t.Error("Save should echo the note with its id")
	}

	result, err = get(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(resultText(t, result), "#1: buy the dip") {
		t.Error("Get should list the saved note")
	}

	result, err = del(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(resultText(t, result), "have been deleted") {
		t.Error("Delete should confirm removal")
	}

	result, err = get(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(resultText(t, result), "No notes saved yet") {
		t.Error("Get after delete should read empty")
	}
}

func TestHandleSaveNote_MissingText(t *testing.T) {
	handler := handleSaveNote(notes.NewStore())

	result, err := handler(context.Background(), callRequest(map[string]interface{}{}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.IsError {
		t.Error("Expected error result for missing note text")
	}
}
