package main

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/halcyonfin/voxfolio/internal/common"
	"github.com/halcyonfin/voxfolio/internal/interfaces"
	"github.com/halcyonfin/voxfolio/internal/services/history"
	"github.com/halcyonfin/voxfolio/internal/services/instruments"
)

// handleGetVersion implements the get_version tool
func handleGetVersion() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := fmt.Sprintf("Voxfolio MCP Server\nVersion: %s\nBuild: %s\nCommit: %s\nStatus: OK",
			common.GetVersion(), common.GetBuild(), common.GetGitCommit())
		return textResult(result), nil
	}
}

// handleGetPrice implements the get_price tool
func handleGetPrice(portfolioService interfaces.PortfolioService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, err := request.RequireString("symbol")
		if err != nil || symbol == "" {
			return errorResult("Error: symbol parameter is required"), nil
		}

		quote, err := portfolioService.GetQuote(ctx, symbol)
		if err != nil {
			logger.Error().Err(err).Str("symbol", symbol).Msg("Quote lookup failed")
			return errorResult(fmt.Sprintf("The price for %s isn't available right now.", symbol)), nil
		}

		return textResult(formatQuote(quote)), nil
	}
}

// handleReadPortfolio implements the read_portfolio tool
func handleReadPortfolio(portfolioService interfaces.PortfolioService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		positions, err := portfolioService.GetPositions(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("Read portfolio failed")
			return errorResult("Your portfolio isn't available right now."), nil
		}

		return textResult(formatPositions(positions)), nil
	}
}

// handlePortfolioOverview implements the portfolio_overview tool
func handlePortfolioOverview(portfolioService interfaces.PortfolioService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		overview, err := portfolioService.Overview(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("Portfolio overview failed")
			return errorResult("Your portfolio overview isn't available right now."), nil
		}

		return textResult(formatOverview(overview)), nil
	}
}

// handleAccountSummary implements the account_summary tool
func handleAccountSummary(portfolioService interfaces.PortfolioService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		summary, err := portfolioService.GetAccountSummary(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("Account summary failed")
			return errorResult("Your account summary isn't available right now."), nil
		}

		return textResult(formatAccountSummary(summary)), nil
	}
}

// handleTradeHistory implements the trade_history tool
func handleTradeHistory(historyService interfaces.HistoryService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit := request.GetInt("limit", history.DefaultOrderLimit)

		stats, err := historyService.AnalyzeTrades(ctx, limit)
		if err != nil {
			logger.Error().Err(err).Msg("Trade history analysis failed")
			return errorResult("Your trade history isn't available right now."), nil
		}

		return textResult(formatTradeStats(stats)), nil
	}
}

// handleDividendSummary implements the dividend_summary tool
func handleDividendSummary(historyService interfaces.HistoryService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit := request.GetInt("limit", history.DefaultDividendLimit)

		summary, err := historyService.SummarizeDividends(ctx, limit)
		if err != nil {
			logger.Error().Err(err).Msg("Dividend summary failed")
			return errorResult("Your dividend history isn't available right now."), nil
		}

		return textResult(formatDividends(summary)), nil
	}
}

// handleFindInstrument implements the find_instrument tool
func handleFindInstrument(instrumentService interfaces.InstrumentService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil || query == "" {
			return errorResult("Error: query parameter is required"), nil
		}

		limit := request.GetInt("limit", instruments.DefaultSearchLimit)

		matches, err := instrumentService.Search(ctx, query, limit)
		if err != nil {
			logger.Error().Err(err).Str("query", query).Msg("Instrument search failed")
			return errorResult("Instrument search isn't available right now."), nil
		}

		return textResult(formatInstruments(query, matches)), nil
	}
}

// handleListPies implements the list_pies tool
func handleListPies(historyService interfaces.HistoryService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		pies, err := historyService.ListPies(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("List pies failed")
			return errorResult("Your pies aren't available right now."), nil
		}

		return textResult(formatPies(pies)), nil
	}
}

// handlePortfolioNews implements the portfolio_news tool.
// Tickers come from the current positions, matching what the user holds today.
func handlePortfolioNews(portfolioService interfaces.PortfolioService, newsService interfaces.NewsService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		positions, err := portfolioService.GetPositions(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("Portfolio news: positions unavailable")
			return errorResult("Your holdings aren't available right now, so I can't fetch their news."), nil
		}

		tickers := make([]string, len(positions))
		for i, p := range positions {
			tickers[i] = p.Ticker
		}

		articles, err := newsService.PortfolioNews(ctx, tickers)
		if err != nil {
			logger.Error().Err(err).Msg("Portfolio news failed")
			return errorResult("News for your holdings isn't available right now."), nil
		}

		if len(articles) == 0 {
			return textResult("No recent news found for your holdings."), nil
		}
		return textResult(formatNews(articles)), nil
	}
}

// handleMacroNews implements the macro_news tool
func handleMacroNews(newsService interfaces.NewsService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		items, err := newsService.MacroNews(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("Macro news failed")
			return errorResult("Macro news isn't available right now."), nil
		}

		if len(items) == 0 {
			return textResult("No macro news available right now."), nil
		}
		return textResult(formatNews(items)), nil
	}
}

// handleSaveNote implements the save_note tool
func handleSaveNote(noteService interfaces.NoteService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("note")
		if err != nil || text == "" {
			return errorResult("Error: note parameter is required"), nil
		}

		note := noteService.Save(text)
		return textResult(fmt.Sprintf("Saved note #%d: %s", note.ID, note.Text)), nil
	}
}

// handleGetNotes implements the get_notes tool
func handleGetNotes(noteService interfaces.NoteService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return textResult(formatNotes(noteService.List())), nil
	}
}

// handleDeleteNotes implements the delete_notes tool
func handleDeleteNotes(noteService interfaces.NoteService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		noteService.Clear()
		return textResult("All saved notes have been deleted."), nil
	}
}

// Helper functions

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}
