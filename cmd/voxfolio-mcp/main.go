package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/halcyonfin/voxfolio/internal/app"
	"github.com/halcyonfin/voxfolio/internal/common"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: voxfolio.toml next to the binary)")
	flag.Parse()

	a, err := app.NewApp(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "voxfolio: %v\n", err)
		os.Exit(1)
	}

	s := server.NewMCPServer(
		"voxfolio",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)
	registerTools(s, a)

	a.Logger.Info().Str("version", common.GetFullVersion()).Msg("Serving MCP over stdio")

	if err := server.ServeStdio(s); err != nil {
		a.Logger.Error().Err(err).Msg("MCP server stopped")
		os.Exit(1)
	}
}

// registerTools registers every tool on the MCP server
func registerTools(s *server.MCPServer, a *app.App) {
	logger := a.Logger

	s.AddTool(createGetVersionTool(), handleGetVersion())
	s.AddTool(createGetPriceTool(), handleGetPrice(a.PortfolioService, logger))
	s.AddTool(createReadPortfolioTool(), handleReadPortfolio(a.PortfolioService, logger))
	s.AddTool(createPortfolioOverviewTool(), handlePortfolioOverview(a.PortfolioService, logger))
	s.AddTool(createAccountSummaryTool(), handleAccountSummary(a.PortfolioService, logger))
	s.AddTool(createTradeHistoryTool(), handleTradeHistory(a.HistoryService, logger))
	s.AddTool(createDividendSummaryTool(), handleDividendSummary(a.HistoryService, logger))
	s.AddTool(createFindInstrumentTool(), handleFindInstrument(a.InstrumentService, logger))
	s.AddTool(createListPiesTool(), handleListPies(a.HistoryService, logger))
	s.AddTool(createPortfolioNewsTool(), handlePortfolioNews(a.PortfolioService, a.NewsService, logger))
	s.AddTool(createMacroNewsTool(), handleMacroNews(a.NewsService, logger))
	s.AddTool(createSaveNoteTool(), handleSaveNote(a.Notes))
	s.AddTool(createGetNotesTool(), handleGetNotes(a.Notes))
	s.AddTool(createDeleteNotesTool(), handleDeleteNotes(a.Notes))
}
