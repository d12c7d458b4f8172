package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createGetVersionTool returns the get_version tool definition
func createGetVersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the Voxfolio server version and status. Use this to verify connectivity."),
	)
}

// createGetPriceTool returns the get_price tool definition
func createGetPriceTool() mcp.Tool {
	return mcp.NewTool("get_price",
		mcp.WithDescription("Get the latest price and percent change for a stock symbol."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol to quote (e.g., 'AAPL')"),
		),
	)
}

// createReadPortfolioTool returns the read_portfolio tool definition
func createReadPortfolioTool() mcp.Tool {
	return mcp.NewTool("read_portfolio",
		mcp.WithDescription("Get the user's current open positions with unrealized profit and loss (read-only)."),
	)
}

// createPortfolioOverviewTool returns the portfolio_overview tool definition
func createPortfolioOverviewTool() mcp.Tool {
	return mcp.NewTool("portfolio_overview",
		mcp.WithDescription("Summarize the portfolio in spoken-friendly lines: per-position approximate P&L from live quotes, totals, best and worst performer, and concentration of the largest positions."),
	)
}

// createAccountSummaryTool returns the account_summary tool definition
func createAccountSummaryTool() mcp.Tool {
	return mcp.NewTool("account_summary",
		mcp.WithDescription("Get the user's account cash balance and total portfolio value."),
	)
}

// createTradeHistoryTool returns the trade_history tool definition
func createTradeHistoryTool() mcp.Tool {
	return mcp.NewTool("trade_history",
		mcp.WithDescription("Analyze recent trade history: win rate, realized P&L, best and worst trades, most traded tickers, and average hold time."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum orders to analyze (default: 50)"),
		),
	)
}

// createDividendSummaryTool returns the dividend_summary tool definition
func createDividendSummaryTool() mcp.Tool {
	return mcp.NewTool("dividend_summary",
		mcp.WithDescription("Summarize dividend income: total received, income per ticker, and the top-paying holding."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum dividend records to include (default: 20)"),
		),
	)
}

// createFindInstrumentTool returns the find_instrument tool definition
func createFindInstrumentTool() mcp.Tool {
	return mcp.NewTool("find_instrument",
		mcp.WithDescription("Search tradable instruments by ticker or name. Exact ticker matches rank first, then prefix matches, then substring matches."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Free-text query: a ticker or part of a company name"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum results to return (default: 5)"),
		),
	)
}

// createListPiesTool returns the list_pies tool definition
func createListPiesTool() mcp.Tool {
	return mcp.NewTool("list_pies",
		mcp.WithDescription("List the user's investment pies with invested value, current value, and progress."),
	)
}

// createPortfolioNewsTool returns the portfolio_news tool definition
func createPortfolioNewsTool() mcp.Tool {
	return mcp.NewTool("portfolio_news",
		mcp.WithDescription("Get the latest news and sentiment for the user's current holdings."),
	)
}

// createMacroNewsTool returns the macro_news tool definition
func createMacroNewsTool() mcp.Tool {
	return mcp.NewTool("macro_news",
		mcp.WithDescription("Get a live macro news feed merged from financial sources and Hacker News."),
	)
}

// createSaveNoteTool returns the save_note tool definition
func createSaveNoteTool() mcp.Tool {
	return mcp.NewTool("save_note",
		mcp.WithDescription("Save a note to memory. Use this when the user asks you to remember something."),
		mcp.WithString("note",
			mcp.Required(),
			mcp.Description("The text to remember"),
		),
	)
}

// createGetNotesTool returns the get_notes tool definition
func createGetNotesTool() mcp.Tool {
	return mcp.NewTool("get_notes",
		mcp.WithDescription("Retrieve all saved notes. Use this when the user asks what you've remembered."),
	)
}

// createDeleteNotesTool returns the delete_notes tool definition
func createDeleteNotesTool() mcp.Tool {
	return mcp.NewTool("delete_notes",
		mcp.WithDescription("Delete all saved notes. Use this when the user asks you to forget their saved notes."),
	)
}
