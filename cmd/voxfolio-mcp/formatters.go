package main

import (
	"fmt"
	"strings"

	"github.com/halcyonfin/voxfolio/internal/common"
	"github.com/halcyonfin/voxfolio/internal/models"
)

// Delegate to common format helpers
func formatMoney(v float64) string       { return common.FormatMoney(v) }
func formatSignedMoney(v float64) string { return common.FormatSignedMoney(v) }
func formatSignedPct(v float64) string   { return common.FormatSignedPct(v) }

// formatQuote renders a single spoken price line
func formatQuote(q *models.Quote) string {
	return fmt.Sprintf("%s is trading at %s (%s).", q.Symbol, formatMoney(q.Price), formatSignedPct(q.ChangePct))
}

// formatPositions renders the open positions as spoken lines
func formatPositions(positions []*models.Position) string {
	if len(positions) == 0 {
		return "You don't have any open positions."
	}

	var sb strings.Builder
	plural := "positions"
	if len(positions) == 1 {
		plural = "position"
	}
	sb.WriteString(fmt.Sprintf("You hold %d %s:\n", len(positions), plural))

	for _, p := range positions {
		sb.WriteString(fmt.Sprintf("%s: %g shares, average %s, now %s (%s, %s)\n",
			p.Ticker, p.Shares, formatMoney(p.AvgPrice), formatMoney(p.CurrentPrice),
			formatSignedMoney(p.UnrealizedPnL), formatSignedPct(p.PnLPct)))
	}

	return strings.TrimRight(sb.String(), "\n")
}

// formatOverview renders the portfolio overview: per-position approximate P&L
// lines followed by aggregate statistics.
func formatOverview(o *models.PortfolioOverview) string {
	if o.Positions == 0 {
		return "You don't have any open positions."
	}

	var sb strings.Builder
	for _, line := range o.Lines {
		if line.PriceAvailable {
			sb.WriteString(fmt.Sprintf("%s: %g shares, P/L approx %s\n", line.Ticker, line.Shares, formatSignedMoney(line.ApproxPnL)))
		} else {
			sb.WriteString(fmt.Sprintf("%s: %g shares, price unavailable\n", line.Ticker, line.Shares))
		}
	}

	sb.WriteString(fmt.Sprintf("\nTotal unrealized P&L: %s.", formatSignedMoney(o.TotalUnrealizedPnL)))
	if o.Best != nil {
		sb.WriteString(fmt.Sprintf(" Best performer: %s (%s).", o.Best.Ticker, formatSignedMoney(o.Best.PnL)))
	}
	if o.Worst != nil {
		sb.WriteString(fmt.Sprintf(" Worst performer: %s (%s).", o.Worst.Ticker, formatSignedMoney(o.Worst.PnL)))
	}
	if o.TopConcentrationPct > 0 {
		sb.WriteString(fmt.Sprintf(" Your largest positions make up %.1f%% of the portfolio.", o.TopConcentrationPct))
	}

	return sb.String()
}

// formatAccountSummary renders the account cash and value line
func formatAccountSummary(s *models.AccountSummary) string {
	currency := s.Currency
	if currency == "" {
		currency = "your account currency"
	}
	return fmt.Sprintf("You have %s in free cash and %s invested, for a total account value of %s (%s). Amounts are in %s.",
		formatMoney(s.Cash), formatMoney(s.Invested), formatMoney(s.Total), formatSignedMoney(s.Result), currency)
}

// formatTradeStats renders trade statistics as spoken sentences. The two
// empty cases read differently: no history at all versus no filled orders.
func formatTradeStats(stats *models.TradeStats) string {
	if stats.TotalOrders == 0 {
		return "You have no trade history yet."
	}
	if stats.FilledOrders == 0 {
		return fmt.Sprintf("None of your %d recent orders have been filled, so there's nothing to analyze yet.", stats.TotalOrders)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Analyzed %d filled orders", stats.FilledOrders))
	if stats.SellTrades > 0 {
		sb.WriteString(fmt.Sprintf(", including %d sell trades.", stats.SellTrades))
		sb.WriteString(fmt.Sprintf(" Win rate: %.1f%% (%d wins, %d losses).", stats.WinRatePct, stats.Wins, stats.Losses))
		sb.WriteString(fmt.Sprintf(" Total realized P&L: %s, averaging %s per trade.",
			formatSignedMoney(stats.TotalRealizedPnL), formatSignedMoney(stats.AvgPnLPerTrade)))
		if stats.BestTrade != nil {
			sb.WriteString(fmt.Sprintf(" Best trade: %s %s (sold at %s).",
				stats.BestTrade.Ticker, formatSignedMoney(stats.BestTrade.PnL), formatMoney(stats.BestTrade.Price)))
		}
		if stats.WorstTrade != nil {
			sb.WriteString(fmt.Sprintf(" Worst trade: %s %s (sold at %s).",
				stats.WorstTrade.Ticker, formatSignedMoney(stats.WorstTrade.PnL), formatMoney(stats.WorstTrade.Price)))
		}
	} else {
		sb.WriteString(", all buys — no realized P&L yet.")
	}

	if len(stats.TopTickers) > 0 {
		parts := make([]string, len(stats.TopTickers))
		for i, tc := range stats.TopTickers {
			parts[i] = fmt.Sprintf("%s (%d)", tc.Ticker, tc.Count)
		}
		sb.WriteString(" Most traded: " + strings.Join(parts, ", ") + ".")
	}

	if stats.HasHoldData {
		sb.WriteString(fmt.Sprintf(" Average hold time: %.1f days.", stats.AvgHoldDays))
	}

	return sb.String()
}

// formatDividends renders the dividend summary
func formatDividends(summary *models.DividendSummary) string {
	if summary.Payments == 0 {
		return "You haven't received any dividends yet."
	}

	var sb strings.Builder
	plural := "payments"
	if summary.Payments == 1 {
		plural = "payment"
	}
	sb.WriteString(fmt.Sprintf("You've received %s in dividends across %d %s.",
		formatMoney(summary.TotalIncome), summary.Payments, plural))

	if summary.TopPayer != "" {
		sb.WriteString(fmt.Sprintf(" Top payer: %s.", summary.TopPayer))
	}

	if len(summary.ByTicker) > 0 {
		sb.WriteString("\nBy ticker:\n")
		for _, ti := range summary.ByTicker {
			sb.WriteString(fmt.Sprintf("%s: %s\n", ti.Ticker, formatMoney(ti.Amount)))
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

// formatInstruments renders ranked instrument matches
func formatInstruments(query string, matches []models.Instrument) string {
	if len(matches) == 0 {
		return fmt.Sprintf("No instruments matched '%s'.", query)
	}

	var sb strings.Builder
	plural := "matches"
	if len(matches) == 1 {
		plural = "match"
	}
	sb.WriteString(fmt.Sprintf("Found %d %s for '%s':\n", len(matches), plural, query))
	for _, inst := range matches {
		detail := inst.Exchange
		if inst.Type != "" {
			if detail != "" {
				detail += ", "
			}
			detail += inst.Type
		}
		if detail != "" {
			sb.WriteString(fmt.Sprintf("%s — %s (%s)\n", inst.Ticker, inst.Name, detail))
		} else {
			sb.WriteString(fmt.Sprintf("%s — %s\n", inst.Ticker, inst.Name))
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

// formatPies renders the investment pies
func formatPies(pies []*models.Pie) string {
	if len(pies) == 0 {
		return "You don't have any pies set up."
	}

	var sb strings.Builder
	plural := "pies"
	if len(pies) == 1 {
		plural = "pie"
	}
	sb.WriteString(fmt.Sprintf("You have %d %s:\n", len(pies), plural))
	for _, p := range pies {
		sb.WriteString(fmt.Sprintf("Pie %d: invested %s, now %s (%s), %.0f%% to target",
			p.ID, formatMoney(p.InvestedValue), formatMoney(p.CurrentValue),
			formatSignedMoney(p.Result), p.Progress*100))
		if p.Status != "" {
			sb.WriteString(fmt.Sprintf(", status %s", p.Status))
		}
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

// formatNews renders news items as short spoken blocks
func formatNews(items []*models.NewsItem) string {
	blocks := make([]string, 0, len(items))
	for _, item := range items {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("%s [%s]", item.Headline, item.Source))
		if item.Sentiment != "" {
			sb.WriteString(" – Sentiment: " + item.Sentiment)
		}
		if item.Summary != "" {
			sb.WriteString("\n" + item.Summary)
		}
		blocks = append(blocks, sb.String())
	}
	return strings.Join(blocks, "\n\n")
}

// formatNotes renders saved notes
func formatNotes(notes []models.Note) string {
	if len(notes) == 0 {
		return "No notes saved yet."
	}

	lines := make([]string, len(notes))
	for i, n := range notes {
		lines[i] = fmt.Sprintf("#%d: %s", n.ID, n.Text)
	}
	return strings.Join(lines, "\n")
}
