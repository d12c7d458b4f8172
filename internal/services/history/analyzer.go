// Package history provides trade-history and dividend analytics
package history

import (
	"math"
	"sort"
	"time"

	"github.com/halcyonfin/voxfolio/internal/common"
	"github.com/halcyonfin/voxfolio/internal/models"
)

// topTickerCount caps the most-traded list
const topTickerCount = 5

// Analyze computes trade statistics over a sequence of historical orders.
// Input order is preserved for every tie-break: first encountered wins.
// Never returns nil; callers distinguish "no history" via TotalOrders and
// "no filled orders" via FilledOrders.
func Analyze(orders []*models.Order) *models.TradeStats {
	stats := &models.TradeStats{
		TotalOrders: len(orders),
	}

	var filled []*models.Order
	for _, o := range orders {
		if o.Executed() {
			filled = append(filled, o)
		}
	}
	stats.FilledOrders = len(filled)
	if len(filled) == 0 {
		return stats
	}

	// Realized P&L comes from sells only; buys open positions and realize nothing.
	var totalPnL float64
	var best, worst *models.TradeOutcome
	for _, o := range filled {
		if !o.IsSell() {
			continue
		}

		pnl := (o.FillPrice - o.AveragePrice) * math.Abs(o.Quantity)
		stats.SellTrades++
		totalPnL += pnl
		if pnl >= 0 {
			stats.Wins++
		} else {
			stats.Losses++
		}

		if best == nil || pnl > best.PnL {
			best = &models.TradeOutcome{Ticker: o.Ticker, PnL: pnl, Price: o.FillPrice}
		}
		if worst == nil || pnl < worst.PnL {
			worst = &models.TradeOutcome{Ticker: o.Ticker, PnL: pnl, Price: o.FillPrice}
		}
	}

	if stats.SellTrades > 0 {
		stats.WinRatePct = common.Round1(float64(stats.Wins) / float64(stats.Wins+stats.Losses) * 100)
		stats.AvgPnLPerTrade = common.Round2(totalPnL / float64(stats.SellTrades))
	}
	stats.TotalRealizedPnL = common.Round2(totalPnL)

	if best != nil {
		best.PnL = common.Round2(best.PnL)
		best.Price = common.Round2(best.Price)
		stats.BestTrade = best
	}
	if worst != nil {
		worst.PnL = common.Round2(worst.PnL)
		worst.Price = common.Round2(worst.Price)
		stats.WorstTrade = worst
	}

	stats.TopTickers = topTickers(filled)

	if avg, ok := averageHoldDays(filled); ok {
		stats.AvgHoldDays = avg
		stats.HasHoldData = true
	}

	return stats
}

// topTickers counts ticker frequency across all filled orders (buys included)
// and returns the top 5 by count, ties broken by first-seen order.
func topTickers(filled []*models.Order) []models.TickerCount {
	index := make(map[string]int)
	var counts []models.TickerCount
	for _, o := range filled {
		if i, ok := index[o.Ticker]; ok {
			counts[i].Count++
			continue
		}
		index[o.Ticker] = len(counts)
		counts = append(counts, models.TickerCount{Ticker: o.Ticker, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if len(counts) > topTickerCount {
		counts = counts[:topTickerCount]
	}
	return counts
}

// averageHoldDays averages execution minus creation time across orders whose
// timestamps both parse. Malformed timestamps skip the order, never fail the
// analysis. ok is false when no order had a valid pair.
func averageHoldDays(orders []*models.Order) (float64, bool) {
	var totalDays float64
	var valid int
	for _, o := range orders {
		created, err := time.Parse(time.RFC3339, o.DateCreated)
		if err != nil {
			continue
		}
		executed, err := time.Parse(time.RFC3339, o.DateExecuted)
		if err != nil {
			continue
		}
		totalDays += executed.Sub(created).Hours() / 24
		valid++
	}
	if valid == 0 {
		return 0, false
	}
	return common.Round1(totalDays / float64(valid)), true
}
