package history

import (
	"sort"

	"github.com/halcyonfin/voxfolio/internal/common"
	"github.com/halcyonfin/voxfolio/internal/models"
)

// AggregateDividends sums dividend income in total and per ticker. ByTicker
// is sorted descending by amount with ties keeping first-seen order, and the
// top payer is its head. Empty input yields a zero summary, not an error.
func AggregateDividends(payments []*models.DividendPayment) *models.DividendSummary {
	summary := &models.DividendSummary{
		Payments: len(payments),
	}
	if len(payments) == 0 {
		return summary
	}

	index := make(map[string]int)
	var byTicker []models.TickerIncome
	var total float64
	for _, p := range payments {
		total += p.Amount
		if i, ok := index[p.Ticker]; ok {
			byTicker[i].Amount += p.Amount
			continue
		}
		index[p.Ticker] = len(byTicker)
		byTicker = append(byTicker, models.TickerIncome{Ticker: p.Ticker, Amount: p.Amount})
	}

	sort.SliceStable(byTicker, func(i, j int) bool {
		return byTicker[i].Amount > byTicker[j].Amount
	})

	for i := range byTicker {
		byTicker[i].Amount = common.Round2(byTicker[i].Amount)
	}

	summary.TotalIncome = common.Round2(total)
	summary.ByTicker = byTicker
	summary.TopPayer = byTicker[0].Ticker

	return summary
}
