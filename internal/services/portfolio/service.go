// Package portfolio reads positions and account data from the brokerage
package portfolio

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/halcyonfin/voxfolio/internal/common"
	"github.com/halcyonfin/voxfolio/internal/interfaces"
	"github.com/halcyonfin/voxfolio/internal/models"
)

// concentrationTopN is how many positions the concentration figure covers
const concentrationTopN = 5

// Service implements PortfolioService
type Service struct {
	broker interfaces.BrokerageClient
	quotes interfaces.QuoteClient
	logger *common.Logger
}

// NewService creates a new portfolio service
func NewService(broker interfaces.BrokerageClient, quotes interfaces.QuoteClient, logger *common.Logger) *Service {
	return &Service{
		broker: broker,
		quotes: quotes,
		logger: logger,
	}
}

// GetPositions returns open positions with per-position unrealized P&L and
// P&L percent computed. The average price is clamped to 0.01 in the percent
// denominator so free shares don't divide by zero.
func (s *Service) GetPositions(ctx context.Context) ([]*models.Position, error) {
	positions, err := s.broker.GetPositions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get positions: %w", err)
	}

	for _, p := range positions {
		p.UnrealizedPnL = common.Round2(p.UnrealizedPnL)
		p.PnLPct = common.Round2((p.CurrentPrice - p.AvgPrice) / math.Max(p.AvgPrice, 0.01) * 100)
	}

	return positions, nil
}

// GetAccountSummary returns cash balance and total portfolio value
func (s *Service) GetAccountSummary(ctx context.Context) (*models.AccountSummary, error) {
	summary, err := s.broker.GetAccountSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get account summary: %w", err)
	}
	return summary, nil
}

// GetQuote returns the latest price and percent change for a symbol
func (s *Service) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	return s.quotes.GetQuote(ctx, symbol)
}

// Overview builds the spoken portfolio summary: one line per position with
// approximate P&L from a live quote, plus aggregate statistics. A failed
// quote lookup marks that line "price unavailable" and the overview carries on.
func (s *Service) Overview(ctx context.Context) (*models.PortfolioOverview, error) {
	positions, err := s.GetPositions(ctx)
	if err != nil {
		return nil, err
	}

	overview := &models.PortfolioOverview{
		Positions: len(positions),
	}

	values := make([]float64, 0, len(positions))
	for _, p := range positions {
		line := models.PositionLine{
			Ticker: p.Ticker,
			Shares: p.Shares,
		}

		quote, err := s.quotes.GetQuote(ctx, p.Ticker)
		if err != nil {
			s.logger.Warn().Err(err).Str("ticker", p.Ticker).Msg("Quote unavailable for position")
		} else {
			line.ApproxPnL = common.Round2((quote.Price - p.AvgPrice) * p.Shares)
			line.PriceAvailable = true
		}
		overview.Lines = append(overview.Lines, line)

		value := p.CurrentPrice * p.Shares
		values = append(values, value)
		overview.TotalValue += value
		overview.TotalUnrealizedPnL += p.UnrealizedPnL

		if overview.Best == nil || p.UnrealizedPnL > overview.Best.PnL {
			overview.Best = &models.Performer{Ticker: p.Ticker, PnL: p.UnrealizedPnL}
		}
		if overview.Worst == nil || p.UnrealizedPnL < overview.Worst.PnL {
			overview.Worst = &models.Performer{Ticker: p.Ticker, PnL: p.UnrealizedPnL}
		}
	}

	overview.TotalValue = common.Round2(overview.TotalValue)
	overview.TotalUnrealizedPnL = common.Round2(overview.TotalUnrealizedPnL)
	overview.TopConcentrationPct = concentration(values, overview.TotalValue)

	return overview, nil
}

// concentration returns the share of total portfolio value held by the top 5
// positions by market value, as a percentage. Zero when the total is zero.
func concentration(values []float64, total float64) float64 {
	if total <= 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	if len(sorted) > concentrationTopN {
		sorted = sorted[:concentrationTopN]
	}

	var top float64
	for _, v := range sorted {
		top += v
	}
	return common.Round1(top / total * 100)
}

// Ensure Service implements PortfolioService
var _ interfaces.PortfolioService = (*Service)(nil)
