package history

import (
	"context"
	"fmt"

	"github.com/halcyonfin/voxfolio/internal/common"
	"github.com/halcyonfin/voxfolio/internal/interfaces"
	"github.com/halcyonfin/voxfolio/internal/models"
)

// DefaultOrderLimit bounds how many orders a trade analysis fetches
const DefaultOrderLimit = 50

// DefaultDividendLimit bounds how many dividend records a summary fetches
const DefaultDividendLimit = 20

// Service implements HistoryService
type Service struct {
	broker interfaces.BrokerageClient
	logger *common.Logger
}

// NewService creates a new history service
func NewService(broker interfaces.BrokerageClient, logger *common.Logger) *Service {
	return &Service{
		broker: broker,
		logger: logger,
	}
}

// AnalyzeTrades fetches up to limit historical orders and computes trade statistics
func (s *Service) AnalyzeTrades(ctx context.Context, limit int) (*models.TradeStats, error) {
	if limit <= 0 {
		limit = DefaultOrderLimit
	}

	orders, err := s.broker.GetOrderHistory(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get order history: %w", err)
	}

	stats := Analyze(orders)
	s.logger.Debug().
		Int("orders", stats.TotalOrders).
		Int("sells", stats.SellTrades).
		Float64("win_rate", stats.WinRatePct).
		Msg("Trade history analyzed")

	return stats, nil
}

// SummarizeDividends fetches up to limit dividend records and aggregates income
func (s *Service) SummarizeDividends(ctx context.Context, limit int) (*models.DividendSummary, error) {
	if limit <= 0 {
		limit = DefaultDividendLimit
	}

	payments, err := s.broker.GetDividends(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get dividends: %w", err)
	}

	return AggregateDividends(payments), nil
}

// ListPies returns the account's investment pies
func (s *Service) ListPies(ctx context.Context) ([]*models.Pie, error) {
	pies, err := s.broker.GetPies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get pies: %w", err)
	}
	return pies, nil
}

// Ensure Service implements HistoryService
var _ interfaces.HistoryService = (*Service)(nil)
