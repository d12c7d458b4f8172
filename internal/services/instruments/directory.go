// Package instruments provides a cached directory of tradable instruments
// with ranked free-text lookup.
package instruments

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/halcyonfin/voxfolio/internal/common"
	"github.com/halcyonfin/voxfolio/internal/interfaces"
	"github.com/halcyonfin/voxfolio/internal/models"
)

// DefaultSearchLimit caps lookup results when the caller does not
const DefaultSearchLimit = 5

// Directory caches the tradable universe and serves ranked lookups.
// The cache is shared across tool calls and refreshed lazily: a fetch happens
// only when the snapshot is empty or older than the TTL, so lookups may serve
// data up to 10 minutes old. Refresh is mutex-guarded.
type Directory struct {
	broker interfaces.BrokerageClient
	logger *common.Logger
	ttl    time.Duration

	mu        sync.Mutex
	cached    []models.Instrument
	fetchedAt time.Time
}

// NewDirectory creates a new instrument directory
func NewDirectory(broker interfaces.BrokerageClient, logger *common.Logger) *Directory {
	return &Directory{
		broker: broker,
		logger: logger,
		ttl:    common.FreshnessInstruments,
	}
}

// instruments returns the cached snapshot, refetching when empty or stale
func (d *Directory) instruments(ctx context.Context) ([]models.Instrument, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.cached) > 0 && common.IsFresh(d.fetchedAt, d.ttl) {
		return d.cached, nil
	}

	fetched, err := d.broker.GetInstruments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get instruments: %w", err)
	}

	snapshot := make([]models.Instrument, len(fetched))
	for i, inst := range fetched {
		snapshot[i] = *inst
	}

	d.cached = snapshot
	d.fetchedAt = time.Now()
	d.logger.Debug().Int("instruments", len(snapshot)).Msg("Instrument cache refreshed")

	return d.cached, nil
}

// Search returns ranked instrument matches for a free-text query, at most
// limit. Ranking is bucketed: exact ticker match first, then ticker/name
// prefix matches, then substring matches, all case-insensitive. Within a
// bucket the original list order is preserved. No match is an empty result,
// never an error.
func (d *Directory) Search(ctx context.Context, query string, limit int) ([]models.Instrument, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	universe, err := d.instruments(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}

	var exact, prefix, substring []models.Instrument
	for _, inst := range universe {
		ticker := strings.ToLower(inst.Ticker)
		name := strings.ToLower(inst.Name)

		switch {
		case ticker == q:
			exact = append(exact, inst)
		case strings.HasPrefix(ticker, q) || strings.HasPrefix(name, q):
			prefix = append(prefix, inst)
		case strings.Contains(ticker, q) || strings.Contains(name, q):
			substring = append(substring, inst)
		}
	}

	results := make([]models.Instrument, 0, len(exact)+len(prefix)+len(substring))
	results = append(results, exact...)
	results = append(results, prefix...)
	results = append(results, substring...)

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Ensure Directory implements InstrumentService
var _ interfaces.InstrumentService = (*Directory)(nil)
