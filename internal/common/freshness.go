// Package common provides shared utilities for Voxfolio
package common

import "time"

// Freshness TTLs for cached data
const (
	// FreshnessInstruments bounds the tradable-instrument snapshot: lookups
	// may serve data up to 10 minutes old.
	FreshnessInstruments = 600 * time.Second
)

// IsFresh returns true if the given timestamp is within the TTL
func IsFresh(updated time.Time, ttl time.Duration) bool {
	if updated.IsZero() {
		return false
	}
	return time.Since(updated) < ttl
}
