package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DedupCache records recent notification firings per (user, geofence) pair and
// suppresses repeats inside the configured cooldown window. Entries expire on
// their own after the cooldown; storage is bounded by time, not size.
type DedupCache interface {
	// ShouldSuppress reports whether a notification for the pair fired less
	// than one cooldown ago, measured against now.
	ShouldSuppress(ctx context.Context, userID, geofenceID uuid.UUID, now time.Time) (bool, error)

	// RecordFired stores now as the pair's last-fired time. Calling it twice in
	// quick succession only moves the timestamp forward; it never duplicates entries.
	RecordFired(ctx context.Context, userID, geofenceID uuid.UUID, now time.Time) error

	// Close releases any resources held by the cache.
	Close() error
}
