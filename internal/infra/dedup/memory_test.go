package dedup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SuppressWithinWindow(t *testing.T) {
	t.Parallel()

	cache := NewMemoryCache(4*time.Hour, 0)
	defer cache.Close()

	ctx := context.Background()
	userID := uuid.New()
	geofenceID := uuid.New()
	firedAt := time.Now()

	suppressed, err := cache.ShouldSuppress(ctx, userID, geofenceID, firedAt)
	require.NoError(t, err)
	assert.False(t, suppressed)

	require.NoError(t, cache.RecordFired(ctx, userID, geofenceID, firedAt))

	suppressed, err = cache.ShouldSuppress(ctx, userID, geofenceID, firedAt.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, suppressed)
}

func TestMemoryCache_EligibleAfterWindow(t *testing.T) {
	t.Parallel()

	cache := NewMemoryCache(4*time.Hour, 0)
	defer cache.Close()

	ctx := context.Background()
	userID := uuid.New()
	geofenceID := uuid.New()
	firedAt := time.Now()

	require.NoError(t, cache.RecordFired(ctx, userID, geofenceID, firedAt))

	// Exactly at expiry the pair is eligible again.
	suppressed, err := cache.ShouldSuppress(ctx, userID, geofenceID, firedAt.Add(4*time.Hour))
	require.NoError(t, err)
	assert.False(t, suppressed)
}

func TestMemoryCache_PairsAreIndependent(t *testing.T) {
	t.Parallel()

	cache := NewMemoryCache(4*time.Hour, 0)
	defer cache.Close()

	ctx := context.Background()
	userID := uuid.New()
	firedFence := uuid.New()
	otherFence := uuid.New()
	firedAt := time.Now()

	require.NoError(t, cache.RecordFired(ctx, userID, firedFence, firedAt))

	suppressed, err := cache.ShouldSuppress(ctx, uuid.New(), firedFence, firedAt)
	require.NoError(t, err)
	assert.False(t, suppressed, "another user is not suppressed")

	suppressed, err = cache.ShouldSuppress(ctx, userID, otherFence, firedAt)
	require.NoError(t, err)
	assert.False(t, suppressed, "another geofence is not suppressed")
}

func TestMemoryCache_SweepDropsExpiredPairs(t *testing.T) {
	t.Parallel()

	cache := NewMemoryCache(time.Minute, 0)
	defer cache.Close()

	ctx := context.Background()
	expired := pairKey{userID: uuid.New(), geofenceID: uuid.New()}
	live := pairKey{userID: uuid.New(), geofenceID: uuid.New()}
	now := time.Now()

	require.NoError(t, cache.RecordFired(ctx, expired.userID, expired.geofenceID, now.Add(-2*time.Minute)))
	require.NoError(t, cache.RecordFired(ctx, live.userID, live.geofenceID, now))

	cache.sweep(now)

	cache.mu.RLock()
	defer cache.mu.RUnlock()
	assert.NotContains(t, cache.fired, expired)
	assert.Contains(t, cache.fired, live)
}
