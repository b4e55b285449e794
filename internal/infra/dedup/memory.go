// Package dedup implements the per (user, geofence) cooldown cache.
package dedup

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type pairKey struct {
	userID     uuid.UUID
	geofenceID uuid.UUID
}

// memoryCache is the in-process cooldown cache. A janitor goroutine sweeps
// expired pairs so memory tracks the active pair set, not the historical one.
type memoryCache struct {
	mu       sync.RWMutex
	fired    map[pairKey]time.Time
	cooldown time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemoryCache creates an in-process cooldown cache.
func NewMemoryCache(cooldown, cleanupInterval time.Duration) *memoryCache {
	cache := &memoryCache{
		fired:    make(map[pairKey]time.Time),
		cooldown: cooldown,
		stop:     make(chan struct{}),
	}

	if cleanupInterval > 0 {
		go cache.janitor(cleanupInterval)
	}

	return cache
}

// ShouldSuppress reports whether the pair fired within the cooldown window.
func (c *memoryCache) ShouldSuppress(_ context.Context, userID, geofenceID uuid.UUID, now time.Time) (bool, error) {
	c.mu.RLock()
	firedAt, ok := c.fired[pairKey{userID: userID, geofenceID: geofenceID}]
	c.mu.RUnlock()

	if !ok {
		return false, nil
	}

	return now.Before(firedAt.Add(c.cooldown)), nil
}

// RecordFired marks the pair as fired at the given instant.
func (c *memoryCache) RecordFired(_ context.Context, userID, geofenceID uuid.UUID, now time.Time) error {
	c.mu.Lock()
	c.fired[pairKey{userID: userID, geofenceID: geofenceID}] = now
	c.mu.Unlock()

	return nil
}

func (c *memoryCache) Close() error {
	c.stopOnce.Do(func() {
		close(c.stop)
	})

	return nil
}

func (c *memoryCache) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.sweep(time.Now())
		}
	}
}

func (c *memoryCache) sweep(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, firedAt := range c.fired {
		if !now.Before(firedAt.Add(c.cooldown)) {
			delete(c.fired, key)
		}
	}
}
