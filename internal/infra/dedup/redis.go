package dedup

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisCache is the shared cooldown cache for multi-instance deployments.
// Keys carry a TTL equal to the cooldown window, so Redis itself expires
// pairs and no sweeper is needed.
type redisCache struct {
	client   *redis.Client
	cooldown time.Duration
}

// NewRedisCache creates a Redis-backed cooldown cache.
func NewRedisCache(ctx context.Context, client *redis.Client, cooldown time.Duration) (*redisCache, error) {
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to ping redis")
	}

	return &redisCache{
		client:   client,
		cooldown: cooldown,
	}, nil
}

// ShouldSuppress reports whether the pair fired within the cooldown window.
func (c *redisCache) ShouldSuppress(ctx context.Context, userID, geofenceID uuid.UUID, now time.Time) (bool, error) {
	value, err := c.client.Get(ctx, pairRedisKey(userID, geofenceID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to get dedup entry")
	}

	firedMilli, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		// An unreadable entry only widens the window by one fire.
		return true, nil
	}

	firedAt := time.UnixMilli(firedMilli)

	return now.Before(firedAt.Add(c.cooldown)), nil
}

// RecordFired marks the pair as fired at the given instant.
func (c *redisCache) RecordFired(ctx context.Context, userID, geofenceID uuid.UUID, now time.Time) error {
	key := pairRedisKey(userID, geofenceID)
	value := strconv.FormatInt(now.UnixMilli(), 10)

	if err := c.client.Set(ctx, key, value, c.cooldown).Err(); err != nil {
		return errors.Wrap(err, "failed to set dedup entry")
	}

	return nil
}

func (c *redisCache) Close() error {
	return c.client.Close()
}

func pairRedisKey(userID, geofenceID uuid.UUID) string {
	return fmt.Sprintf("dedup:%s:%s", userID, geofenceID)
}
