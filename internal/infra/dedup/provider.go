package dedup

import (
	"context"
	"log/slog"
	"time"

	"geofeed/config"
	"geofeed/internal/domain/constants"
	"geofeed/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	defaultCooldown        = 4 * time.Hour
	defaultCleanupInterval = 10 * time.Minute
)

// CacheParams holds dependencies for DedupCache, injected by Fx
type CacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewDedupCache creates a DedupCache based on configuration
func NewDedupCache(params CacheParams) (service.DedupCache, error) {
	logger := params.Logger

	cooldown := defaultCooldown
	if params.Config.Trigger != nil && params.Config.Trigger.Cooldown > 0 {
		cooldown = params.Config.Trigger.Cooldown
	}

	cfg := params.Config.Dedup
	if cfg == nil {
		cfg = &config.DedupConfig{}
	}

	var cache service.DedupCache

	switch cfg.Provider {
	case "", constants.DedupProviderMemory:
		cleanupInterval := cfg.CleanupInterval
		if cleanupInterval <= 0 {
			cleanupInterval = defaultCleanupInterval
		}
		logger.Info("Using in-memory dedup cache",
			slog.Duration("cooldown", cooldown),
		)

		cache = NewMemoryCache(cooldown, cleanupInterval)

	case constants.DedupProviderRedis:
		if cfg.Redis == nil || cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis provider")
		}
		logger.Info("Using Redis dedup cache",
			slog.String("addr", cfg.Redis.Addr),
			slog.Duration("cooldown", cooldown),
		)

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		redisCache, err := NewRedisCache(params.Ctx, client, cooldown)
		if err != nil {
			return nil, err
		}
		cache = redisCache

	default:
		return nil, errors.Errorf("unknown dedup provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing DedupCache")

			return cache.Close()
		},
	})

	return cache, nil
}
