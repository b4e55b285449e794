package geofence

import (
	"context"
	"log/slog"
	"time"

	"geofeed/config"
	"geofeed/internal/domain/entity"
	"geofeed/internal/domain/lifecycle"
	"geofeed/internal/domain/repository"
	"geofeed/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CatalogParams holds dependencies for the geofence catalog, injected by Fx
type CatalogParams struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	Logger       *slog.Logger
	GeofenceRepo repository.GeofenceRepository
}

// catalog keeps the in-memory index in sync with the geofence table.
type catalog struct {
	index           *Index
	geofenceRepo    repository.GeofenceRepository
	logger          *slog.Logger
	refreshInterval time.Duration
}

// NewCatalog creates the geofence index and keeps it refreshed in the background.
// The initial load happens on startup so the first trigger evaluation already
// sees the full catalog.
func NewCatalog(params CatalogParams) (service.GeofenceIndex, error) {
	cfg := params.Config.Geofence
	if cfg == nil {
		cfg = &config.GeofenceConfig{}
	}

	cat := &catalog{
		index:           NewIndex(cfg.GridCellSizeKm),
		geofenceRepo:    params.GeofenceRepo,
		logger:          params.Logger,
		refreshInterval: cfg.RefreshInterval,
	}

	refreshCtx, cancelRefresh := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := cat.refresh(ctx); err != nil {
				return errors.Wrap(err, "failed to load geofence catalog")
			}

			// A zero interval means the catalog is loaded once at startup.
			if cat.refreshInterval > 0 {
				go cat.refreshLoop(refreshCtx)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelRefresh()

			return nil
		},
	})

	return cat, nil
}

// Query returns the active geofences containing the coordinate.
func (c *catalog) Query(lat, lng float64) []*entity.Geofence {
	return c.index.Query(lat, lng)
}

func (c *catalog) refresh(ctx context.Context) error {
	fences, err := c.geofenceRepo.FindActiveGeofences(ctx)
	if err != nil {
		return err
	}

	c.index.Reload(fences)
	c.logger.Info("geofence catalog refreshed",
		slog.Int("count", c.index.Size()),
	)

	return nil
}

// refreshLoop reloads the catalog periodically. A failed reload keeps serving
// the previous snapshot rather than emptying the index.
func (c *catalog) refreshLoop(ctx context.Context) {
	ticker := time.NewTicker(c.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.refresh(ctx); err != nil {
				c.logger.Error("failed to refresh geofence catalog",
					slog.Any("error", err),
				)
			}
		}
	}
}
