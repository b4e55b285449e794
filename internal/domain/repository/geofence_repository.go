package repository

import (
	"context"
	"errors"

	"geofeed/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrGeofenceNotFound is returned when a geofence is not found.
var ErrGeofenceNotFound = errors.New("geofence not found")

// GeofenceRepository defines the interface for geofence catalog database operations.
// The catalog itself is maintained by an external sync process; the engine only
// reads it to build the spatial index.
type GeofenceRepository interface {
	// FindActiveGeofences retrieves every geofence with the active flag set.
	FindActiveGeofences(ctx context.Context) ([]*entity.Geofence, error)

	// FindGeofenceByID retrieves a single geofence by its unique ID.
	FindGeofenceByID(ctx context.Context, id uuid.UUID) (*entity.Geofence, error)
}
