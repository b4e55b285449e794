package service

import "geofeed/internal/domain/entity"

// GeofenceIndex answers point-in-zone queries over the active geofence catalog.
// Implementations must be safe for concurrent queries while a reload is in
// flight; readers never observe a partially rebuilt index.
type GeofenceIndex interface {
	// Query returns every active geofence whose great-circle distance from the
	// given coordinate is within its radius. No match yields an empty slice.
	Query(lat, lng float64) []*entity.Geofence
}
