package entity

import (
	"time"

	"github.com/google/uuid"
)

// Geofence represents a circular point-of-interest zone around a merchant location.
// Records are immutable after catalog load except for the active flag, which an
// external catalog sync may toggle.
type Geofence struct {
	ID           uuid.UUID        `json:"id"`            // The Global Unique Identifier (GUID) for the geofence.
	MerchantID   uuid.UUID        `json:"merchant_id"`   // The ID of the merchant who owns this zone.
	Name         string           `json:"name"`          // The name/label of the location.
	FullAddress  string           `json:"full_address"`  // The full address of the location.
	Latitude     float64          `json:"latitude"`      // The geographic latitude of the zone center.
	Longitude    float64          `json:"longitude"`     // The geographic longitude of the zone center.
	RadiusMeters float64          `json:"radius_meters"` // Match radius in meters (great-circle distance).
	Type         NotificationType `json:"type"`          // Notification kind emitted for this zone.
	Title        string           `json:"title"`         // Notification template title.
	Body         string           `json:"body"`          // Notification template body.
	IsActive     bool             `json:"is_active"`     // Only active geofences are indexed and matched.
	CreatedAt    time.Time        `json:"created_at"`    // Timestamp of when this record was created.
	UpdatedAt    time.Time        `json:"updated_at"`    // Timestamp of the last modification.
}
