// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType tags the kind of notification stored in a user's feed.
type NotificationType string

const (
	// NotificationTypeLocationBased is emitted when a user enters an active geofence.
	NotificationTypeLocationBased NotificationType = "LOCATION_BASED"
	// NotificationTypeAnnouncement is used for operator-published announcements.
	NotificationTypeAnnouncement NotificationType = "ANNOUNCEMENT"
)

// Notification represents a single entry in a user's notification feed.
type Notification struct {
	ID         uuid.UUID        `json:"id"`          // The Global Unique Identifier (GUID) for the notification.
	UserID     uuid.UUID        `json:"user_id"`     // The ID of the user who owns this notification.
	GeofenceID *uuid.UUID       `json:"geofence_id"` // Optional reference to the geofence that triggered it.
	Type       NotificationType `json:"type"`        // The kind of notification (e.g., LOCATION_BASED).
	Title      string           `json:"title"`       // The rendered notification title.
	Body       string           `json:"body"`        // The rendered notification body.
	Data       map[string]any   `json:"data"`        // Opaque structured payload for the client.
	IsRead     bool             `json:"is_read"`     // Read flag; transitions false -> true only.
	CreatedAt  time.Time        `json:"created_at"`  // Timestamp of when this record was created. Immutable.
	UpdatedAt  time.Time        `json:"updated_at"`  // Timestamp of the last modification (read flag).
}
