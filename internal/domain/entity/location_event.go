package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserLocationEvent is a transient position report from a user's device.
// It is consumed once by the trigger evaluation pipeline and never persisted.
type UserLocationEvent struct {
	UserID     uuid.UUID `json:"user_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	ObservedAt time.Time `json:"observed_at"`
}
