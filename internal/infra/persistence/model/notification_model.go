package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// It represents one entry in a user's notification feed.
type NotificationModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_notifications_user_created,priority:1"`
	GeofenceID *uuid.UUID `gorm:"type:uuid;index"`
	Type       string     `gorm:"type:text;not null;default:'LOCATION_BASED'"`
	Title      string     `gorm:"type:text;not null"`
	Body       string     `gorm:"type:text;not null"`
	Data       datatypes.JSONMap
	IsRead     bool      `gorm:"not null;default:false;index"`
	CreatedAt  time.Time `gorm:"index:idx_notifications_user_created,priority:2,sort:desc"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
