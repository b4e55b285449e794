// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"geofeed/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository defines the interface for notification feed database operations.
type NotificationRepository interface {
	// CreateNotification persists a new notification for a user.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationsByUser retrieves one page of a user's feed in the given sort order.
	// A page past the end of the feed yields an empty slice, not an error.
	FindNotificationsByUser(ctx context.Context, userID uuid.UUID, sort entity.NotificationSortType, limit, offset int) ([]*entity.Notification, error)

	// CountNotificationsByUser returns the exact number of notifications for the
	// user with the given read state, independent of any pagination window.
	CountNotificationsByUser(ctx context.Context, userID uuid.UUID, read bool) (int64, error)

	// MarkAllAsRead flips every unread notification of the user to read in a
	// single statement and returns the number of rows affected.
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error)
}
