// Package usecase defines the application's use case interfaces and their input/output types.
package usecase

import (
	"context"

	"geofeed/internal/domain/entity"

	"github.com/google/uuid"
)

// FeedUsecase defines the read and read-state operations over a user's notification feed.
type FeedUsecase interface {
	// GetNotifications returns one page of the user's feed in the given sort order.
	// page is zero-based; size must be within the configured bounds.
	GetNotifications(ctx context.Context, userID uuid.UUID, sort entity.NotificationSortType, page, size int) ([]*entity.Notification, error)

	// CountNotifications returns the number of the user's notifications with the
	// given read state. read=false yields the unread count, read=true the read count.
	CountNotifications(ctx context.Context, userID uuid.UUID, read bool) (int64, error)

	// MarkAllNotificationsAsRead flips every currently-unread notification of the
	// user to read as one atomic batch and returns the number affected.
	MarkAllNotificationsAsRead(ctx context.Context, userID uuid.UUID) (int64, error)
}
