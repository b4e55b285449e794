package usecase

import (
	"context"

	"geofeed/internal/domain/entity"
)

// TriggerUsecase evaluates inbound location events against the geofence catalog.
type TriggerUsecase interface {
	// RequestNotification decides, for one location event, which geofences fire.
	// It returns the notifications created by this event (possibly none). A
	// storage failure is surfaced as a retriable error; notifications already
	// created by the same event are still returned alongside it.
	RequestNotification(ctx context.Context, event *entity.UserLocationEvent) ([]*entity.Notification, error)
}
