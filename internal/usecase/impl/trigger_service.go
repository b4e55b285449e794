package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"geofeed/internal/domain/entity"
	"geofeed/internal/domain/repository"
	"geofeed/internal/domain/service"
	"geofeed/internal/usecase"

	"github.com/google/uuid"
)

// ErrInvalidCoordinate is returned when a location event carries an out-of-range coordinate.
var ErrInvalidCoordinate = errors.New("coordinate out of range")

type triggerService struct {
	logger           *slog.Logger
	geofenceIndex    service.GeofenceIndex
	dedupCache       service.DedupCache
	notificationRepo repository.NotificationRepository
	publisher        service.EventPublisher
	pairLocks        pairLocker
}

// NewTriggerService creates a new trigger evaluation service instance
func NewTriggerService(
	logger *slog.Logger,
	geofenceIndex service.GeofenceIndex,
	dedupCache service.DedupCache,
	notificationRepo repository.NotificationRepository,
	publisher service.EventPublisher,
) usecase.TriggerUsecase {
	return &triggerService{
		logger:           logger,
		geofenceIndex:    geofenceIndex,
		dedupCache:       dedupCache,
		notificationRepo: notificationRepo,
		publisher:        publisher,
	}
}

// RequestNotification evaluates one location event against the geofence index.
// Each matched geofence is deduplicated and persisted independently; a user
// inside two overlapping zones can receive up to two notifications.
func (s *triggerService) RequestNotification(ctx context.Context, event *entity.UserLocationEvent) ([]*entity.Notification, error) {
	if event.Latitude < -90 || event.Latitude > 90 || event.Longitude < -180 || event.Longitude > 180 {
		return nil, ErrInvalidCoordinate
	}

	now := event.ObservedAt
	if now.IsZero() {
		now = time.Now()
	}

	matches := s.geofenceIndex.Query(event.Latitude, event.Longitude)
	if len(matches) == 0 {
		return nil, nil
	}

	created := make([]*entity.Notification, 0, len(matches))
	for _, fence := range matches {
		notification, err := s.evaluateGeofence(ctx, event, fence, now)
		if err != nil {
			// Surface the failure as retriable; notifications already created
			// by this event stay created and are handed back for dispatch.
			s.dispatch(ctx, created)

			return created, err
		}
		if notification != nil {
			created = append(created, notification)
		}
	}

	s.dispatch(ctx, created)

	return created, nil
}

// evaluateGeofence runs the suppress-check / append / record sequence for one
// (user, geofence) pair under the pair lock, so two concurrent events for the
// same pair cannot both fire inside the cooldown window.
func (s *triggerService) evaluateGeofence(ctx context.Context, event *entity.UserLocationEvent, fence *entity.Geofence, now time.Time) (*entity.Notification, error) {
	mu := s.pairLocks.lock(event.UserID, fence.ID)
	defer mu.Unlock()

	suppressed, err := s.dedupCache.ShouldSuppress(ctx, event.UserID, fence.ID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to check dedup cache: %w", err)
	}
	if suppressed {
		return nil, nil
	}

	notification := newNotificationFromGeofence(event, fence, now)

	// The record must exist before the pair is marked fired. The reverse order
	// could mark a pair fired with no stored notification, which no retry can repair.
	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	if err := s.dedupCache.RecordFired(ctx, event.UserID, fence.ID, now); err != nil {
		// The notification is already stored; failing the event here would make
		// the caller retry and duplicate it. The pair stays eligible to fire early.
		s.logger.Warn("failed to record dedup entry",
			slog.String("user_id", event.UserID.String()),
			slog.String("geofence_id", fence.ID.String()),
			slog.Any("error", err),
		)
	}

	return notification, nil
}

// dispatch hands created notifications to the async delivery pipeline.
// Publishing is decoupled from creation; a publish failure is logged and never
// rolls back the stored notification.
func (s *triggerService) dispatch(ctx context.Context, notifications []*entity.Notification) {
	for _, notification := range notifications {
		event := notificationEvent(notification)
		if err := s.publisher.PublishNotificationEvent(ctx, event); err != nil {
			s.logger.Warn("failed to publish notification event",
				slog.String("notification_id", notification.ID.String()),
				slog.Any("error", err),
			)
		}
	}
}

func newNotificationFromGeofence(event *entity.UserLocationEvent, fence *entity.Geofence, now time.Time) *entity.Notification {
	fenceID := fence.ID

	notificationType := fence.Type
	if notificationType == "" {
		notificationType = entity.NotificationTypeLocationBased
	}

	return &entity.Notification{
		ID:         uuid.New(),
		UserID:     event.UserID,
		GeofenceID: &fenceID,
		Type:       notificationType,
		Title:      fence.Title,
		Body:       fence.Body,
		Data: map[string]any{
			"geofence_id":   fence.ID.String(),
			"merchant_id":   fence.MerchantID.String(),
			"location_name": fence.Name,
			"full_address":  fence.FullAddress,
			"latitude":      fence.Latitude,
			"longitude":     fence.Longitude,
		},
		IsRead:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func notificationEvent(notification *entity.Notification) *service.NotificationEvent {
	event := &service.NotificationEvent{
		NotificationID: notification.ID.String(),
		UserID:         notification.UserID.String(),
		Type:           string(notification.Type),
		Title:          notification.Title,
		Body:           notification.Body,
		Data:           make(map[string]string, len(notification.Data)),
	}
	if notification.GeofenceID != nil {
		event.GeofenceID = notification.GeofenceID.String()
	}
	for key, value := range notification.Data {
		event.Data[key] = fmt.Sprintf("%v", value)
	}

	return event
}
