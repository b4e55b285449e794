package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"geofeed/internal/domain/entity"
	mockRepo "geofeed/internal/mocks/repository"
	mockSvc "geofeed/internal/mocks/service"
	"geofeed/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestTriggerService(t *testing.T) (
	usecase.TriggerUsecase,
	*mockSvc.MockGeofenceIndex,
	*mockSvc.MockDedupCache,
	*mockRepo.MockNotificationRepository,
	*mockSvc.MockEventPublisher,
) {
	geofenceIndex := mockSvc.NewMockGeofenceIndex(t)
	dedupCache := mockSvc.NewMockDedupCache(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewTriggerService(
		logger,
		geofenceIndex,
		dedupCache,
		notificationRepo,
		publisher,
	)

	return service, geofenceIndex, dedupCache, notificationRepo, publisher
}

func testGeofence(name string) *entity.Geofence {
	return &entity.Geofence{
		ID:           uuid.New(),
		MerchantID:   uuid.New(),
		Name:         name,
		FullAddress:  "台北市信義區信義路五段7號",
		Latitude:     25.0330,
		Longitude:    121.5654,
		RadiusMeters: 500,
		Type:         entity.NotificationTypeLocationBased,
		Title:        "附近優惠",
		Body:         "來逛逛吧",
		IsActive:     true,
	}
}

func testLocationEvent() *entity.UserLocationEvent {
	return &entity.UserLocationEvent{
		UserID:     uuid.New(),
		Latitude:   25.0331,
		Longitude:  121.5655,
		ObservedAt: time.Now(),
	}
}

func TestTriggerService_RequestNotification_NoMatches(t *testing.T) {
	service, geofenceIndex, _, _, _ := createTestTriggerService(t)

	event := testLocationEvent()
	geofenceIndex.EXPECT().Query(event.Latitude, event.Longitude).Return(nil)

	created, err := service.RequestNotification(context.Background(), event)

	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestTriggerService_RequestNotification_FiresOnMatch(t *testing.T) {
	service, geofenceIndex, dedupCache, notificationRepo, publisher := createTestTriggerService(t)

	ctx := context.Background()
	event := testLocationEvent()
	fence := testGeofence("taipei-101")

	geofenceIndex.EXPECT().Query(event.Latitude, event.Longitude).Return([]*entity.Geofence{fence})
	dedupCache.EXPECT().ShouldSuppress(ctx, event.UserID, fence.ID, event.ObservedAt).Return(false, nil)
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	dedupCache.EXPECT().RecordFired(ctx, event.UserID, fence.ID, event.ObservedAt).Return(nil)
	publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(nil)

	created, err := service.RequestNotification(ctx, event)

	require.NoError(t, err)
	require.Len(t, created, 1)

	notification := created[0]
	assert.Equal(t, event.UserID, notification.UserID)
	require.NotNil(t, notification.GeofenceID)
	assert.Equal(t, fence.ID, *notification.GeofenceID)
	assert.Equal(t, entity.NotificationTypeLocationBased, notification.Type)
	assert.Equal(t, fence.Title, notification.Title)
	assert.Equal(t, fence.Body, notification.Body)
	assert.False(t, notification.IsRead)
	assert.Equal(t, fence.Name, notification.Data["location_name"])
}

func TestTriggerService_RequestNotification_SuppressedWithinCooldown(t *testing.T) {
	service, geofenceIndex, dedupCache, _, _ := createTestTriggerService(t)

	ctx := context.Background()
	event := testLocationEvent()
	fence := testGeofence("taipei-101")

	geofenceIndex.EXPECT().Query(event.Latitude, event.Longitude).Return([]*entity.Geofence{fence})
	dedupCache.EXPECT().ShouldSuppress(ctx, event.UserID, fence.ID, event.ObservedAt).Return(true, nil)

	created, err := service.RequestNotification(ctx, event)

	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestTriggerService_RequestNotification_OverlappingFencesFireIndependently(t *testing.T) {
	service, geofenceIndex, dedupCache, notificationRepo, publisher := createTestTriggerService(t)

	ctx := context.Background()
	event := testLocationEvent()
	fenceA := testGeofence("north")
	fenceB := testGeofence("south")

	geofenceIndex.EXPECT().Query(event.Latitude, event.Longitude).Return([]*entity.Geofence{fenceA, fenceB})

	// The first pair is inside its cooldown window, the second is not.
	dedupCache.EXPECT().ShouldSuppress(ctx, event.UserID, fenceA.ID, event.ObservedAt).Return(true, nil)
	dedupCache.EXPECT().ShouldSuppress(ctx, event.UserID, fenceB.ID, event.ObservedAt).Return(false, nil)
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	dedupCache.EXPECT().RecordFired(ctx, event.UserID, fenceB.ID, event.ObservedAt).Return(nil)
	publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(nil)

	created, err := service.RequestNotification(ctx, event)

	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, fenceB.ID, *created[0].GeofenceID)
}

func TestTriggerService_RequestNotification_CreateFailureIsRetriable(t *testing.T) {
	service, geofenceIndex, dedupCache, notificationRepo, publisher := createTestTriggerService(t)

	ctx := context.Background()
	event := testLocationEvent()
	fenceA := testGeofence("ok")
	fenceB := testGeofence("broken")

	geofenceIndex.EXPECT().Query(event.Latitude, event.Longitude).Return([]*entity.Geofence{fenceA, fenceB})
	dedupCache.EXPECT().ShouldSuppress(ctx, event.UserID, mock.Anything, event.ObservedAt).Return(false, nil)

	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil).Once()
	dedupCache.EXPECT().RecordFired(ctx, event.UserID, fenceA.ID, event.ObservedAt).Return(nil)
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(errors.New("insert failed")).Once()

	// The notification created before the failure is still handed to dispatch.
	publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(nil)

	created, err := service.RequestNotification(ctx, event)

	assert.Error(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, fenceA.ID, *created[0].GeofenceID)
}

func TestTriggerService_RequestNotification_RecordFiredFailureDoesNotFail(t *testing.T) {
	service, geofenceIndex, dedupCache, notificationRepo, publisher := createTestTriggerService(t)

	ctx := context.Background()
	event := testLocationEvent()
	fence := testGeofence("taipei-101")

	geofenceIndex.EXPECT().Query(event.Latitude, event.Longitude).Return([]*entity.Geofence{fence})
	dedupCache.EXPECT().ShouldSuppress(ctx, event.UserID, fence.ID, event.ObservedAt).Return(false, nil)
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	dedupCache.EXPECT().RecordFired(ctx, event.UserID, fence.ID, event.ObservedAt).Return(errors.New("cache down"))
	publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(nil)

	created, err := service.RequestNotification(ctx, event)

	require.NoError(t, err)
	assert.Len(t, created, 1)
}

func TestTriggerService_RequestNotification_PublishFailureDoesNotFail(t *testing.T) {
	service, geofenceIndex, dedupCache, notificationRepo, publisher := createTestTriggerService(t)

	ctx := context.Background()
	event := testLocationEvent()
	fence := testGeofence("taipei-101")

	geofenceIndex.EXPECT().Query(event.Latitude, event.Longitude).Return([]*entity.Geofence{fence})
	dedupCache.EXPECT().ShouldSuppress(ctx, event.UserID, fence.ID, event.ObservedAt).Return(false, nil)
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	dedupCache.EXPECT().RecordFired(ctx, event.UserID, fence.ID, event.ObservedAt).Return(nil)
	publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(errors.New("broker unavailable"))

	created, err := service.RequestNotification(ctx, event)

	require.NoError(t, err)
	assert.Len(t, created, 1)
}

func TestTriggerService_RequestNotification_InvalidCoordinates(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lng  float64
	}{
		{name: "latitude too low", lat: -90.5, lng: 0},
		{name: "latitude too high", lat: 91, lng: 0},
		{name: "longitude too low", lat: 0, lng: -180.5},
		{name: "longitude too high", lat: 0, lng: 181},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _, _, _ := createTestTriggerService(t)

			created, err := service.RequestNotification(context.Background(), &entity.UserLocationEvent{
				UserID:    uuid.New(),
				Latitude:  tt.lat,
				Longitude: tt.lng,
			})

			assert.ErrorIs(t, err, ErrInvalidCoordinate)
			assert.Nil(t, created)
		})
	}
}

func TestTriggerService_RequestNotification_ZeroObservedAtUsesNow(t *testing.T) {
	service, geofenceIndex, dedupCache, _, _ := createTestTriggerService(t)

	ctx := context.Background()
	event := testLocationEvent()
	event.ObservedAt = time.Time{}
	fence := testGeofence("taipei-101")

	geofenceIndex.EXPECT().Query(event.Latitude, event.Longitude).Return([]*entity.Geofence{fence})
	dedupCache.EXPECT().
		ShouldSuppress(ctx, event.UserID, fence.ID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, _ uuid.UUID, now time.Time) (bool, error) {
			assert.WithinDuration(t, time.Now(), now, time.Minute)

			return true, nil
		})

	created, err := service.RequestNotification(ctx, event)

	require.NoError(t, err)
	assert.Empty(t, created)
}
