package impl

import (
	"context"
	"testing"

	"geofeed/config"
	"geofeed/internal/domain/entity"
	"geofeed/internal/domain/repository"
	mockRepo "geofeed/internal/mocks/repository"
	"geofeed/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestFeedService(t *testing.T) (
	usecase.FeedUsecase,
	*mockRepo.MockNotificationRepository,
	*mockRepo.MockTransactionManager,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewFeedService(notificationRepo, txManager, &config.Config{
		Feed: &config.FeedConfig{
			MaxPageSize:     50,
			DefaultPageSize: 10,
		},
	})

	return service, notificationRepo, txManager
}

func TestFeedService_GetNotifications_Success(t *testing.T) {
	service, notificationRepo, _ := createTestFeedService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Notification{
		{ID: uuid.New(), UserID: userID, Title: "附近優惠"},
		{ID: uuid.New(), UserID: userID, Title: "新店開幕"},
	}

	notificationRepo.EXPECT().
		FindNotificationsByUser(ctx, userID, entity.SortRecent, 10, 0).
		Return(expected, nil)

	notifications, err := service.GetNotifications(ctx, userID, entity.SortRecent, 0, 10)

	require.NoError(t, err)
	assert.Equal(t, expected, notifications)
}

func TestFeedService_GetNotifications_OffsetFollowsPage(t *testing.T) {
	service, notificationRepo, _ := createTestFeedService(t)

	ctx := context.Background()
	userID := uuid.New()

	// Page 3 with size 20 starts after 60 rows.
	notificationRepo.EXPECT().
		FindNotificationsByUser(ctx, userID, entity.SortUnreadFirst, 20, 60).
		Return([]*entity.Notification{}, nil)

	notifications, err := service.GetNotifications(ctx, userID, entity.SortUnreadFirst, 3, 20)

	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestFeedService_GetNotifications_Validation(t *testing.T) {
	tests := []struct {
		name    string
		sort    entity.NotificationSortType
		page    int
		size    int
		wantErr error
	}{
		{name: "negative page", sort: entity.SortRecent, page: -1, size: 10, wantErr: ErrInvalidPage},
		{name: "zero size", sort: entity.SortRecent, page: 0, size: 0, wantErr: ErrInvalidPageSize},
		{name: "negative size", sort: entity.SortRecent, page: 0, size: -5, wantErr: ErrInvalidPageSize},
		{name: "size above cap", sort: entity.SortRecent, page: 0, size: 51, wantErr: ErrInvalidPageSize},
		{name: "unknown sort", sort: entity.NotificationSortType("OLDEST"), page: 0, size: 10, wantErr: entity.ErrInvalidSortType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := createTestFeedService(t)

			notifications, err := service.GetNotifications(context.Background(), uuid.New(), tt.sort, tt.page, tt.size)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, notifications)
		})
	}
}

func TestFeedService_CountNotifications(t *testing.T) {
	service, notificationRepo, _ := createTestFeedService(t)

	ctx := context.Background()
	userID := uuid.New()

	notificationRepo.EXPECT().CountNotificationsByUser(ctx, userID, false).Return(int64(25), nil)
	notificationRepo.EXPECT().CountNotificationsByUser(ctx, userID, true).Return(int64(10), nil)

	unread, err := service.CountNotifications(ctx, userID, false)
	require.NoError(t, err)
	assert.Equal(t, int64(25), unread)

	read, err := service.CountNotifications(ctx, userID, true)
	require.NoError(t, err)
	assert.Equal(t, int64(10), read)
}

func TestFeedService_CountNotifications_RepoError(t *testing.T) {
	service, notificationRepo, _ := createTestFeedService(t)

	ctx := context.Background()
	userID := uuid.New()

	notificationRepo.EXPECT().
		CountNotificationsByUser(ctx, userID, false).
		Return(int64(0), errors.New("connection reset"))

	count, err := service.CountNotifications(ctx, userID, false)

	assert.Error(t, err)
	assert.Zero(t, count)
}

func TestFeedService_MarkAllNotificationsAsRead_Success(t *testing.T) {
	service, notificationRepo, txManager := createTestFeedService(t)

	ctx := context.Background()
	userID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewNotificationRepository().Return(notificationRepo)
	notificationRepo.EXPECT().MarkAllAsRead(ctx, userID).Return(int64(25), nil)

	txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	affected, err := service.MarkAllNotificationsAsRead(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(25), affected)
}

func TestFeedService_MarkAllNotificationsAsRead_NothingUnread(t *testing.T) {
	service, notificationRepo, txManager := createTestFeedService(t)

	ctx := context.Background()
	userID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewNotificationRepository().Return(notificationRepo)
	notificationRepo.EXPECT().MarkAllAsRead(ctx, userID).Return(int64(0), nil)

	txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	affected, err := service.MarkAllNotificationsAsRead(ctx, userID)

	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestFeedService_MarkAllNotificationsAsRead_TransactionError(t *testing.T) {
	service, _, txManager := createTestFeedService(t)

	ctx := context.Background()
	userID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.Anything).
		Return(errors.New("deadlock detected"))

	affected, err := service.MarkAllNotificationsAsRead(ctx, userID)

	assert.Error(t, err)
	assert.Zero(t, affected)
}
