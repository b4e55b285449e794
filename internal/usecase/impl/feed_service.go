package impl

import (
	"context"
	"errors"
	"fmt"

	"geofeed/config"
	"geofeed/internal/domain/entity"
	"geofeed/internal/domain/repository"
	"geofeed/internal/usecase"

	"github.com/google/uuid"
)

var (
	// ErrInvalidPage is returned when the page index is negative.
	ErrInvalidPage = errors.New("page must be zero or positive")
	// ErrInvalidPageSize is returned when the page size is out of bounds.
	ErrInvalidPageSize = errors.New("page size out of bounds")
)

type feedService struct {
	notificationRepo repository.NotificationRepository
	txManager        repository.TransactionManager
	config           *config.Config
}

// NewFeedService creates a new feed service instance
func NewFeedService(
	notificationRepo repository.NotificationRepository,
	txManager repository.TransactionManager,
	cfg *config.Config,
) usecase.FeedUsecase {
	// If Feed is not configured, provide a default configuration
	if cfg.Feed == nil {
		cfg.Feed = &config.FeedConfig{
			MaxPageSize:     50, // Default cap on page size
			DefaultPageSize: 10, // Default page size when omitted
		}
	}

	return &feedService{
		notificationRepo: notificationRepo,
		txManager:        txManager,
		config:           cfg,
	}
}

// GetNotifications returns one page of the user's feed in the given sort order.
func (s *feedService) GetNotifications(ctx context.Context, userID uuid.UUID, sort entity.NotificationSortType, page, size int) ([]*entity.Notification, error) {
	if page < 0 {
		return nil, ErrInvalidPage
	}
	if size <= 0 || size > s.config.Feed.MaxPageSize {
		return nil, ErrInvalidPageSize
	}
	if sort != entity.SortRecent && sort != entity.SortUnreadFirst {
		return nil, entity.ErrInvalidSortType
	}

	notifications, err := s.notificationRepo.FindNotificationsByUser(ctx, userID, sort, size, page*size)
	if err != nil {
		return nil, fmt.Errorf("failed to find notifications by user: %w", err)
	}

	return notifications, nil
}

// CountNotifications returns the read or unread aggregate for the user.
// The count covers the whole feed regardless of any pagination window.
func (s *feedService) CountNotifications(ctx context.Context, userID uuid.UUID, read bool) (int64, error) {
	count, err := s.notificationRepo.CountNotificationsByUser(ctx, userID, read)
	if err != nil {
		return 0, fmt.Errorf("failed to count notifications by user: %w", err)
	}

	return count, nil
}

// MarkAllNotificationsAsRead flips every unread notification of the user in one
// transaction so concurrent readers see either the full pre-operation snapshot
// or the fully updated one, never a partial batch.
func (s *feedService) MarkAllNotificationsAsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	var affected int64

	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		count, err := txRepoFactory.NewNotificationRepository().MarkAllAsRead(ctx, userID)
		if err != nil {
			return err
		}
		affected = count

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to mark all notifications as read: %w", err)
	}

	return affected, nil
}
