package postgres

import (
	"context"

	"geofeed/internal/domain/entity"
	domainerrors "geofeed/internal/domain/errors"
	"geofeed/internal/domain/repository"
	"geofeed/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification appends one notification to the user's feed.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotificationCreationFailed.WrapMessage("invalid user or geofence reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrNotificationCreationFailed.WrapMessage("missing required notification information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	// Update the entity with generated values
	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt
	notification.UpdatedAt = notificationM.UpdatedAt

	return nil
}

// FindNotificationsByUser retrieves one page of the user's feed in the given
// sort order. The id tiebreaker keeps pagination stable when timestamps collide,
// so a row never appears on two pages or falls between them.
func (repo *notificationRepository) FindNotificationsByUser(ctx context.Context, userID uuid.UUID, sort entity.NotificationSortType, limit, offset int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID)

	switch sort {
	case entity.SortUnreadFirst:
		query = query.Order("is_read ASC").Order("created_at DESC").Order("id DESC")
	default:
		query = query.Order("created_at DESC").Order("id DESC")
	}

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by user")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// CountNotificationsByUser counts the user's read or unread notifications
// across the whole feed.
func (repo *notificationRepository) CountNotificationsByUser(ctx context.Context, userID uuid.UUID, read bool) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, read).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count notifications by user")
	}

	return count, nil
}

// MarkAllAsRead flips every unread notification of the user in one statement
// and returns how many rows changed. Zero affected rows is a valid outcome.
func (repo *notificationRepository) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark all notifications as read")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:         data.ID,
		UserID:     data.UserID,
		GeofenceID: data.GeofenceID,
		Type:       entity.NotificationType(data.Type),
		Title:      data.Title,
		Body:       data.Body,
		Data:       map[string]any(data.Data),
		IsRead:     data.IsRead,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:         data.ID,
		UserID:     data.UserID,
		GeofenceID: data.GeofenceID,
		Type:       string(data.Type),
		Title:      data.Title,
		Body:       data.Body,
		Data:       datatypes.JSONMap(data.Data),
		IsRead:     data.IsRead,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
