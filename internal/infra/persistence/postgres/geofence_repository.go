package postgres

import (
	"context"

	"geofeed/internal/domain/entity"
	"geofeed/internal/domain/repository"
	"geofeed/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// geofenceRepository implements the repository.GeofenceRepository interface.
type geofenceRepository struct {
	db *gorm.DB
}

// NewGeofenceRepository is the constructor for geofenceRepository.
func NewGeofenceRepository(db *gorm.DB) repository.GeofenceRepository {
	return &geofenceRepository{
		db: db,
	}
}

// FindActiveGeofences retrieves every active geofence for the in-memory index.
func (repo *geofenceRepository) FindActiveGeofences(ctx context.Context) ([]*entity.Geofence, error) {
	var geofenceModels []*model.GeofenceModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Find(&geofenceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active geofences")
	}

	geofences := make([]*entity.Geofence, 0, len(geofenceModels))
	for _, geofenceM := range geofenceModels {
		geofences = append(geofences, toGeofenceDomain(geofenceM))
	}

	return geofences, nil
}

// FindGeofenceByID retrieves a geofence by its unique ID.
func (repo *geofenceRepository) FindGeofenceByID(ctx context.Context, id uuid.UUID) (*entity.Geofence, error) {
	var geofenceM model.GeofenceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&geofenceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGeofenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find geofence by ID")
	}

	return toGeofenceDomain(&geofenceM), nil
}

// --- Mapper Functions ---

// toGeofenceDomain converts a GORM GeofenceModel to a domain Geofence entity.
func toGeofenceDomain(data *model.GeofenceModel) *entity.Geofence {
	if data == nil {
		return nil
	}

	return &entity.Geofence{
		ID:           data.ID,
		MerchantID:   data.MerchantID,
		Name:         data.Name,
		FullAddress:  data.FullAddress,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		RadiusMeters: data.RadiusMeters,
		Type:         entity.NotificationType(data.Type),
		Title:        data.Title,
		Body:         data.Body,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
