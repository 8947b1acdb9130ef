package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"swift-parcel.backend/internal/domain/entities"
	domainerrors "swift-parcel.backend/internal/domain/errors"
	"swift-parcel.backend/internal/infrastructure/models"
)

// RiderRepository implements rider application data operations
type RiderRepository struct {
	db *gorm.DB
}

// NewRiderRepository creates a new rider repository
func NewRiderRepository(db *gorm.DB) *RiderRepository {
	return &RiderRepository{db: db}
}

// Create creates a new rider application
func (r *RiderRepository) Create(ctx context.Context, rider *entities.Rider) error {
	m := &models.Rider{
		ID:               rider.ID,
		Name:             rider.Name,
		Email:            rider.Email,
		Age:              rider.Age,
		Region:           rider.Region,
		District:         rider.District,
		Phone:            rider.Phone,
		NationalID:       rider.NationalID,
		BikeBrand:        rider.BikeBrand.Ptr(),
		BikeRegistration: rider.BikeRegistration.Ptr(),
		Note:             rider.Note.Ptr(),
		Status:           string(rider.Status),
		SubmittedAt:      rider.SubmittedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a rider by ID
func (r *RiderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Rider, error) {
	var m models.Rider
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toRiderEntity(&m), nil
}

// ListByStatus lists applications with the given status, newest first
func (r *RiderRepository) ListByStatus(ctx context.Context, status entities.RiderStatus) ([]*entities.Rider, error) {
	var riderModels []models.Rider
	err := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("submitted_at DESC").
		Find(&riderModels).Error
	if err != nil {
		return nil, err
	}
	return toRiderEntities(riderModels), nil
}

// ListActiveByDistrict lists active riders with an exact district match
func (r *RiderRepository) ListActiveByDistrict(ctx context.Context, district string) ([]*entities.Rider, error) {
	var riderModels []models.Rider
	err := r.db.WithContext(ctx).
		Where("status = ? AND district = ?", string(entities.RiderStatusActive), district).
		Order("submitted_at DESC").
		Find(&riderModels).Error
	if err != nil {
		return nil, err
	}
	return toRiderEntities(riderModels), nil
}

// UpdateStatus applies the transition, conditional on an actual change
func (r *RiderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.RiderStatus) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Rider{}).
		Where("id = ? AND status <> ?", id, string(status)).
		Update("status", string(status))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, domainerrors.ErrNotFound
	}
	return result.RowsAffected, nil
}

func toRiderEntity(m *models.Rider) *entities.Rider {
	return &entities.Rider{
		ID:               m.ID,
		Name:             m.Name,
		Email:            m.Email,
		Age:              m.Age,
		Region:           m.Region,
		District:         m.District,
		Phone:            m.Phone,
		NationalID:       m.NationalID,
		BikeBrand:        null.StringFromPtr(m.BikeBrand),
		BikeRegistration: null.StringFromPtr(m.BikeRegistration),
		Note:             null.StringFromPtr(m.Note),
		Status:           entities.RiderStatus(m.Status),
		SubmittedAt:      m.SubmittedAt,
	}
}

func toRiderEntities(riderModels []models.Rider) []*entities.Rider {
	riders := make([]*entities.Rider, 0, len(riderModels))
	for i := range riderModels {
		riders = append(riders, toRiderEntity(&riderModels[i]))
	}
	return riders
}
