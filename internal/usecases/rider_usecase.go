package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"swift-parcel.backend/internal/domain/entities"
	domainerrors "swift-parcel.backend/internal/domain/errors"
	"swift-parcel.backend/internal/domain/repositories"
	"swift-parcel.backend/pkg/logger"
	"swift-parcel.backend/pkg/utils"
)

// RiderUsecase handles the rider application lifecycle
type RiderUsecase struct {
	riderRepo repositories.RiderRepository
	userRepo  repositories.UserRepository
}

// NewRiderUsecase creates a new rider usecase
func NewRiderUsecase(riderRepo repositories.RiderRepository, userRepo repositories.UserRepository) *RiderUsecase {
	return &RiderUsecase{riderRepo: riderRepo, userRepo: userRepo}
}

// Apply submits a rider application in pending state
func (u *RiderUsecase) Apply(ctx context.Context, input *entities.ApplyRiderInput) (*entities.Rider, error) {
	rider := &entities.Rider{
		ID:          utils.GenerateUUIDv7(),
		Name:        input.Name,
		Email:       strings.ToLower(input.Email),
		Age:         input.Age,
		Region:      input.Region,
		District:    input.District,
		Phone:       input.Phone,
		NationalID:  input.NationalID,
		Status:      entities.RiderStatusPending,
		SubmittedAt: time.Now(),
	}
	if input.BikeBrand != "" {
		rider.BikeBrand = null.StringFrom(input.BikeBrand)
	}
	if input.BikeRegistration != "" {
		rider.BikeRegistration = null.StringFrom(input.BikeRegistration)
	}
	if input.Note != "" {
		rider.Note = null.StringFrom(input.Note)
	}

	if err := u.riderRepo.Create(ctx, rider); err != nil {
		return nil, err
	}
	return rider, nil
}

// ListPending lists pending applications, newest first
func (u *RiderUsecase) ListPending(ctx context.Context) ([]*entities.Rider, error) {
	return u.riderRepo.ListByStatus(ctx, entities.RiderStatusPending)
}

// ListActive lists active riders, newest first
func (u *RiderUsecase) ListActive(ctx context.Context) ([]*entities.Rider, error) {
	return u.riderRepo.ListByStatus(ctx, entities.RiderStatusActive)
}

// ListByDistrict lists active riders with an exact district match
func (u *RiderUsecase) ListByDistrict(ctx context.Context, district string) ([]*entities.Rider, error) {
	if strings.TrimSpace(district) == "" {
		return nil, domainerrors.BadRequest("district is required")
	}
	return u.riderRepo.ListActiveByDistrict(ctx, district)
}

// UpdateStatus applies an admin decision. Activation promotes the matching
// user's role to rider before the rider-status write, and the promotion is
// not rolled back if that write then matches nothing.
func (u *RiderUsecase) UpdateStatus(ctx context.Context, id string, input *entities.UpdateRiderStatusInput) (*entities.UpdateRiderStatusResponse, error) {
	riderID, err := uuid.Parse(id)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid rider id")
	}
	if !entities.ValidRiderStatus(input.Status) {
		return nil, domainerrors.BadRequest("status must be one of pending, active, rejected")
	}

	if input.Status == entities.RiderStatusActive && input.Email != "" {
		err := u.userRepo.UpdateRole(ctx, strings.ToLower(input.Email), entities.UserRoleRider)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		if errors.Is(err, domainerrors.ErrNotFound) {
			logger.Warn(ctx, "rider activation matched no user to promote",
				zap.String("email", input.Email), zap.String("riderId", id))
		}
	}

	modified, err := u.riderRepo.UpdateStatus(ctx, riderID, input.Status)
	if err != nil {
		return nil, err
	}
	return &entities.UpdateRiderStatusResponse{Status: input.Status, ModifiedCount: modified}, nil
}
