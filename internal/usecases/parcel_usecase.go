package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"swift-parcel.backend/internal/domain/entities"
	domainerrors "swift-parcel.backend/internal/domain/errors"
	"swift-parcel.backend/internal/domain/repositories"
	"swift-parcel.backend/pkg/utils"
)

// ParcelUsecase handles the parcel lifecycle
type ParcelUsecase struct {
	parcelRepo repositories.ParcelRepository
}

// NewParcelUsecase creates a new parcel usecase
func NewParcelUsecase(parcelRepo repositories.ParcelRepository) *ParcelUsecase {
	return &ParcelUsecase{parcelRepo: parcelRepo}
}

// CreateParcel validates the descriptive fields and inserts the parcel in
// its initial state: unpaid, not collected.
func (u *ParcelUsecase) CreateParcel(ctx context.Context, input *entities.CreateParcelInput) (*entities.Parcel, error) {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Type) == "" ||
		strings.TrimSpace(input.SenderRegion) == "" ||
		strings.TrimSpace(input.ReceiverRegion) == "" {
		return nil, domainerrors.BadRequest("name, type, senderRegion and receiverRegion are required")
	}

	parcel := &entities.Parcel{
		ID:             utils.GenerateUUIDv7(),
		Name:           input.Name,
		Type:           input.Type,
		SenderRegion:   input.SenderRegion,
		ReceiverRegion: input.ReceiverRegion,
		CreatedByEmail: strings.ToLower(input.CreatedByEmail),
		PaymentStatus:  entities.PaymentStatusUnpaid,
		DeliveryStatus: entities.DeliveryStatusNotCollected,
		CreationDate:   time.Now(),
	}
	if err := u.parcelRepo.Create(ctx, parcel); err != nil {
		return nil, err
	}
	return parcel, nil
}

// GetParcel fetches a parcel by id
func (u *ParcelUsecase) GetParcel(ctx context.Context, id string) (*entities.Parcel, error) {
	parcelID, err := uuid.Parse(id)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid parcel id")
	}
	return u.parcelRepo.GetByID(ctx, parcelID)
}

// ListParcels applies the optional conjunctive filters
func (u *ParcelUsecase) ListParcels(ctx context.Context, filter entities.ParcelFilter) ([]*entities.Parcel, error) {
	filter.Email = strings.ToLower(filter.Email)
	return u.parcelRepo.List(ctx, filter)
}

// AssignRider moves the parcel to in_transit with the rider identity. A
// parcel that is absent or already past not_collected surfaces as NotFound;
// the two cases are deliberately not distinguished.
func (u *ParcelUsecase) AssignRider(ctx context.Context, id string, input *entities.AssignRiderInput) error {
	parcelID, err := uuid.Parse(id)
	if err != nil {
		return domainerrors.BadRequest("invalid parcel id")
	}
	if strings.TrimSpace(input.RiderID) == "" {
		return domainerrors.BadRequest("riderId is required")
	}
	return u.parcelRepo.AssignRider(ctx, parcelID, input.RiderID, input.RiderName, input.RiderContact)
}

// DeleteParcel removes a parcel unconditionally
func (u *ParcelUsecase) DeleteParcel(ctx context.Context, id string) error {
	parcelID, err := uuid.Parse(id)
	if err != nil {
		return domainerrors.BadRequest("invalid parcel id")
	}
	return u.parcelRepo.Delete(ctx, parcelID)
}
