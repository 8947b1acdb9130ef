package repositories

import (
	"context"

	"github.com/google/uuid"
	"swift-parcel.backend/internal/domain/entities"
)

// ParcelRepository defines parcel data operations. Every transition is a
// single conditional update so concurrent attempts resolve in the store.
type ParcelRepository interface {
	Create(ctx context.Context, parcel *entities.Parcel) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Parcel, error)
	// List applies the conjunctive filters and returns parcels ordered by
	// creation date descending.
	List(ctx context.Context, filter entities.ParcelFilter) ([]*entities.Parcel, error)
	// MarkPaid flips payment_status from unpaid to paid and returns the modified row
	// count. Zero is not an error here: the payment-confirm flow reports it.
	MarkPaid(ctx context.Context, id uuid.UUID) (int64, error)
	// AssignRider stamps the rider fields and moves delivery_status to
	// in_transit, guarded on not_collected. Zero rows is ErrNotFound.
	AssignRider(ctx context.Context, id uuid.UUID, riderID, riderName, riderContact string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
