package repositories

import (
	"context"

	"github.com/google/uuid"
	"swift-parcel.backend/internal/domain/entities"
)

// RiderRepository defines rider application data operations
type RiderRepository interface {
	Create(ctx context.Context, rider *entities.Rider) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Rider, error)
	// ListByStatus returns applications with the given status ordered by
	// submission time descending.
	ListByStatus(ctx context.Context, status entities.RiderStatus) ([]*entities.Rider, error)
	// ListActiveByDistrict returns active riders with an exact district match.
	ListActiveByDistrict(ctx context.Context, district string) ([]*entities.Rider, error)
	// UpdateStatus is conditional on the status actually changing; zero rows
	// (unknown id or unchanged status) is ErrNotFound.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.RiderStatus) (int64, error)
}
