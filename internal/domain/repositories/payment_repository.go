package repositories

import (
	"context"

	"swift-parcel.backend/internal/domain/entities"
)

// PaymentRepository defines payment ledger operations. Payments are
// insert-only; there is no update path.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entities.Payment) error
	// ListByEmail returns payments for the email ordered by paid date
	// descending.
	ListByEmail(ctx context.Context, email string) ([]*entities.Payment, error)
}
