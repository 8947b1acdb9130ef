package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"swift-parcel.backend/internal/domain/entities"
	domainerrors "swift-parcel.backend/internal/domain/errors"
	"swift-parcel.backend/internal/infrastructure/models"
)

// PaymentRepository implements payment ledger operations
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create inserts a payment record. The parcel_id unique index keeps the
// ledger 1:1 with paid parcels.
func (r *PaymentRepository) Create(ctx context.Context, payment *entities.Payment) error {
	m := &models.Payment{
		ID:            payment.ID,
		Email:         payment.Email,
		ParcelID:      payment.ParcelID,
		Amount:        payment.Amount,
		TransactionID: payment.TransactionID,
		PaymentMethod: payment.PaymentMethod,
		Status:        string(payment.Status),
		PaidAt:        payment.PaidAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// ListByEmail lists payments for the email, most recent first
func (r *PaymentRepository) ListByEmail(ctx context.Context, email string) ([]*entities.Payment, error) {
	var paymentModels []models.Payment
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("paid_at DESC").
		Find(&paymentModels).Error
	if err != nil {
		return nil, err
	}

	payments := make([]*entities.Payment, 0, len(paymentModels))
	for i := range paymentModels {
		m := paymentModels[i]
		payments = append(payments, &entities.Payment{
			ID:            m.ID,
			Email:         m.Email,
			ParcelID:      m.ParcelID,
			Amount:        m.Amount,
			TransactionID: m.TransactionID,
			PaymentMethod: m.PaymentMethod,
			Status:        entities.PaymentStatus(m.Status),
			PaidAt:        m.PaidAt,
		})
	}
	return payments, nil
}
