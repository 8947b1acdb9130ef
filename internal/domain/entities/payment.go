package entities

import (
	"time"

	"github.com/google/uuid"
)

// Payment represents a confirmed payment record. Rows are written once per
// successful charge and never mutated.
type Payment struct {
	ID            uuid.UUID     `json:"id"`
	Email         string        `json:"email"`
	ParcelID      uuid.UUID     `json:"parcelId"`
	Amount        int64         `json:"amount"`
	TransactionID string        `json:"transactionId"`
	PaymentMethod string        `json:"paymentMethod"`
	Status        PaymentStatus `json:"status"`
	PaidAt        time.Time     `json:"paidAt"`
}

// CreateIntentInput carries the charge amount in integer minor-currency units
type CreateIntentInput struct {
	AmountInCents int64 `json:"amountInCents" binding:"required,gt=0"`
}

// CreateIntentResponse exposes the provider's client secret
type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// ConfirmPaymentInput represents a charge confirmation from the client
type ConfirmPaymentInput struct {
	Email         string `json:"email" binding:"required,email"`
	ParcelID      string `json:"parcelId" binding:"required"`
	Amount        int64  `json:"amount" binding:"required,gt=0"`
	TransactionID string `json:"transactionId" binding:"required"`
	PaymentMethod string `json:"paymentMethod"`
}

// ConfirmPaymentResponse reports both halves of the two-step write. A
// ModifiedCount of zero with a non-nil InsertedID is a valid outcome and
// callers are expected to check it.
type ConfirmPaymentResponse struct {
	InsertedID    uuid.UUID `json:"insertedId"`
	ModifiedCount int64     `json:"modifiedCount"`
}
