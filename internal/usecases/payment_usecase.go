package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"swift-parcel.backend/internal/domain/entities"
	domainerrors "swift-parcel.backend/internal/domain/errors"
	"swift-parcel.backend/internal/domain/repositories"
	"swift-parcel.backend/internal/infrastructure/billing"
	"swift-parcel.backend/pkg/logger"
	"swift-parcel.backend/pkg/utils"
)

// PaymentUsecase handles the payment ledger and its coupling to the parcel
// paid transition.
type PaymentUsecase struct {
	paymentRepo repositories.PaymentRepository
	parcelRepo  repositories.ParcelRepository
	provider    billing.IntentCreator
	currency    string
}

// NewPaymentUsecase creates a new payment usecase
func NewPaymentUsecase(
	paymentRepo repositories.PaymentRepository,
	parcelRepo repositories.ParcelRepository,
	provider billing.IntentCreator,
	currency string,
) *PaymentUsecase {
	if currency == "" {
		currency = "usd"
	}
	return &PaymentUsecase{
		paymentRepo: paymentRepo,
		parcelRepo:  parcelRepo,
		provider:    provider,
		currency:    currency,
	}
}

// CreateIntent obtains a charge secret from the provider. No local state.
func (u *PaymentUsecase) CreateIntent(ctx context.Context, input *entities.CreateIntentInput) (*entities.CreateIntentResponse, error) {
	if input.AmountInCents <= 0 {
		return nil, domainerrors.BadRequest("amountInCents must be positive")
	}
	secret, err := u.provider.CreateIntent(ctx, input.AmountInCents, u.currency)
	if err != nil {
		return nil, domainerrors.DependencyUnavailable(err)
	}
	return &entities.CreateIntentResponse{ClientSecret: secret}, nil
}

// Confirm records a successful charge: insert the payment row, then flip the
// parcel's payment_status with a conditional update. The two steps are not
// one transaction; a zero modified count is reported, not swallowed.
func (u *PaymentUsecase) Confirm(ctx context.Context, input *entities.ConfirmPaymentInput) (*entities.ConfirmPaymentResponse, error) {
	if strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.TransactionID) == "" ||
		input.Amount <= 0 {
		return nil, domainerrors.BadRequest("email, transactionId and amount are required")
	}
	parcelID, err := uuid.Parse(input.ParcelID)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid parcel id")
	}

	payment := &entities.Payment{
		ID:            utils.GenerateUUIDv7(),
		Email:         strings.ToLower(input.Email),
		ParcelID:      parcelID,
		Amount:        input.Amount,
		TransactionID: input.TransactionID,
		PaymentMethod: input.PaymentMethod,
		Status:        entities.PaymentStatusPaid,
		PaidAt:        time.Now(),
	}
	if err := u.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	modified, err := u.parcelRepo.MarkPaid(ctx, parcelID)
	if err != nil {
		return nil, err
	}
	if modified == 0 {
		logger.Warn(ctx, "payment recorded but parcel update matched nothing",
			zap.String("parcelId", parcelID.String()),
			zap.String("transactionId", input.TransactionID))
	}
	return &entities.ConfirmPaymentResponse{InsertedID: payment.ID, ModifiedCount: modified}, nil
}

// History returns the caller's payments, most recent first. Ownership is
// enforced at the handler: the email must equal the identity claim.
func (u *PaymentUsecase) History(ctx context.Context, email string) ([]*entities.Payment, error) {
	return u.paymentRepo.ListByEmail(ctx, strings.ToLower(email))
}
