package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"swift-parcel.backend/internal/domain/entities"
)

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) TouchLastLogIn(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, email string, role entities.UserRole) error {
	args := m.Called(ctx, email, role)
	return args.Error(0)
}

func (m *MockUserRepository) Search(ctx context.Context, query string, limit int) ([]*entities.User, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

// Mock ParcelRepository
type MockParcelRepository struct {
	mock.Mock
}

func (m *MockParcelRepository) Create(ctx context.Context, parcel *entities.Parcel) error {
	args := m.Called(ctx, parcel)
	return args.Error(0)
}

func (m *MockParcelRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Parcel), args.Error(1)
}

func (m *MockParcelRepository) List(ctx context.Context, filter entities.ParcelFilter) ([]*entities.Parcel, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Parcel), args.Error(1)
}

func (m *MockParcelRepository) MarkPaid(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockParcelRepository) AssignRider(ctx context.Context, id uuid.UUID, riderID, riderName, riderContact string) error {
	args := m.Called(ctx, id, riderID, riderName, riderContact)
	return args.Error(0)
}

func (m *MockParcelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock RiderRepository
type MockRiderRepository struct {
	mock.Mock
}

func (m *MockRiderRepository) Create(ctx context.Context, rider *entities.Rider) error {
	args := m.Called(ctx, rider)
	return args.Error(0)
}

func (m *MockRiderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Rider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Rider), args.Error(1)
}

func (m *MockRiderRepository) ListByStatus(ctx context.Context, status entities.RiderStatus) ([]*entities.Rider, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Rider), args.Error(1)
}

func (m *MockRiderRepository) ListActiveByDistrict(ctx context.Context, district string) ([]*entities.Rider, error) {
	args := m.Called(ctx, district)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Rider), args.Error(1)
}

func (m *MockRiderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.RiderStatus) (int64, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(int64), args.Error(1)
}

// Mock PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *entities.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) ListByEmail(ctx context.Context, email string) ([]*entities.Payment, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Payment), args.Error(1)
}

// Mock billing IntentCreator
type MockIntentCreator struct {
	mock.Mock
}

func (m *MockIntentCreator) CreateIntent(ctx context.Context, amountInCents int64, currency string) (string, error) {
	args := m.Called(ctx, amountInCents, currency)
	return args.String(0), args.Error(1)
}
