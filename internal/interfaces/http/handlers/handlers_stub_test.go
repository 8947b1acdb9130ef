package handlers

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"swift-parcel.backend/internal/domain/entities"
	domainerrors "swift-parcel.backend/internal/domain/errors"
)

// In-memory repository stubs shared by the handler tests.

type userRepoStub struct {
	users map[string]*entities.User
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{users: map[string]*entities.User{}}
}

func (s *userRepoStub) Create(_ context.Context, user *entities.User) error {
	if _, ok := s.users[user.Email]; ok {
		return domainerrors.ErrAlreadyExists
	}
	clone := *user
	s.users[user.Email] = &clone
	return nil
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return u, nil
}

func (s *userRepoStub) TouchLastLogIn(_ context.Context, email string) error {
	if _, ok := s.users[email]; !ok {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (s *userRepoStub) UpdateRole(_ context.Context, email string, role entities.UserRole) error {
	u, ok := s.users[email]
	if !ok || u.Role == role {
		return domainerrors.ErrNotFound
	}
	u.Role = role
	return nil
}

func (s *userRepoStub) Search(_ context.Context, query string, limit int) ([]*entities.User, error) {
	var out []*entities.User
	for _, u := range s.users {
		if strings.Contains(strings.ToLower(u.Email), strings.ToLower(query)) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type parcelRepoStub struct {
	parcels map[uuid.UUID]*entities.Parcel
}

func newParcelRepoStub() *parcelRepoStub {
	return &parcelRepoStub{parcels: map[uuid.UUID]*entities.Parcel{}}
}

func (s *parcelRepoStub) Create(_ context.Context, parcel *entities.Parcel) error {
	clone := *parcel
	s.parcels[parcel.ID] = &clone
	return nil
}

func (s *parcelRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Parcel, error) {
	p, ok := s.parcels[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return p, nil
}

func (s *parcelRepoStub) List(_ context.Context, filter entities.ParcelFilter) ([]*entities.Parcel, error) {
	var out []*entities.Parcel
	for _, p := range s.parcels {
		if filter.Email != "" && p.CreatedByEmail != filter.Email {
			continue
		}
		if filter.PaymentStatus != "" && string(p.PaymentStatus) != filter.PaymentStatus {
			continue
		}
		if filter.DeliveryStatus != "" && string(p.DeliveryStatus) != filter.DeliveryStatus {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreationDate.After(out[j].CreationDate) })
	return out, nil
}

func (s *parcelRepoStub) MarkPaid(_ context.Context, id uuid.UUID) (int64, error) {
	p, ok := s.parcels[id]
	if !ok || p.PaymentStatus != entities.PaymentStatusUnpaid {
		return 0, nil
	}
	p.PaymentStatus = entities.PaymentStatusPaid
	return 1, nil
}

func (s *parcelRepoStub) AssignRider(_ context.Context, id uuid.UUID, riderID, riderName, riderContact string) error {
	p, ok := s.parcels[id]
	if !ok || p.DeliveryStatus != entities.DeliveryStatusNotCollected {
		return domainerrors.ErrNotFound
	}
	p.DeliveryStatus = entities.DeliveryStatusInTransit
	return nil
}

func (s *parcelRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.parcels[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.parcels, id)
	return nil
}

type riderRepoStub struct {
	riders map[uuid.UUID]*entities.Rider
}

func newRiderRepoStub() *riderRepoStub {
	return &riderRepoStub{riders: map[uuid.UUID]*entities.Rider{}}
}

func (s *riderRepoStub) Create(_ context.Context, rider *entities.Rider) error {
	clone := *rider
	s.riders[rider.ID] = &clone
	return nil
}

func (s *riderRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Rider, error) {
	r, ok := s.riders[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return r, nil
}

func (s *riderRepoStub) ListByStatus(_ context.Context, status entities.RiderStatus) ([]*entities.Rider, error) {
	var out []*entities.Rider
	for _, r := range s.riders {
		if r.Status == status {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out, nil
}

func (s *riderRepoStub) ListActiveByDistrict(_ context.Context, district string) ([]*entities.Rider, error) {
	var out []*entities.Rider
	for _, r := range s.riders {
		if r.Status == entities.RiderStatusActive && r.District == district {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *riderRepoStub) UpdateStatus(_ context.Context, id uuid.UUID, status entities.RiderStatus) (int64, error) {
	r, ok := s.riders[id]
	if !ok || r.Status == status {
		return 0, domainerrors.ErrNotFound
	}
	r.Status = status
	return 1, nil
}

type paymentRepoStub struct {
	payments []*entities.Payment
}

func newPaymentRepoStub() *paymentRepoStub {
	return &paymentRepoStub{}
}

func (s *paymentRepoStub) Create(_ context.Context, payment *entities.Payment) error {
	for _, p := range s.payments {
		if p.ParcelID == payment.ParcelID {
			return domainerrors.ErrAlreadyExists
		}
	}
	clone := *payment
	s.payments = append(s.payments, &clone)
	return nil
}

func (s *paymentRepoStub) ListByEmail(_ context.Context, email string) ([]*entities.Payment, error) {
	var out []*entities.Payment
	for _, p := range s.payments {
		if p.Email == email {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaidAt.After(out[j].PaidAt) })
	return out, nil
}

type intentCreatorStub struct {
	secret string
	err    error
}

func (s intentCreatorStub) CreateIntent(context.Context, int64, string) (string, error) {
	return s.secret, s.err
}
