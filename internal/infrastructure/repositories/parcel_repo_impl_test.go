package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"swift-parcel.backend/internal/domain/entities"
	domainerrors "swift-parcel.backend/internal/domain/errors"
)

func newParcel(email string) *entities.Parcel {
	return &entities.Parcel{
		ID:             uuid.New(),
		Name:           "Books",
		Type:           "document",
		SenderRegion:   "Dhaka",
		ReceiverRegion: "Chattogram",
		CreatedByEmail: email,
		PaymentStatus:  entities.PaymentStatusUnpaid,
		DeliveryStatus: entities.DeliveryStatusNotCollected,
		CreationDate:   time.Now(),
	}
}

func TestParcelRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createParcelTable(t, db)
	repo := NewParcelRepository(db)

	parcel := newParcel("alice@example.com")
	require.NoError(t, repo.Create(context.Background(), parcel))

	got, err := repo.GetByID(context.Background(), parcel.ID)
	require.NoError(t, err)
	assert.Equal(t, parcel.ID, got.ID)
	assert.Equal(t, entities.PaymentStatusUnpaid, got.PaymentStatus)
	assert.Equal(t, entities.DeliveryStatusNotCollected, got.DeliveryStatus)
	assert.False(t, got.AssignedRiderID.Valid)
	assert.WithinDuration(t, parcel.CreationDate, got.CreationDate, time.Second)
}

func TestParcelRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	createParcelTable(t, db)
	repo := NewParcelRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestParcelRepository_List_Filters(t *testing.T) {
	db := newTestDB(t)
	createParcelTable(t, db)
	repo := NewParcelRepository(db)

	alice := newParcel("alice@example.com")
	bob := newParcel("bob@example.com")
	require.NoError(t, repo.Create(context.Background(), alice))
	require.NoError(t, repo.Create(context.Background(), bob))
	_, err := repo.MarkPaid(context.Background(), bob.ID)
	require.NoError(t, err)

	parcels, err := repo.List(context.Background(), entities.ParcelFilter{Email: "alice@example.com"})
	require.NoError(t, err)
	require.Len(t, parcels, 1)
	assert.Equal(t, alice.ID, parcels[0].ID)

	parcels, err = repo.List(context.Background(), entities.ParcelFilter{PaymentStatus: "paid"})
	require.NoError(t, err)
	require.Len(t, parcels, 1)
	assert.Equal(t, bob.ID, parcels[0].ID)

	// conjunctive: both filters must match
	parcels, err = repo.List(context.Background(), entities.ParcelFilter{
		Email:         "alice@example.com",
		PaymentStatus: "paid",
	})
	require.NoError(t, err)
	assert.Empty(t, parcels)
}

func TestParcelRepository_List_OrdersByCreationDate(t *testing.T) {
	db := newTestDB(t)
	createParcelTable(t, db)
	repo := NewParcelRepository(db)

	// rows written by older clients carry mixed creation_date formats;
	// the listing still has to come back newest first
	oldest := uuid.New()
	middle := uuid.New()
	newest := uuid.New()
	insert := `INSERT INTO parcels
		(id, name, type, sender_region, receiver_region, created_by_email,
		 payment_status, delivery_status, creation_date)
		VALUES (?, 'p', 't', 'a', 'b', 'x@y.com', 'unpaid', 'not_collected', ?)`
	mustExec(t, db, insert, middle.String(), "2024-06-15 09:30:00")
	mustExec(t, db, insert, newest.String(), "2025-01-20T10:00:00Z")
	mustExec(t, db, insert, oldest.String(), "2023-03-01")

	parcels, err := repo.List(context.Background(), entities.ParcelFilter{})
	require.NoError(t, err)
	require.Len(t, parcels, 3)
	assert.Equal(t, newest, parcels[0].ID)
	assert.Equal(t, middle, parcels[1].ID)
	assert.Equal(t, oldest, parcels[2].ID)
}

func TestParcelRepository_MarkPaid(t *testing.T) {
	db := newTestDB(t)
	createParcelTable(t, db)
	repo := NewParcelRepository(db)

	parcel := newParcel("alice@example.com")
	require.NoError(t, repo.Create(context.Background(), parcel))

	modified, err := repo.MarkPaid(context.Background(), parcel.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), modified)

	got, err := repo.GetByID(context.Background(), parcel.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentStatusPaid, got.PaymentStatus)

	// second attempt matches nothing but is not an error
	modified, err = repo.MarkPaid(context.Background(), parcel.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), modified)
}

func TestParcelRepository_AssignRider(t *testing.T) {
	db := newTestDB(t)
	createParcelTable(t, db)
	repo := NewParcelRepository(db)

	parcel := newParcel("alice@example.com")
	require.NoError(t, repo.Create(context.Background(), parcel))

	riderID := uuid.New().String()
	require.NoError(t, repo.AssignRider(context.Background(), parcel.ID, riderID, "Karim", "017xxxxxxxx"))

	got, err := repo.GetByID(context.Background(), parcel.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.DeliveryStatusInTransit, got.DeliveryStatus)
	assert.Equal(t, riderID, got.AssignedRiderID.String)
	assert.Equal(t, "Karim", got.AssignedRider.String)
	assert.True(t, got.AssignedAt.Valid)

	// parcel already in transit, the guard rejects a second assignment
	err = repo.AssignRider(context.Background(), parcel.ID, riderID, "Karim", "017xxxxxxxx")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestParcelRepository_AssignRider_NotFound(t *testing.T) {
	db := newTestDB(t)
	createParcelTable(t, db)
	repo := NewParcelRepository(db)

	err := repo.AssignRider(context.Background(), uuid.New(), "r1", "Karim", "017")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestParcelRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	createParcelTable(t, db)
	repo := NewParcelRepository(db)

	parcel := newParcel("alice@example.com")
	require.NoError(t, repo.Create(context.Background(), parcel))

	require.NoError(t, repo.Delete(context.Background(), parcel.ID))

	_, err := repo.GetByID(context.Background(), parcel.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.Delete(context.Background(), parcel.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestParseCreationDate(t *testing.T) {
	cases := map[string]time.Time{
		"2025-01-20T10:00:00.5Z": time.Date(2025, 1, 20, 10, 0, 0, 500000000, time.UTC),
		"2025-01-20T10:00:00Z":   time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC),
		"2024-06-15 09:30:00":    time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC),
		"2023-03-01":             time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	for in, want := range cases {
		assert.True(t, parseCreationDate(in).Equal(want), "input %q", in)
	}
	// unparseable values sort last, not panic
	assert.True(t, parseCreationDate("garbage").IsZero())
}
