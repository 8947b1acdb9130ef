package repositories

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"swift-parcel.backend/internal/domain/entities"
	domainerrors "swift-parcel.backend/internal/domain/errors"
	"swift-parcel.backend/internal/infrastructure/models"
)

// creationDateLayouts covers the formats older writers used for the
// creation_date column, tried in order.
var creationDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseCreationDate(s string) time.Time {
	for _, layout := range creationDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ParcelRepository implements parcel data operations
type ParcelRepository struct {
	db *gorm.DB
}

// NewParcelRepository creates a new parcel repository
func NewParcelRepository(db *gorm.DB) *ParcelRepository {
	return &ParcelRepository{db: db}
}

// Create creates a new parcel
func (r *ParcelRepository) Create(ctx context.Context, parcel *entities.Parcel) error {
	m := &models.Parcel{
		ID:             parcel.ID,
		Name:           parcel.Name,
		Type:           parcel.Type,
		SenderRegion:   parcel.SenderRegion,
		ReceiverRegion: parcel.ReceiverRegion,
		CreatedByEmail: parcel.CreatedByEmail,
		PaymentStatus:  string(parcel.PaymentStatus),
		DeliveryStatus: string(parcel.DeliveryStatus),
		CreationDate:   parcel.CreationDate.Format(time.RFC3339Nano),
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a parcel by ID
func (r *ParcelRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Parcel, error) {
	var m models.Parcel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toParcelEntity(&m), nil
}

// List applies the conjunctive filters and orders by parsed creation date
// descending. The sort runs in Go because creation_date is stored as text.
func (r *ParcelRepository) List(ctx context.Context, filter entities.ParcelFilter) ([]*entities.Parcel, error) {
	query := r.db.WithContext(ctx)
	if filter.Email != "" {
		query = query.Where("created_by_email = ?", filter.Email)
	}
	if filter.PaymentStatus != "" {
		query = query.Where("payment_status = ?", filter.PaymentStatus)
	}
	if filter.DeliveryStatus != "" {
		query = query.Where("delivery_status = ?", filter.DeliveryStatus)
	}

	var parcelModels []models.Parcel
	if err := query.Find(&parcelModels).Error; err != nil {
		return nil, err
	}

	parcels := make([]*entities.Parcel, 0, len(parcelModels))
	for i := range parcelModels {
		parcels = append(parcels, toParcelEntity(&parcelModels[i]))
	}
	sort.SliceStable(parcels, func(i, j int) bool {
		return parcels[i].CreationDate.After(parcels[j].CreationDate)
	})
	return parcels, nil
}

// MarkPaid flips payment_status from unpaid to paid. The caller reports the modified
// count; zero rows only means the parcel was absent or already paid.
func (r *ParcelRepository) MarkPaid(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Parcel{}).
		Where("id = ? AND payment_status = ?", id, string(entities.PaymentStatusUnpaid)).
		Update("payment_status", string(entities.PaymentStatusPaid))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// AssignRider stamps rider identity and moves the parcel to in_transit in a
// single conditional update guarded on not_collected.
func (r *ParcelRepository) AssignRider(ctx context.Context, id uuid.UUID, riderID, riderName, riderContact string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Parcel{}).
		Where("id = ? AND delivery_status = ?", id, string(entities.DeliveryStatusNotCollected)).
		Updates(map[string]interface{}{
			"delivery_status":   string(entities.DeliveryStatusInTransit),
			"assigned_rider_id": riderID,
			"assigned_rider":    riderName,
			"rider_contact":     riderContact,
			"assigned_at":       time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a parcel
func (r *ParcelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Parcel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toParcelEntity(m *models.Parcel) *entities.Parcel {
	return &entities.Parcel{
		ID:              m.ID,
		Name:            m.Name,
		Type:            m.Type,
		SenderRegion:    m.SenderRegion,
		ReceiverRegion:  m.ReceiverRegion,
		CreatedByEmail:  m.CreatedByEmail,
		PaymentStatus:   entities.PaymentStatus(m.PaymentStatus),
		DeliveryStatus:  entities.DeliveryStatus(m.DeliveryStatus),
		CreationDate:    parseCreationDate(m.CreationDate),
		AssignedRiderID: null.StringFromPtr(m.AssignedRiderID),
		AssignedRider:   null.StringFromPtr(m.AssignedRider),
		RiderContact:    null.StringFromPtr(m.RiderContact),
		AssignedAt:      null.TimeFromPtr(m.AssignedAt),
	}
}
