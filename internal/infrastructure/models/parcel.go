package models

import (
	"time"

	"github.com/google/uuid"
)

type Parcel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Type           string    `gorm:"type:varchar(100);not null"`
	SenderRegion   string    `gorm:"type:varchar(100);not null"`
	ReceiverRegion string    `gorm:"type:varchar(100);not null"`
	CreatedByEmail string    `gorm:"type:varchar(255);index"`
	PaymentStatus  string    `gorm:"type:varchar(20);not null;default:'unpaid'"`
	DeliveryStatus string    `gorm:"type:varchar(20);not null;default:'not_collected'"`
	// Kept as text: rows written by earlier clients carry assorted date
	// formats, so ordering happens in Go on the parsed value.
	CreationDate    string `gorm:"type:varchar(64);not null"`
	AssignedRiderID *string
	AssignedRider   *string
	RiderContact    *string
	AssignedAt      *time.Time
}
