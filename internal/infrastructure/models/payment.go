package models

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email         string    `gorm:"type:varchar(255);not null;index"`
	ParcelID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Amount        int64     `gorm:"not null"`
	TransactionID string    `gorm:"type:varchar(255);not null"`
	PaymentMethod string    `gorm:"type:varchar(100)"`
	Status        string    `gorm:"type:varchar(20);not null;default:'paid'"`
	PaidAt        time.Time
}
