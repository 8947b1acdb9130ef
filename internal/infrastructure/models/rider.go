package models

import (
	"time"

	"github.com/google/uuid"
)

type Rider struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"type:varchar(255);not null"`
	Email            string    `gorm:"type:varchar(255);not null;index"`
	Age              int
	Region           string `gorm:"type:varchar(100);not null"`
	District         string `gorm:"type:varchar(100);not null;index"`
	Phone            string `gorm:"type:varchar(50);not null"`
	NationalID       string `gorm:"column:national_id;type:varchar(50);not null"`
	BikeBrand        *string
	BikeRegistration *string
	Note             *string
	Status           string `gorm:"type:varchar(20);not null;default:'pending';index"`
	SubmittedAt      time.Time
}
