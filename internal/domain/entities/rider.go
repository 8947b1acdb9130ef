package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// RiderStatus represents a rider application's status
type RiderStatus string

const (
	RiderStatusPending  RiderStatus = "pending"
	RiderStatusActive   RiderStatus = "active"
	RiderStatusRejected RiderStatus = "rejected"
)

// ValidRiderStatus reports whether s is one of the known statuses
func ValidRiderStatus(s RiderStatus) bool {
	switch s {
	case RiderStatusPending, RiderStatusActive, RiderStatusRejected:
		return true
	}
	return false
}

// Rider represents a rider application. It stays a separate record from the
// User; activation promotes the matching user's role to rider.
type Rider struct {
	ID               uuid.UUID   `json:"id"`
	Name             string      `json:"name"`
	Email            string      `json:"email"`
	Age              int         `json:"age"`
	Region           string      `json:"region"`
	District         string      `json:"district"`
	Phone            string      `json:"phone"`
	NationalID       string      `json:"nid"`
	BikeBrand        null.String `json:"bikeBrand,omitempty"`
	BikeRegistration null.String `json:"bikeRegistration,omitempty"`
	Note             null.String `json:"note,omitempty"`
	Status           RiderStatus `json:"status"`
	SubmittedAt      time.Time   `json:"submittedAt"`
}

// ApplyRiderInput represents a rider application submission
type ApplyRiderInput struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Age              int    `json:"age" binding:"required"`
	Region           string `json:"region" binding:"required"`
	District         string `json:"district" binding:"required"`
	Phone            string `json:"phone" binding:"required"`
	NationalID       string `json:"nid" binding:"required"`
	BikeBrand        string `json:"bikeBrand"`
	BikeRegistration string `json:"bikeRegistration"`
	Note             string `json:"note"`
}

// UpdateRiderStatusInput represents the admin decision on an application.
// Email identifies the user to promote when the new status is active.
type UpdateRiderStatusInput struct {
	Status RiderStatus `json:"status" binding:"required"`
	Email  string      `json:"email"`
}

// UpdateRiderStatusResponse reports the applied transition
type UpdateRiderStatusResponse struct {
	Status        RiderStatus `json:"status"`
	ModifiedCount int64       `json:"modifiedCount"`
}
