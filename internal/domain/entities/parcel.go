package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PaymentStatus represents a parcel's payment axis
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// DeliveryStatus represents a parcel's delivery axis
type DeliveryStatus string

const (
	DeliveryStatusNotCollected DeliveryStatus = "not_collected"
	DeliveryStatusInTransit    DeliveryStatus = "in_transit"
	DeliveryStatusDelivered    DeliveryStatus = "delivered"
)

// Parcel represents a parcel entity
type Parcel struct {
	ID              uuid.UUID      `json:"id"`
	Name            string         `json:"name"`
	Type            string         `json:"type"`
	SenderRegion    string         `json:"senderRegion"`
	ReceiverRegion  string         `json:"receiverRegion"`
	CreatedByEmail  string         `json:"createdByEmail"`
	PaymentStatus   PaymentStatus  `json:"paymentStatus"`
	DeliveryStatus  DeliveryStatus `json:"deliveryStatus"`
	CreationDate    time.Time      `json:"creationDate"`
	AssignedRiderID null.String    `json:"assignedRiderId,omitempty"`
	AssignedRider   null.String    `json:"assignedRiderName,omitempty"`
	RiderContact    null.String    `json:"riderContact,omitempty"`
	AssignedAt      null.Time      `json:"assignedAt,omitempty"`
}

// CreateParcelInput represents input for creating a parcel
type CreateParcelInput struct {
	Name           string `json:"name" binding:"required"`
	Type           string `json:"type" binding:"required"`
	SenderRegion   string `json:"senderRegion" binding:"required"`
	ReceiverRegion string `json:"receiverRegion" binding:"required"`
	CreatedByEmail string `json:"createdByEmail"`
}

// AssignRiderInput represents input for assigning a rider to a parcel
type AssignRiderInput struct {
	RiderID      string `json:"riderId" binding:"required"`
	RiderName    string `json:"riderName"`
	RiderContact string `json:"riderContact"`
}

// ParcelFilter holds the conjunctive, all-optional listing filters
type ParcelFilter struct {
	Email          string
	PaymentStatus  string
	DeliveryStatus string
}
