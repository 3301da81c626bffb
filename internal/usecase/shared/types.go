package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CouponSnapshot struct {
	ID         uuid.UUID
	Code       string
	PercentOff decimal.Decimal
	HotelID    *uuid.UUID
	ValidFrom  *time.Time
	ValidTo    *time.Time
	IsActive   bool
}

type BookingSnapshot struct {
	ID            uuid.UUID
	Reference     string
	UserID        uuid.UUID
	HotelID       uuid.UUID
	Status        string
	PaymentStatus string
	CheckIn       string
	CheckOut      string
}

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

const (
	IdempotencyStatusProcessing = "PROCESSING"
	IdempotencyStatusCompleted  = "COMPLETED"
)
