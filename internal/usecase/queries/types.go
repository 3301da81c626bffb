package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for the read side). Check-in/check-out travel as
// YYYY-MM-DD strings end to end; they are calendar dates, and carrying
// them as timestamps invites timezone off-by-one bugs.

type BookingLineView struct {
	RoomTypeID        uuid.UUID       `json:"room_type_id"`
	RoomTypeName      string          `json:"room_type_name"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	Quantity          int             `json:"quantity"`
	ExtraBedCount     int             `json:"extra_bed_count"`
	ExtraBedUnitPrice decimal.Decimal `json:"extra_bed_unit_price"`
}

type BookingView struct {
	ID             uuid.UUID         `json:"id"`
	Reference      string            `json:"reference"`
	UserID         uuid.UUID         `json:"user_id"`
	HotelID        uuid.UUID         `json:"hotel_id"`
	HotelName      string            `json:"hotel_name"`
	HotelCity      string            `json:"hotel_city"`
	HotelAddress   string            `json:"hotel_address"`
	HotelPhone     string            `json:"hotel_phone"`
	HotelEmail     string            `json:"hotel_email"`
	GuestName      string            `json:"guest_name"`
	GuestEmail     string            `json:"guest_email"`
	GuestPhone     string            `json:"guest_phone"`
	Nationality    string            `json:"nationality"`
	CheckIn        string            `json:"check_in"`
	CheckOut       string            `json:"check_out"`
	Nights         int               `json:"nights"`
	GuestsCount    int               `json:"guests_count"`
	Status         string            `json:"status"`
	PaymentStatus  string            `json:"payment_status"`
	DisplayStatus  string            `json:"display_status"`
	Subtotal       decimal.Decimal   `json:"subtotal"`
	DiscountPct    decimal.Decimal   `json:"discount_pct"`
	DiscountAmount decimal.Decimal   `json:"discount_amount"`
	Total          decimal.Decimal   `json:"total"`
	CouponCode     *string           `json:"coupon_code,omitempty"`
	SpecialRequest *string           `json:"special_request,omitempty"`
	Lines          []BookingLineView `json:"lines"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

type BookingListItem struct {
	ID            uuid.UUID       `json:"id"`
	Reference     string          `json:"reference"`
	HotelName     string          `json:"hotel_name"`
	HotelCity     string          `json:"hotel_city"`
	CheckIn       string          `json:"check_in"`
	CheckOut      string          `json:"check_out"`
	Nights        int             `json:"nights"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"payment_status"`
	DisplayStatus string          `json:"display_status"`
	Total         decimal.Decimal `json:"total"`
	CreatedAt     time.Time       `json:"created_at"`
}

type RoomTypeView struct {
	ID           uuid.UUID       `json:"id"`
	HotelID      uuid.UUID       `json:"hotel_id"`
	Name         string          `json:"name"`
	Capacity     int             `json:"capacity"`
	Inventory    int             `json:"inventory"`
	NightlyRate  decimal.Decimal `json:"nightly_rate"`
	ExtraBedRate decimal.Decimal `json:"extra_bed_rate"`
	MaxExtraBeds int             `json:"max_extra_beds"`
}

type HotelView struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	City        string         `json:"city"`
	Address     string         `json:"address"`
	Stars       int            `json:"stars"`
	Description string         `json:"description"`
	Phone       string         `json:"phone"`
	Email       string         `json:"email"`
	RoomTypes   []RoomTypeView `json:"room_types,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type HotelListItem struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	City        string          `json:"city"`
	Stars       int             `json:"stars"`
	MinRate     decimal.Decimal `json:"min_rate"`
	Description string          `json:"description"`
}

type CouponView struct {
	ID         uuid.UUID       `json:"id"`
	Code       string          `json:"code"`
	PercentOff decimal.Decimal `json:"percent_off"`
	HotelID    *uuid.UUID      `json:"hotel_id,omitempty"`
	ValidFrom  *time.Time      `json:"valid_from,omitempty"`
	ValidTo    *time.Time      `json:"valid_to,omitempty"`
	IsActive   bool            `json:"is_active"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Phone    string    `json:"phone"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type IdempotencyKeyView struct {
	Key             uuid.UUID  `json:"key"`
	UserID          uuid.UUID  `json:"user_id"`
	Endpoint        string     `json:"endpoint"`
	RequestHash     string     `json:"request_hash"`
	Status          string     `json:"status"`
	ResultBookingID *uuid.UUID `json:"result_booking_id,omitempty"`
	ExpiresAt       time.Time  `json:"expires_at"`
}
