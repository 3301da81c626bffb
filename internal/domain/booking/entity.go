package booking

import (
	"errors"
	"time"

	"hotel-booking-api/internal/domain/stay"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativeTotal        = errors.New("total cannot be negative")
	ErrBookingNotPending    = errors.New("booking is not pending")
	ErrBookingNotCancelable = errors.New("booking cannot be cancelled")
)

// GuestInfo is the point-in-time guest snapshot captured at booking time.
// The name may mix Latin and Arabic script.
type GuestInfo struct {
	FullName    string
	Email       string
	Phone       string
	Nationality string
}

// RoomLine is a priced room-type line frozen into the booking. Rates are
// snapshots: later rate changes never touch an existing booking.
type RoomLine struct {
	RoomTypeID        uuid.UUID
	RoomTypeName      string
	UnitPrice         decimal.Decimal
	Quantity          int
	ExtraBedCount     int
	ExtraBedUnitPrice decimal.Decimal
}

// HotelSnapshot is the property block frozen into the booking for the
// voucher; it survives hotel renames and delistings.
type HotelSnapshot struct {
	HotelID uuid.UUID
	Name    string
	City    string
	Address string
	Phone   string
	Email   string
}

type Booking struct {
	id             uuid.UUID
	reference      Reference
	userID         uuid.UUID
	hotel          HotelSnapshot
	guest          GuestInfo
	period         stay.Period
	lines          []RoomLine
	guestsCount    int
	status         Status
	paymentStatus  PaymentStatus
	subtotal       decimal.Decimal
	discountPct    decimal.Decimal
	discountAmount decimal.Decimal
	total          decimal.Decimal
	couponID       *uuid.UUID
	specialRequest string
	createdAt      time.Time
	updatedAt      time.Time
}

func ReconstructBooking(
	id uuid.UUID,
	reference Reference,
	userID uuid.UUID,
	hotel HotelSnapshot,
	guest GuestInfo,
	period stay.Period,
	lines []RoomLine,
	guestsCount int,
	status Status,
	paymentStatus PaymentStatus,
	subtotal, discountPct, discountAmount, total decimal.Decimal,
	couponID *uuid.UUID,
	specialRequest string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:             id,
		reference:      reference,
		userID:         userID,
		hotel:          hotel,
		guest:          guest,
		period:         period,
		lines:          lines,
		guestsCount:    guestsCount,
		status:         status,
		paymentStatus:  paymentStatus,
		subtotal:       subtotal,
		discountPct:    discountPct,
		discountAmount: discountAmount,
		total:          total,
		couponID:       couponID,
		specialRequest: specialRequest,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID { return b.id }
func (b *Booking) Reference() Reference { return b.reference }
func (b *Booking) UserID() uuid.UUID { return b.userID }
func (b *Booking) Hotel() HotelSnapshot { return b.hotel }
func (b *Booking) Guest() GuestInfo { return b.guest }
func (b *Booking) Period() stay.Period { return b.period }
func (b *Booking) Nights() int { return b.period.Nights() }
func (b *Booking) Lines() []RoomLine { return b.lines }
func (b *Booking) GuestsCount() int { return b.guestsCount }
func (b *Booking) Status() Status { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) Subtotal() decimal.Decimal { return b.subtotal }
func (b *Booking) DiscountPct() decimal.Decimal { return b.discountPct }
func (b *Booking) DiscountAmount() decimal.Decimal { return b.discountAmount }
func (b *Booking) Total() decimal.Decimal { return b.total }
func (b *Booking) CouponID() *uuid.UUID { return b.couponID }
func (b *Booking) SpecialRequest() string { return b.specialRequest }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

func (b *Booking) DisplayStatus() Status {
	return DeriveDisplayStatus(b.status, b.paymentStatus)
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

// TotalExtraBeds sums extra beds across all room lines.
func (b *Booking) TotalExtraBeds() int {
	total := 0
	for _, line := range b.lines {
		total += line.ExtraBedCount
	}
	return total
}

func (b *Booking) TotalRooms() int {
	total := 0
	for _, line := range b.lines {
		total += line.Quantity
	}
	return total
}

// MarkPaid flips payment to PAID and confirms the workflow status; this
// is what unlocks the CONFIRMED badge on the voucher.
func (b *Booking) MarkPaid() error {
	status, payment, err := TransitionPaid(b.status, b.paymentStatus)
	if err != nil {
		return err
	}
	b.status = status
	b.paymentStatus = payment
	return nil
}

func (b *Booking) Cancel() error {
	status, payment, err := TransitionCancelled(b.status, b.paymentStatus)
	if err != nil {
		return err
	}
	b.status = status
	b.paymentStatus = payment
	return nil
}
