package booking

import (
	"errors"

	"hotel-booking-api/internal/domain/coupon"
	"hotel-booking-api/internal/domain/hotel"
	"hotel-booking-api/internal/domain/pricing"
	"hotel-booking-api/internal/domain/stay"
	"hotel-booking-api/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNoRooms             = errors.New("at least one room must be selected")
	ErrInventoryExceeded   = errors.New("selected quantity exceeds room inventory")
	ErrExtraBedsExceeded   = errors.New("selected extra beds exceed the room type limit")
	ErrPeriodNotBookable   = errors.New("stay period is not bookable")
	ErrCheckInInPast       = errors.New("check-in date is in the past")
	ErrCouponNotApplicable = errors.New("coupon is not applicable")
)

// RoomRequest is one requested line: a room type with quantity and extra
// beds as chosen by the guest.
type RoomRequest struct {
	RoomType      *hotel.RoomType
	Quantity      int
	ExtraBedCount int
}

type Factory struct {
	clock clock.Clock
}

func NewFactory(clk clock.Clock) *Factory {
	return &Factory{clock: clk}
}

// CreateBooking assembles and prices a new booking. Pricing always goes
// through pricing.ComputeBreakdown so quote, booking and voucher can
// never disagree on the formula. Unlike the UI-side ledger, server-side
// violations are rejected, not clamped: a request past inventory is a
// client bug or a race, and silently shrinking it would bill the guest
// for a different stay than they asked for.
func (f *Factory) CreateBooking(
	hotelEntity *hotel.Hotel,
	userID uuid.UUID,
	guest GuestInfo,
	period stay.Period,
	requests []RoomRequest,
	guestsCount int,
	couponEntity *coupon.Coupon,
	specialRequest string,
) (*Booking, error) {
	if !period.HasNights() {
		return nil, ErrPeriodNotBookable
	}
	if period.CheckIn().Before(stay.DateOf(f.clock.Now())) {
		return nil, ErrCheckInInPast
	}
	if len(requests) == 0 {
		return nil, ErrNoRooms
	}

	ledger := pricing.NewLedger()
	lines := make([]RoomLine, 0, len(requests))
	for _, req := range requests {
		rt := req.RoomType
		if req.Quantity < 1 || req.Quantity > rt.Inventory() {
			return nil, ErrInventoryExceeded
		}
		if req.ExtraBedCount < 0 || req.ExtraBedCount > rt.MaxExtraBeds() {
			return nil, ErrExtraBedsExceeded
		}

		ledger.Register(rt.ID(), rt.Name(), rt.NightlyRate(), rt.ExtraBedRate(), rt.Inventory(), rt.MaxExtraBeds())
		for i := 0; i < req.Quantity; i++ {
			ledger.Increment(rt.ID())
		}
		for i := 0; i < req.ExtraBedCount; i++ {
			ledger.IncrementExtraBed(rt.ID())
		}

		lines = append(lines, RoomLine{
			RoomTypeID:        rt.ID(),
			RoomTypeName:      rt.Name(),
			UnitPrice:         rt.NightlyRate(),
			Quantity:          req.Quantity,
			ExtraBedCount:     req.ExtraBedCount,
			ExtraBedUnitPrice: rt.ExtraBedRate(),
		})
	}

	discountPct := decimal.Zero
	var couponID *uuid.UUID
	if couponEntity != nil {
		if err := couponEntity.ValidateFor(hotelEntity.ID(), f.clock.Now()); err != nil {
			return nil, ErrCouponNotApplicable
		}
		discountPct = couponEntity.PercentOff()
		id := couponEntity.ID()
		couponID = &id
	}

	breakdown := pricing.ComputeBreakdown(period.Nights(), ledger.Active(), discountPct)
	if breakdown.Total.IsNegative() {
		return nil, ErrNegativeTotal
	}

	now := f.clock.Now()
	return &Booking{
		id:        uuid.New(),
		reference: GenerateReference(now, hotelEntity.ID()),
		userID:    userID,
		hotel: HotelSnapshot{
			HotelID: hotelEntity.ID(),
			Name:    hotelEntity.Name(),
			City:    hotelEntity.City(),
			Address: hotelEntity.Address(),
			Phone:   hotelEntity.Phone(),
			Email:   hotelEntity.Email(),
		},
		guest:          guest,
		period:         period,
		lines:          lines,
		guestsCount:    guestsCount,
		status:         StatusPending,
		paymentStatus:  PaymentUnpaid,
		subtotal:       breakdown.Subtotal,
		discountPct:    breakdown.DiscountPct,
		discountAmount: breakdown.DiscountAmount,
		total:          breakdown.Total,
		couponID:       couponID,
		specialRequest: specialRequest,
	}, nil
}
