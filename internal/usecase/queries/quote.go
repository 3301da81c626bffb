package queries

import (
	"context"

	"hotel-booking-api/internal/domain/coupon"
	"hotel-booking-api/internal/domain/pricing"
	"hotel-booking-api/internal/domain/stay"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteInput is a price estimation request for a stay at one hotel.
// Dates may be absent; the quote then reports the awaiting-dates state
// instead of failing.
type QuoteInput struct {
	HotelID    uuid.UUID
	CheckIn    string
	CheckOut   string
	Rooms      []QuoteRoomInput
	CouponCode *string
}

type QuoteRoomInput struct {
	RoomTypeID uuid.UUID
	Quantity   int
	ExtraBeds  int
}

type QuoteLineView struct {
	RoomTypeID   uuid.UUID       `json:"room_type_id"`
	RoomTypeName string          `json:"room_type_name"`
	Total        decimal.Decimal `json:"total"`
}

type QuoteView struct {
	AwaitingDates  bool            `json:"awaiting_dates"`
	Nights         int             `json:"nights"`
	RoomLines      []QuoteLineView `json:"room_lines"`
	ExtraBedLines  []QuoteLineView `json:"extra_bed_lines"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountPct    decimal.Decimal `json:"discount_pct"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Total          decimal.Decimal `json:"total"`
	DisplayTotal   string          `json:"display_total"`
}

type QuoteQueries interface {
	Quote(ctx context.Context, input QuoteInput) (*QuoteView, error)
}

type quoteQueriesImpl struct {
	hotels  HotelViewRepo
	coupons CouponViewRepo
	clock   clock.Clock
}

func NewQuoteQueries(hotels HotelViewRepo, coupons CouponViewRepo, clk clock.Clock) QuoteQueries {
	return &quoteQueriesImpl{hotels: hotels, coupons: coupons, clock: clk}
}

// Quote prices a prospective stay without persisting anything. Requested
// quantities beyond inventory are clamped rather than rejected, matching
// the interactive room picker this endpoint backs.
func (q *quoteQueriesImpl) Quote(ctx context.Context, input QuoteInput) (*QuoteView, error) {
	roomTypes, err := q.hotels.FindRoomTypes(ctx, input.HotelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrHotelNotFound
		}
		return nil, errs.Wrap(err, "failed to load room types")
	}
	if len(roomTypes) == 0 {
		return nil, errs.ErrHotelNotFound
	}

	byID := make(map[uuid.UUID]RoomTypeView, len(roomTypes))
	for _, rt := range roomTypes {
		byID[rt.ID] = rt
	}

	ledger := pricing.NewLedger()
	for _, room := range input.Rooms {
		rt, ok := byID[room.RoomTypeID]
		if !ok {
			return nil, errs.ErrRoomTypeNotFound
		}
		ledger.Register(rt.ID, rt.Name, rt.NightlyRate, rt.ExtraBedRate, rt.Inventory, rt.MaxExtraBeds)
		for i := 0; i < room.Quantity; i++ {
			ledger.Increment(rt.ID)
		}
		for i := 0; i < room.ExtraBeds; i++ {
			ledger.IncrementExtraBed(rt.ID)
		}
	}

	discountPct, err := q.resolveDiscount(ctx, input.CouponCode, input.HotelID)
	if err != nil {
		return nil, err
	}

	nights := 0
	if input.CheckIn != "" && input.CheckOut != "" {
		checkIn, err := stay.ParseDate(input.CheckIn)
		if err != nil {
			return nil, errs.ErrInvalidStayPeriod
		}
		checkOut, err := stay.ParseDate(input.CheckOut)
		if err != nil {
			return nil, errs.ErrInvalidStayPeriod
		}
		nights = stay.PeriodOf(checkIn, checkOut).Nights()
	}

	breakdown := pricing.ComputeBreakdown(nights, ledger.Active(), discountPct)
	return toQuoteView(breakdown), nil
}

func (q *quoteQueriesImpl) resolveDiscount(ctx context.Context, code *string, hotelID uuid.UUID) (decimal.Decimal, error) {
	if code == nil || *code == "" {
		return decimal.Zero, nil
	}

	view, err := q.coupons.FindByCode(ctx, *code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return decimal.Zero, errs.ErrCouponNotFound
		}
		return decimal.Zero, errs.Wrap(err, "failed to find coupon")
	}

	entity, err := coupon.NewCoupon(view.ID, view.Code, view.PercentOff, view.HotelID, view.ValidFrom, view.ValidTo, view.IsActive)
	if err != nil {
		return decimal.Zero, errs.ErrInvalidCoupon
	}
	if err := entity.ValidateFor(hotelID, q.clock.Now()); err != nil {
		return decimal.Zero, errs.ErrInvalidCoupon
	}

	return entity.PercentOff(), nil
}

func toQuoteView(b pricing.Breakdown) *QuoteView {
	view := &QuoteView{
		AwaitingDates:  b.AwaitingDates,
		Nights:         b.Nights,
		Subtotal:       b.Subtotal,
		DiscountPct:    b.DiscountPct,
		DiscountAmount: b.DiscountAmount,
		Total:          b.Total,
		DisplayTotal:   pricing.DisplayAmount(b.Total),
	}
	for _, line := range b.RoomLines {
		view.RoomLines = append(view.RoomLines, QuoteLineView(line))
	}
	for _, line := range b.ExtraBedLines {
		view.ExtraBedLines = append(view.ExtraBedLines, QuoteLineView(line))
	}
	return view
}
