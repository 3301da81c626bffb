//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quoteNow = time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)

type fakeHotelViewRepo struct {
	roomTypes map[uuid.UUID][]queries.RoomTypeView
	hotels    map[uuid.UUID]*queries.HotelView
}

func (f *fakeHotelViewRepo) FindByID(_ context.Context, id uuid.UUID) (*queries.HotelView, error) {
	if view, ok := f.hotels[id]; ok {
		return view, nil
	}
	return nil, infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
}

func (f *fakeHotelViewRepo) Search(_ context.Context, _ string, _ int32) ([]*queries.HotelListItem, error) {
	return nil, nil
}

func (f *fakeHotelViewRepo) FindRoomTypes(_ context.Context, hotelID uuid.UUID) ([]queries.RoomTypeView, error) {
	return f.roomTypes[hotelID], nil
}

type fakeCouponViewRepo struct {
	coupons map[string]*queries.CouponView
}

func (f *fakeCouponViewRepo) FindByCode(_ context.Context, code string) (*queries.CouponView, error) {
	if view, ok := f.coupons[code]; ok {
		return view, nil
	}
	return nil, infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
}

func newQuoteFixture() (queries.QuoteQueries, uuid.UUID, queries.RoomTypeView, *fakeCouponViewRepo) {
	hotelID := uuid.New()
	deluxe := queries.RoomTypeView{
		ID:           uuid.New(),
		HotelID:      hotelID,
		Name:         "Deluxe",
		Capacity:     2,
		Inventory:    3,
		NightlyRate:  decimal.NewFromInt(500),
		ExtraBedRate: decimal.NewFromInt(100),
		MaxExtraBeds: 2,
	}
	hotels := &fakeHotelViewRepo{roomTypes: map[uuid.UUID][]queries.RoomTypeView{hotelID: {deluxe}}}
	coupons := &fakeCouponViewRepo{coupons: map[string]*queries.CouponView{}}
	q := queries.NewQuoteQueries(hotels, coupons, clock.NewMockClock(quoteNow))
	return q, hotelID, deluxe, coupons
}

func TestQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("prices a dated stay with a coupon", func(t *testing.T) {
		q, hotelID, deluxe, coupons := newQuoteFixture()
		code := "SPRING10"
		coupons.coupons[code] = &queries.CouponView{
			ID:         uuid.New(),
			Code:       code,
			PercentOff: decimal.NewFromInt(10),
			IsActive:   true,
		}

		view, err := q.Quote(ctx, queries.QuoteInput{
			HotelID:    hotelID,
			CheckIn:    "2026-03-01",
			CheckOut:   "2026-03-04",
			Rooms:      []queries.QuoteRoomInput{{RoomTypeID: deluxe.ID, Quantity: 2, ExtraBeds: 1}},
			CouponCode: &code,
		})
		require.NoError(t, err)

		assert.False(t, view.AwaitingDates)
		assert.Equal(t, 3, view.Nights)
		assert.True(t, view.Subtotal.Equal(decimal.NewFromInt(3600)), "got %s", view.Subtotal)
		assert.True(t, view.DiscountAmount.Equal(decimal.NewFromInt(360)), "got %s", view.DiscountAmount)
		assert.True(t, view.Total.Equal(decimal.NewFromInt(3240)), "got %s", view.Total)
		assert.Equal(t, "3240", view.DisplayTotal)
	})

	t.Run("clamps quantities to inventory instead of failing", func(t *testing.T) {
		q, hotelID, deluxe, _ := newQuoteFixture()

		view, err := q.Quote(ctx, queries.QuoteInput{
			HotelID:  hotelID,
			CheckIn:  "2026-03-01",
			CheckOut: "2026-03-02",
			Rooms:    []queries.QuoteRoomInput{{RoomTypeID: deluxe.ID, Quantity: 10, ExtraBeds: 9}},
		})
		require.NoError(t, err)

		// inventory 3, max 2 beds per room: 500x3 + 100x2x3 = 2100
		assert.True(t, view.Subtotal.Equal(decimal.NewFromInt(2100)), "got %s", view.Subtotal)
	})

	t.Run("missing dates report awaiting state and keep the coupon", func(t *testing.T) {
		q, hotelID, deluxe, coupons := newQuoteFixture()
		code := "SPRING10"
		coupons.coupons[code] = &queries.CouponView{
			ID:         uuid.New(),
			Code:       code,
			PercentOff: decimal.NewFromInt(10),
			IsActive:   true,
		}

		view, err := q.Quote(ctx, queries.QuoteInput{
			HotelID:    hotelID,
			Rooms:      []queries.QuoteRoomInput{{RoomTypeID: deluxe.ID, Quantity: 2}},
			CouponCode: &code,
		})
		require.NoError(t, err)

		assert.True(t, view.AwaitingDates)
		assert.True(t, view.Total.IsZero())
		assert.True(t, view.DiscountPct.Equal(decimal.NewFromInt(10)))
	})

	t.Run("malformed dates are rejected", func(t *testing.T) {
		q, hotelID, deluxe, _ := newQuoteFixture()

		_, err := q.Quote(ctx, queries.QuoteInput{
			HotelID:  hotelID,
			CheckIn:  "01/03/2026",
			CheckOut: "2026-03-04",
			Rooms:    []queries.QuoteRoomInput{{RoomTypeID: deluxe.ID, Quantity: 1}},
		})
		assert.ErrorIs(t, err, errs.ErrInvalidStayPeriod)
	})

	t.Run("unknown room type", func(t *testing.T) {
		q, hotelID, _, _ := newQuoteFixture()

		_, err := q.Quote(ctx, queries.QuoteInput{
			HotelID: hotelID,
			Rooms:   []queries.QuoteRoomInput{{RoomTypeID: uuid.New(), Quantity: 1}},
		})
		assert.ErrorIs(t, err, errs.ErrRoomTypeNotFound)
	})

	t.Run("hotel without room types", func(t *testing.T) {
		q, _, _, _ := newQuoteFixture()

		_, err := q.Quote(ctx, queries.QuoteInput{HotelID: uuid.New()})
		assert.ErrorIs(t, err, errs.ErrHotelNotFound)
	})

	t.Run("unknown coupon code", func(t *testing.T) {
		q, hotelID, deluxe, _ := newQuoteFixture()
		code := "NOSUCH"

		_, err := q.Quote(ctx, queries.QuoteInput{
			HotelID:    hotelID,
			Rooms:      []queries.QuoteRoomInput{{RoomTypeID: deluxe.ID, Quantity: 1}},
			CouponCode: &code,
		})
		assert.ErrorIs(t, err, errs.ErrCouponNotFound)
	})

	t.Run("expired coupon is invalid", func(t *testing.T) {
		q, hotelID, deluxe, coupons := newQuoteFixture()
		code := "EXPIRED"
		past := quoteNow.Add(-time.Hour)
		coupons.coupons[code] = &queries.CouponView{
			ID:         uuid.New(),
			Code:       code,
			PercentOff: decimal.NewFromInt(10),
			ValidTo:    &past,
			IsActive:   true,
		}

		_, err := q.Quote(ctx, queries.QuoteInput{
			HotelID:    hotelID,
			Rooms:      []queries.QuoteRoomInput{{RoomTypeID: deluxe.ID, Quantity: 1}},
			CouponCode: &code,
		})
		assert.ErrorIs(t, err, errs.ErrInvalidCoupon)
	})
}
