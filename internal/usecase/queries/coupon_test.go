//go:build unit

package queries_test

import (
	"context"
	"testing"

	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCouponVerify(t *testing.T) {
	ctx := context.Background()
	hotelID := uuid.New()

	newQueries := func(views ...*queries.CouponView) queries.CouponQueries {
		repo := &fakeCouponViewRepo{coupons: map[string]*queries.CouponView{}}
		for _, view := range views {
			repo.coupons[view.Code] = view
		}
		return queries.NewCouponQueries(repo, clock.NewMockClock(quoteNow))
	}

	t.Run("normalizes the code before lookup", func(t *testing.T) {
		q := newQueries(&queries.CouponView{
			ID:         uuid.New(),
			Code:       "SUMMER10",
			PercentOff: decimal.NewFromInt(10),
			IsActive:   true,
		})

		view, err := q.Verify(ctx, "  summer10 ", hotelID)
		require.NoError(t, err)
		assert.Equal(t, "SUMMER10", view.Code)
		assert.True(t, view.PercentOff.Equal(decimal.NewFromInt(10)))
	})

	t.Run("unknown code", func(t *testing.T) {
		q := newQueries()

		_, err := q.Verify(ctx, "NOSUCH", hotelID)
		assert.ErrorIs(t, err, errs.ErrCouponNotFound)
	})

	t.Run("blank code never reaches the repository", func(t *testing.T) {
		q := newQueries()

		_, err := q.Verify(ctx, "   ", hotelID)
		assert.ErrorIs(t, err, errs.ErrInvalidCoupon)
	})

	t.Run("every invalid state collapses to one error", func(t *testing.T) {
		otherHotel := uuid.New()
		past := quoteNow.Add(-1)
		future := quoteNow.Add(1)

		cases := []struct {
			name string
			view *queries.CouponView
		}{
			{"inactive", &queries.CouponView{ID: uuid.New(), Code: "C1", PercentOff: decimal.NewFromInt(10)}},
			{"wrong hotel", &queries.CouponView{ID: uuid.New(), Code: "C2", PercentOff: decimal.NewFromInt(10), HotelID: &otherHotel, IsActive: true}},
			{"expired", &queries.CouponView{ID: uuid.New(), Code: "C3", PercentOff: decimal.NewFromInt(10), ValidTo: &past, IsActive: true}},
			{"not yet valid", &queries.CouponView{ID: uuid.New(), Code: "C4", PercentOff: decimal.NewFromInt(10), ValidFrom: &future, IsActive: true}},
			{"corrupt percentage", &queries.CouponView{ID: uuid.New(), Code: "C5", PercentOff: decimal.NewFromInt(150), IsActive: true}},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				q := newQueries(c.view)
				_, err := q.Verify(ctx, c.view.Code, hotelID)
				assert.ErrorIs(t, err, errs.ErrInvalidCoupon)
			})
		}
	})
}
