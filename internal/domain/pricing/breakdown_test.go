//go:build unit

package pricing_test

import (
	"testing"

	"hotel-booking-api/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeBreakdown(t *testing.T) {
	t.Run("rooms with extra beds and a discount", func(t *testing.T) {
		// 2 Standard rooms at 400/night with one extra bed each at 50,
		// 3 nights, 10% off:
		//   rooms:      400 x 2 x 3 = 2400
		//   extra beds:  50 x 1 x 2 x 3 = 300
		//   subtotal = 2700, discount = 270, total = 2430
		selections := []pricing.Selection{
			{
				RoomTypeID:        uuid.New(),
				RoomTypeName:      "Standard",
				UnitPrice:         dec("400"),
				Quantity:          2,
				ExtraBedCount:     1,
				ExtraBedUnitPrice: dec("50"),
			},
		}

		b := pricing.ComputeBreakdown(3, selections, dec("10"))

		require.Len(t, b.RoomLines, 1)
		require.Len(t, b.ExtraBedLines, 1)
		assert.True(t, b.RoomLines[0].Total.Equal(dec("2400")), "got %s", b.RoomLines[0].Total)
		assert.True(t, b.ExtraBedLines[0].Total.Equal(dec("300")), "extra beds scale with room count, got %s", b.ExtraBedLines[0].Total)
		assert.True(t, b.Subtotal.Equal(dec("2700")), "got %s", b.Subtotal)
		assert.True(t, b.DiscountAmount.Equal(dec("270")), "got %s", b.DiscountAmount)
		assert.True(t, b.Total.Equal(dec("2430")), "got %s", b.Total)
		assert.False(t, b.AwaitingDates)
	})

	t.Run("three night stay with two rooms and a 10 percent coupon", func(t *testing.T) {
		// 500 x 2 x 3 = 3000, extra beds 100 x 1 x 2 x 3 = 600,
		// subtotal 3600, discount 360, total 3240.
		selections := []pricing.Selection{
			{
				RoomTypeID:        uuid.New(),
				RoomTypeName:      "Deluxe",
				UnitPrice:         dec("500"),
				Quantity:          2,
				ExtraBedCount:     1,
				ExtraBedUnitPrice: dec("100"),
			},
		}

		b := pricing.ComputeBreakdown(3, selections, dec("10"))

		assert.True(t, b.Subtotal.Equal(dec("3600")), "got %s", b.Subtotal)
		assert.True(t, b.DiscountAmount.Equal(dec("360")), "got %s", b.DiscountAmount)
		assert.True(t, b.Total.Equal(dec("3240")), "got %s", b.Total)
	})

	t.Run("multiple room types", func(t *testing.T) {
		selections := []pricing.Selection{
			{RoomTypeID: uuid.New(), RoomTypeName: "Standard", UnitPrice: dec("400"), Quantity: 2},
			{RoomTypeID: uuid.New(), RoomTypeName: "Deluxe", UnitPrice: dec("700"), Quantity: 1, ExtraBedCount: 2, ExtraBedUnitPrice: dec("80")},
		}

		b := pricing.ComputeBreakdown(2, selections, dec("10"))

		// rooms: 400x2x2 + 700x1x2 = 3000; extra beds: 80x2x1x2 = 320
		// subtotal 3320, discount 332, total 2988
		assert.True(t, b.Subtotal.Equal(dec("3320")), "got %s", b.Subtotal)
		assert.True(t, b.DiscountAmount.Equal(dec("332")), "got %s", b.DiscountAmount)
		assert.True(t, b.Total.Equal(dec("2988")), "got %s", b.Total)
		assert.True(t, b.ExtraBedTotal().Equal(dec("320")))
	})

	t.Run("zero percent coupon leaves total untouched", func(t *testing.T) {
		selections := []pricing.Selection{
			{RoomTypeID: uuid.New(), RoomTypeName: "Standard", UnitPrice: dec("400"), Quantity: 1},
		}

		b := pricing.ComputeBreakdown(3, selections, decimal.Zero)

		assert.True(t, b.DiscountAmount.IsZero())
		assert.True(t, b.Total.Equal(dec("1200")))
	})

	t.Run("zero quantity lines are skipped", func(t *testing.T) {
		selections := []pricing.Selection{
			{RoomTypeID: uuid.New(), RoomTypeName: "Standard", UnitPrice: dec("400"), Quantity: 0},
		}

		b := pricing.ComputeBreakdown(3, selections, decimal.Zero)

		assert.Empty(t, b.RoomLines)
		assert.True(t, b.Total.IsZero())
	})

	t.Run("no nights means awaiting dates, not zero price", func(t *testing.T) {
		selections := []pricing.Selection{
			{RoomTypeID: uuid.New(), RoomTypeName: "Standard", UnitPrice: dec("400"), Quantity: 2},
		}

		b := pricing.ComputeBreakdown(0, selections, dec("10"))

		assert.True(t, b.AwaitingDates)
		assert.Empty(t, b.RoomLines)
		assert.True(t, b.Total.IsZero())
		assert.True(t, b.DiscountPct.Equal(dec("10")), "verified coupon survives the awaiting state")
	})

	t.Run("fractional discount keeps full precision", func(t *testing.T) {
		selections := []pricing.Selection{
			{RoomTypeID: uuid.New(), RoomTypeName: "Standard", UnitPrice: dec("333"), Quantity: 1},
		}

		b := pricing.ComputeBreakdown(1, selections, dec("7.5"))

		assert.True(t, b.DiscountAmount.Equal(dec("24.975")), "got %s", b.DiscountAmount)
		assert.True(t, b.Total.Equal(dec("308.025")), "got %s", b.Total)
	})
}

func TestDisplayAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"3240", "3240"},
		{"3240.00", "3240"},
		{"308.025", "308.03"},
		{"0.1", "0.10"},
		{"0", "0"},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			assert.Equal(t, c.want, pricing.DisplayAmount(dec(c.in)))
		})
	}
}
