//go:build unit

package voucher_test

import (
	"testing"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/stay"
	"hotel-booking-api/internal/voucher"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseSource() voucher.Source {
	return voucher.Source{
		Reference:     "HB-20260201-A1B2C-0F3D",
		Status:        booking.StatusConfirmed,
		PaymentStatus: booking.PaymentPaid,
		GuestName:     "Sara Al-Rashid",
		GuestEmail:    "sara@example.com",
		GuestPhone:    "+966501234567",
		Nationality:   "Saudi Arabia",
		HotelName:     "Desert Rose",
		HotelCity:     "Riyadh",
		HotelAddress:  "King Fahd Rd 1",
		HotelPhone:    "+966112345678",
		HotelEmail:    "stay@desertrose.example",
		CheckIn:       stay.NewDate(2026, time.March, 1),
		CheckOut:      stay.NewDate(2026, time.March, 4),
		Lines: []voucher.LineSource{
			{
				RoomTypeName:      "Deluxe",
				UnitPrice:         decimal.NewFromInt(500),
				Quantity:          1,
				ExtraBedCount:     1,
				ExtraBedUnitPrice: decimal.NewFromInt(100),
			},
		},
		Total: decimal.NewFromInt(3240),
	}
}

func TestAssemble(t *testing.T) {
	t.Run("splits the stored total into base and extra beds", func(t *testing.T) {
		doc, err := voucher.Assemble(baseSource())
		require.NoError(t, err)

		// extra beds: 100 x 1 bed x 1 room x 3 nights = 300
		assert.True(t, doc.Financial.ExtraBedTotal.Equal(decimal.NewFromInt(300)), "got %s", doc.Financial.ExtraBedTotal)
		assert.True(t, doc.Financial.BaseValue.Equal(decimal.NewFromInt(2940)), "got %s", doc.Financial.BaseValue)
		assert.True(t, doc.Financial.Total.Equal(decimal.NewFromInt(3240)))
		assert.True(t, doc.Financial.BaseValue.Add(doc.Financial.ExtraBedTotal).Equal(doc.Financial.Total))

		require.Len(t, doc.Financial.Lines, 3)
		assert.Equal(t, "Accommodation", doc.Financial.Lines[0].Label)
		assert.Equal(t, "Extra beds", doc.Financial.Lines[1].Label)
		assert.Equal(t, "Total", doc.Financial.Lines[2].Label)
	})

	t.Run("extra beds scale with room quantity", func(t *testing.T) {
		src := baseSource()
		src.Lines[0].Quantity = 2

		doc, err := voucher.Assemble(src)
		require.NoError(t, err)

		// 100 x 1 bed x 2 rooms x 3 nights = 600
		assert.True(t, doc.Financial.ExtraBedTotal.Equal(decimal.NewFromInt(600)), "got %s", doc.Financial.ExtraBedTotal)
		assert.True(t, doc.Financial.BaseValue.Equal(decimal.NewFromInt(2640)))
	})

	t.Run("no extra beds collapses the ledger to two lines", func(t *testing.T) {
		src := baseSource()
		src.Lines[0].ExtraBedCount = 0

		doc, err := voucher.Assemble(src)
		require.NoError(t, err)

		assert.True(t, doc.Financial.ExtraBedTotal.IsZero())
		assert.True(t, doc.Financial.BaseValue.Equal(src.Total))
		require.Len(t, doc.Financial.Lines, 2)
		assert.Equal(t, "Accommodation", doc.Financial.Lines[0].Label)
		assert.Equal(t, "Total", doc.Financial.Lines[1].Label)
	})

	t.Run("a paid confirmed booking shows as confirmed", func(t *testing.T) {
		doc, err := voucher.Assemble(baseSource())
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, doc.Header.DisplayStatus)
	})

	t.Run("an unpaid confirmed booking shows as pending", func(t *testing.T) {
		src := baseSource()
		src.PaymentStatus = booking.PaymentUnpaid

		doc, err := voucher.Assemble(src)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusPending, doc.Header.DisplayStatus)
	})

	t.Run("stay block carries the derived night count", func(t *testing.T) {
		doc, err := voucher.Assemble(baseSource())
		require.NoError(t, err)

		assert.Equal(t, 3, doc.Stay.Nights)
		assert.Equal(t, "2026-03-01", doc.Stay.CheckIn)
		assert.Equal(t, "2026-03-04", doc.Stay.CheckOut)
	})

	t.Run("asset id comes from the reference", func(t *testing.T) {
		doc, err := voucher.Assemble(baseSource())
		require.NoError(t, err)
		assert.Equal(t, "A1B2C", doc.Property.AssetID)
	})

	t.Run("default policies fill an empty list", func(t *testing.T) {
		doc, err := voucher.Assemble(baseSource())
		require.NoError(t, err)
		assert.NotEmpty(t, doc.Policies)

		src := baseSource()
		src.Policies = []string{"No pets."}
		doc, err = voucher.Assemble(src)
		require.NoError(t, err)
		assert.Equal(t, []string{"No pets."}, doc.Policies)
	})

	t.Run("missing reference is rejected", func(t *testing.T) {
		src := baseSource()
		src.Reference = "   "

		_, err := voucher.Assemble(src)
		assert.ErrorIs(t, err, voucher.ErrMissingReference)
	})
}

func TestExtractAssetID(t *testing.T) {
	cases := []struct {
		name      string
		reference string
		want      string
	}{
		{"well-formed reference", "HB-20260201-A1B2C-0F3D", "A1B2C"},
		{"too few segments", "HB-20260201", "STD"},
		{"empty property segment", "HB-20260201--0F3D", "STD"},
		{"empty string", "", "STD"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, voucher.ExtractAssetID(c.reference))
		})
	}
}
