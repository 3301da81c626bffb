//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/coupon"
	"hotel-booking-api/internal/domain/hotel"
	"hotel-booking-api/internal/domain/stay"
	"hotel-booking-api/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.February, 1, 12, 0, 0, 0, time.Local)

func testHotel(t *testing.T) *hotel.Hotel {
	t.Helper()
	h, err := hotel.NewHotel("Desert Rose", "Riyadh", "King Fahd Rd 1", 5, "", "+966112345678", "stay@desertrose.example")
	require.NoError(t, err)
	return h
}

func testRoomType(t *testing.T, h *hotel.Hotel) *hotel.RoomType {
	t.Helper()
	rt, err := hotel.NewRoomType(h.ID(), "Deluxe", 2, 5, decimal.NewFromInt(500), decimal.NewFromInt(100), 2)
	require.NoError(t, err)
	return rt
}

func testGuest() booking.GuestInfo {
	return booking.GuestInfo{
		FullName:    "Sara Al-Rashid",
		Email:       "sara@example.com",
		Phone:       "+966501234567",
		Nationality: "Saudi Arabia",
	}
}

func testPeriod(t *testing.T) stay.Period {
	t.Helper()
	p, err := stay.NewPeriod(stay.NewDate(2026, time.March, 1), stay.NewDate(2026, time.March, 4))
	require.NoError(t, err)
	return p
}

func TestFactoryCreateBooking(t *testing.T) {
	factory := booking.NewFactory(clock.NewMockClock(testNow))
	h := testHotel(t)
	rt := testRoomType(t, h)

	t.Run("prices the stay through the shared formula", func(t *testing.T) {
		b, err := factory.CreateBooking(h, uuid.New(), testGuest(), testPeriod(t),
			[]booking.RoomRequest{{RoomType: rt, Quantity: 2, ExtraBedCount: 1}},
			4, nil, "")
		require.NoError(t, err)

		// 500x2x3 + 100x1x2x3 = 3600
		assert.True(t, b.Subtotal().Equal(decimal.NewFromInt(3600)), "got %s", b.Subtotal())
		assert.True(t, b.Total().Equal(decimal.NewFromInt(3600)))
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, booking.PaymentUnpaid, b.PaymentStatus())
		assert.Equal(t, 3, b.Period().Nights())
		require.Len(t, b.Lines(), 1)
		assert.Equal(t, 2, b.Lines()[0].Quantity)
	})

	t.Run("applies a valid coupon", func(t *testing.T) {
		cpn, err := coupon.NewCoupon(uuid.New(), "SPRING10", decimal.NewFromInt(10), nil, nil, nil, true)
		require.NoError(t, err)

		b, err := factory.CreateBooking(h, uuid.New(), testGuest(), testPeriod(t),
			[]booking.RoomRequest{{RoomType: rt, Quantity: 2, ExtraBedCount: 1}},
			4, cpn, "")
		require.NoError(t, err)

		assert.True(t, b.DiscountAmount().Equal(decimal.NewFromInt(360)), "got %s", b.DiscountAmount())
		assert.True(t, b.Total().Equal(decimal.NewFromInt(3240)), "got %s", b.Total())
		require.NotNil(t, b.CouponID())
		assert.Equal(t, cpn.ID(), *b.CouponID())
	})

	t.Run("rejects a coupon for another hotel", func(t *testing.T) {
		otherHotel := uuid.New()
		cpn, err := coupon.NewCoupon(uuid.New(), "ELSEWHERE", decimal.NewFromInt(10), &otherHotel, nil, nil, true)
		require.NoError(t, err)

		_, err = factory.CreateBooking(h, uuid.New(), testGuest(), testPeriod(t),
			[]booking.RoomRequest{{RoomType: rt, Quantity: 1}},
			2, cpn, "")
		assert.ErrorIs(t, err, booking.ErrCouponNotApplicable)
	})

	t.Run("rejects quantities past inventory instead of clamping", func(t *testing.T) {
		_, err := factory.CreateBooking(h, uuid.New(), testGuest(), testPeriod(t),
			[]booking.RoomRequest{{RoomType: rt, Quantity: 6}},
			2, nil, "")
		assert.ErrorIs(t, err, booking.ErrInventoryExceeded)
	})

	t.Run("rejects extra beds past the room type limit", func(t *testing.T) {
		_, err := factory.CreateBooking(h, uuid.New(), testGuest(), testPeriod(t),
			[]booking.RoomRequest{{RoomType: rt, Quantity: 1, ExtraBedCount: 3}},
			2, nil, "")
		assert.ErrorIs(t, err, booking.ErrExtraBedsExceeded)
	})

	t.Run("rejects an empty selection", func(t *testing.T) {
		_, err := factory.CreateBooking(h, uuid.New(), testGuest(), testPeriod(t), nil, 2, nil, "")
		assert.ErrorIs(t, err, booking.ErrNoRooms)
	})

	t.Run("rejects a check-in in the past", func(t *testing.T) {
		past, err := stay.NewPeriod(stay.NewDate(2026, time.January, 10), stay.NewDate(2026, time.January, 12))
		require.NoError(t, err)

		_, err = factory.CreateBooking(h, uuid.New(), testGuest(), past,
			[]booking.RoomRequest{{RoomType: rt, Quantity: 1}},
			2, nil, "")
		assert.ErrorIs(t, err, booking.ErrCheckInInPast)
	})

	t.Run("allows a same-day check-in", func(t *testing.T) {
		today, err := stay.NewPeriod(stay.NewDate(2026, time.February, 1), stay.NewDate(2026, time.February, 2))
		require.NoError(t, err)

		_, err = factory.CreateBooking(h, uuid.New(), testGuest(), today,
			[]booking.RoomRequest{{RoomType: rt, Quantity: 1}},
			2, nil, "")
		assert.NoError(t, err)
	})
}

func TestGenerateReference(t *testing.T) {
	hotelID := uuid.New()
	ref := booking.GenerateReference(testNow, hotelID)

	parts := strings.Split(ref.String(), "-")
	require.Len(t, parts, 4)
	assert.Equal(t, "HB", parts[0])
	assert.Equal(t, "20260201", parts[1])
	assert.Len(t, parts[2], 5)

	t.Run("property segment is stable per hotel", func(t *testing.T) {
		other := booking.GenerateReference(testNow.Add(time.Hour), hotelID)
		assert.Equal(t, parts[2], strings.Split(other.String(), "-")[2])
	})

	t.Run("round-trips through NewReference", func(t *testing.T) {
		parsed, err := booking.NewReference(ref.String())
		require.NoError(t, err)
		assert.Equal(t, ref, parsed)
	})
}

func TestNewReference(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		ref, err := booking.NewReference("  hb-20260201-abc12-ff01  ")
		require.NoError(t, err)
		assert.Equal(t, "HB-20260201-ABC12-FF01", ref.String())
	})

	t.Run("rejects malformed references", func(t *testing.T) {
		for _, value := range []string{"", "HB-20260201", "XX-20260201-ABC12-FF01"} {
			_, err := booking.NewReference(value)
			assert.ErrorIs(t, err, booking.ErrInvalidReference, "input %q", value)
		}
	})
}
