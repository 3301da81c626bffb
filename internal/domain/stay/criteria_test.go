//go:build unit

package stay_test

import (
	"testing"
	"time"

	"hotel-booking-api/internal/domain/stay"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCriteriaDefaults(t *testing.T) {
	c := stay.NewCriteria()

	assert.Equal(t, stay.MinRooms, c.Rooms())
	assert.Equal(t, 2, c.Adults())
	assert.Equal(t, 0, c.Children())
	assert.Equal(t, 0, c.Nights())
	assert.Empty(t, c.PromoCode())
	assert.True(t, c.DiscountPct().IsZero())
}

func TestCriteriaClamping(t *testing.T) {
	cases := []struct {
		name string
		set  func(*stay.Criteria)
		get  func(*stay.Criteria) int
		want int
	}{
		{"rooms below minimum", func(c *stay.Criteria) { c.SetRooms(0) }, (*stay.Criteria).Rooms, stay.MinRooms},
		{"rooms above maximum", func(c *stay.Criteria) { c.SetRooms(99) }, (*stay.Criteria).Rooms, stay.MaxRooms},
		{"rooms within range", func(c *stay.Criteria) { c.SetRooms(3) }, (*stay.Criteria).Rooms, 3},
		{"adults below minimum", func(c *stay.Criteria) { c.SetAdults(0) }, (*stay.Criteria).Adults, stay.MinAdults},
		{"adults above maximum", func(c *stay.Criteria) { c.SetAdults(40) }, (*stay.Criteria).Adults, stay.MaxAdults},
		{"children negative", func(c *stay.Criteria) { c.SetChildren(-1) }, (*stay.Criteria).Children, 0},
		{"children above maximum", func(c *stay.Criteria) { c.SetChildren(20) }, (*stay.Criteria).Children, stay.MaxChildren},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := stay.NewCriteria()
			tc.set(c)
			assert.Equal(t, tc.want, tc.get(c))
		})
	}
}

func TestCriteriaNightsDerivedFromPeriod(t *testing.T) {
	c := stay.NewCriteria()
	c.SetPeriod(stay.NewDate(2026, time.September, 14), stay.NewDate(2026, time.September, 18))

	assert.Equal(t, 4, c.Nights())

	// Inverted selection falls back to the awaiting state, not an error.
	c.SetPeriod(stay.NewDate(2026, time.September, 18), stay.NewDate(2026, time.September, 14))
	assert.Equal(t, 0, c.Nights())
}

func TestCriteriaCoupon(t *testing.T) {
	c := stay.NewCriteria()

	c.ApplyCoupon("SUMMER10", decimal.NewFromInt(10))
	assert.Equal(t, "SUMMER10", c.PromoCode())
	assert.True(t, c.DiscountPct().Equal(decimal.NewFromInt(10)))

	t.Run("empty code clears the discount", func(t *testing.T) {
		c.ApplyCoupon("", decimal.NewFromInt(25))
		assert.Empty(t, c.PromoCode())
		assert.True(t, c.DiscountPct().IsZero())
	})

	t.Run("reset restores defaults", func(t *testing.T) {
		c.ApplyCoupon("SUMMER10", decimal.NewFromInt(10))
		c.SetRooms(4)
		c.Reset()
		assert.Empty(t, c.PromoCode())
		assert.Equal(t, stay.MinRooms, c.Rooms())
	})
}
