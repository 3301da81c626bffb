//go:build unit

package stay_test

import (
	"testing"
	"time"

	"hotel-booking-api/internal/domain/stay"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		d, err := stay.ParseDate("2026-09-14")
		require.NoError(t, err)
		assert.Equal(t, "2026-09-14", d.String())
	})

	t.Run("parses at local midnight", func(t *testing.T) {
		d, err := stay.ParseDate("2026-09-14")
		require.NoError(t, err)
		assert.Equal(t, 0, d.Time().Hour())
		assert.Equal(t, time.Local, d.Time().Location())
	})

	t.Run("invalid inputs", func(t *testing.T) {
		for _, value := range []string{"", "14-09-2026", "2026/09/14", "2026-13-01", "not a date"} {
			_, err := stay.ParseDate(value)
			assert.ErrorIs(t, err, stay.ErrInvalidDate, "input %q", value)
		}
	})
}

func TestPeriodNights(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  stay.Date
		checkOut stay.Date
		nights   int
	}{
		{
			name:     "one night",
			checkIn:  stay.NewDate(2026, time.September, 14),
			checkOut: stay.NewDate(2026, time.September, 15),
			nights:   1,
		},
		{
			name:     "week long stay",
			checkIn:  stay.NewDate(2026, time.September, 14),
			checkOut: stay.NewDate(2026, time.September, 21),
			nights:   7,
		},
		{
			name:     "across month boundary",
			checkIn:  stay.NewDate(2026, time.September, 29),
			checkOut: stay.NewDate(2026, time.October, 2),
			nights:   3,
		},
		{
			name:     "across a year boundary",
			checkIn:  stay.NewDate(2026, time.December, 30),
			checkOut: stay.NewDate(2027, time.January, 2),
			nights:   3,
		},
		{
			name:     "same day is zero nights",
			checkIn:  stay.NewDate(2026, time.September, 14),
			checkOut: stay.NewDate(2026, time.September, 14),
			nights:   0,
		},
		{
			name:     "inverted dates are zero, never negative",
			checkIn:  stay.NewDate(2026, time.September, 21),
			checkOut: stay.NewDate(2026, time.September, 14),
			nights:   0,
		},
		{
			name:     "missing check-out",
			checkIn:  stay.NewDate(2026, time.September, 14),
			checkOut: stay.Date{},
			nights:   0,
		},
		{
			name:   "both dates missing",
			nights: 0,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := stay.PeriodOf(c.checkIn, c.checkOut)
			assert.Equal(t, c.nights, p.Nights())
			assert.Equal(t, c.nights > 0, p.HasNights())
		})
	}
}

func TestNewPeriod(t *testing.T) {
	t.Run("accepts a forward period", func(t *testing.T) {
		p, err := stay.NewPeriod(stay.NewDate(2026, time.September, 14), stay.NewDate(2026, time.September, 16))
		require.NoError(t, err)
		assert.Equal(t, 2, p.Nights())
	})

	t.Run("rejects same day", func(t *testing.T) {
		_, err := stay.NewPeriod(stay.NewDate(2026, time.September, 14), stay.NewDate(2026, time.September, 14))
		assert.ErrorIs(t, err, stay.ErrCheckOutNotAfterCheckIn)
	})

	t.Run("rejects inverted dates", func(t *testing.T) {
		_, err := stay.NewPeriod(stay.NewDate(2026, time.September, 16), stay.NewDate(2026, time.September, 14))
		assert.ErrorIs(t, err, stay.ErrCheckOutNotAfterCheckIn)
	})

	t.Run("rejects missing dates", func(t *testing.T) {
		_, err := stay.NewPeriod(stay.Date{}, stay.NewDate(2026, time.September, 14))
		assert.ErrorIs(t, err, stay.ErrCheckOutNotAfterCheckIn)
	})
}

func TestPeriodContains(t *testing.T) {
	p := stay.PeriodOf(stay.NewDate(2026, time.September, 14), stay.NewDate(2026, time.September, 17))

	assert.True(t, p.Contains(stay.NewDate(2026, time.September, 14)), "check-in night is part of the stay")
	assert.True(t, p.Contains(stay.NewDate(2026, time.September, 16)), "last night is part of the stay")
	assert.False(t, p.Contains(stay.NewDate(2026, time.September, 17)), "check-out day is not a night")
	assert.False(t, p.Contains(stay.NewDate(2026, time.September, 13)))
}
