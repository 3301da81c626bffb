package stay

import (
	"errors"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

const dateLayout = "2006-01-02"

// Date is a calendar date pinned to local midnight. Check-in/check-out
// strings arrive as YYYY-MM-DD; parsing them in local time instead of UTC
// keeps the night count stable across timezone shifts.
type Date struct {
	t time.Time
}

func ParseDate(value string) (Date, error) {
	t, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

func DateOf(t time.Time) Date {
	local := t.Local()
	return NewDate(local.Year(), local.Month(), local.Day())
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}
