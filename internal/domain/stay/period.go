package stay

import (
	"errors"
	"time"
)

var ErrCheckOutNotAfterCheckIn = errors.New("check-out must be after check-in")

const day = 24 * time.Hour

// Period is a check-in/check-out pair. A pair with missing or inverted
// dates is not an error at this level: it is the "awaiting date selection"
// state, reported through HasNights. Callers that require a bookable
// period use NewPeriod, which rejects that state.
type Period struct {
	checkIn  Date
	checkOut Date
}

func NewPeriod(checkIn, checkOut Date) (Period, error) {
	p := PeriodOf(checkIn, checkOut)
	if !p.HasNights() {
		return Period{}, ErrCheckOutNotAfterCheckIn
	}
	return p, nil
}

func PeriodOf(checkIn, checkOut Date) Period {
	return Period{checkIn: checkIn, checkOut: checkOut}
}

func (p Period) CheckIn() Date { return p.checkIn }
func (p Period) CheckOut() Date { return p.checkOut }

func (p Period) HasNights() bool {
	if p.checkIn.IsZero() || p.checkOut.IsZero() {
		return false
	}
	return p.checkOut.After(p.checkIn)
}

// Nights is ceil((checkOut - checkIn) / 24h). Zero when the period is
// unset or inverted; never negative.
func (p Period) Nights() int {
	if !p.HasNights() {
		return 0
	}
	d := p.checkOut.Time().Sub(p.checkIn.Time())
	nights := int(d / day)
	if d%day > 0 {
		nights++
	}
	return nights
}

func (p Period) Contains(d Date) bool {
	if !p.HasNights() {
		return false
	}
	return !d.Before(p.checkIn) && d.Before(p.checkOut)
}
