package stay

import "github.com/shopspring/decimal"

const (
	MinRooms    = 1
	MaxRooms    = 8
	MinAdults   = 1
	MaxAdults   = 16
	MinChildren = 0
	MaxChildren = 8
)

// Criteria is the search/booking state a guest builds up before pricing:
// destination, stay period, party size and an optionally verified coupon.
// It is an explicit object with a create/reset lifecycle rather than
// ambient shared state; the night count is always derived from the period
// so there is a single source of truth for it.
type Criteria struct {
	destination string
	period      Period
	rooms       int
	adults      int
	children    int
	promoCode   string
	discountPct decimal.Decimal
}

func NewCriteria() *Criteria {
	return &Criteria{
		rooms:  MinRooms,
		adults: 2,
	}
}

func (c *Criteria) Reset() {
	*c = *NewCriteria()
}

func (c *Criteria) Destination() string { return c.destination }
func (c *Criteria) Period() Period { return c.period }
func (c *Criteria) Nights() int { return c.period.Nights() }
func (c *Criteria) Rooms() int { return c.rooms }
func (c *Criteria) Adults() int { return c.adults }
func (c *Criteria) Children() int { return c.children }
func (c *Criteria) Guests() int { return c.adults + c.children }
func (c *Criteria) PromoCode() string { return c.promoCode }
func (c *Criteria) DiscountPct() decimal.Decimal { return c.discountPct }

func (c *Criteria) SetDestination(destination string) {
	c.destination = destination
}

func (c *Criteria) SetPeriod(checkIn, checkOut Date) {
	c.period = PeriodOf(checkIn, checkOut)
}

func (c *Criteria) SetRooms(n int) { c.rooms = clamp(n, MinRooms, MaxRooms) }
func (c *Criteria) SetAdults(n int) { c.adults = clamp(n, MinAdults, MaxAdults) }
func (c *Criteria) SetChildren(n int) { c.children = clamp(n, MinChildren, MaxChildren) }

// ApplyCoupon records a server-verified discount. An empty code clears it.
func (c *Criteria) ApplyCoupon(code string, discountPct decimal.Decimal) {
	if code == "" {
		c.ClearCoupon()
		return
	}
	c.promoCode = code
	c.discountPct = discountPct
}

func (c *Criteria) ClearCoupon() {
	c.promoCode = ""
	c.discountPct = decimal.Zero
}

func clamp(n, low, high int) int {
	if n < low {
		return low
	}
	if n > high {
		return high
	}
	return n
}
