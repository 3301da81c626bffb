package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCouponExpired     = errors.New("coupon has expired")
	ErrCouponNotYetValid = errors.New("coupon is not yet valid")
	ErrCouponInactive    = errors.New("coupon is inactive")
	ErrCouponWrongHotel  = errors.New("coupon is not valid for this hotel")
)

// Coupon is a percentage discount code, optionally scoped to a single
// hotel. A nil hotelID means the code applies chain-wide.
type Coupon struct {
	id        uuid.UUID
	code      Code
	discount  Discount
	hotelID   *uuid.UUID
	validFrom *time.Time
	validTo   *time.Time
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewCoupon(
	id uuid.UUID,
	code string,
	percentOff decimal.Decimal,
	hotelID *uuid.UUID,
	validFrom, validTo *time.Time,
	isActive bool,
) (*Coupon, error) {
	couponCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	discount, err := NewDiscount(percentOff)
	if err != nil {
		return nil, err
	}

	return &Coupon{
		id:        id,
		code:      couponCode,
		discount:  discount,
		hotelID:   hotelID,
		validFrom: validFrom,
		validTo:   validTo,
		isActive:  isActive,
	}, nil
}

func (c *Coupon) IsValidAt(t time.Time) bool {
	if c.validFrom != nil && t.Before(*c.validFrom) {
		return false
	}
	if c.validTo != nil && t.After(*c.validTo) {
		return false
	}
	return true
}

// ValidateFor checks the code against a hotel and a point in time; this
// is the server-side verification the UI coupon field calls into.
func (c *Coupon) ValidateFor(hotelID uuid.UUID, t time.Time) error {
	if !c.isActive {
		return ErrCouponInactive
	}
	if c.hotelID != nil && *c.hotelID != hotelID {
		return ErrCouponWrongHotel
	}
	if c.validFrom != nil && t.Before(*c.validFrom) {
		return ErrCouponNotYetValid
	}
	if !c.IsValidAt(t) {
		return ErrCouponExpired
	}
	return nil
}

func (c *Coupon) ID() uuid.UUID { return c.id }
func (c *Coupon) Code() Code { return c.code }
func (c *Coupon) Discount() Discount { return c.discount }
func (c *Coupon) PercentOff() decimal.Decimal { return c.discount.PercentOff() }
func (c *Coupon) HotelID() *uuid.UUID { return c.hotelID }
func (c *Coupon) ValidFrom() *time.Time { return c.validFrom }
func (c *Coupon) ValidTo() *time.Time { return c.validTo }
func (c *Coupon) IsActive() bool { return c.isActive }
func (c *Coupon) CreatedAt() time.Time { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time { return c.updatedAt }
