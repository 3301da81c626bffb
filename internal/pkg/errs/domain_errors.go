package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Hotel errors
	ErrHotelNotFound    = errors.New("hotel not found")
	ErrRoomTypeNotFound = errors.New("room type not found")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingConflict   = errors.New("booking conflict")
	ErrDuplicateBooking  = errors.New("duplicate booking")
	ErrInvalidStayPeriod = errors.New("invalid stay period")
	ErrNoRoomsSelected   = errors.New("no rooms selected")
	ErrRoomsUnavailable  = errors.New("requested rooms exceed inventory")

	// Coupon errors
	ErrCouponNotFound = errors.New("coupon not found")
	ErrInvalidCoupon  = errors.New("invalid coupon")

	// Voucher errors
	ErrVoucherRenderFailed = errors.New("voucher render failed")

	// Idempotency errors
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
