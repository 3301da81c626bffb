//go:build unit

package booking_test

import (
	"testing"

	"hotel-booking-api/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionPaid(t *testing.T) {
	cases := []struct {
		name        string
		status      booking.Status
		payment     booking.PaymentStatus
		wantStatus  booking.Status
		wantPayment booking.PaymentStatus
		errIs       error
	}{
		{
			name:        "paying a pending booking confirms it",
			status:      booking.StatusPending,
			payment:     booking.PaymentUnpaid,
			wantStatus:  booking.StatusConfirmed,
			wantPayment: booking.PaymentPaid,
		},
		{
			name:        "paying a confirmed booking records payment",
			status:      booking.StatusConfirmed,
			payment:     booking.PaymentUnpaid,
			wantStatus:  booking.StatusConfirmed,
			wantPayment: booking.PaymentPaid,
		},
		{
			name:    "paying a cancelled booking is rejected",
			status:  booking.StatusCancelled,
			payment: booking.PaymentUnpaid,
			errIs:   booking.ErrBookingNotPending,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			status, payment, err := booking.TransitionPaid(c.status, c.payment)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.wantStatus, status)
			assert.Equal(t, c.wantPayment, payment)
		})
	}
}

func TestTransitionCancelled(t *testing.T) {
	cases := []struct {
		name        string
		status      booking.Status
		payment     booking.PaymentStatus
		wantPayment booking.PaymentStatus
		errIs       error
	}{
		{
			name:        "cancelling an unpaid booking",
			status:      booking.StatusPending,
			payment:     booking.PaymentUnpaid,
			wantPayment: booking.PaymentUnpaid,
		},
		{
			name:        "cancelling a paid booking refunds it",
			status:      booking.StatusConfirmed,
			payment:     booking.PaymentPaid,
			wantPayment: booking.PaymentRefunded,
		},
		{
			name:    "a completed stay cannot be cancelled",
			status:  booking.StatusCompleted,
			payment: booking.PaymentPaid,
			errIs:   booking.ErrBookingNotCancelable,
		},
		{
			name:    "cancelling twice is rejected",
			status:  booking.StatusCancelled,
			payment: booking.PaymentUnpaid,
			errIs:   booking.ErrBookingNotCancelable,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			status, payment, err := booking.TransitionCancelled(c.status, c.payment)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, booking.StatusCancelled, status)
			assert.Equal(t, c.wantPayment, payment)
		})
	}
}

func TestDeriveDisplayStatus(t *testing.T) {
	// CONFIRMED only shows once the booking is actually paid; every other
	// stored status is mirrored as-is.
	statuses := []booking.Status{
		booking.StatusPending,
		booking.StatusConfirmed,
		booking.StatusCancelled,
		booking.StatusCompleted,
		booking.StatusFailed,
	}
	payments := []booking.PaymentStatus{
		booking.PaymentUnpaid,
		booking.PaymentPaid,
		booking.PaymentRefunded,
	}

	for _, status := range statuses {
		for _, payment := range payments {
			got := booking.DeriveDisplayStatus(status, payment)

			if status == booking.StatusConfirmed && payment != booking.PaymentPaid {
				assert.Equal(t, booking.StatusPending, got, "%s/%s", status, payment)
			} else {
				assert.Equal(t, status, got, "%s/%s", status, payment)
			}
		}
	}
}

func TestStatusValidation(t *testing.T) {
	assert.True(t, booking.StatusConfirmed.IsValid())
	assert.False(t, booking.Status("UNKNOWN").IsValid())
	assert.True(t, booking.PaymentRefunded.IsValid())
	assert.False(t, booking.PaymentStatus("").IsValid())
}
