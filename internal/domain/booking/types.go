package booking

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusFailed:
		return true
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "UNPAID"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

func (p PaymentStatus) String() string {
	return string(p)
}

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentUnpaid, PaymentPaid, PaymentRefunded:
		return true
	default:
		return false
	}
}

// TransitionPaid applies a successful payment to a status pair. Paying a
// PENDING booking confirms it; paying a cancelled one is rejected.
func TransitionPaid(status Status, payment PaymentStatus) (Status, PaymentStatus, error) {
	if status == StatusCancelled {
		return status, payment, ErrBookingNotPending
	}
	if status == StatusPending {
		status = StatusConfirmed
	}
	return status, PaymentPaid, nil
}

// TransitionCancelled cancels a booking, refunding if it was already paid.
func TransitionCancelled(status Status, payment PaymentStatus) (Status, PaymentStatus, error) {
	if status == StatusCompleted || status == StatusCancelled {
		return status, payment, ErrBookingNotCancelable
	}
	if payment == PaymentPaid {
		payment = PaymentRefunded
	}
	return StatusCancelled, payment, nil
}

// DeriveDisplayStatus maps the stored workflow status and payment status
// to the status shown to the guest. Payment confirmation gates the
// confirmed badge: a CONFIRMED booking that has not been paid is shown as
// PENDING. The stored enum is never mirrored verbatim.
func DeriveDisplayStatus(status Status, payment PaymentStatus) Status {
	if status == StatusConfirmed && payment != PaymentPaid {
		return StatusPending
	}
	return status
}
