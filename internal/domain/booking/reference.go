package booking

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidReference = errors.New("invalid booking reference")

// Reference is the guest-facing booking code, shaped
// HB-YYYYMMDD-XXXXX-NNNN. The third segment identifies the property and
// doubles as the short "asset id" printed on the voucher.
type Reference string

func NewReference(value string) (Reference, error) {
	value = strings.TrimSpace(strings.ToUpper(value))
	if len(strings.Split(value, "-")) < 4 || !strings.HasPrefix(value, "HB-") {
		return "", ErrInvalidReference
	}
	return Reference(value), nil
}

// GenerateReference builds a fresh reference for a booking at a hotel.
// The property segment is derived from the hotel id so all bookings of a
// hotel share it; the tail is random for uniqueness.
func GenerateReference(now time.Time, hotelID uuid.UUID) Reference {
	property := strings.ToUpper(hex.EncodeToString(hotelID[:3]))[:5]

	tail := make([]byte, 2)
	if _, err := rand.Read(tail); err != nil {
		// time-based fallback keeps references unique enough for display
		tail[0] = byte(now.UnixNano() >> 8)
		tail[1] = byte(now.UnixNano())
	}

	return Reference("HB-" + now.Format("20060102") + "-" + property + "-" + strings.ToUpper(hex.EncodeToString(tail)))
}

func (r Reference) String() string {
	return string(r)
}
