package voucher

import (
	"errors"
	"strings"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/stay"

	"github.com/shopspring/decimal"
)

var ErrMissingReference = errors.New("booking reference is required")

// fallbackAssetID is shown when the reference has no property segment.
const fallbackAssetID = "STD"

// LineSource is one room line of the booking as the voucher sees it.
type LineSource struct {
	RoomTypeName      string
	UnitPrice         decimal.Decimal
	Quantity          int
	ExtraBedCount     int
	ExtraBedUnitPrice decimal.Decimal
}

// Source is the point-in-time booking read the voucher is assembled
// from. The stored Total is authoritative; the financial ledger lines
// are back-derived from it for display.
type Source struct {
	Reference     string
	Status        booking.Status
	PaymentStatus booking.PaymentStatus

	GuestName   string
	GuestEmail  string
	GuestPhone  string
	Nationality string

	HotelName    string
	HotelCity    string
	HotelAddress string
	HotelPhone   string
	HotelEmail   string

	CheckIn  stay.Date
	CheckOut stay.Date

	Lines []LineSource
	Total decimal.Decimal

	WelcomeMessage string
	Policies       []string
}

type Header struct {
	DisplayStatus booking.Status
	Reference     string
}

type GuestBlock struct {
	Name        string
	Email       string
	Phone       string
	Nationality string
}

type StayBlock struct {
	CheckIn  string
	CheckOut string
	Nights   int
}

type PropertyBlock struct {
	Name    string
	City    string
	Address string
	AssetID string
}

type LedgerLine struct {
	Label  string
	Amount decimal.Decimal
}

// FinancialLedger is the voucher's money block. BaseValue and
// ExtraBedTotal always sum to Total exactly.
type FinancialLedger struct {
	BaseValue     decimal.Decimal
	ExtraBedTotal decimal.Decimal
	Total         decimal.Decimal
	Lines         []LedgerLine
}

type ContactBlock struct {
	Phone string
	Email string
}

// Document is the assembled voucher model. It is immutable once built
// and independent of any rendering backend, so it can be inspected and
// tested without producing an image.
type Document struct {
	Header    Header
	Guest     GuestBlock
	Stay      StayBlock
	Property  PropertyBlock
	Financial FinancialLedger
	Welcome   string
	Policies  []string
	Footer    ContactBlock
}

// Assemble builds the voucher document for a booking read.
func Assemble(src Source) (*Document, error) {
	if strings.TrimSpace(src.Reference) == "" {
		return nil, ErrMissingReference
	}

	period := stay.PeriodOf(src.CheckIn, src.CheckOut)
	nights := period.Nights()

	extraBedTotal := extraBedTotal(src.Lines, nights)
	baseValue := src.Total.Sub(extraBedTotal)

	ledgerLines := []LedgerLine{
		{Label: "Accommodation", Amount: baseValue},
	}
	if !extraBedTotal.IsZero() {
		ledgerLines = append(ledgerLines, LedgerLine{Label: "Extra beds", Amount: extraBedTotal})
	}
	ledgerLines = append(ledgerLines, LedgerLine{Label: "Total", Amount: src.Total})

	policies := src.Policies
	if len(policies) == 0 {
		policies = defaultPolicies
	}

	return &Document{
		Header: Header{
			DisplayStatus: booking.DeriveDisplayStatus(src.Status, src.PaymentStatus),
			Reference:     src.Reference,
		},
		Guest: GuestBlock{
			Name:        ShapeMixedScript(src.GuestName),
			Email:       src.GuestEmail,
			Phone:       src.GuestPhone,
			Nationality: ShapeMixedScript(src.Nationality),
		},
		Stay: StayBlock{
			CheckIn:  src.CheckIn.String(),
			CheckOut: src.CheckOut.String(),
			Nights:   nights,
		},
		Property: PropertyBlock{
			Name:    ShapeMixedScript(src.HotelName),
			City:    ShapeMixedScript(src.HotelCity),
			Address: ShapeMixedScript(src.HotelAddress),
			AssetID: ExtractAssetID(src.Reference),
		},
		Financial: FinancialLedger{
			BaseValue:     baseValue,
			ExtraBedTotal: extraBedTotal,
			Total:         src.Total,
			Lines:         ledgerLines,
		},
		Welcome:  src.WelcomeMessage,
		Policies: policies,
		Footer: ContactBlock{
			Phone: src.HotelPhone,
			Email: src.HotelEmail,
		},
	}, nil
}

// extraBedTotal recomputes the extra-bed portion from the line
// snapshots: beds x rate x rooms x nights per line, matching
// pricing.ComputeBreakdown. The stored booking total stays
// authoritative; only the base/extra split is derived.
func extraBedTotal(lines []LineSource, nights int) decimal.Decimal {
	if nights <= 0 {
		return decimal.Zero
	}
	nightsDec := decimal.NewFromInt(int64(nights))
	total := decimal.Zero
	for _, line := range lines {
		if line.ExtraBedCount <= 0 || line.Quantity <= 0 {
			continue
		}
		beds := decimal.NewFromInt(int64(line.ExtraBedCount))
		qty := decimal.NewFromInt(int64(line.Quantity))
		total = total.Add(line.ExtraBedUnitPrice.Mul(beds).Mul(qty).Mul(nightsDec))
	}
	return total
}

// ExtractAssetID pulls the short property code out of a booking
// reference: the third dash-separated segment. Display-only; a malformed
// reference falls back to a fixed literal.
func ExtractAssetID(reference string) string {
	parts := strings.Split(reference, "-")
	if len(parts) < 3 || parts[2] == "" {
		return fallbackAssetID
	}
	return parts[2]
}

var defaultPolicies = []string{
	"Check-in from 15:00, check-out until 12:00.",
	"Please present this voucher together with a valid ID at reception.",
	"Cancellation and refund terms follow the rate conditions accepted at booking time.",
}
