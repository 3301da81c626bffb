package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type Line struct {
	RoomTypeID   uuid.UUID
	RoomTypeName string
	Total        decimal.Decimal
}

// Breakdown is the derived price of a stay. It is never stored: every
// reader recomputes it from the current criteria and ledger, which is
// what keeps the quote endpoint, booking creation and the voucher in
// agreement. All amounts are full-precision decimals; rounding happens
// only at presentation time.
type Breakdown struct {
	// AwaitingDates marks the state before a valid check-in/check-out
	// pair exists. It is distinct from a priced total of zero.
	AwaitingDates  bool
	Nights         int
	RoomLines      []Line
	ExtraBedLines  []Line
	Subtotal       decimal.Decimal
	DiscountPct    decimal.Decimal
	DiscountAmount decimal.Decimal
	Total          decimal.Decimal
}

// ComputeBreakdown prices the selected rooms for a stay:
//
//	room line      = unitPrice x quantity x nights
//	extra-bed line = extraBedUnitPrice x extraBedCount x quantity x nights
//	subtotal       = sum of all lines
//	discount       = subtotal x discountPct / 100
//	total          = subtotal - discount
//
// Extra-bed cost scales with the number of rooms of the type, not just the
// bed count: two rooms of a type with one extra bed each carry two beds.
func ComputeBreakdown(nights int, selections []Selection, discountPct decimal.Decimal) Breakdown {
	if nights <= 0 {
		return Breakdown{AwaitingDates: true, DiscountPct: discountPct}
	}

	b := Breakdown{
		Nights:      nights,
		DiscountPct: discountPct,
	}

	nightsDec := decimal.NewFromInt(int64(nights))
	for _, sel := range selections {
		if sel.Quantity <= 0 {
			continue
		}
		qty := decimal.NewFromInt(int64(sel.Quantity))

		roomTotal := sel.UnitPrice.Mul(qty).Mul(nightsDec)
		b.RoomLines = append(b.RoomLines, Line{
			RoomTypeID:   sel.RoomTypeID,
			RoomTypeName: sel.RoomTypeName,
			Total:        roomTotal,
		})
		b.Subtotal = b.Subtotal.Add(roomTotal)

		if sel.ExtraBedCount > 0 {
			beds := decimal.NewFromInt(int64(sel.ExtraBedCount))
			bedTotal := sel.ExtraBedUnitPrice.Mul(beds).Mul(qty).Mul(nightsDec)
			b.ExtraBedLines = append(b.ExtraBedLines, Line{
				RoomTypeID:   sel.RoomTypeID,
				RoomTypeName: sel.RoomTypeName,
				Total:        bedTotal,
			})
			b.Subtotal = b.Subtotal.Add(bedTotal)
		}
	}

	b.DiscountAmount = b.Subtotal.Mul(discountPct).Div(hundred)
	b.Total = b.Subtotal.Sub(b.DiscountAmount)
	return b
}

// ExtraBedTotal is the summed extra-bed portion of the breakdown.
func (b Breakdown) ExtraBedTotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range b.ExtraBedLines {
		total = total.Add(line.Total)
	}
	return total
}

// DisplayAmount formats an amount for presentation with up to two
// fraction digits. Intermediate amounts are never rounded, so redisplay
// cannot compound rounding error.
func DisplayAmount(d decimal.Decimal) string {
	rounded := d.Round(2)
	if rounded.IsInteger() {
		return rounded.StringFixed(0)
	}
	return rounded.StringFixed(2)
}
