package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Selection is one room-type line of the guest's cart: how many rooms of
// the type and how many extra beds, together with the rates needed to
// price it. Quantity never exceeds Inventory and ExtraBedCount never
// exceeds MaxExtraBeds.
type Selection struct {
	RoomTypeID        uuid.UUID
	RoomTypeName      string
	UnitPrice         decimal.Decimal
	Quantity          int
	Inventory         int
	ExtraBedCount     int
	ExtraBedUnitPrice decimal.Decimal
	MaxExtraBeds      int
}

// Ledger tracks the guest's per-room-type quantities. All boundary
// violations are silently clamped: the ledger always holds a valid state
// instead of rejecting input. Iteration order is registration order so
// price lines render deterministically.
type Ledger struct {
	order      []uuid.UUID
	selections map[uuid.UUID]*Selection
}

func NewLedger() *Ledger {
	return &Ledger{
		selections: make(map[uuid.UUID]*Selection),
	}
}

// Register adds a room type to the ledger with zero quantity. Registering
// an already-known room type refreshes its rates but keeps the counters.
func (l *Ledger) Register(roomTypeID uuid.UUID, name string, unitPrice, extraBedUnitPrice decimal.Decimal, inventory, maxExtraBeds int) {
	if sel, ok := l.selections[roomTypeID]; ok {
		sel.RoomTypeName = name
		sel.UnitPrice = unitPrice
		sel.ExtraBedUnitPrice = extraBedUnitPrice
		sel.Inventory = inventory
		sel.MaxExtraBeds = maxExtraBeds
		sel.clamp()
		return
	}
	l.order = append(l.order, roomTypeID)
	l.selections[roomTypeID] = &Selection{
		RoomTypeID:        roomTypeID,
		RoomTypeName:      name,
		UnitPrice:         unitPrice,
		ExtraBedUnitPrice: extraBedUnitPrice,
		Inventory:         inventory,
		MaxExtraBeds:      maxExtraBeds,
	}
}

func (l *Ledger) Increment(roomTypeID uuid.UUID) {
	sel, ok := l.selections[roomTypeID]
	if !ok {
		return
	}
	if sel.Quantity < sel.Inventory {
		sel.Quantity++
	}
}

func (l *Ledger) Decrement(roomTypeID uuid.UUID) {
	sel, ok := l.selections[roomTypeID]
	if !ok {
		return
	}
	if sel.Quantity > 0 {
		sel.Quantity--
	}
	if sel.Quantity == 0 {
		// extra beds are meaningless without a room
		sel.ExtraBedCount = 0
	}
}

func (l *Ledger) IncrementExtraBed(roomTypeID uuid.UUID) {
	sel, ok := l.selections[roomTypeID]
	if !ok || sel.Quantity == 0 {
		return
	}
	if sel.ExtraBedCount < sel.MaxExtraBeds {
		sel.ExtraBedCount++
	}
}

func (l *Ledger) DecrementExtraBed(roomTypeID uuid.UUID) {
	sel, ok := l.selections[roomTypeID]
	if !ok {
		return
	}
	if sel.ExtraBedCount > 0 {
		sel.ExtraBedCount--
	}
}

func (l *Ledger) Selection(roomTypeID uuid.UUID) (Selection, bool) {
	sel, ok := l.selections[roomTypeID]
	if !ok {
		return Selection{}, false
	}
	return *sel, true
}

// Selections returns a copy of all lines in registration order.
func (l *Ledger) Selections() []Selection {
	out := make([]Selection, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, *l.selections[id])
	}
	return out
}

// Active returns only lines with a positive quantity.
func (l *Ledger) Active() []Selection {
	out := make([]Selection, 0, len(l.order))
	for _, id := range l.order {
		if sel := l.selections[id]; sel.Quantity > 0 {
			out = append(out, *sel)
		}
	}
	return out
}

func (l *Ledger) TotalRooms() int {
	total := 0
	for _, sel := range l.selections {
		total += sel.Quantity
	}
	return total
}

func (l *Ledger) Clear() {
	l.order = nil
	l.selections = make(map[uuid.UUID]*Selection)
}

func (s *Selection) clamp() {
	if s.Quantity > s.Inventory {
		s.Quantity = s.Inventory
	}
	if s.Quantity < 0 {
		s.Quantity = 0
	}
	if s.ExtraBedCount > s.MaxExtraBeds {
		s.ExtraBedCount = s.MaxExtraBeds
	}
	if s.ExtraBedCount < 0 || s.Quantity == 0 {
		s.ExtraBedCount = 0
	}
}
