package readstore

import (
	"context"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/stay"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
	FindByReference(ctx context.Context, reference string) (*queries.BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error)
	FindAll(ctx context.Context, limit int32) ([]*queries.BookingListItem, error)
}

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const bookingViewQuery = `
SELECT b.id, b.reference, b.user_id,
       b.hotel_id, b.hotel_name, b.hotel_city, b.hotel_address, b.hotel_phone, b.hotel_email,
       b.guest_name, b.guest_email, b.guest_phone, b.guest_nationality,
       b.check_in, b.check_out, b.guests_count,
       b.status, b.payment_status,
       b.subtotal, b.discount_pct, b.discount_amount, b.total,
       c.code AS coupon_code, b.special_request,
       b.created_at, b.updated_at
FROM bookings b
LEFT JOIN coupons c ON c.id = b.coupon_id
`

const bookingLinesQuery = `
SELECT room_type_id, room_type_name, unit_price, quantity, extra_bed_count, extra_bed_unit_price
FROM booking_lines
WHERE booking_id = $1
ORDER BY position
`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	return r.findOne(ctx, bookingViewQuery+"WHERE b.id = $1", id)
}

func (r *BookingReadStore) FindByReference(ctx context.Context, reference string) (*queries.BookingView, error) {
	return r.findOne(ctx, bookingViewQuery+"WHERE b.reference = $1", reference)
}

func (r *BookingReadStore) findOne(ctx context.Context, sql string, arg any) (*queries.BookingView, error) {
	var (
		view           queries.BookingView
		checkIn        pgtype.Date
		checkOut       pgtype.Date
		subtotal       pgtype.Numeric
		discountPct    pgtype.Numeric
		discountAmount pgtype.Numeric
		total          pgtype.Numeric
		couponCode     pgtype.Text
		specialRequest pgtype.Text
		createdAt      pgtype.Timestamptz
		updatedAt      pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, sql, arg).Scan(
		&view.ID, &view.Reference, &view.UserID,
		&view.HotelID, &view.HotelName, &view.HotelCity, &view.HotelAddress, &view.HotelPhone, &view.HotelEmail,
		&view.GuestName, &view.GuestEmail, &view.GuestPhone, &view.Nationality,
		&checkIn, &checkOut, &view.GuestsCount,
		&view.Status, &view.PaymentStatus,
		&subtotal, &discountPct, &discountAmount, &total,
		&couponCode, &specialRequest,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	view.CheckIn = formatDate(checkIn)
	view.CheckOut = formatDate(checkOut)
	view.Nights = nightsBetween(view.CheckIn, view.CheckOut)
	view.DisplayStatus = displayStatus(view.Status, view.PaymentStatus)
	if view.Subtotal, err = pgconv.DecimalFromPgtype(subtotal); err != nil {
		return nil, infra.WrapRepoErr("invalid booking subtotal", err)
	}
	if view.DiscountPct, err = pgconv.DecimalFromPgtype(discountPct); err != nil {
		return nil, infra.WrapRepoErr("invalid booking discount pct", err)
	}
	if view.DiscountAmount, err = pgconv.DecimalFromPgtype(discountAmount); err != nil {
		return nil, infra.WrapRepoErr("invalid booking discount amount", err)
	}
	if view.Total, err = pgconv.DecimalFromPgtype(total); err != nil {
		return nil, infra.WrapRepoErr("invalid booking total", err)
	}
	view.CouponCode = pgconv.StringPtrFromPgtype(couponCode)
	view.SpecialRequest = pgconv.StringPtrFromPgtype(specialRequest)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	view.Lines, err = r.findLines(ctx, view.ID)
	if err != nil {
		return nil, err
	}

	return &view, nil
}

func (r *BookingReadStore) findLines(ctx context.Context, bookingID uuid.UUID) ([]queries.BookingLineView, error) {
	rows, err := r.db.Query(ctx, bookingLinesQuery, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking lines", err)
	}
	defer rows.Close()

	var lines []queries.BookingLineView
	for rows.Next() {
		var (
			line      queries.BookingLineView
			unitPrice pgtype.Numeric
			extraUnit pgtype.Numeric
		)
		if err := rows.Scan(&line.RoomTypeID, &line.RoomTypeName, &unitPrice, &line.Quantity, &line.ExtraBedCount, &extraUnit); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking line", err)
		}
		if line.UnitPrice, err = pgconv.DecimalFromPgtype(unitPrice); err != nil {
			return nil, infra.WrapRepoErr("invalid line unit price", err)
		}
		if line.ExtraBedUnitPrice, err = pgconv.DecimalFromPgtype(extraUnit); err != nil {
			return nil, infra.WrapRepoErr("invalid line extra bed price", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking lines", err)
	}

	return lines, nil
}

const bookingListQuery = `
SELECT b.id, b.reference, b.hotel_name, b.hotel_city,
       b.check_in, b.check_out,
       b.status, b.payment_status, b.total, b.created_at
FROM bookings b
`

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, bookingListQuery+"WHERE b.user_id = $1 ORDER BY b.created_at DESC, b.id DESC LIMIT $2", userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by user", err)
	}
	return collectListItems(rows)
}

func (r *BookingReadStore) FindAll(ctx context.Context, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, bookingListQuery+"ORDER BY b.created_at DESC, b.id DESC LIMIT $1", limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return collectListItems(rows)
}

func collectListItems(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var (
			item      queries.BookingListItem
			checkIn   pgtype.Date
			checkOut  pgtype.Date
			total     pgtype.Numeric
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&item.ID, &item.Reference, &item.HotelName, &item.HotelCity,
			&checkIn, &checkOut, &item.Status, &item.PaymentStatus, &total, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list item", err)
		}
		item.CheckIn = formatDate(checkIn)
		item.CheckOut = formatDate(checkOut)
		item.Nights = nightsBetween(item.CheckIn, item.CheckOut)
		item.DisplayStatus = displayStatus(item.Status, item.PaymentStatus)
		var err error
		if item.Total, err = pgconv.DecimalFromPgtype(total); err != nil {
			return nil, infra.WrapRepoErr("invalid booking total", err)
		}
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking list", err)
	}

	return items, nil
}

func formatDate(d pgtype.Date) string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format("2006-01-02")
}

func nightsBetween(checkIn, checkOut string) int {
	in, err := stay.ParseDate(checkIn)
	if err != nil {
		return 0
	}
	out, err := stay.ParseDate(checkOut)
	if err != nil {
		return 0
	}
	return stay.PeriodOf(in, out).Nights()
}

func displayStatus(status, paymentStatus string) string {
	return booking.DeriveDisplayStatus(booking.Status(status), booking.PaymentStatus(paymentStatus)).String()
}
