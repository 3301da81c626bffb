package writerepo

import (
	"context"
	"errors"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const pgErrCodeUniqueViolation = "23505"

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const insertBookingQuery = `
INSERT INTO bookings (
	id, reference, user_id,
	hotel_id, hotel_name, hotel_city, hotel_address, hotel_phone, hotel_email,
	guest_name, guest_email, guest_phone, guest_nationality,
	check_in, check_out, guests_count,
	status, payment_status,
	subtotal, discount_pct, discount_amount, total,
	coupon_id, special_request
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
	$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24
)
RETURNING id
`

const insertBookingLineQuery = `
INSERT INTO booking_lines (
	booking_id, position, room_type_id, room_type_name,
	unit_price, quantity, extra_bed_count, extra_bed_unit_price
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var specialRequest pgtype.Text
	if b.SpecialRequest() != "" {
		specialRequest = pgconv.StringToPgtype(b.SpecialRequest())
	}

	var id uuid.UUID
	err := tx.QueryRow(ctx, insertBookingQuery,
		b.ID(), b.Reference().String(), b.UserID(),
		b.Hotel().HotelID, b.Hotel().Name, b.Hotel().City, b.Hotel().Address, b.Hotel().Phone, b.Hotel().Email,
		b.Guest().FullName, b.Guest().Email, b.Guest().Phone, b.Guest().Nationality,
		b.Period().CheckIn().Time(), b.Period().CheckOut().Time(), b.GuestsCount(),
		b.Status().String(), b.PaymentStatus().String(),
		pgconv.DecimalToPgtype(b.Subtotal()), pgconv.DecimalToPgtype(b.DiscountPct()),
		pgconv.DecimalToPgtype(b.DiscountAmount()), pgconv.DecimalToPgtype(b.Total()),
		pgconv.UUIDPtrToPgtype(b.CouponID()), specialRequest,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("booking reference already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	for i, line := range b.Lines() {
		_, err := tx.Exec(ctx, insertBookingLineQuery,
			id, i, line.RoomTypeID, line.RoomTypeName,
			pgconv.DecimalToPgtype(line.UnitPrice), line.Quantity,
			line.ExtraBedCount, pgconv.DecimalToPgtype(line.ExtraBedUnitPrice),
		)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create booking line", err)
		}
	}

	return id, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status, payment booking.PaymentStatus) error {
	tag, err := tx.Exec(ctx,
		`UPDATE bookings SET status = $2, payment_status = $3, updated_at = now() WHERE id = $1`,
		id, status.String(), payment.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation
}
