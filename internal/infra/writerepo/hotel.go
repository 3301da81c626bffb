package writerepo

import (
	"context"

	"hotel-booking-api/internal/domain/hotel"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type HotelRepository struct{}

func NewHotelRepository() *HotelRepository {
	return &HotelRepository{}
}

const insertHotelQuery = `
INSERT INTO hotels (id, name, city, address, stars, description, phone, email)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id
`

func (r *HotelRepository) CreateHotel(ctx context.Context, tx db.DBTX, h *hotel.Hotel) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertHotelQuery,
		h.ID(), h.Name(), h.City(), h.Address(), h.Stars(), h.Description(), h.Phone(), h.Email(),
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("hotel already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create hotel", err)
	}
	return id, nil
}

func (r *HotelRepository) UpdateHotel(ctx context.Context, tx db.DBTX, h *hotel.Hotel) error {
	tag, err := tx.Exec(ctx,
		`UPDATE hotels SET name = $2, city = $3, address = $4, stars = $5, description = $6, phone = $7, email = $8, updated_at = now()
		 WHERE id = $1`,
		h.ID(), h.Name(), h.City(), h.Address(), h.Stars(), h.Description(), h.Phone(), h.Email(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update hotel", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}
	return nil
}

const insertRoomTypeQuery = `
INSERT INTO room_types (id, hotel_id, name, capacity, inventory, nightly_rate, extra_bed_rate, max_extra_beds)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id
`

func (r *HotelRepository) CreateRoomType(ctx context.Context, tx db.DBTX, rt *hotel.RoomType) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertRoomTypeQuery,
		rt.ID(), rt.HotelID(), rt.Name(), rt.Capacity(), rt.Inventory(),
		pgconv.DecimalToPgtype(rt.NightlyRate()), pgconv.DecimalToPgtype(rt.ExtraBedRate()), rt.MaxExtraBeds(),
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("hotel does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create room type", err)
	}
	return id, nil
}

func (r *HotelRepository) UpdateRoomType(ctx context.Context, tx db.DBTX, rt *hotel.RoomType) error {
	tag, err := tx.Exec(ctx,
		`UPDATE room_types SET name = $2, capacity = $3, inventory = $4, nightly_rate = $5, extra_bed_rate = $6, max_extra_beds = $7, updated_at = now()
		 WHERE id = $1`,
		rt.ID(), rt.Name(), rt.Capacity(), rt.Inventory(),
		pgconv.DecimalToPgtype(rt.NightlyRate()), pgconv.DecimalToPgtype(rt.ExtraBedRate()), rt.MaxExtraBeds(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update room type", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room type not found", nil, infra.KindNotFound)
	}
	return nil
}
