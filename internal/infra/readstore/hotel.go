package readstore

import (
	"context"
	"strings"

	"hotel-booking-api/internal/domain/hotel"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type HotelStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.HotelView, error)
	Search(ctx context.Context, destination string, limit int32) ([]*queries.HotelListItem, error)
	FindRoomTypes(ctx context.Context, hotelID uuid.UUID) ([]queries.RoomTypeView, error)
}

type HotelReadStore struct {
	db db.DBTX
}

func NewHotelReadStore(db db.DBTX) *HotelReadStore {
	return &HotelReadStore{db: db}
}

const hotelByIDQuery = `
SELECT id, name, city, address, stars, description, phone, email, created_at, updated_at
FROM hotels
WHERE id = $1
`

func (r *HotelReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.HotelView, error) {
	var (
		view      queries.HotelView
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, hotelByIDQuery, id).Scan(
		&view.ID, &view.Name, &view.City, &view.Address, &view.Stars,
		&view.Description, &view.Phone, &view.Email, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hotel", err)
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	view.RoomTypes, err = r.FindRoomTypes(ctx, id)
	if err != nil {
		return nil, err
	}

	return &view, nil
}

const hotelSearchQuery = `
SELECT h.id, h.name, h.city, h.stars, h.description,
       COALESCE(MIN(rt.nightly_rate), 0) AS min_rate
FROM hotels h
LEFT JOIN room_types rt ON rt.hotel_id = h.id
WHERE $1 = '' OR h.city ILIKE '%' || $1 || '%' OR h.name ILIKE '%' || $1 || '%'
GROUP BY h.id, h.name, h.city, h.stars, h.description
ORDER BY h.stars DESC, h.name ASC
LIMIT $2
`

// Search matches destination against city and hotel name. An empty
// destination lists everything.
func (r *HotelReadStore) Search(ctx context.Context, destination string, limit int32) ([]*queries.HotelListItem, error) {
	rows, err := r.db.Query(ctx, hotelSearchQuery, strings.TrimSpace(destination), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search hotels", err)
	}
	defer rows.Close()

	var items []*queries.HotelListItem
	for rows.Next() {
		var (
			item    queries.HotelListItem
			minRate pgtype.Numeric
		)
		if err := rows.Scan(&item.ID, &item.Name, &item.City, &item.Stars, &item.Description, &minRate); err != nil {
			return nil, infra.WrapRepoErr("failed to scan hotel list item", err)
		}
		if item.MinRate, err = pgconv.DecimalFromPgtype(minRate); err != nil {
			return nil, infra.WrapRepoErr("invalid hotel min rate", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read hotel list", err)
	}

	return items, nil
}

const roomTypesQuery = `
SELECT id, hotel_id, name, capacity, inventory, nightly_rate, extra_bed_rate, max_extra_beds
FROM room_types
WHERE hotel_id = $1
ORDER BY nightly_rate ASC, name ASC
`

// FindEntityByID rehydrates the hotel aggregate with its room types for
// the booking factory.
func (r *HotelReadStore) FindEntityByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, []*hotel.RoomType, error) {
	view, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	entity := hotel.ReconstructHotel(
		view.ID, view.Name, view.City, view.Address, view.Stars,
		view.Description, view.Phone, view.Email,
		view.CreatedAt, view.UpdatedAt,
	)

	roomTypes := make([]*hotel.RoomType, len(view.RoomTypes))
	for i, rt := range view.RoomTypes {
		roomTypes[i] = hotel.ReconstructRoomType(
			rt.ID, rt.HotelID, rt.Name, rt.Capacity, rt.Inventory,
			rt.NightlyRate, rt.ExtraBedRate, rt.MaxExtraBeds,
			view.CreatedAt, view.UpdatedAt,
		)
	}

	return entity, roomTypes, nil
}

func (r *HotelReadStore) FindRoomTypes(ctx context.Context, hotelID uuid.UUID) ([]queries.RoomTypeView, error) {
	rows, err := r.db.Query(ctx, roomTypesQuery, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room types", err)
	}
	defer rows.Close()

	var views []queries.RoomTypeView
	for rows.Next() {
		var (
			view         queries.RoomTypeView
			nightlyRate  pgtype.Numeric
			extraBedRate pgtype.Numeric
		)
		if err := rows.Scan(&view.ID, &view.HotelID, &view.Name, &view.Capacity, &view.Inventory,
			&nightlyRate, &extraBedRate, &view.MaxExtraBeds); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room type", err)
		}
		if view.NightlyRate, err = pgconv.DecimalFromPgtype(nightlyRate); err != nil {
			return nil, infra.WrapRepoErr("invalid nightly rate", err)
		}
		if view.ExtraBedRate, err = pgconv.DecimalFromPgtype(extraBedRate); err != nil {
			return nil, infra.WrapRepoErr("invalid extra bed rate", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room types", err)
	}

	return views, nil
}
