package hotel

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidHotelName = errors.New("invalid hotel name")
	ErrInvalidCity      = errors.New("invalid city")
	ErrInvalidStars     = errors.New("stars must be between 1 and 5")
)

type Hotel struct {
	id          uuid.UUID
	name        string
	city        string
	address     string
	stars       int
	description string
	phone       string
	email       string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewHotel(name, city, address string, stars int, description, phone, email string) (*Hotel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidHotelName
	}
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrInvalidCity
	}
	if stars < 1 || stars > 5 {
		return nil, ErrInvalidStars
	}

	return &Hotel{
		id:          uuid.New(),
		name:        name,
		city:        city,
		address:     strings.TrimSpace(address),
		stars:       stars,
		description: description,
		phone:       phone,
		email:       email,
	}, nil
}

func ReconstructHotel(
	id uuid.UUID,
	name, city, address string,
	stars int,
	description, phone, email string,
	createdAt, updatedAt time.Time,
) *Hotel {
	return &Hotel{
		id:          id,
		name:        name,
		city:        city,
		address:     address,
		stars:       stars,
		description: description,
		phone:       phone,
		email:       email,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (h *Hotel) ID() uuid.UUID { return h.id }
func (h *Hotel) Name() string { return h.name }
func (h *Hotel) City() string { return h.city }
func (h *Hotel) Address() string { return h.address }
func (h *Hotel) Stars() int { return h.stars }
func (h *Hotel) Description() string { return h.description }
func (h *Hotel) Phone() string { return h.phone }
func (h *Hotel) Email() string { return h.email }
func (h *Hotel) CreatedAt() time.Time { return h.createdAt }
func (h *Hotel) UpdatedAt() time.Time { return h.updatedAt }

var (
	ErrInvalidRoomTypeName = errors.New("invalid room type name")
	ErrNegativeRate        = errors.New("rate cannot be negative")
	ErrNegativeInventory   = errors.New("inventory cannot be negative")
)

// RoomType is a bookable category within a hotel: inventory of identical
// rooms priced per night, with an optional extra-bed add-on.
type RoomType struct {
	id           uuid.UUID
	hotelID      uuid.UUID
	name         string
	capacity     int
	inventory    int
	nightlyRate  decimal.Decimal
	extraBedRate decimal.Decimal
	maxExtraBeds int
	createdAt    time.Time
	updatedAt    time.Time
}

func NewRoomType(
	hotelID uuid.UUID,
	name string,
	capacity, inventory int,
	nightlyRate, extraBedRate decimal.Decimal,
	maxExtraBeds int,
) (*RoomType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidRoomTypeName
	}
	if nightlyRate.IsNegative() || extraBedRate.IsNegative() {
		return nil, ErrNegativeRate
	}
	if inventory < 0 {
		return nil, ErrNegativeInventory
	}
	if capacity < 1 {
		capacity = 1
	}
	if maxExtraBeds < 0 {
		maxExtraBeds = 0
	}

	return &RoomType{
		id:           uuid.New(),
		hotelID:      hotelID,
		name:         name,
		capacity:     capacity,
		inventory:    inventory,
		nightlyRate:  nightlyRate,
		extraBedRate: extraBedRate,
		maxExtraBeds: maxExtraBeds,
	}, nil
}

func ReconstructRoomType(
	id, hotelID uuid.UUID,
	name string,
	capacity, inventory int,
	nightlyRate, extraBedRate decimal.Decimal,
	maxExtraBeds int,
	createdAt, updatedAt time.Time,
) *RoomType {
	return &RoomType{
		id:           id,
		hotelID:      hotelID,
		name:         name,
		capacity:     capacity,
		inventory:    inventory,
		nightlyRate:  nightlyRate,
		extraBedRate: extraBedRate,
		maxExtraBeds: maxExtraBeds,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (r *RoomType) ID() uuid.UUID { return r.id }
func (r *RoomType) HotelID() uuid.UUID { return r.hotelID }
func (r *RoomType) Name() string { return r.name }
func (r *RoomType) Capacity() int { return r.capacity }
func (r *RoomType) Inventory() int { return r.inventory }
func (r *RoomType) NightlyRate() decimal.Decimal { return r.nightlyRate }
func (r *RoomType) ExtraBedRate() decimal.Decimal { return r.extraBedRate }
func (r *RoomType) MaxExtraBeds() int { return r.maxExtraBeds }
func (r *RoomType) CreatedAt() time.Time { return r.createdAt }
func (r *RoomType) UpdatedAt() time.Time { return r.updatedAt }
