package request

import (
	"hotel-booking-api/internal/domain/hotel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SearchHotelsRequest struct {
	Destination string `form:"destination"`
	Limit       int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

type CreateHotelRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	City        string `json:"city" binding:"required,max=100"`
	Address     string `json:"address" binding:"required,max=300"`
	Stars       int    `json:"stars" binding:"required,min=1,max=5"`
	Description string `json:"description" binding:"max=2000"`
	Phone       string `json:"phone" binding:"max=30"`
	Email       string `json:"email" binding:"omitempty,email"`
}

func (r *CreateHotelRequest) ToDomain() (*hotel.Hotel, error) {
	return hotel.NewHotel(r.Name, r.City, r.Address, r.Stars, r.Description, r.Phone, r.Email)
}

type UpdateHotelRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	City        string `json:"city" binding:"required,max=100"`
	Address     string `json:"address" binding:"required,max=300"`
	Stars       int    `json:"stars" binding:"required,min=1,max=5"`
	Description string `json:"description" binding:"max=2000"`
	Phone       string `json:"phone" binding:"max=30"`
	Email       string `json:"email" binding:"omitempty,email"`
}

type CreateRoomTypeRequest struct {
	Name         string          `json:"name" binding:"required,max=200"`
	Capacity     int             `json:"capacity" binding:"required,min=1"`
	Inventory    int             `json:"inventory" binding:"required,min=0"`
	NightlyRate  decimal.Decimal `json:"nightly_rate" binding:"required"`
	ExtraBedRate decimal.Decimal `json:"extra_bed_rate"`
	MaxExtraBeds int             `json:"max_extra_beds" binding:"min=0"`
}

func (r *CreateRoomTypeRequest) ToDomain(hotelID uuid.UUID) (*hotel.RoomType, error) {
	return hotel.NewRoomType(hotelID, r.Name, r.Capacity, r.Inventory, r.NightlyRate, r.ExtraBedRate, r.MaxExtraBeds)
}
