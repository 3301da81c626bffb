package response

import (
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RoomTypeResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Capacity     int             `json:"capacity"`
	Inventory    int             `json:"inventory"`
	NightlyRate  decimal.Decimal `json:"nightlyRate"`
	ExtraBedRate decimal.Decimal `json:"extraBedRate"`
	MaxExtraBeds int             `json:"maxExtraBeds"`
}

type HotelResponse struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	City        string             `json:"city"`
	Address     string             `json:"address"`
	Stars       int                `json:"stars"`
	Description string             `json:"description"`
	Phone       string             `json:"phone"`
	Email       string             `json:"email"`
	RoomTypes   []RoomTypeResponse `json:"roomTypes"`
}

type HotelListResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	City        string          `json:"city"`
	Stars       int             `json:"stars"`
	MinRate     decimal.Decimal `json:"minRate"`
	Description string          `json:"description"`
}

func FromHotelView(hm *queries.HotelView) *HotelResponse {
	resp := &HotelResponse{
		ID:          hm.ID,
		Name:        hm.Name,
		City:        hm.City,
		Address:     hm.Address,
		Stars:       hm.Stars,
		Description: hm.Description,
		Phone:       hm.Phone,
		Email:       hm.Email,
		RoomTypes:   make([]RoomTypeResponse, 0, len(hm.RoomTypes)),
	}
	for _, rt := range hm.RoomTypes {
		resp.RoomTypes = append(resp.RoomTypes, RoomTypeResponse{
			ID:           rt.ID,
			Name:         rt.Name,
			Capacity:     rt.Capacity,
			Inventory:    rt.Inventory,
			NightlyRate:  rt.NightlyRate,
			ExtraBedRate: rt.ExtraBedRate,
			MaxExtraBeds: rt.MaxExtraBeds,
		})
	}
	return resp
}

func FromHotelListItem(hm *queries.HotelListItem) *HotelListResponse {
	return &HotelListResponse{
		ID:          hm.ID,
		Name:        hm.Name,
		City:        hm.City,
		Stars:       hm.Stars,
		MinRate:     hm.MinRate,
		Description: hm.Description,
	}
}
