package request

import (
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteRoomRequest struct {
	RoomTypeID uuid.UUID `json:"room_type_id" binding:"required"`
	Quantity   int       `json:"quantity" binding:"min=0"`
	ExtraBeds  int       `json:"extra_beds" binding:"min=0"`
}

type QuoteRequest struct {
	HotelID    uuid.UUID          `json:"hotel_id" binding:"required"`
	CheckIn    string             `json:"check_in"`
	CheckOut   string             `json:"check_out"`
	Rooms      []QuoteRoomRequest `json:"rooms" binding:"dive"`
	CouponCode *string            `json:"coupon_code,omitempty"`
}

func (r QuoteRequest) ToInput() queries.QuoteInput {
	input := queries.QuoteInput{
		HotelID:    r.HotelID,
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		CouponCode: r.CouponCode,
	}
	for _, room := range r.Rooms {
		input.Rooms = append(input.Rooms, queries.QuoteRoomInput{
			RoomTypeID: room.RoomTypeID,
			Quantity:   room.Quantity,
			ExtraBeds:  room.ExtraBeds,
		})
	}
	return input
}

type VerifyCouponRequest struct {
	Code    string    `json:"code" binding:"required"`
	HotelID uuid.UUID `json:"hotel_id" binding:"required"`
}
