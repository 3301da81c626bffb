package request

import (
	"strings"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/stay"

	"github.com/google/uuid"
)

type BookingRoomRequest struct {
	RoomTypeID uuid.UUID `json:"room_type_id" binding:"required"`
	Quantity   int       `json:"quantity" binding:"required,min=1"`
	ExtraBeds  int       `json:"extra_beds" binding:"min=0"`
}

type CreateBookingRequest struct {
	HotelID        uuid.UUID            `json:"hotel_id" binding:"required"`
	CheckIn        string               `json:"check_in" binding:"required"`
	CheckOut       string               `json:"check_out" binding:"required"`
	GuestName      string               `json:"guest_name" binding:"required,max=200"`
	GuestEmail     string               `json:"guest_email" binding:"required,email"`
	GuestPhone     string               `json:"guest_phone" binding:"required,max=30"`
	Nationality    string               `json:"nationality" binding:"required,max=100"`
	GuestsCount    int                  `json:"guests_count" binding:"required,min=1"`
	Rooms          []BookingRoomRequest `json:"rooms" binding:"required,min=1,dive"`
	CouponCode     *string              `json:"coupon_code,omitempty"`
	SpecialRequest *string              `json:"special_request,omitempty"`
}

func (r CreateBookingRequest) GetCouponCode() *string {
	if r.CouponCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.CouponCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r CreateBookingRequest) GetSpecialRequest() string {
	if r.SpecialRequest == nil {
		return ""
	}
	return strings.TrimSpace(*r.SpecialRequest)
}

// ToPeriod parses the calendar dates into a bookable stay period.
func (r CreateBookingRequest) ToPeriod() (stay.Period, error) {
	checkIn, err := stay.ParseDate(r.CheckIn)
	if err != nil {
		return stay.Period{}, err
	}
	checkOut, err := stay.ParseDate(r.CheckOut)
	if err != nil {
		return stay.Period{}, err
	}
	return stay.NewPeriod(checkIn, checkOut)
}

func (r CreateBookingRequest) ToGuestInfo() booking.GuestInfo {
	return booking.GuestInfo{
		FullName:    strings.TrimSpace(r.GuestName),
		Email:       strings.TrimSpace(r.GuestEmail),
		Phone:       strings.TrimSpace(r.GuestPhone),
		Nationality: strings.TrimSpace(r.Nationality),
	}
}
