package response

import (
	"time"

	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingLineResponse struct {
	RoomTypeID        uuid.UUID       `json:"roomTypeId"`
	RoomTypeName      string          `json:"roomTypeName"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	Quantity          int             `json:"quantity"`
	ExtraBedCount     int             `json:"extraBedCount"`
	ExtraBedUnitPrice decimal.Decimal `json:"extraBedUnitPrice"`
}

type BookingResponse struct {
	ID             uuid.UUID             `json:"id"`
	Reference      string                `json:"reference"`
	HotelID        uuid.UUID             `json:"hotelId"`
	HotelName      string                `json:"hotelName"`
	HotelCity      string                `json:"hotelCity"`
	GuestName      string                `json:"guestName"`
	CheckIn        string                `json:"checkIn"`
	CheckOut       string                `json:"checkOut"`
	Nights         int                   `json:"nights"`
	GuestsCount    int                   `json:"guestsCount"`
	Status         string                `json:"status"`
	PaymentStatus  string                `json:"paymentStatus"`
	DisplayStatus  string                `json:"displayStatus"`
	Subtotal       decimal.Decimal       `json:"subtotal"`
	DiscountPct    decimal.Decimal       `json:"discountPct"`
	DiscountAmount decimal.Decimal       `json:"discountAmount"`
	Total          decimal.Decimal       `json:"total"`
	CouponCode     *string               `json:"couponCode,omitempty"`
	SpecialRequest *string               `json:"specialRequest,omitempty"`
	Lines          []BookingLineResponse `json:"lines"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

type BookingListResponse struct {
	ID            uuid.UUID       `json:"id"`
	Reference     string          `json:"reference"`
	HotelName     string          `json:"hotelName"`
	HotelCity     string          `json:"hotelCity"`
	CheckIn       string          `json:"checkIn"`
	CheckOut      string          `json:"checkOut"`
	Nights        int             `json:"nights"`
	DisplayStatus string          `json:"displayStatus"`
	Total         decimal.Decimal `json:"total"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func FromBookingView(bm *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{
		ID:             bm.ID,
		Reference:      bm.Reference,
		HotelID:        bm.HotelID,
		HotelName:      bm.HotelName,
		HotelCity:      bm.HotelCity,
		GuestName:      bm.GuestName,
		CheckIn:        bm.CheckIn,
		CheckOut:       bm.CheckOut,
		Nights:         bm.Nights,
		GuestsCount:    bm.GuestsCount,
		Status:         bm.Status,
		PaymentStatus:  bm.PaymentStatus,
		DisplayStatus:  bm.DisplayStatus,
		Subtotal:       bm.Subtotal,
		DiscountPct:    bm.DiscountPct,
		DiscountAmount: bm.DiscountAmount,
		Total:          bm.Total,
		CouponCode:     bm.CouponCode,
		SpecialRequest: bm.SpecialRequest,
		Lines:          make([]BookingLineResponse, 0, len(bm.Lines)),
		CreatedAt:      bm.CreatedAt,
		UpdatedAt:      bm.UpdatedAt,
	}
	for _, line := range bm.Lines {
		resp.Lines = append(resp.Lines, BookingLineResponse(line))
	}
	return resp
}

func FromBookingListItem(bm *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:            bm.ID,
		Reference:     bm.Reference,
		HotelName:     bm.HotelName,
		HotelCity:     bm.HotelCity,
		CheckIn:       bm.CheckIn,
		CheckOut:      bm.CheckOut,
		Nights:        bm.Nights,
		DisplayStatus: bm.DisplayStatus,
		Total:         bm.Total,
		CreatedAt:     bm.CreatedAt,
	}
}
