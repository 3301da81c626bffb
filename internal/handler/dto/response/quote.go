package response

import (
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type QuoteLineResponse struct {
	RoomTypeID   uuid.UUID       `json:"roomTypeId"`
	RoomTypeName string          `json:"roomTypeName"`
	Total        decimal.Decimal `json:"total"`
}

type QuoteResponse struct {
	AwaitingDates  bool                `json:"awaitingDates"`
	Nights         int                 `json:"nights"`
	RoomLines      []QuoteLineResponse `json:"roomLines"`
	ExtraBedLines  []QuoteLineResponse `json:"extraBedLines"`
	Subtotal       decimal.Decimal     `json:"subtotal"`
	DiscountPct    decimal.Decimal     `json:"discountPct"`
	DiscountAmount decimal.Decimal     `json:"discountAmount"`
	Total          decimal.Decimal     `json:"total"`
	DisplayTotal   string              `json:"displayTotal"`
}

type CouponResponse struct {
	Code       string          `json:"code"`
	PercentOff decimal.Decimal `json:"percentOff"`
	Valid      bool            `json:"valid"`
}

func FromQuoteView(qm *queries.QuoteView) *QuoteResponse {
	resp := &QuoteResponse{
		AwaitingDates:  qm.AwaitingDates,
		Nights:         qm.Nights,
		RoomLines:      make([]QuoteLineResponse, 0, len(qm.RoomLines)),
		ExtraBedLines:  make([]QuoteLineResponse, 0, len(qm.ExtraBedLines)),
		Subtotal:       qm.Subtotal,
		DiscountPct:    qm.DiscountPct,
		DiscountAmount: qm.DiscountAmount,
		Total:          qm.Total,
		DisplayTotal:   qm.DisplayTotal,
	}
	for _, line := range qm.RoomLines {
		resp.RoomLines = append(resp.RoomLines, QuoteLineResponse(line))
	}
	for _, line := range qm.ExtraBedLines {
		resp.ExtraBedLines = append(resp.ExtraBedLines, QuoteLineResponse(line))
	}
	return resp
}

func FromCouponView(cm *queries.CouponView) *CouponResponse {
	return &CouponResponse{
		Code:       cm.Code,
		PercentOff: cm.PercentOff,
		Valid:      true,
	}
}
