package queries

import (
	"context"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/stay"
	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/infra/welcome"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/pkg/metrics"
	"hotel-booking-api/internal/voucher"

	"github.com/google/uuid"
)

const (
	pdfContentType = "application/pdf"
)

// VoucherArtifact is a finished downloadable rendering of a voucher.
type VoucherArtifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ArtifactCache stores rendered artifacts keyed by booking reference and
// content type. A nil-safe no-op implementation is acceptable.
type ArtifactCache interface {
	Get(ctx context.Context, reference, contentType string) ([]byte, bool)
	Set(ctx context.Context, reference, contentType string, data []byte)
}

type VoucherQueries interface {
	// GetDocument returns the assembled voucher model without rendering.
	GetDocument(ctx context.Context, actorID uuid.UUID, actorRole user.Role, bookingID uuid.UUID) (*voucher.Document, error)
	// GetPDF renders the booking voucher as a single-page A4 PDF.
	GetPDF(ctx context.Context, actorID uuid.UUID, actorRole user.Role, bookingID uuid.UUID) (*VoucherArtifact, error)
	// GetPreview renders the inline SVG preview of the voucher.
	GetPreview(ctx context.Context, actorID uuid.UUID, actorRole user.Role, bookingID uuid.UUID) (*VoucherArtifact, error)
}

type voucherQueriesImpl struct {
	bookings BookingQueries
	welcome  welcome.MessageProvider
	raster   voucher.Renderer
	preview  voucher.Renderer
	cache    ArtifactCache
}

func NewVoucherQueries(
	bookings BookingQueries,
	welcomeProvider welcome.MessageProvider,
	raster voucher.Renderer,
	preview voucher.Renderer,
	cache ArtifactCache,
) VoucherQueries {
	return &voucherQueriesImpl{
		bookings: bookings,
		welcome:  welcomeProvider,
		raster:   raster,
		preview:  preview,
		cache:    cache,
	}
}

func (q *voucherQueriesImpl) GetDocument(ctx context.Context, actorID uuid.UUID, actorRole user.Role, bookingID uuid.UUID) (*voucher.Document, error) {
	view, err := q.bookings.GetByID(ctx, actorID, actorRole, bookingID)
	if err != nil {
		return nil, err
	}
	return q.assemble(ctx, view)
}

func (q *voucherQueriesImpl) GetPDF(ctx context.Context, actorID uuid.UUID, actorRole user.Role, bookingID uuid.UUID) (*VoucherArtifact, error) {
	view, err := q.bookings.GetByID(ctx, actorID, actorRole, bookingID)
	if err != nil {
		return nil, err
	}

	if data, ok := q.cache.Get(ctx, view.Reference, pdfContentType); ok {
		return &VoucherArtifact{
			Filename:    voucher.Filename(view.Reference),
			ContentType: pdfContentType,
			Data:        data,
		}, nil
	}

	doc, err := q.assemble(ctx, view)
	if err != nil {
		return nil, err
	}

	pngData, err := q.raster.Render(doc)
	if err != nil {
		metrics.RenderOutcome("pdf", err)
		return nil, errs.Mark(err, errs.ErrVoucherRenderFailed)
	}

	pdfData, err := voucher.WritePDF(view.Reference, pngData)
	metrics.RenderOutcome("pdf", err)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrVoucherRenderFailed)
	}

	q.cache.Set(ctx, view.Reference, pdfContentType, pdfData)

	return &VoucherArtifact{
		Filename:    voucher.Filename(view.Reference),
		ContentType: pdfContentType,
		Data:        pdfData,
	}, nil
}

func (q *voucherQueriesImpl) GetPreview(ctx context.Context, actorID uuid.UUID, actorRole user.Role, bookingID uuid.UUID) (*VoucherArtifact, error) {
	view, err := q.bookings.GetByID(ctx, actorID, actorRole, bookingID)
	if err != nil {
		return nil, err
	}

	contentType := q.preview.ContentType()
	if data, ok := q.cache.Get(ctx, view.Reference, contentType); ok {
		return &VoucherArtifact{ContentType: contentType, Data: data}, nil
	}

	doc, err := q.assemble(ctx, view)
	if err != nil {
		return nil, err
	}

	data, err := q.preview.Render(doc)
	metrics.RenderOutcome("svg", err)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrVoucherRenderFailed)
	}

	q.cache.Set(ctx, view.Reference, contentType, data)

	return &VoucherArtifact{ContentType: contentType, Data: data}, nil
}

func (q *voucherQueriesImpl) assemble(ctx context.Context, view *BookingView) (*voucher.Document, error) {
	checkIn, err := stay.ParseDate(view.CheckIn)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrVoucherRenderFailed)
	}
	checkOut, err := stay.ParseDate(view.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrVoucherRenderFailed)
	}

	lines := make([]voucher.LineSource, len(view.Lines))
	for i, line := range view.Lines {
		lines[i] = voucher.LineSource{
			RoomTypeName:      line.RoomTypeName,
			UnitPrice:         line.UnitPrice,
			Quantity:          line.Quantity,
			ExtraBedCount:     line.ExtraBedCount,
			ExtraBedUnitPrice: line.ExtraBedUnitPrice,
		}
	}

	roomType := ""
	if len(view.Lines) > 0 {
		roomType = view.Lines[0].RoomTypeName
	}

	src := voucher.Source{
		Reference:      view.Reference,
		Status:         booking.Status(view.Status),
		PaymentStatus:  booking.PaymentStatus(view.PaymentStatus),
		GuestName:      view.GuestName,
		GuestEmail:     view.GuestEmail,
		GuestPhone:     view.GuestPhone,
		Nationality:    view.Nationality,
		HotelName:      view.HotelName,
		HotelCity:      view.HotelCity,
		HotelAddress:   view.HotelAddress,
		HotelPhone:     view.HotelPhone,
		HotelEmail:     view.HotelEmail,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		Lines:          lines,
		Total:          view.Total,
		WelcomeMessage: q.welcome.MessageFor(ctx, view.GuestName, view.HotelName, roomType),
	}

	doc, err := voucher.Assemble(src)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrVoucherRenderFailed)
	}
	return doc, nil
}
