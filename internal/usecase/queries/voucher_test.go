//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/internal/voucher"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRenderer struct {
	contentType string
	output      []byte
	err         error
	calls       int
}

func (f *fakeRenderer) Render(_ *voucher.Document) ([]byte, error) {
	f.calls++
	return f.output, f.err
}

func (f *fakeRenderer) ContentType() string {
	return f.contentType
}

type memoryArtifactCache struct {
	entries map[string][]byte
}

func newMemoryArtifactCache() *memoryArtifactCache {
	return &memoryArtifactCache{entries: map[string][]byte{}}
}

func (c *memoryArtifactCache) Get(_ context.Context, reference, contentType string) ([]byte, bool) {
	data, ok := c.entries[reference+"|"+contentType]
	return data, ok
}

func (c *memoryArtifactCache) Set(_ context.Context, reference, contentType string, data []byte) {
	c.entries[reference+"|"+contentType] = data
}

type staticWelcome struct{}

func (staticWelcome) MessageFor(_ context.Context, _, _, _ string) string {
	return "Welcome to Riyadh!"
}

type recordingWelcome struct {
	guestName string
	hotelName string
	roomType  string
}

func (r *recordingWelcome) MessageFor(_ context.Context, guestName, hotelName, roomType string) string {
	r.guestName = guestName
	r.hotelName = hotelName
	r.roomType = roomType
	return "Ahlan!"
}

func voucherBookingView(id, ownerID uuid.UUID) *queries.BookingView {
	return &queries.BookingView{
		ID:            id,
		Reference:     "HB-20260201-A1B2C-0F3D",
		UserID:        ownerID,
		HotelName:     "Desert Rose",
		HotelCity:     "Riyadh",
		GuestName:     "Sara Al-Rashid",
		CheckIn:       "2026-03-01",
		CheckOut:      "2026-03-04",
		Status:        "CONFIRMED",
		PaymentStatus: "PAID",
		Lines: []queries.BookingLineView{
			{
				RoomTypeID:        uuid.New(),
				RoomTypeName:      "Deluxe",
				UnitPrice:         decimal.NewFromInt(500),
				Quantity:          2,
				ExtraBedCount:     1,
				ExtraBedUnitPrice: decimal.NewFromInt(100),
			},
		},
		Total: decimal.NewFromInt(3240),
	}
}

func TestVoucherGetPDF(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	bookingID := uuid.New()

	newFixture := func(raster *fakeRenderer) queries.VoucherQueries {
		repo := &fakeBookingViewRepo{bookings: map[uuid.UUID]*queries.BookingView{
			bookingID: voucherBookingView(bookingID, ownerID),
		}}
		preview := &fakeRenderer{contentType: "image/svg+xml", output: []byte("<svg/>")}
		return queries.NewVoucherQueries(queries.NewBookingQueries(repo), staticWelcome{}, raster, preview, newMemoryArtifactCache())
	}

	t.Run("renders and names the download after the reference", func(t *testing.T) {
		raster, err := voucher.NewRasterRenderer(1)
		require.NoError(t, err)
		repo := &fakeBookingViewRepo{bookings: map[uuid.UUID]*queries.BookingView{
			bookingID: voucherBookingView(bookingID, ownerID),
		}}
		q := queries.NewVoucherQueries(queries.NewBookingQueries(repo), staticWelcome{}, raster, voucher.NewSVGRenderer(), newMemoryArtifactCache())

		artifact, err := q.GetPDF(ctx, ownerID, user.RoleGuest, bookingID)
		require.NoError(t, err)

		assert.Equal(t, "Voucher-HB-20260201-A1B2C-0F3D.pdf", artifact.Filename)
		assert.Equal(t, "application/pdf", artifact.ContentType)
		assert.True(t, len(artifact.Data) > 4 && string(artifact.Data[:4]) == "%PDF")
	})

	t.Run("a repeat download comes from the cache", func(t *testing.T) {
		raster, err := voucher.NewRasterRenderer(1)
		require.NoError(t, err)
		counting := &fakeRenderer{contentType: "image/png"}
		counting.output, err = raster.Render(mustDoc(t))
		require.NoError(t, err)

		q := newFixture(counting)
		first, err := q.GetPDF(ctx, ownerID, user.RoleGuest, bookingID)
		require.NoError(t, err)
		second, err := q.GetPDF(ctx, ownerID, user.RoleGuest, bookingID)
		require.NoError(t, err)

		assert.Equal(t, 1, counting.calls)
		assert.Equal(t, first.Data, second.Data)
	})

	t.Run("ownership errors pass through unchanged", func(t *testing.T) {
		q := newFixture(&fakeRenderer{contentType: "image/png", output: []byte("png")})

		_, err := q.GetPDF(ctx, uuid.New(), user.RoleGuest, bookingID)
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})

	t.Run("a renderer failure is surfaced as a render error", func(t *testing.T) {
		q := newFixture(&fakeRenderer{contentType: "image/png", err: errors.New("font missing")})

		_, err := q.GetPDF(ctx, ownerID, user.RoleGuest, bookingID)
		assert.ErrorIs(t, err, errs.ErrVoucherRenderFailed)
	})
}

func TestVoucherWelcomeRequest(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	bookingID := uuid.New()

	repo := &fakeBookingViewRepo{bookings: map[uuid.UUID]*queries.BookingView{
		bookingID: voucherBookingView(bookingID, ownerID),
	}}
	provider := &recordingWelcome{}
	q := queries.NewVoucherQueries(queries.NewBookingQueries(repo), provider, &fakeRenderer{contentType: "image/png"}, &fakeRenderer{contentType: "image/svg+xml"}, newMemoryArtifactCache())

	doc, err := q.GetDocument(ctx, ownerID, user.RoleGuest, bookingID)
	require.NoError(t, err)

	assert.Equal(t, "Sara Al-Rashid", provider.guestName)
	assert.Equal(t, "Desert Rose", provider.hotelName)
	assert.Equal(t, "Deluxe", provider.roomType)
	assert.Equal(t, "Ahlan!", doc.Welcome)
}

func TestVoucherGetPreview(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	bookingID := uuid.New()

	repo := &fakeBookingViewRepo{bookings: map[uuid.UUID]*queries.BookingView{
		bookingID: voucherBookingView(bookingID, ownerID),
	}}
	preview := &fakeRenderer{contentType: "image/svg+xml", output: []byte("<svg/>")}
	q := queries.NewVoucherQueries(queries.NewBookingQueries(repo), staticWelcome{}, &fakeRenderer{contentType: "image/png"}, preview, newMemoryArtifactCache())

	artifact, err := q.GetPreview(ctx, ownerID, user.RoleGuest, bookingID)
	require.NoError(t, err)

	assert.Equal(t, "image/svg+xml", artifact.ContentType)
	assert.Equal(t, []byte("<svg/>"), artifact.Data)

	_, err = q.GetPreview(ctx, ownerID, user.RoleGuest, bookingID)
	require.NoError(t, err)
	assert.Equal(t, 1, preview.calls, "second preview must come from the cache")
}

func mustDoc(t *testing.T) *voucher.Document {
	t.Helper()
	view := voucherBookingView(uuid.New(), uuid.New())
	doc, err := voucher.Assemble(voucher.Source{
		Reference:     view.Reference,
		Status:        "CONFIRMED",
		PaymentStatus: "PAID",
		Total:         view.Total,
	})
	require.NoError(t, err)
	return doc
}
