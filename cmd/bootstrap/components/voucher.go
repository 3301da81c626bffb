package components

import (
	"hotel-booking-api/internal/infra/welcome"
	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/internal/voucher"
)

// NewVoucherQueries assembles the voucher pipeline: the supersampled A4
// raster renderer backs the PDF download, the SVG renderer backs the
// inline preview.
func NewVoucherQueries(
	cfg config.Config,
	bookings queries.BookingQueries,
	welcomeProvider welcome.MessageProvider,
	artifactCache queries.ArtifactCache,
) (queries.VoucherQueries, error) {
	raster, err := voucher.NewRasterRenderer(cfg.Voucher.Scale)
	if err != nil {
		return nil, err
	}

	return queries.NewVoucherQueries(
		bookings,
		welcomeProvider,
		raster,
		voucher.NewSVGRenderer(),
		artifactCache,
	), nil
}
