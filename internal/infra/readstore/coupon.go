package readstore

import (
	"context"

	"hotel-booking-api/internal/domain/coupon"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type CouponStore interface {
	FindByCode(ctx context.Context, code string) (*queries.CouponView, error)
	FindEntityByCode(ctx context.Context, code string) (*coupon.Coupon, error)
}

type CouponReadStore struct {
	db db.DBTX
}

func NewCouponReadStore(db db.DBTX) *CouponReadStore {
	return &CouponReadStore{db: db}
}

const couponByCodeQuery = `
SELECT id, code, percent_off, hotel_id, valid_from, valid_to, is_active
FROM coupons
WHERE code = $1
`

func (r *CouponReadStore) FindByCode(ctx context.Context, code string) (*queries.CouponView, error) {
	var (
		view       queries.CouponView
		percentOff pgtype.Numeric
		hotelID    pgtype.UUID
		validFrom  pgtype.Timestamptz
		validTo    pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, couponByCodeQuery, code).Scan(
		&view.ID, &view.Code, &percentOff, &hotelID, &validFrom, &validTo, &view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon", err)
	}

	if view.PercentOff, err = pgconv.DecimalFromPgtype(percentOff); err != nil {
		return nil, infra.WrapRepoErr("invalid coupon percent off", err)
	}
	view.HotelID = pgconv.UUIDPtrFromPgtype(hotelID)
	view.ValidFrom = pgconv.TimePtrFromPgtype(validFrom)
	view.ValidTo = pgconv.TimePtrFromPgtype(validTo)

	return &view, nil
}

// FindEntityByCode rehydrates the domain coupon so callers can run
// ValidateFor against a hotel and point in time.
func (r *CouponReadStore) FindEntityByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	view, err := r.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	entity, err := coupon.NewCoupon(view.ID, view.Code, view.PercentOff, view.HotelID, view.ValidFrom, view.ValidTo, view.IsActive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to rehydrate coupon", err)
	}
	return entity, nil
}
