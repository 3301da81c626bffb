package queries

import (
	"context"

	"hotel-booking-api/internal/domain/coupon"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type CouponViewRepo interface {
	FindByCode(ctx context.Context, code string) (*CouponView, error)
}

type CouponQueries interface {
	// Verify checks a code against a hotel at the current time and
	// returns the discount it grants. Any invalid state collapses to
	// ErrInvalidCoupon on the wire; the reason is not leaked.
	Verify(ctx context.Context, code string, hotelID uuid.UUID) (*CouponView, error)
}

type couponQueriesImpl struct {
	repo  CouponViewRepo
	clock clock.Clock
}

func NewCouponQueries(repo CouponViewRepo, clk clock.Clock) CouponQueries {
	return &couponQueriesImpl{repo: repo, clock: clk}
}

func (q *couponQueriesImpl) Verify(ctx context.Context, code string, hotelID uuid.UUID) (*CouponView, error) {
	normalized, err := coupon.NewCode(code)
	if err != nil {
		return nil, errs.ErrInvalidCoupon
	}

	view, err := q.repo.FindByCode(ctx, normalized.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCouponNotFound
		}
		return nil, errs.Wrap(err, "failed to find coupon")
	}

	entity, err := coupon.NewCoupon(view.ID, view.Code, view.PercentOff, view.HotelID, view.ValidFrom, view.ValidTo, view.IsActive)
	if err != nil {
		return nil, errs.ErrInvalidCoupon
	}
	if err := entity.ValidateFor(hotelID, q.clock.Now()); err != nil {
		return nil, errs.ErrInvalidCoupon
	}

	return view, nil
}
