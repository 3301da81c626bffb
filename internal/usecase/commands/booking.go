package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/coupon"
	"hotel-booking-api/internal/domain/hotel"
	reqdto "hotel-booking-api/internal/handler/dto/request"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/pkg/metrics"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

const idempotencyKeyTTL = 24 * time.Hour

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

// VoucherInvalidator drops cached voucher renderings after a status
// change so a stale PENDING badge is never served.
type VoucherInvalidator interface {
	Invalidate(ctx context.Context, reference string)
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID, idempotencyKey uuid.UUID) (*CreateBookingResult, error)
	PayBooking(ctx context.Context, id, actorID uuid.UUID) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, id, actorID uuid.UUID, isAdmin bool) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	factory        *booking.Factory
	bookingQueries queries.BookingQueries
	vouchers       VoucherInvalidator
	clock          clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	factory *booking.Factory,
	bookingQueries queries.BookingQueries,
	vouchers VoucherInvalidator,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		factory:        factory,
		bookingQueries: bookingQueries,
		vouchers:       vouchers,
		clock:          clk,
	}
}

func (c *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	userID uuid.UUID,
	idempotencyKey uuid.UUID,
) (*CreateBookingResult, error) {
	requestHash := calculateRequestHash(req)
	expiresAt := c.clock.Now().Add(idempotencyKeyTTL)

	replayed, err := c.handleIdempotency(ctx, idempotencyKey, userID, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return &CreateBookingResult{Booking: replayed, IsReplayed: true}, nil
	}

	view, err := c.createNewBooking(ctx, req, userID, idempotencyKey)
	if err != nil {
		return nil, err
	}

	metrics.BookingsCreatedTotal.Inc()
	return &CreateBookingResult{Booking: view, IsReplayed: false}, nil
}

func (c *bookingCommandsImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey, userID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*queries.BookingView, error) {
	var replayed *queries.BookingView

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		insertErr := tx.Idempotency().TryInsert(ctx, tx.DB(), idempotencyKey, userID, "POST /bookings", requestHash, expiresAt)
		if insertErr == nil {
			return nil
		}
		if !infra.IsKind(insertErr, infra.KindDuplicateKey) {
			return errs.Mark(insertErr, errs.ErrIdempotencyCheckFailed)
		}

		existing, getErr := tx.Idempotency().Get(ctx, tx.DB(), idempotencyKey, userID)
		if getErr != nil {
			return errs.Mark(getErr, errs.ErrIdempotencyCheckFailed)
		}

		switch existing.Status {
		case shared.IdempotencyStatusCompleted:
			if existing.ResultBookingID == nil {
				return errs.New("completed request missing result booking ID")
			}
			view, findErr := c.bookingQueries.GetByIDSystem(ctx, *existing.ResultBookingID)
			if findErr != nil {
				return errs.Mark(findErr, errs.ErrIdempotencyCheckFailed)
			}
			replayed = view
			return nil

		case shared.IdempotencyStatusProcessing:
			if existing.RequestHash != requestHash {
				return errs.ErrDuplicateBooking
			}
			if c.clock.Now().After(existing.ExpiresAt) {
				claimed, claimErr := tx.Idempotency().ClaimExpiredKey(ctx, tx.DB(), idempotencyKey, userID, requestHash, expiresAt)
				if claimErr != nil {
					return errs.Mark(claimErr, errs.ErrIdempotencyCheckFailed)
				}
				if claimed == 1 {
					return nil
				}
			}
			return errs.ErrIdempotencyInProgress

		default:
			return errs.New("invalid idempotency key status")
		}
	})
	if err != nil {
		return nil, err
	}

	return replayed, nil
}

func (c *bookingCommandsImpl) createNewBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	userID, idempotencyKey uuid.UUID,
) (*queries.BookingView, error) {
	period, err := req.ToPeriod()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStayPeriod)
	}

	var bookingID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		hotelEntity, roomTypes, readErr := tx.Reads().HotelByID(ctx, req.HotelID)
		if readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return errs.ErrHotelNotFound
			}
			return errs.Mark(readErr, errs.ErrDatabaseOperationFailed)
		}

		requests, reqErr := resolveRoomRequests(req.Rooms, roomTypes)
		if reqErr != nil {
			return reqErr
		}

		couponEntity, couponErr := c.resolveCoupon(ctx, tx, req.GetCouponCode())
		if couponErr != nil {
			return couponErr
		}

		entity, factoryErr := c.factory.CreateBooking(
			hotelEntity,
			userID,
			req.ToGuestInfo(),
			period,
			requests,
			req.GuestsCount,
			couponEntity,
			req.GetSpecialRequest(),
		)
		if factoryErr != nil {
			return errs.Mark(factoryErr, errs.ErrDomainValidation)
		}

		id, createErr := tx.Bookings().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindConflict) {
				return errs.ErrBookingConflict
			}
			return errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
		}
		bookingID = id

		if updateErr := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), idempotencyKey, userID, id); updateErr != nil {
			return errs.Mark(updateErr, errs.ErrDatabaseOperationFailed)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: serve the complete view from the read store.
	return c.bookingQueries.GetByIDSystem(ctx, bookingID)
}

func (c *bookingCommandsImpl) resolveCoupon(ctx context.Context, tx shared.Tx, code *string) (*coupon.Coupon, error) {
	if code == nil {
		return nil, nil
	}

	snapshot, err := tx.Reads().CouponByCode(ctx, *code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCouponNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	entity, err := coupon.NewCoupon(
		snapshot.ID, snapshot.Code, snapshot.PercentOff,
		snapshot.HotelID, snapshot.ValidFrom, snapshot.ValidTo, snapshot.IsActive,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCoupon)
	}

	return entity, nil
}

func resolveRoomRequests(rooms []reqdto.BookingRoomRequest, roomTypes []*hotel.RoomType) ([]booking.RoomRequest, error) {
	byID := make(map[uuid.UUID]*hotel.RoomType, len(roomTypes))
	for _, rt := range roomTypes {
		byID[rt.ID()] = rt
	}

	requests := make([]booking.RoomRequest, 0, len(rooms))
	for _, room := range rooms {
		rt, ok := byID[room.RoomTypeID]
		if !ok {
			return nil, errs.ErrRoomTypeNotFound
		}
		requests = append(requests, booking.RoomRequest{
			RoomType:      rt,
			Quantity:      room.Quantity,
			ExtraBedCount: room.ExtraBeds,
		})
	}
	return requests, nil
}

func (c *bookingCommandsImpl) PayBooking(ctx context.Context, id, actorID uuid.UUID) (*queries.BookingView, error) {
	return c.transition(ctx, id, actorID, false, booking.TransitionPaid)
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, id, actorID uuid.UUID, isAdmin bool) (*queries.BookingView, error) {
	return c.transition(ctx, id, actorID, isAdmin, booking.TransitionCancelled)
}

func (c *bookingCommandsImpl) transition(
	ctx context.Context,
	id, actorID uuid.UUID,
	isAdmin bool,
	apply func(booking.Status, booking.PaymentStatus) (booking.Status, booking.PaymentStatus, error),
) (*queries.BookingView, error) {
	var reference string

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snapshot, readErr := tx.Reads().BookingByID(ctx, id)
		if readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(readErr, errs.ErrDatabaseOperationFailed)
		}

		if !isAdmin && snapshot.UserID != actorID {
			return errs.ErrBookingNotFound
		}

		status, payment, applyErr := apply(booking.Status(snapshot.Status), booking.PaymentStatus(snapshot.PaymentStatus))
		if applyErr != nil {
			return errs.Mark(applyErr, errs.ErrBookingConflict)
		}

		if updateErr := tx.Bookings().UpdateStatus(ctx, tx.DB(), id, status, payment); updateErr != nil {
			return errs.Mark(updateErr, errs.ErrDatabaseOperationFailed)
		}

		reference = snapshot.Reference
		return nil
	})
	if err != nil {
		return nil, err
	}

	if c.vouchers != nil {
		c.vouchers.Invalidate(ctx, reference)
	}

	return c.bookingQueries.GetByIDSystem(ctx, id)
}

func calculateRequestHash(req reqdto.CreateBookingRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
