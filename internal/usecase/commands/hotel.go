package commands

import (
	"context"

	"hotel-booking-api/internal/domain/hotel"
	reqdto "hotel-booking-api/internal/handler/dto/request"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// HotelCommands is the admin surface for managing the catalogue.
type HotelCommands interface {
	CreateHotel(ctx context.Context, req reqdto.CreateHotelRequest) (*queries.HotelView, error)
	UpdateHotel(ctx context.Context, id uuid.UUID, req reqdto.UpdateHotelRequest) (*queries.HotelView, error)
	CreateRoomType(ctx context.Context, hotelID uuid.UUID, req reqdto.CreateRoomTypeRequest) (*queries.HotelView, error)
}

type hotelCommandsImpl struct {
	uow          shared.UnitOfWork
	hotelQueries queries.HotelQueries
}

func NewHotelCommands(uow shared.UnitOfWork, hotelQueries queries.HotelQueries) HotelCommands {
	return &hotelCommandsImpl{uow: uow, hotelQueries: hotelQueries}
}

func (h *hotelCommandsImpl) CreateHotel(ctx context.Context, req reqdto.CreateHotelRequest) (*queries.HotelView, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = h.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, createErr := tx.Hotels().CreateHotel(ctx, tx.DB(), entity); createErr != nil {
			return errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return h.hotelQueries.GetByID(ctx, entity.ID())
}

func (h *hotelCommandsImpl) UpdateHotel(ctx context.Context, id uuid.UUID, req reqdto.UpdateHotelRequest) (*queries.HotelView, error) {
	entity, err := hotel.NewHotel(req.Name, req.City, req.Address, req.Stars, req.Description, req.Phone, req.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	updated := hotel.ReconstructHotel(
		id, entity.Name(), entity.City(), entity.Address(), entity.Stars(),
		entity.Description(), entity.Phone(), entity.Email(),
		entity.CreatedAt(), entity.UpdatedAt(),
	)

	err = h.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Hotels().UpdateHotel(ctx, tx.DB(), updated); updateErr != nil {
			if infra.IsKind(updateErr, infra.KindNotFound) {
				return errs.ErrHotelNotFound
			}
			return errs.Mark(updateErr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return h.hotelQueries.GetByID(ctx, id)
}

func (h *hotelCommandsImpl) CreateRoomType(ctx context.Context, hotelID uuid.UUID, req reqdto.CreateRoomTypeRequest) (*queries.HotelView, error) {
	entity, err := req.ToDomain(hotelID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = h.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, createErr := tx.Hotels().CreateRoomType(ctx, tx.DB(), entity); createErr != nil {
			if infra.IsKind(createErr, infra.KindForeignKeyViolated) {
				return errs.ErrHotelNotFound
			}
			return errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return h.hotelQueries.GetByID(ctx, hotelID)
}
