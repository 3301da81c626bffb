package queries

import (
	"context"
	"fmt"
	"strings"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type HotelViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*HotelView, error)
	Search(ctx context.Context, destination string, limit int32) ([]*HotelListItem, error)
	FindRoomTypes(ctx context.Context, hotelID uuid.UUID) ([]RoomTypeView, error)
}

// SearchCache keeps recent destination search results. Misses are
// silent; the cache is never a source of errors.
type SearchCache interface {
	GetSearch(ctx context.Context, key string) ([]*HotelListItem, bool)
	SetSearch(ctx context.Context, key string, items []*HotelListItem)
}

type HotelQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*HotelView, error)
	Search(ctx context.Context, destination string, limit int) ([]*HotelListItem, error)
}

type hotelQueriesImpl struct {
	repo  HotelViewRepo
	cache SearchCache
}

func NewHotelQueries(repo HotelViewRepo, cache SearchCache) HotelQueries {
	return &hotelQueriesImpl{repo: repo, cache: cache}
}

func (q *hotelQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*HotelView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrHotelNotFound
		}
		return nil, errs.Wrap(err, "failed to find hotel")
	}
	return view, nil
}

func (q *hotelQueriesImpl) Search(ctx context.Context, destination string, limit int) ([]*HotelListItem, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	key := fmt.Sprintf("%s|%d", strings.ToLower(strings.TrimSpace(destination)), limit)
	if q.cache != nil {
		if items, ok := q.cache.GetSearch(ctx, key); ok {
			return items, nil
		}
	}

	items, err := q.repo.Search(ctx, destination, int32(limit))
	if err != nil {
		return nil, errs.Wrap(err, "failed to search hotels")
	}

	if q.cache != nil {
		q.cache.SetSearch(ctx, key, items)
	}
	return items, nil
}
