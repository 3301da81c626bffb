//go:build unit

package queries_test

import (
	"context"
	"testing"

	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingHotelRepo struct {
	fakeHotelViewRepo
	searches int
	results  []*queries.HotelListItem
}

func (c *countingHotelRepo) Search(_ context.Context, _ string, _ int32) ([]*queries.HotelListItem, error) {
	c.searches++
	return c.results, nil
}

type memorySearchCache struct {
	entries map[string][]*queries.HotelListItem
}

func (c *memorySearchCache) GetSearch(_ context.Context, key string) ([]*queries.HotelListItem, bool) {
	items, ok := c.entries[key]
	return items, ok
}

func (c *memorySearchCache) SetSearch(_ context.Context, key string, items []*queries.HotelListItem) {
	c.entries[key] = items
}

func TestHotelSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("repeat searches come from the cache", func(t *testing.T) {
		repo := &countingHotelRepo{results: []*queries.HotelListItem{
			{ID: uuid.New(), Name: "Desert Rose", City: "Riyadh"},
		}}
		q := queries.NewHotelQueries(repo, &memorySearchCache{entries: map[string][]*queries.HotelListItem{}})

		first, err := q.Search(ctx, "Riyadh", 20)
		require.NoError(t, err)
		second, err := q.Search(ctx, "Riyadh", 20)
		require.NoError(t, err)

		assert.Equal(t, 1, repo.searches)
		assert.Equal(t, first, second)
	})

	t.Run("destination is normalized into the cache key", func(t *testing.T) {
		repo := &countingHotelRepo{}
		q := queries.NewHotelQueries(repo, &memorySearchCache{entries: map[string][]*queries.HotelListItem{}})

		_, err := q.Search(ctx, "Riyadh", 20)
		require.NoError(t, err)
		_, err = q.Search(ctx, "  riyadh ", 20)
		require.NoError(t, err)

		assert.Equal(t, 1, repo.searches)
	})

	t.Run("a nil cache degrades to plain queries", func(t *testing.T) {
		repo := &countingHotelRepo{}
		q := queries.NewHotelQueries(repo, nil)

		_, err := q.Search(ctx, "Riyadh", 0)
		require.NoError(t, err)
		_, err = q.Search(ctx, "Riyadh", 0)
		require.NoError(t, err)
		assert.Equal(t, 2, repo.searches)
	})
}

func TestHotelGetByID(t *testing.T) {
	ctx := context.Background()
	hotelID := uuid.New()

	repo := &countingHotelRepo{}
	repo.hotels = map[uuid.UUID]*queries.HotelView{
		hotelID: {ID: hotelID, Name: "Desert Rose"},
	}
	q := queries.NewHotelQueries(repo, nil)

	view, err := q.GetByID(ctx, hotelID)
	require.NoError(t, err)
	assert.Equal(t, "Desert Rose", view.Name)

	_, err = q.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, errs.ErrHotelNotFound)
}
