package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"hotel-booking-api/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

// SearchCache keeps hotel destination searches in Redis for a short TTL.
// The catalogue changes rarely; a stale list for a minute is acceptable,
// a query per keystroke is not.
type SearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSearchCache(client *redis.Client, ttl time.Duration) *SearchCache {
	return &SearchCache{client: client, ttl: ttl}
}

func searchKey(key string) string {
	return "hotel-search:" + key
}

func (c *SearchCache) GetSearch(ctx context.Context, key string) ([]*queries.HotelListItem, bool) {
	if c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, searchKey(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("search cache read failed", "key", key, "error", err.Error())
		}
		return nil, false
	}

	var items []*queries.HotelListItem
	if err := json.Unmarshal(data, &items); err != nil {
		slog.Warn("search cache entry corrupt", "key", key, "error", err.Error())
		return nil, false
	}
	return items, true
}

func (c *SearchCache) SetSearch(ctx context.Context, key string, items []*queries.HotelListItem) {
	if c.client == nil {
		return
	}

	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, searchKey(key), data, c.ttl).Err(); err != nil {
		slog.Warn("search cache write failed", "key", key, "error", err.Error())
	}
}
