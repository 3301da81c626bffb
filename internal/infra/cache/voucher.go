package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// VoucherCache keeps rendered voucher artifacts in Redis keyed by booking
// reference and content type. Rendering is deterministic for a given
// booking, so entries are only invalidated by TTL or a status change.
type VoucherCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewVoucherCache(client *redis.Client, ttl time.Duration) *VoucherCache {
	return &VoucherCache{client: client, ttl: ttl}
}

func voucherKey(reference, contentType string) string {
	return "voucher:" + reference + ":" + contentType
}

func (c *VoucherCache) Get(ctx context.Context, reference, contentType string) ([]byte, bool) {
	if c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, voucherKey(reference, contentType)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("voucher cache read failed", "reference", reference, "error", err.Error())
		}
		return nil, false
	}
	return data, true
}

func (c *VoucherCache) Set(ctx context.Context, reference, contentType string, data []byte) {
	if c.client == nil {
		return
	}

	if err := c.client.Set(ctx, voucherKey(reference, contentType), data, c.ttl).Err(); err != nil {
		slog.Warn("voucher cache write failed", "reference", reference, "error", err.Error())
	}
}

// Invalidate drops all cached renderings for a booking, e.g. after a
// payment flips the display status.
func (c *VoucherCache) Invalidate(ctx context.Context, reference string) {
	if c.client == nil {
		return
	}

	iter := c.client.Scan(ctx, 0, "voucher:"+reference+":*", 10).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			slog.Warn("voucher cache invalidation failed", "reference", reference, "error", err.Error())
		}
	}
}
