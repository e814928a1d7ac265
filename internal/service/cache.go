package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/2bleO/CoolStff.com/internal/domain"
)

// ListingCache is a read-through redis cache for per-category product
// snapshots. Every failure degrades to the repository; the cache never
// surfaces an error to callers.
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewListingCache wraps a redis client for listing snapshots. A nil
// client yields a nil cache, which every method treats as a no-op.
func NewListingCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *ListingCache {
	if client == nil {
		return nil
	}
	return &ListingCache{
		client: client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "listing_cache")),
	}
}

func listingKey(categoryID string) string {
	return fmt.Sprintf("catalog:category:%s:products", categoryID)
}

func (c *ListingCache) get(ctx context.Context, categoryID string) ([]domain.Product, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, listingKey(categoryID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.DebugContext(ctx, "cache read failed", slog.String("error", err.Error()))
		}
		return nil, false
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		c.logger.WarnContext(ctx, "cache entry corrupt, dropping",
			slog.String("category_id", categoryID),
			slog.String("error", err.Error()),
		)
		c.invalidate(ctx, categoryID)
		return nil, false
	}
	return products, true
}

func (c *ListingCache) set(ctx context.Context, categoryID string, products []domain.Product) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, listingKey(categoryID), raw, c.ttl).Err(); err != nil {
		c.logger.DebugContext(ctx, "cache write failed", slog.String("error", err.Error()))
	}
}

func (c *ListingCache) invalidate(ctx context.Context, categoryID string) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, listingKey(categoryID)).Err(); err != nil {
		c.logger.DebugContext(ctx, "cache invalidation failed", slog.String("error", err.Error()))
	}
}
