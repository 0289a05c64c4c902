// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"krx_backend/internal/feature/quotes/domain/entity"
	"krx_backend/internal/feature/quotes/usecase"
)

// CachingQuoteRepository decorates a QuoteRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository.
type CachingQuoteRepository struct {
	inner     usecase.QuoteRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingQuoteRepository decorates a QuoteRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "quotes".
func NewCachingQuoteRepository(rdb *redis.Client, ttl time.Duration, inner usecase.QuoteRepository, namespace string) *CachingQuoteRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "quotes"
	}
	return &CachingQuoteRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// UpsertBatch inserts or updates quotes and invalidates related cache entries.
func (c *CachingQuoteRepository) UpsertBatch(ctx context.Context, quotes []entity.IndexQuote) error {
	// First upsert to the underlying repository
	if err := c.inner.UpsertBatch(ctx, quotes); err != nil {
		return err
	}
	// Exit early if Redis is not configured or there are no quotes
	if c.rdb == nil || len(quotes) == 0 {
		return nil
	}

	// Invalidate affected cache entries (keys per index name)
	seen := map[string]struct{}{}
	for _, q := range quotes {
		prefix := c.cacheKeyPrefix(q.IndexName)
		if _, ok := seen[prefix]; ok {
			continue
		}
		seen[prefix] = struct{}{}
		_ = c.deleteByPattern(ctx, prefix+"*") // Best effort: don't fail if cache deletion fails
	}
	return nil
}

// Find retrieves quotes, checking cache first then falling back to the database.
func (c *CachingQuoteRepository) Find(ctx context.Context, indexName string, outputsize int) ([]entity.IndexQuote, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Find(ctx, indexName, outputsize)
	}

	key := c.cacheKey(indexName, outputsize)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.IndexQuote
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.Find(ctx, indexName, outputsize)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates a cache key for a specific query.
func (c *CachingQuoteRepository) cacheKey(indexName string, outputsize int) string {
	return fmt.Sprintf("%s:%s:%d", c.namespace, safe(indexName), outputsize)
}

// cacheKeyPrefix generates a prefix for invalidating related cache entries.
func (c *CachingQuoteRepository) cacheKeyPrefix(indexName string) string {
	return fmt.Sprintf("%s:%s:", c.namespace, safe(indexName))
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingQuoteRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
