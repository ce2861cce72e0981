// Copyright (c) 2026 BrandBiography <hello@brandbiography.io>
// All rights reserved. See LICENSE for details.

// page.go provides a Valkey-backed full-page HTML cache. When a public
// page is rendered, the resulting HTML is stored in Valkey so subsequent
// requests skip the collection reads and template execution entirely.
// The cache is optional: a PageCache with a nil client disables caching
// and every operation becomes a no-op.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// pageKeyPrefix is the Valkey key prefix for cached pages.
	pageKeyPrefix = "page:"

	// DefaultPageTTL is how long a rendered page stays cached.
	DefaultPageTTL = 5 * time.Minute
)

// PageCache manages full-page HTML caching in Valkey.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache creates a page cache backed by the given Valkey client.
// A nil client yields a disabled cache.
func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	if ttl == 0 {
		ttl = DefaultPageTTL
	}
	return &PageCache{client: client, ttl: ttl}
}

// Enabled reports whether a backing client is configured.
func (pc *PageCache) Enabled() bool {
	return pc != nil && pc.client != nil
}

// Get retrieves cached HTML for a page key. Always a miss when disabled.
func (pc *PageCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if !pc.Enabled() {
		return nil, false
	}
	val, err := pc.client.Get(ctx, pageKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("page cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("page cache hit", "key", key)
	return val, true
}

// Set stores rendered HTML for a page key with the configured TTL.
func (pc *PageCache) Set(ctx context.Context, key string, html []byte) {
	if !pc.Enabled() {
		return
	}
	if err := pc.client.Set(ctx, pageKeyPrefix+key, html, pc.ttl).Err(); err != nil {
		slog.Warn("page cache set error", "key", key, "error", err)
	}
}

// Invalidate removes a single cached page by key.
func (pc *PageCache) Invalidate(ctx context.Context, key string) {
	if !pc.Enabled() {
		return
	}
	if err := pc.client.Del(ctx, pageKeyPrefix+key).Err(); err != nil {
		slog.Warn("page cache invalidate error", "key", key, "error", err)
	}
}

// InvalidateAll removes every cached page by scanning for the prefix.
// Used after mutations that can affect any rendered page.
func (pc *PageCache) InvalidateAll(ctx context.Context) {
	if !pc.Enabled() {
		return
	}
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := pc.client.Scan(ctx, cursor, pageKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("page cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := pc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("page cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("page cache cleared", "deleted", deleted)
	}
}

// HomepageKey returns the cache key for the homepage.
func HomepageKey() string {
	return "_homepage"
}

// ResourceListKey returns the cache key for the resources listing page.
func ResourceListKey() string {
	return "_resources"
}

// SlugKey returns the cache key for a resource detail page.
func SlugKey(slug string) string {
	return "resource:" + slug
}
