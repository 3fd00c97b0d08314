package identity

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/renlow/LinkForge_Go/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema.
// Increment this when the cached data structure changes to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

// cachedAccountEntry wraps an account with version metadata for cache invalidation
type cachedAccountEntry struct {
	Version  string       `json:"version"`
	User     *domain.User `json:"user"`
	CachedAt time.Time    `json:"cached_at"`
}

// accountCache provides an in-memory LRU cache for account resolution keyed
// by (platform, external id), with time-based expiration and version-based
// invalidation to prevent stale data.
type accountCache struct {
	lru *expirable.LRU[string, *cachedAccountEntry]
}

func newAccountCache(size int, ttl time.Duration) *accountCache {
	return &accountCache{
		lru: expirable.NewLRU[string, *cachedAccountEntry](size, nil, ttl),
	}
}

// Get retrieves an account from the cache.
// Returns (nil, false) if not in cache, expired, or version mismatch.
func (c *accountCache) Get(platform, externalID string) (*domain.User, bool) {
	key := platform + ":" + externalID
	entry, found := c.lru.Get(key)
	if !found {
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		return nil, false
	}

	return entry.User, true
}

// Set stores an account in the cache with the current schema version.
func (c *accountCache) Set(platform, externalID string, user *domain.User) {
	key := platform + ":" + externalID
	c.lru.Add(key, &cachedAccountEntry{
		Version:  CacheSchemaVersion,
		User:     user,
		CachedAt: time.Now(),
	})
}

// Invalidate removes an account from the cache. Called whenever a link or
// unlink changes what the key resolves to.
func (c *accountCache) Invalidate(platform, externalID string) {
	c.lru.Remove(platform + ":" + externalID)
}

// Clear removes all entries from the cache.
func (c *accountCache) Clear() {
	c.lru.Purge()
}
