package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const memoryCleanupInterval = 10 * time.Minute

// memoryCache is a process-local CacheService. Values are stored JSON encoded
// so callers see the same copy semantics as with Redis.
type memoryCache struct {
	items *gocache.Cache
}

func NewMemoryCache() CacheService {
	return &memoryCache{
		items: gocache.New(gocache.NoExpiration, memoryCleanupInterval),
	}
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache value: %w", err)
	}

	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	m.items.Set(key, data, ttl)
	return nil
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := m.items.Get(key)
	if !ok {
		return ErrCacheMiss
	}

	data, ok := raw.([]byte)
	if !ok {
		return fmt.Errorf("unexpected cache value type %T for %s", raw, key)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode cache value for %s: %w", key, err)
	}
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, key string) error {
	if _, ok := m.items.Get(key); !ok {
		return ErrCacheMiss
	}
	m.items.Delete(key)
	return nil
}

// DeletePattern removes keys matching a glob pattern (Redis MATCH syntax for
// the common *, ? and [] cases).
func (m *memoryCache) DeletePattern(ctx context.Context, pattern string) error {
	if _, err := path.Match(pattern, ""); err != nil {
		return fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	for key := range m.items.Items() {
		if ok, _ := path.Match(pattern, key); ok {
			m.items.Delete(key)
		}
	}
	return nil
}
