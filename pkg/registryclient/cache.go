package registryclient

import (
	"sync"
	"time"
)

type cacheEntry struct {
	asset     Asset
	expiresAt time.Time
}

// assetCache is a TTL map for GetAsset responses. Expired entries are dropped
// lazily on read.
type assetCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

func newAssetCache() *assetCache {
	return &assetCache{
		entries: make(map[string]cacheEntry),
	}
}

func (c *assetCache) Get(id string) (Asset, bool) {
	c.mu.RLock()
	entry, ok := c.entries[id]
	c.mu.RUnlock()

	if !ok {
		return Asset{}, false
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, id)
		c.mu.Unlock()
		return Asset{}, false
	}
	return entry.asset, true
}

func (c *assetCache) Set(id string, asset Asset, ttl time.Duration) {
	c.mu.Lock()
	c.entries[id] = cacheEntry{
		asset:     asset,
		expiresAt: time.Now().Add(ttl),
	}
	c.mu.Unlock()
}

func (c *assetCache) Invalidate(id string) {
	c.mu.Lock()
	delete(c.entries, id)
	c.mu.Unlock()
}
