package research

import (
	"sort"
	"sync"
	"time"
)

// Cache is a TTL plus size-bounded cache for research responses. Eviction is
// oldest-first once the size cap is reached. Safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	maxSize int
}

type cacheEntry struct {
	values    []string
	timestamp time.Time
}

// NewCache creates a cache with the given TTL and maximum entry count.
func NewCache(ttl time.Duration, maxSize int) *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

// Get returns the cached values for key, or false when absent or expired.
func (c *Cache) Get(key string) ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, found := c.entries[key]
	if !found || time.Since(entry.timestamp) > c.ttl {
		return nil, false
	}
	return entry.values, true
}

// Set stores values under key, evicting expired and oldest entries as needed.
func (c *Cache) Set(key string, values []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for k, e := range c.entries {
		if now.Sub(e.timestamp) > c.ttl {
			delete(c.entries, k)
		}
	}

	if len(c.entries) >= c.maxSize {
		c.evictOldestLocked(len(c.entries) - c.maxSize + 1)
	}

	c.entries[key] = cacheEntry{values: values, timestamp: now}
}

// Len returns the current entry count.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// evictOldestLocked removes the n oldest entries. Caller holds the lock.
func (c *Cache) evictOldestLocked(n int) {
	type aged struct {
		key       string
		timestamp time.Time
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{k, e.timestamp})
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].timestamp.Before(all[j].timestamp)
	})

	for i := 0; i < n && i < len(all); i++ {
		delete(c.entries, all[i].key)
	}
}
