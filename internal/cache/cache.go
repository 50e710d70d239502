// Package cache is the request-level response cache: it deduplicates
// repeated fetches of the same logical resource, supports explicit
// invalidation after mutations, and keeps the previous page of a paginated
// view available while the next one loads.
package cache

import (
	"strings"
	"sync"
	"time"
)

// TTLs mirror the staleness windows the screens were built around.
const (
	DefaultTTL = time.Minute
	LongTTL    = 5 * time.Minute
)

type entry struct {
	value    interface{}
	storedAt time.Time
	ttl      time.Duration
}

type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns a value still inside its staleness window.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.storedAt) > e.ttl {
		return nil, false
	}
	return e.value, true
}

// GetStale returns whatever is held for the key regardless of age, plus
// whether it is still fresh. This backs the keep-previous-page policy: a
// stale page stays on screen while the replacement fetch runs.
func (c *Cache) GetStale(key string) (value interface{}, fresh bool, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false, false
	}
	return e.value, c.now().Sub(e.storedAt) <= e.ttl, true
}

func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, storedAt: c.now(), ttl: ttl}
}

// Invalidate drops every entry whose key starts with one of the prefixes,
// so "transactions" clears all cached transaction pages at once.
func (c *Cache) Invalidate(prefixes ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				delete(c.entries, key)
				break
			}
		}
	}
}

func (c *Cache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}
