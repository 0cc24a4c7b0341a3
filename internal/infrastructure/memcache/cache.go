// Package memcache provides the in-memory TTL cache backing the LLM
// memoization layer. Entries expire by age only: there is no size cap and
// no background janitor. Expired entries are removed lazily on Get and in
// bulk by ClearExpired, which the health-check sweep invokes.
package memcache

import (
	"sync"
	"time"

	"github.com/recruitu/backend/internal/core/ports"
)

type entry[V any] struct {
	value     V
	createdAt time.Time
}

// Cache is a mutex-guarded expiring map. An entry is live while
// now - createdAt < ttl; entries are immutable and Set always replaces.
type Cache[V any] struct {
	mu      sync.Mutex
	entries map[string]entry[V]
	ttl     time.Duration
	now     func() time.Time
	clone   func(V) V
}

// Option configures a Cache.
type Option[V any] func(*Cache[V])

// WithClock overrides the cache's time source, used by tests to advance
// time past the TTL.
func WithClock[V any](now func() time.Time) Option[V] {
	return func(c *Cache[V]) { c.now = now }
}

// WithClone installs a defensive copy for container values. Both Set and
// Get apply it, so a caller mutating a value it passed in or got back can
// never corrupt the cached state.
func WithClone[V any](clone func(V) V) Option[V] {
	return func(c *Cache[V]) { c.clone = clone }
}

// CloneStrings is the clone function for string-slice values.
func CloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

// New creates a cache whose entries expire after ttl.
func New[V any](ttl time.Duration, opts ...Option[V]) *Cache[V] {
	c := &Cache[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		now:     time.Now,
		clone:   func(v V) V { return v },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ ports.TTLCache[struct{}] = (*Cache[struct{}])(nil)

// Get returns the live value for key. Expired entries are deleted on
// discovery and reported as absent.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if c.expired(e) {
		delete(c.entries, key)
		var zero V
		return zero, false
	}
	return c.clone(e.value), true
}

// Set inserts or unconditionally replaces the entry for key, stamped at
// the current time.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{value: c.clone(value), createdAt: c.now()}
}

// Clear removes all entries and returns how many were removed.
func (c *Cache[V]) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := len(c.entries)
	c.entries = make(map[string]entry[V])
	return count
}

// ClearExpired removes only expired entries and returns how many were
// removed. Live entries are untouched.
func (c *Cache[V]) ClearExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for key, e := range c.entries {
		if c.expired(e) {
			delete(c.entries, key)
			count++
		}
	}
	return count
}

// Stats returns a snapshot of the cache. Expired entries are counted but
// not deleted.
func (c *Cache[V]) Stats() ports.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	expired := 0
	for _, e := range c.entries {
		if c.expired(e) {
			expired++
		}
	}
	total := len(c.entries)
	return ports.CacheStats{
		TotalEntries:   total,
		ExpiredEntries: expired,
		ActiveEntries:  total - expired,
		TTLSeconds:     int(c.ttl / time.Second),
	}
}

func (c *Cache[V]) expired(e entry[V]) bool {
	return c.now().Sub(e.createdAt) >= c.ttl
}
