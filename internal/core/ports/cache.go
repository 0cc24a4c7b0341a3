package ports

// CacheStats is a read-only snapshot of a TTL cache. Expired entries are
// counted but not removed, so stats collection has no side effects.
type CacheStats struct {
	TotalEntries   int `json:"total_entries"`
	ExpiredEntries int `json:"expired_entries"`
	ActiveEntries  int `json:"active_entries"`
	TTLSeconds     int `json:"ttl_seconds"`
}

// TTLCache is an in-memory expiring key-value store. No operation errors
// on a missing or expired key; Get simply reports absence. Implementations
// must be safe for concurrent use.
type TTLCache[V any] interface {
	// Get returns the live value for key. ok=false if absent or expired;
	// expired entries are deleted lazily on lookup.
	Get(key string) (V, bool)
	// Set inserts or unconditionally replaces the entry for key, stamped
	// at the current time.
	Set(key string, value V)
	// Clear removes all entries and returns how many were removed.
	Clear() int
	// ClearExpired removes only expired entries and returns how many were
	// removed.
	ClearExpired() int
	// Stats returns a snapshot without mutating the cache.
	Stats() CacheStats
}
