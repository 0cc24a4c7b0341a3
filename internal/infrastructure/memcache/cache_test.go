package memcache_test

import (
	"testing"
	"time"

	"github.com/recruitu/backend/internal/infrastructure/memcache"
)

// fakeClock is a manually advanced time source.
type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func TestGet_Missing(t *testing.T) {
	c := memcache.New[int](time.Hour)
	if _, ok := c.Get("absent"); ok {
		t.Fatalf("expected absent key to report ok=false")
	}
}

func TestGet_BeforeTTL(t *testing.T) {
	clock := newFakeClock()
	c := memcache.New(time.Hour, memcache.WithClock[int](clock.Now))

	c.Set("k", 42)
	clock.Advance(59 * time.Minute)

	v, ok := c.Get("k")
	if !ok || v != 42 {
		t.Fatalf("expected live entry 42, got %v ok=%v", v, ok)
	}
}

func TestGet_ExpiredEntryIsDeleted(t *testing.T) {
	clock := newFakeClock()
	c := memcache.New(time.Hour, memcache.WithClock[int](clock.Now))

	c.Set("k", 42)
	clock.Advance(time.Hour)

	before := c.Stats()
	if before.TotalEntries != 1 || before.ExpiredEntries != 1 || before.ActiveEntries != 0 {
		t.Fatalf("unexpected stats before get: %+v", before)
	}

	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected expired entry to report ok=false")
	}

	after := c.Stats()
	if after.TotalEntries != 0 {
		t.Fatalf("expected lazy deletion on get, stats: %+v", after)
	}
}

func TestSet_Replaces(t *testing.T) {
	c := memcache.New[string](time.Hour)
	c.Set("k", "old")
	c.Set("k", "new")

	v, ok := c.Get("k")
	if !ok || v != "new" {
		t.Fatalf("expected replaced value, got %q ok=%v", v, ok)
	}
	if stats := c.Stats(); stats.TotalEntries != 1 {
		t.Fatalf("expected single entry after replace, stats: %+v", stats)
	}
}

func TestSet_DefensiveCopy(t *testing.T) {
	c := memcache.New(time.Hour, memcache.WithClone(memcache.CloneStrings))

	original := []string{"a", "b"}
	c.Set("k", original)
	original[0] = "mutated"

	got, ok := c.Get("k")
	if !ok {
		t.Fatalf("expected entry")
	}
	if got[0] != "a" || got[1] != "b" {
		t.Fatalf("caller mutation corrupted cached value: %v", got)
	}

	// Mutating the returned slice must not affect the cached state either.
	got[1] = "mutated"
	again, _ := c.Get("k")
	if again[1] != "b" {
		t.Fatalf("returned-value mutation corrupted cached value: %v", again)
	}
}

func TestClear(t *testing.T) {
	c := memcache.New[int](time.Hour)
	c.Set("a", 1)
	c.Set("b", 2)

	if n := c.Clear(); n != 2 {
		t.Fatalf("expected 2 cleared, got %d", n)
	}
	if stats := c.Stats(); stats.TotalEntries != 0 {
		t.Fatalf("expected empty cache, stats: %+v", stats)
	}
}

func TestClearExpired_Selective(t *testing.T) {
	clock := newFakeClock()
	c := memcache.New(time.Hour, memcache.WithClock[int](clock.Now))

	c.Set("old", 1)
	clock.Advance(time.Hour)
	c.Set("fresh", 2)

	if n := c.ClearExpired(); n != 1 {
		t.Fatalf("expected 1 expired entry removed, got %d", n)
	}
	if _, ok := c.Get("old"); ok {
		t.Fatalf("expected expired entry removed")
	}
	if v, ok := c.Get("fresh"); !ok || v != 2 {
		t.Fatalf("expected live entry untouched, got %v ok=%v", v, ok)
	}
}

func TestStats_DoesNotDelete(t *testing.T) {
	clock := newFakeClock()
	c := memcache.New(time.Hour, memcache.WithClock[int](clock.Now))

	c.Set("k", 1)
	clock.Advance(2 * time.Hour)

	for i := 0; i < 2; i++ {
		stats := c.Stats()
		if stats.TotalEntries != 1 || stats.ExpiredEntries != 1 {
			t.Fatalf("stats mutated the cache on pass %d: %+v", i, stats)
		}
	}
	if stats := c.Stats(); stats.TTLSeconds != 3600 {
		t.Fatalf("expected ttl_seconds 3600, got %d", stats.TTLSeconds)
	}
}
