package services_test

import (
	"testing"
	"time"

	impl "github.com/recruitu/backend/internal/application/services"
	"github.com/recruitu/backend/internal/core/domain/search"
	"github.com/recruitu/backend/internal/core/ports"
	"github.com/recruitu/backend/internal/infrastructure/memcache"
)

type maintenanceFixture struct {
	svc         ports.CacheMaintenance
	queryCache  *memcache.Cache[search.Filters]
	suggestions *memcache.Cache[[]string]
	clock       *movableClock
}

type movableClock struct{ now time.Time }

func (c *movableClock) Now() time.Time          { return c.now }
func (c *movableClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newMaintenanceFixture() *maintenanceFixture {
	clock := &movableClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	queryCache := memcache.New(2*time.Hour, memcache.WithClock[search.Filters](clock.Now))
	suggestions := memcache.New(time.Hour, memcache.WithClock[[]string](clock.Now), memcache.WithClone(memcache.CloneStrings))
	return &maintenanceFixture{
		svc:         impl.NewCacheMaintenanceService(queryCache, suggestions, nil),
		queryCache:  queryCache,
		suggestions: suggestions,
		clock:       clock,
	}
}

func TestSweep_RemovesOnlyExpired(t *testing.T) {
	f := newMaintenanceFixture()
	f.suggestions.Set("old", []string{"a"})
	f.queryCache.Set("q", search.Default())
	f.clock.Advance(time.Hour)
	f.suggestions.Set("fresh", []string{"b"})

	result := f.svc.Sweep()
	if result.SuggestionsExpiredCleared != 1 {
		t.Fatalf("expected 1 expired suggestion entry, got %d", result.SuggestionsExpiredCleared)
	}
	if result.QueryParsingExpiredCleared != 0 {
		t.Fatalf("query cache entry is still live, got %d", result.QueryParsingExpiredCleared)
	}
	if _, ok := f.suggestions.Get("fresh"); !ok {
		t.Fatalf("live entry removed by sweep")
	}
}

func TestClear_Scopes(t *testing.T) {
	f := newMaintenanceFixture()
	f.suggestions.Set("s", []string{"a"})
	f.queryCache.Set("q1", search.Default())
	f.queryCache.Set("q2", search.Default())

	result, err := f.svc.Clear(ports.CacheScopeSuggestions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Cleared) != 1 || result.Cleared[0] != "suggestions" {
		t.Fatalf("unexpected cleared list: %v", result.Cleared)
	}
	if result.Counts["suggestions_cleared"] != 1 {
		t.Fatalf("unexpected counts: %v", result.Counts)
	}
	if stats := f.queryCache.Stats(); stats.TotalEntries != 2 {
		t.Fatalf("query cache should be untouched, stats: %+v", stats)
	}

	result, err = f.svc.Clear(ports.CacheScopeAll)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Counts["query_parsing_cleared"] != 2 {
		t.Fatalf("unexpected counts: %v", result.Counts)
	}
}

func TestClear_UnknownScope(t *testing.T) {
	f := newMaintenanceFixture()
	if _, err := f.svc.Clear("bogus"); err == nil {
		t.Fatalf("expected error for unknown scope")
	}
}

func TestStats(t *testing.T) {
	f := newMaintenanceFixture()
	f.suggestions.Set("s", []string{"a"})

	stats := f.svc.Stats()
	if stats.Suggestions.TotalEntries != 1 || stats.QueryParsing.TotalEntries != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.Suggestions.TTLSeconds != 3600 || stats.QueryParsing.TTLSeconds != 7200 {
		t.Fatalf("unexpected ttl seconds: %+v", stats)
	}
}
