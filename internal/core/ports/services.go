package ports

import (
	"context"

	"github.com/recruitu/backend/internal/core/domain/profile"
	"github.com/recruitu/backend/internal/core/domain/search"
)

// QueryParsingService turns a natural-language query into validated
// structured search filters, memoizing LLM results.
type QueryParsingService interface {
	// Parse returns the filters for query. When no LLM provider is
	// configured it returns default filters without touching the cache.
	// LLM failures and validation failures propagate; callers fall back
	// to search.Default().
	Parse(ctx context.Context, query string) (search.Filters, error)
}

// SuggestionService generates conversation-starter suggestions between two
// profiles. It never fails: missing input and LLM errors both degrade to
// fixed fallback suggestions.
type SuggestionService interface {
	Suggest(ctx context.Context, current *profile.Detailed, inquired *profile.SearchResult) []string
}

// Cache scopes accepted by CacheMaintenance.Clear.
const (
	CacheScopeSuggestions  = "suggestions"
	CacheScopeQueryParsing = "query_parsing"
	CacheScopeAll          = "all"
)

// SweepResult reports how many expired entries a maintenance sweep removed
// from each cache.
type SweepResult struct {
	SuggestionsExpiredCleared  int `json:"suggestions_expired_cleared"`
	QueryParsingExpiredCleared int `json:"query_parsing_expired_cleared"`
}

// ClearResult reports which caches were cleared and how many entries each
// held.
type ClearResult struct {
	Cleared []string       `json:"cleared"`
	Counts  map[string]int `json:"stats"`
}

// AllCacheStats bundles the stats of both caches for observability
// endpoints.
type AllCacheStats struct {
	Suggestions  CacheStats `json:"suggestions"`
	QueryParsing CacheStats `json:"query_parsing"`
}

// CacheMaintenance exposes the periodic sweep and the manual clear
// operation over both LLM caches.
type CacheMaintenance interface {
	Sweep() SweepResult
	Clear(scope string) (ClearResult, error)
	Stats() AllCacheStats
}
