package services

import (
	"fmt"

	"github.com/recruitu/backend/internal/core/domain/search"
	"github.com/recruitu/backend/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// CacheMaintenanceService owns the periodic expired-entry sweep and the
// manual clear operation over both LLM caches.
type CacheMaintenanceService struct {
	queryCache       ports.TTLCache[search.Filters]
	suggestionsCache ports.TTLCache[[]string]
	logger           *logrus.Logger
}

// NewCacheMaintenanceService creates a cache maintenance service.
func NewCacheMaintenanceService(queryCache ports.TTLCache[search.Filters], suggestionsCache ports.TTLCache[[]string], logger *logrus.Logger) ports.CacheMaintenance {
	return &CacheMaintenanceService{
		queryCache:       queryCache,
		suggestionsCache: suggestionsCache,
		logger:           logger,
	}
}

// Sweep removes expired entries from both caches and reports the counts.
// Triggered by health checks rather than a background goroutine.
func (s *CacheMaintenanceService) Sweep() ports.SweepResult {
	result := ports.SweepResult{
		SuggestionsExpiredCleared:  s.suggestionsCache.ClearExpired(),
		QueryParsingExpiredCleared: s.queryCache.ClearExpired(),
	}
	if s.logger != nil && (result.SuggestionsExpiredCleared > 0 || result.QueryParsingExpiredCleared > 0) {
		s.logger.WithFields(logrus.Fields{
			"suggestions_expired":   result.SuggestionsExpiredCleared,
			"query_parsing_expired": result.QueryParsingExpiredCleared,
		}).Info("swept expired cache entries")
	}
	return result
}

// Clear empties the caches selected by scope and reports per-cache counts.
func (s *CacheMaintenanceService) Clear(scope string) (ports.ClearResult, error) {
	result := ports.ClearResult{Cleared: []string{}, Counts: map[string]int{}}

	switch scope {
	case ports.CacheScopeSuggestions, ports.CacheScopeQueryParsing, ports.CacheScopeAll:
	default:
		return ports.ClearResult{}, fmt.Errorf("unknown cache scope %q", scope)
	}

	if scope == ports.CacheScopeSuggestions || scope == ports.CacheScopeAll {
		count := s.suggestionsCache.Clear()
		result.Cleared = append(result.Cleared, ports.CacheScopeSuggestions)
		result.Counts["suggestions_cleared"] = count
	}
	if scope == ports.CacheScopeQueryParsing || scope == ports.CacheScopeAll {
		count := s.queryCache.Clear()
		result.Cleared = append(result.Cleared, ports.CacheScopeQueryParsing)
		result.Counts["query_parsing_cleared"] = count
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"scope": scope, "stats": result.Counts}).Info("caches cleared")
	}
	return result, nil
}

// Stats returns a read-only snapshot of both caches.
func (s *CacheMaintenanceService) Stats() ports.AllCacheStats {
	return ports.AllCacheStats{
		Suggestions:  s.suggestionsCache.Stats(),
		QueryParsing: s.queryCache.Stats(),
	}
}
