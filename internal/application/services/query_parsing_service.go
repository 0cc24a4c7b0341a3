package services

import (
	"context"
	"fmt"

	"github.com/recruitu/backend/internal/core/domain/search"
	"github.com/recruitu/backend/internal/core/ports"
	"github.com/recruitu/backend/internal/infrastructure/metrics"
	"github.com/recruitu/backend/internal/utils"
	"github.com/sirupsen/logrus"
)

const parseSystemPrompt = `You extract structured recruiting search filters from a natural language query. ` +
	`Respond with a single JSON object and nothing else. Allowed keys: name, current_company, ` +
	`previous_company, sector, title, role, school, undergraduate_year, city, page, count. ` +
	`sector must be CONSULTING or FINANCE. undergraduate_year, page and count are integers. ` +
	`Omit any field the query does not mention.`

// QueryParsingService memoizes LLM-based natural-language-to-filter
// parsing in a TTL cache keyed by the normalized query text.
type QueryParsingService struct {
	llm    ports.LLMClient
	cache  ports.TTLCache[search.Filters]
	logger *logrus.Logger
}

// NewQueryParsingService creates a query parsing service.
func NewQueryParsingService(llm ports.LLMClient, cache ports.TTLCache[search.Filters], logger *logrus.Logger) ports.QueryParsingService {
	return &QueryParsingService{llm: llm, cache: cache, logger: logger}
}

// Parse implements ports.QueryParsingService. With no provider configured
// it returns default filters without touching the cache or the LLM, so
// repeated calls are deterministic and side-effect free. Validation
// failures and LLM failures propagate uncached.
func (s *QueryParsingService) Parse(ctx context.Context, query string) (search.Filters, error) {
	if !s.llm.Available() {
		return search.Default(), nil
	}

	key := utils.QueryKey(query)
	if filters, ok := s.cache.Get(key); ok {
		metrics.CacheLookup("query_parsing", "hit")
		if s.logger != nil {
			s.logger.WithField("key", key).Debug("query parsing cache hit")
		}
		return filters, nil
	}
	metrics.CacheLookup("query_parsing", "miss")

	raw, err := s.llm.CompleteJSON(ctx, parseSystemPrompt, buildParseUserPrompt(query))
	if err != nil {
		metrics.LLMRequest("parse_query", "error")
		return search.Filters{}, fmt.Errorf("query parsing failed: %w", err)
	}
	metrics.LLMRequest("parse_query", "ok")

	filters, err := search.FromRaw(raw)
	if err != nil {
		// Schema violations are hard errors and never cached.
		if s.logger != nil {
			s.logger.WithField("query", query).WithError(err).Warn("parsed query failed validation")
		}
		return search.Filters{}, err
	}

	s.cache.Set(key, filters)
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"key": key, "filters": filters}).Debug("cached parsed query")
	}
	return filters, nil
}

func buildParseUserPrompt(query string) string {
	return "\nInput: " + query + "\nOutput:"
}
