package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/recruitu/backend/internal/core/domain/profile"
	"github.com/recruitu/backend/internal/core/ports"
	"github.com/recruitu/backend/internal/infrastructure/metrics"
	"github.com/recruitu/backend/internal/utils"
	"github.com/sirupsen/logrus"
)

const suggestionSystemPrompt = `You are an expert networking assistant. Given two user profiles and their ` +
	`backgrounds, suggest 2-3 ways they could start a conversation based on their commonalities. ` +
	`Respond with a JSON object with just Arrays of Strings and no additional information: {"suggestions": [ ... ]}`

const missingUserDataSuggestion = "Unable to generate suggestions - missing user data."

// fallbackSuggestions is returned when the LLM fails or yields nothing
// usable. Fallbacks are never cached; only genuine LLM output is.
var fallbackSuggestions = []string{
	"Consider reaching out to discuss shared professional interests.",
	"You might connect over industry trends and insights.",
	"Consider starting with a comment about their recent career achievements.",
}

// SuggestionService memoizes LLM-generated conversation starters in a TTL
// cache keyed by an order-independent pair key over filtered profiles.
type SuggestionService struct {
	llm    ports.LLMClient
	cache  ports.TTLCache[[]string]
	logger *logrus.Logger
}

// NewSuggestionService creates a suggestion service.
func NewSuggestionService(llm ports.LLMClient, cache ports.TTLCache[[]string], logger *logrus.Logger) ports.SuggestionService {
	return &SuggestionService{llm: llm, cache: cache, logger: logger}
}

// Suggest implements ports.SuggestionService. It always returns a usable
// list: missing input and LLM failures degrade to fixed fallbacks.
func (s *SuggestionService) Suggest(ctx context.Context, current *profile.Detailed, inquired *profile.SearchResult) []string {
	if current.IsEmpty() || inquired.IsEmpty() {
		return []string{missingUserDataSuggestion}
	}

	// Filtering normalizes representation before key derivation, so
	// requests differing only in irrelevant fields share an entry.
	filteredCurrent := profile.FilterDetailed(current)
	filteredInquired := profile.FilterSearchResult(inquired)

	key := utils.PairKey(filteredCurrent, filteredInquired)
	if suggestions, ok := s.cache.Get(key); ok {
		metrics.CacheLookup("suggestions", "hit")
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{
				"current_user":  filteredCurrent.FullName,
				"inquired_user": filteredInquired.FullName,
			}).Debug("returning cached suggestions")
		}
		return suggestions
	}
	metrics.CacheLookup("suggestions", "miss")

	raw, err := s.llm.CompleteJSON(ctx, suggestionSystemPrompt, buildSuggestionPrompt(filteredCurrent, filteredInquired))
	if err != nil {
		metrics.LLMRequest("suggest", "error")
		if s.logger != nil {
			s.logger.WithError(err).Warn("llm suggestion generation failed, using fallback")
		}
		return append([]string(nil), fallbackSuggestions...)
	}
	metrics.LLMRequest("suggest", "ok")

	suggestions := extractSuggestions(raw)
	if len(suggestions) == 0 {
		if s.logger != nil {
			s.logger.Warn("llm returned no usable suggestions, using fallback")
		}
		return append([]string(nil), fallbackSuggestions...)
	}

	s.cache.Set(key, suggestions)
	return suggestions
}

func buildSuggestionPrompt(a, b profile.Filtered) string {
	aJSON, _ := json.Marshal(a)
	bJSON, _ := json.Marshal(b)
	return fmt.Sprintf(
		"User A: %s\nUser B: %s\nFind common backgrounds and suggest 2-3 ways User A can start a conversation with User B.",
		aJSON, bJSON,
	)
}

// extractSuggestions pulls the suggestions array out of the LLM reply,
// keeping only non-empty strings.
func extractSuggestions(raw map[string]any) []string {
	items, ok := raw["suggestions"].([]any)
	if !ok {
		return nil
	}
	suggestions := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			suggestions = append(suggestions, s)
		}
	}
	return suggestions
}
