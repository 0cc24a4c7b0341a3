package search

import "github.com/recruitu/backend/internal/core/domain/profile"

// ResultEnvelope is the formatted search response returned to consumers:
// extracted results plus pagination metadata and the filters that were
// applied. Failed upstream searches degrade to an empty envelope with
// Success=false instead of an error.
type ResultEnvelope struct {
	Results []profile.SearchResult `json:"results"`
	Total   int                    `json:"total"`
	Page    int                    `json:"page"`
	Count   int                    `json:"count"`
	Filters Filters                `json:"filters"`
	Success bool                   `json:"success"`
	Error   string                 `json:"error,omitempty"`
}
