package ports

import (
	"context"

	"github.com/recruitu/backend/internal/core/domain/profile"
	"github.com/recruitu/backend/internal/core/domain/search"
)

// PeopleClient is the external people-search service.
type PeopleClient interface {
	// SearchFormatted runs a search with the given filters and returns the
	// formatted result envelope. Upstream failures are reported inside the
	// envelope (Success=false), never as an error.
	SearchFormatted(ctx context.Context, filters search.Filters) *search.ResultEnvelope
	// GetUser fetches the detailed profile for a user ID. A missing user
	// returns (nil, nil); errors are transport failures only.
	GetUser(ctx context.Context, id string) (*profile.Detailed, error)
}
