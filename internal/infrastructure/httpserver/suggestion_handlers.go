package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/recruitu/backend/internal/core/domain/profile"
)

// SuggestConversationRequest carries the two profiles to find conversation
// openers for: the requesting user's detailed profile and the search hit
// they are looking at.
type SuggestConversationRequest struct {
	CurrentUser  profile.Detailed     `json:"currentUser"`
	InquiredUser profile.SearchResult `json:"inquiredUser"`
}

// SuggestConversationResponse wraps the suggestion list.
type SuggestConversationResponse struct {
	Suggestions []string `json:"suggestions"`
}

// Conversation suggestion handler. Always responds 200 with a usable list;
// missing profiles and LLM failures degrade to fallback suggestions.
func (s *Server) suggestConversation(c echo.Context) error {
	var req SuggestConversationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	suggestions := s.suggestions.Suggest(c.Request().Context(), &req.CurrentUser, &req.InquiredUser)
	return c.JSON(http.StatusOK, SuggestConversationResponse{Suggestions: suggestions})
}
