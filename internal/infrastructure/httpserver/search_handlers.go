package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/recruitu/backend/internal/core/domain/search"
)

// NLSearchRequest is the body of the natural-language search endpoint.
type NLSearchRequest struct {
	Query string `json:"query"`
}

// Natural-language search handler: parse the query into structured
// filters, then search the people API with them. Parsing failures degrade
// to default pagination with an empty filter set instead of an error.
func (s *Server) searchNaturalLanguage(c echo.Context) error {
	var req NLSearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}

	filters, err := s.queryParsing.Parse(c.Request().Context(), req.Query)
	if err != nil {
		if s.logger != nil {
			s.logger.WithField("query", req.Query).WithError(err).Warn("query parsing failed, using default filters")
		}
		filters = search.Default()
	}

	envelope := s.people.SearchFormatted(c.Request().Context(), filters)
	if s.logger != nil {
		s.logger.WithField("results", len(envelope.Results)).Debug("natural language search completed")
	}
	return c.JSON(http.StatusOK, envelope)
}
