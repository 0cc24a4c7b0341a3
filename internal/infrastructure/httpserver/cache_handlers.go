package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/recruitu/backend/internal/core/ports"
)

// Cache statistics handler: read-only, no entries are removed.
func (s *Server) getCacheStats(c echo.Context) error {
	return c.JSON(http.StatusOK, s.maintenance.Stats())
}

// Cache clear handler. cache_type selects the scope: "suggestions",
// "query_parsing", or "all" (the default).
func (s *Server) clearCaches(c echo.Context) error {
	scope := c.QueryParam("cache_type")
	if scope == "" {
		scope = ports.CacheScopeAll
	}
	result, err := s.maintenance.Clear(scope)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}
