package httpserver

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// People proxy handler: fetch the detailed profile for the first requested
// ID. Errors are reported in the response body, matching what the frontend
// expects from the upstream API.
func (s *Server) getPerson(c echo.Context) error {
	ids := c.QueryParam("ids")
	id := ids
	if i := strings.IndexByte(ids, ','); i >= 0 {
		id = ids[:i]
	}
	if id == "" {
		return c.JSON(http.StatusOK, map[string]string{"error": "User ID is required"})
	}

	user, err := s.people.GetUser(c.Request().Context(), id)
	if err != nil {
		if s.logger != nil {
			s.logger.WithField("user_id", id).WithError(err).Error("failed to fetch user information")
		}
		return c.JSON(http.StatusOK, map[string]string{"error": "User not found"})
	}
	if user == nil {
		return c.JSON(http.StatusOK, map[string]string{"error": "User not found"})
	}
	return c.JSON(http.StatusOK, user)
}
