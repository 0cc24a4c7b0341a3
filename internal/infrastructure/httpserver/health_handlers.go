package httpserver

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

// Health check handler. Doubles as the cache maintenance trigger: every
// health check sweeps expired entries from both caches.
func (s *Server) healthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	sweep := s.maintenance.Sweep()
	stats := s.maintenance.Stats()

	var mu sync.Mutex
	deps := make(map[string]string)
	overall := "healthy"

	g, gctx := errgroup.WithContext(ctx)
	for _, hc := range s.healthCheckers {
		if hc == nil {
			continue
		}
		hc := hc
		g.Go(func() error {
			err := hc.Check(gctx)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				deps[hc.Name()] = "unhealthy"
				overall = "degraded"
			} else {
				deps[hc.Name()] = "healthy"
			}
			return nil
		})
	}
	_ = g.Wait()

	health := map[string]interface{}{
		"status":            overall,
		"timestamp":         time.Now().UTC().Format(time.RFC3339),
		"service":           "recruitu-backend",
		"dependencies":      deps,
		"cache_maintenance": sweep,
		"cache_stats":       stats,
	}
	code := http.StatusOK
	if overall != "healthy" {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, health)
}
