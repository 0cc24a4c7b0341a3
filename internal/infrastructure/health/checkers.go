package health

import (
	"context"

	"github.com/recruitu/backend/internal/core/ports"
)

// Pinger is any dependency exposing a reachability probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// peopleAPIHealthChecker wraps the people API client for health checks.
type peopleAPIHealthChecker struct{ client Pinger }

func (p *peopleAPIHealthChecker) Name() string                    { return "people_api" }
func (p *peopleAPIHealthChecker) Check(ctx context.Context) error { return p.client.Ping(ctx) }

// llmHealthChecker wraps the LLM backend for health checks.
type llmHealthChecker struct{ client Pinger }

func (l *llmHealthChecker) Name() string                    { return "llm" }
func (l *llmHealthChecker) Check(ctx context.Context) error { return l.client.Ping(ctx) }

// NewPeopleAPIHealthChecker creates a health checker for the people API.
func NewPeopleAPIHealthChecker(client Pinger) ports.HealthChecker {
	return &peopleAPIHealthChecker{client: client}
}

// NewLLMHealthChecker creates a health checker for the LLM backend.
func NewLLMHealthChecker(client Pinger) ports.HealthChecker {
	return &llmHealthChecker{client: client}
}
