package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/recruitu/backend/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// ErrProviderDisabled is returned by the disabled client when no LLM
// provider is configured.
var ErrProviderDisabled = errors.New("llm provider is disabled")

// Config holds LLM client configuration.
type Config struct {
	Provider string
	Host     string
	Model    string
	Timeout  time.Duration
}

// NewClient builds the LLM client for the configured provider. Provider
// "none" (or empty) yields a disabled client whose calls always fail with
// ErrProviderDisabled.
func NewClient(cfg *Config, logger *logrus.Logger) (ports.LLMClient, error) {
	switch cfg.Provider {
	case "", "none":
		return &DisabledClient{}, nil
	case "ollama":
		return NewOllamaClient(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", cfg.Provider)
	}
}

// DisabledClient is the no-provider stand-in.
type DisabledClient struct{}

func (c *DisabledClient) Available() bool { return false }

func (c *DisabledClient) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (map[string]any, error) {
	return nil, ErrProviderDisabled
}

// OllamaClient talks to an Ollama server's chat endpoint and requests
// strict JSON output at temperature 0, so parses are deterministic.
type OllamaClient struct {
	host   string
	model  string
	client *http.Client
	logger *logrus.Logger
}

// NewOllamaClient creates a client for the given Ollama host and model.
func NewOllamaClient(cfg *Config, logger *logrus.Logger) *OllamaClient {
	return &OllamaClient{
		host:   strings.TrimRight(cfg.Host, "/"),
		model:  cfg.Model,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

func (c *OllamaClient) Available() bool { return true }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string         `json:"model"`
	Messages []chatMessage  `json:"messages"`
	Stream   bool           `json:"stream"`
	Format   string         `json:"format"`
	Options  map[string]any `json:"options"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
}

// CompleteJSON implements ports.LLMClient against POST {host}/api/chat.
func (c *OllamaClient) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (map[string]any, error) {
	requestID := uuid.NewString()
	start := time.Now()

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Stream: false,
		Format: "json",
		// temperature 0 for deterministic output
		Options: map[string]any{"temperature": 0},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logFailure(requestID, start, err)
		return nil, fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
		c.logFailure(requestID, start, err)
		return nil, err
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		c.logFailure(requestID, start, err)
		return nil, fmt.Errorf("failed to decode ollama response: %w", err)
	}

	obj, err := parseJSONObject(chat.Message.Content)
	if err != nil {
		c.logFailure(requestID, start, err)
		return nil, err
	}

	if c.logger != nil {
		c.logger.WithFields(logrus.Fields{
			"request_id":  requestID,
			"model":       c.model,
			"duration_ms": time.Since(start).Milliseconds(),
		}).Debug("ollama chat completed")
	}
	return obj, nil
}

func (c *OllamaClient) logFailure(requestID string, start time.Time, err error) {
	if c.logger == nil {
		return
	}
	c.logger.WithFields(logrus.Fields{
		"request_id":  requestID,
		"model":       c.model,
		"duration_ms": time.Since(start).Milliseconds(),
	}).WithError(err).Warn("ollama chat failed")
}

// Ping checks reachability of the Ollama server, used by health checks.
func (c *OllamaClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.host+"/api/version", nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ollama returned status %d", resp.StatusCode)
	}
	return nil
}

// parseJSONObject decodes raw as a JSON object, recovering from chatty
// models by extracting the first brace-delimited object before failing
// hard.
func parseJSONObject(raw string) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err == nil {
		return obj, nil
	}

	begin := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if begin == -1 || end <= begin {
		return nil, fmt.Errorf("llm did not return JSON: %s", truncate(raw, 200))
	}
	if err := json.Unmarshal([]byte(raw[begin:end+1]), &obj); err != nil {
		return nil, fmt.Errorf("llm returned malformed JSON: %w", err)
	}
	return obj, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
