package ports

import "context"

// LLMClient abstracts a chat-completion backend that answers with a single
// JSON object. Callers treat it as an opaque text -> JSON function.
type LLMClient interface {
	// CompleteJSON sends the system and user prompts and returns the
	// model's reply decoded as a JSON object.
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (map[string]any, error)
	// Available reports whether a real provider is configured. When false,
	// CompleteJSON always fails and callers should take their fallback
	// path without attempting a call.
	Available() bool
}
