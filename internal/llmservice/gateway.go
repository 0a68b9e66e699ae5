/*
Package llmservice is the single boundary to the external language model.
It sends a system/user prompt pair to a chat-completion provider and hands
back the raw reply text; Coerce turns that text into a JSON object.
*/
package llmservice

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"healthcube/internal/config"
)

// DefaultTemperature is the sampling temperature used by every planner call.
const DefaultTemperature = 0.7

// Gateway sends one system/user exchange and returns the first reply verbatim.
type Gateway interface {
	Invoke(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error)
}

// NewGateway picks the provider client named in the LLM configuration.
func NewGateway(cfg config.LLM) (Gateway, error) {
	client := &http.Client{Timeout: cfg.Timeout}

	switch cfg.Provider {
	case config.ProviderOpenAI, "":
		return NewOpenAIClient(cfg, client), nil
	case config.ProviderGemini:
		return NewGeminiClient(cfg, client), nil
	default:
		return nil, &config.ConfigError{Key: "LLM_PROVIDER", Reason: fmt.Sprintf("unknown provider %q", cfg.Provider)}
	}
}

// GatewayError means the model could not be reached or rejected the call.
type GatewayError struct {
	Provider   string
	StatusCode int // 0 when no HTTP response was received
	Err        error
}

func (e *GatewayError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s gateway: status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s gateway: %v", e.Provider, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// ParseError means the model answered but the reply is not a JSON object.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("model reply is not valid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var errEmptyReply = errors.New("no content found in provider response")

// snippet keeps provider error bodies readable in logs.
func snippet(body []byte) string {
	const maxSnippet = 300
	if len(body) > maxSnippet {
		return string(body[:maxSnippet]) + "..."
	}
	return string(body)
}
