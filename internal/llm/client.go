package llm

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrMissingAPIKey is returned when a completion is attempted without a credential.
	ErrMissingAPIKey = errors.New("API key is required")
	// ErrNoResponse is returned when the service answers without any candidate.
	ErrNoResponse = errors.New("no candidates in response")
	// ErrEmptyResponse is returned when the first candidate carries no text.
	ErrEmptyResponse = errors.New("empty text in response")
)

// Request is a single completion exchange.
type Request struct {
	// System is the system-level directive.
	System string
	// Prompt is the user message.
	Prompt string
	// JSON asks the provider for a JSON response where it supports it.
	JSON bool
}

// Client is an abstraction over LLM providers
type Client interface {
	// Complete sends one request and returns the text of the first candidate.
	Complete(ctx context.Context, req Request) (string, error)
	// Provider identifies the backing service.
	Provider() Provider
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration.
// A missing apiKey is not an error here; Complete reports ErrMissingAPIKey.
func NewClient(config *Config, apiKey string, logger *zap.Logger) Client {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(config, apiKey, logger)
	default:
		return NewOpenAIClient(config, apiKey, logger)
	}
}

// withTimeout applies the configured timeout when ctx has no deadline.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline || timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
