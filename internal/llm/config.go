// Package llm provides centralized LLM configuration and client abstractions.
// This package enables switching between hosted model providers.
package llm

import "time"

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderOpenAI is the OpenAI chat completions provider
	ProviderOpenAI Provider = "openai"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// DefaultTimeout bounds a single completion request.
const DefaultTimeout = 30 * time.Second

// DefaultTemperature keeps output close to deterministic.
const DefaultTemperature float32 = 0.1

// Config holds the model configuration for the application
type Config struct {
	Provider    Provider
	Model       string
	Temperature float32
	Timeout     time.Duration
	// BaseURL overrides the provider endpoint (OpenAI only).
	BaseURL string
}

// DefaultConfig returns the default configuration (OpenAI).
func DefaultConfig() *Config {
	return DefaultOpenAIConfig()
}

// DefaultOpenAIConfig returns the default OpenAI configuration
func DefaultOpenAIConfig() *Config {
	return &Config{
		Provider:    ProviderOpenAI,
		Model:       "gpt-4",
		Temperature: DefaultTemperature,
		Timeout:     DefaultTimeout,
		BaseURL:     "https://api.openai.com/v1",
	}
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider:    ProviderGemini,
		Model:       "gemini-2.5-flash",
		Temperature: DefaultTemperature,
		Timeout:     DefaultTimeout,
	}
}

// ConfigFor returns the default configuration of a provider.
// Unknown providers fall back to DefaultConfig.
func ConfigFor(provider Provider) *Config {
	switch provider {
	case ProviderGemini:
		return DefaultGeminiConfig()
	default:
		return DefaultConfig()
	}
}

// DisplayName is the human-facing service name used in result messages.
func (p Provider) DisplayName() string {
	switch p {
	case ProviderGemini:
		return "Gemini"
	default:
		return "ChatGPT"
	}
}

// APIKeyEnv is the environment variable holding the provider credential.
func (p Provider) APIKeyEnv() string {
	switch p {
	case ProviderGemini:
		return "GEMINI_API_KEY"
	default:
		return "OPENAI_API_KEY"
	}
}
