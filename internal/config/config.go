// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/link-doctor/internal/fetch"
	"github.com/jonathan/link-doctor/internal/llm"
)

// DefaultReportPath is the report read when nothing else is configured.
const DefaultReportPath = "test_data.json"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional in the file; missing values use defaults or CLI flags.
type Config struct {
	// Input
	Report string `json:"report,omitempty" validate:"required"` // Path to the link-health report

	// Diagnosis service. APIKey overrides the provider env var; BaseURL points
	// the OpenAI provider at a compatible endpoint.
	Provider                string   `json:"provider,omitempty" validate:"required,oneof=openai gemini"`
	Model                   string   `json:"model,omitempty" validate:"required"`
	APIKey                  string   `json:"api_key,omitempty"`
	BaseURL                 string   `json:"base_url,omitempty" validate:"omitempty,url"`
	Temperature             *float32 `json:"temperature,omitempty" validate:"omitempty,gte=0,lte=2"`
	DiagnosisTimeoutSeconds int      `json:"diagnosis_timeout_seconds,omitempty" validate:"gte=0"`

	// Liveness check
	LivenessTimeoutSeconds int `json:"liveness_timeout_seconds,omitempty" validate:"gte=0"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// Default returns the built-in configuration.
func Default() Config {
	temperature := llm.DefaultTemperature
	return Config{
		Report:                  DefaultReportPath,
		Provider:                string(llm.ProviderOpenAI),
		Temperature:             &temperature,
		DiagnosisTimeoutSeconds: int(llm.DefaultTimeout / time.Second),
		LivenessTimeoutSeconds:  int(fetch.DefaultTimeout / time.Second),
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// The model default follows the resolved provider.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Report == "" {
		result.Report = defaults.Report
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Model == "" && result.Provider != "" {
		result.Model = llm.ConfigFor(llm.Provider(result.Provider)).Model
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.Temperature == nil {
		result.Temperature = defaults.Temperature
	}
	if result.DiagnosisTimeoutSeconds == 0 {
		result.DiagnosisTimeoutSeconds = defaults.DiagnosisTimeoutSeconds
	}
	if result.LivenessTimeoutSeconds == 0 {
		result.LivenessTimeoutSeconds = defaults.LivenessTimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ResolveAPIKey returns the configured key, falling back to the provider's
// environment variable. An empty result is allowed; the diagnosis call reports it.
func (c *Config) ResolveAPIKey(getenv func(string) string) string {
	if c.APIKey != "" {
		return c.APIKey
	}
	if getenv == nil {
		getenv = os.Getenv
	}
	return getenv(llm.Provider(c.Provider).APIKeyEnv())
}

// LLMConfig converts the configuration into the diagnosis client configuration.
func (c *Config) LLMConfig() *llm.Config {
	cfg := llm.ConfigFor(llm.Provider(c.Provider))
	if c.Model != "" {
		cfg.Model = c.Model
	}
	if c.BaseURL != "" {
		cfg.BaseURL = c.BaseURL
	}
	if c.Temperature != nil {
		cfg.Temperature = *c.Temperature
	}
	if c.DiagnosisTimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(c.DiagnosisTimeoutSeconds) * time.Second
	}
	return cfg
}

// FetchOptions converts the configuration into liveness probe options.
func (c *Config) FetchOptions() *fetch.Options {
	opts := fetch.DefaultOptions()
	if c.LivenessTimeoutSeconds > 0 {
		opts.Timeout = time.Duration(c.LivenessTimeoutSeconds) * time.Second
	}
	return opts
}
