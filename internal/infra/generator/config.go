// Package generator provides AI-powered article generation implementations.
// It includes adapters for Claude (Anthropic) and OpenAI APIs behind a single
// interface, a fixed editorial persona prompt, and a tolerant parser for the
// frontmatter-delimited responses the prompt requests.
package generator

import (
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"

	"goldbrief/pkg/config"
)

// Config holds configuration parameters shared by the generation providers.
// Configuration is loaded from environment variables with defaults.
type Config struct {
	// Model is the provider model identifier.
	Model string

	// MaxTokens is the response token budget.
	MaxTokens int

	// Timeout is the maximum duration for a single generation call.
	Timeout time.Duration
}

// Validate checks the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("model cannot be empty")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	return nil
}

// LoadClaudeConfig loads the Claude provider configuration.
//
// Environment variables:
//   - GENERATOR_MODEL: model identifier (default: claude-sonnet-4-5)
//   - GENERATOR_MAX_TOKENS: token budget (default: 4096)
//   - GENERATOR_TIMEOUT: per-call timeout (default: 120s)
func LoadClaudeConfig() (*Config, error) {
	cfg := &Config{
		Model:     config.GetEnvString("GENERATOR_MODEL", string(anthropic.ModelClaudeSonnet4_5_20250929)),
		MaxTokens: config.GetEnvInt("GENERATOR_MAX_TOKENS", 4096),
		Timeout:   config.GetEnvDuration("GENERATOR_TIMEOUT", 120*time.Second),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid claude generator configuration: %w", err)
	}
	return cfg, nil
}

// LoadOpenAIConfig loads the OpenAI provider configuration.
// The same environment variables apply, with an OpenAI default model.
func LoadOpenAIConfig() (*Config, error) {
	cfg := &Config{
		Model:     config.GetEnvString("GENERATOR_MODEL", "gpt-4o"),
		MaxTokens: config.GetEnvInt("GENERATOR_MAX_TOKENS", 4096),
		Timeout:   config.GetEnvDuration("GENERATOR_TIMEOUT", 120*time.Second),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid openai generator configuration: %w", err)
	}
	return cfg, nil
}
