package generate

import (
	"context"
	"fmt"
)

// Provider defines the interface for vocabulary generation backends
type Provider interface {
	// GenerateVocabulary sends the system instructions and the user's topic
	// to the model and returns its raw reply text
	GenerateVocabulary(ctx context.Context, instructions, topic string, maxTokens int) (string, error)

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured
	IsAvailable() error
}

// Config holds common configuration for generation providers
type Config struct {
	Provider string // Provider name: "openai" or "gemini"

	// OpenAI-specific settings
	OpenAIKey   string
	OpenAIModel string // Chat model, e.g. "gpt-4o-mini"

	// Gemini-specific settings
	GeminiKey   string
	GeminiModel string // e.g. "gemini-2.5-flash"

	// Sampling temperature shared by both backends
	Temperature float64
}

// DefaultProviderConfig returns default configuration
func DefaultProviderConfig() *Config {
	return &Config{
		Provider:    "openai",
		OpenAIModel: "gpt-4o-mini",
		GeminiModel: "gemini-2.5-flash",
		Temperature: 0.6,
	}
}

// NewProvider creates a generation provider based on the configuration.
// The provider is wrapped in a circuit breaker so a failing backend stops
// being called after repeated errors.
func NewProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	var provider Provider
	var err error

	switch config.Provider {
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		provider, err = NewOpenAIProvider(config)
	case "gemini":
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		provider, err = NewGeminiProvider(config)
	default:
		return nil, fmt.Errorf("unknown generation provider: %s (use openai or gemini)", config.Provider)
	}

	if err != nil {
		return nil, err
	}
	return NewProviderWithBreaker(provider), nil
}
