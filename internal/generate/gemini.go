package generate

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiProvider generates vocabulary via the Google Gemini API
type GeminiProvider struct {
	config *Config
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a new Gemini generation provider
func NewGeminiProvider(config *Config) (*GeminiProvider, error) {
	if config.GeminiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	model := config.GeminiModel
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		config: config,
		client: client,
		model:  model,
	}, nil
}

// GenerateVocabulary asks the Gemini model for a vocabulary list and returns
// the raw reply text. The instructions travel as the system instruction and
// the topic as the user content.
func (p *GeminiProvider) GenerateVocabulary(ctx context.Context, instructions, topic string, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instructions, genai.RoleUser),
		Temperature:       genai.Ptr(float32(p.config.Temperature)),
		MaxOutputTokens:   int32(maxTokens),
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(topic), config)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no response received from Gemini")
	}

	return strings.TrimSpace(resp.Text()), nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// IsAvailable checks if the Gemini API is configured
func (p *GeminiProvider) IsAvailable() error {
	if p.config.GeminiKey == "" {
		return fmt.Errorf("Gemini API key not configured")
	}
	return nil
}
