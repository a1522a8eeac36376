package models

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// ListAvailableModels lists the OpenAI models usable for vocabulary
// generation, categorized by type
func (l *Lister) ListAvailableModels() error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .palabra.yaml")
	}

	// List models
	ctx := context.Background()
	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	// Categorize models
	gpt4Models := []string{}
	reasoningModels := []string{}
	otherChatModels := []string{}

	for _, model := range models.Models {
		modelID := model.ID
		if strings.HasPrefix(modelID, "gpt-4") {
			gpt4Models = append(gpt4Models, modelID)
		} else if isReasoningModel(modelID) {
			reasoningModels = append(reasoningModels, modelID)
		} else if strings.Contains(modelID, "gpt") || strings.Contains(modelID, "chat") {
			otherChatModels = append(otherChatModels, modelID)
		}
	}

	// Sort models
	sort.Strings(gpt4Models)
	sort.Strings(reasoningModels)
	sort.Strings(otherChatModels)

	// Print models
	fmt.Println("Available OpenAI Models:")

	fmt.Println("\nGPT-4 Family Models (for vocabulary generation):")
	if len(gpt4Models) == 0 {
		fmt.Println("  No GPT-4 models found")
	} else {
		for _, model := range gpt4Models {
			if model == "gpt-4o-mini" {
				fmt.Printf("  %s (default)\n", model)
			} else {
				fmt.Printf("  %s\n", model)
			}
		}
	}

	fmt.Println("\nReasoning Models:")
	if len(reasoningModels) == 0 {
		fmt.Println("  No reasoning models found")
	} else {
		for _, model := range reasoningModels {
			fmt.Printf("  %s\n", model)
		}
	}

	fmt.Println("\nOther Chat Models:")
	if len(otherChatModels) > 10 {
		// Show only relevant models
		relevantModels := []string{}
		for _, model := range otherChatModels {
			if strings.Contains(model, "gpt-3.5") {
				relevantModels = append(relevantModels, model)
			}
		}
		for _, model := range relevantModels {
			fmt.Printf("  %s\n", model)
		}
		fmt.Printf("  ... and %d more models\n", len(otherChatModels)-len(relevantModels))
	} else if len(otherChatModels) == 0 {
		fmt.Println("  No other chat models found")
	} else {
		for _, model := range otherChatModels {
			fmt.Printf("  %s\n", model)
		}
	}

	return nil
}

// isReasoningModel reports whether the model ID names an "o"-series
// reasoning model (o1, o3-mini, ...)
func isReasoningModel(id string) bool {
	if len(id) < 2 || id[0] != 'o' {
		return false
	}
	return id[1] >= '0' && id[1] <= '9'
}
