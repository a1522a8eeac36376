package cli

import (
	"fmt"
	"strings"

	"codeberg.org/snonux/palabra/internal/vocab"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile      string
	OutputDir    string
	Language     string
	Level        string
	GenerateType string
	BatchFile    string
	GenerateAnki bool
	AnkiCSV      bool
	DeckName     string
	ListModels   bool
	GUIMode      bool
	Archive      bool

	// Provider flags
	Provider    string
	OpenAIModel string
	GeminiModel string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Language:     "Spanish",
		Level:        "B1",
		GenerateType: "Words",
		DeckName:     "Vocabulary Deck",
		Provider:     "openai",
		OpenAIModel:  "gpt-4o-mini",
		GeminiModel:  "gemini-2.5-flash",
	}
}

// Validate checks the flag values that only allow a fixed set of choices
func (f *Flags) Validate() error {
	if _, err := vocab.ParseGenerateType(f.GenerateType); err != nil {
		return err
	}
	if !vocab.ValidLanguage(f.Language) {
		return fmt.Errorf("unknown target language %q (use %s)", f.Language, strings.Join(vocab.Languages, ", "))
	}
	if !vocab.ValidLevel(f.Level) {
		return fmt.Errorf("unknown CEFR level %q (use %s)", f.Level, strings.Join(vocab.Levels, ", "))
	}
	switch f.Provider {
	case "openai", "gemini":
	default:
		return fmt.Errorf("unknown generation provider %q (use openai or gemini)", f.Provider)
	}
	return nil
}
