package anki

import (
	"encoding/csv"
	"fmt"
	"os"

	"codeberg.org/snonux/palabra/internal/vocab"
)

// Card represents a single Anki flashcard
type Card struct {
	Front string // Target-language text
	Back  string // English gloss
	Notes string // Optional notes
}

// GeneratorOptions configures the Anki export
type GeneratorOptions struct {
	OutputPath     string // Output CSV file path
	IncludeHeaders bool   // Include CSV headers
}

// DefaultGeneratorOptions returns sensible defaults
func DefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		OutputPath:     "anki_import.csv",
		IncludeHeaders: true,
	}
}

// Generator creates Anki-compatible import files
type Generator struct {
	options *GeneratorOptions
	cards   []Card
}

// NewGenerator creates a new Anki generator
func NewGenerator(options *GeneratorOptions) *Generator {
	if options == nil {
		options = DefaultGeneratorOptions()
	}
	return &Generator{
		options: options,
		cards:   make([]Card, 0),
	}
}

// AddCard adds a card to the collection
func (g *Generator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// AddItems adds one card per vocabulary item, preserving list order
func (g *Generator) AddItems(items []vocab.Item) {
	for _, item := range items {
		g.AddCard(Card{Front: item.Front, Back: item.Back})
	}
}

// GetCards returns a slice of all cards for modification
func (g *Generator) GetCards() []Card {
	return g.cards
}

// GenerateFromListFile loads a saved vocabulary list ("- front — back"
// lines) and adds its items as cards. It returns the number of cards added.
func (g *Generator) GenerateFromListFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read list file: %w", err)
	}

	items := vocab.ParseItems(string(data))
	if len(items) == 0 {
		return 0, fmt.Errorf("no vocabulary items found in %s", path)
	}

	g.AddItems(items)
	return len(items), nil
}

// GenerateCSV creates a CSV file for Anki import
func (g *Generator) GenerateCSV() error {
	// Create output file
	file, err := os.Create(g.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	// Create CSV writer
	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write headers if requested
	if g.options.IncludeHeaders {
		headers := []string{"Front", "Back", "Notes"}
		if err := writer.Write(headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	// Write cards
	for _, card := range g.cards {
		record := []string{
			card.Front,
			card.Back,
			card.Notes,
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	return nil
}

// GenerateAPKG creates a proper .apkg file for Anki import
func (g *Generator) GenerateAPKG(outputPath, deckName string) error {
	// Create APKG generator
	apkgGen := NewAPKGGenerator(deckName)

	// Add all cards
	for _, card := range g.cards {
		apkgGen.AddCard(card)
	}

	// Generate the .apkg file
	return apkgGen.GenerateAPKG(outputPath)
}

// Stats returns statistics about the card collection
func (g *Generator) Stats() (totalCards, withBack, withNotes int) {
	totalCards = len(g.cards)

	for _, card := range g.cards {
		if card.Back != "" {
			withBack++
		}
		if card.Notes != "" {
			withNotes++
		}
	}

	return
}
