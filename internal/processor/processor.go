package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"codeberg.org/snonux/palabra/internal"
	"codeberg.org/snonux/palabra/internal/anki"
	"codeberg.org/snonux/palabra/internal/batch"
	"codeberg.org/snonux/palabra/internal/cli"
	"codeberg.org/snonux/palabra/internal/deck"
	"codeberg.org/snonux/palabra/internal/generate"
	"codeberg.org/snonux/palabra/internal/gui"
	"codeberg.org/snonux/palabra/internal/vocab"
)

// Processor handles the main topic processing logic
type Processor struct {
	flags    *cli.Flags
	provider generate.Provider
}

// NewProcessor creates a new topic processor
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{flags: flags}
}

// ensureProvider builds the generation provider on first use so that a
// missing API key surfaces when work starts, not at construction time
func (p *Processor) ensureProvider() (generate.Provider, error) {
	if p.provider != nil {
		return p.provider, nil
	}

	provider, err := generate.NewProvider(providerConfig(p.flags))
	if err != nil {
		return nil, err
	}
	p.provider = provider
	return provider, nil
}

// providerConfig assembles the generation settings from flags, config
// file and environment
func providerConfig(flags *cli.Flags) *generate.Config {
	config := generate.DefaultProviderConfig()
	config.Provider = flags.Provider
	config.OpenAIKey = cli.GetOpenAIKey()
	config.OpenAIModel = flags.OpenAIModel
	config.GeminiKey = cli.GetGeminiKey()
	config.GeminiModel = flags.GeminiModel

	// Use config file values if not overridden by flags
	if flags.Provider == "openai" && viper.IsSet("generation.provider") {
		config.Provider = viper.GetString("generation.provider")
	}
	if flags.OpenAIModel == "gpt-4o-mini" && viper.IsSet("generation.openai_model") {
		config.OpenAIModel = viper.GetString("generation.openai_model")
	}
	if flags.GeminiModel == "gemini-2.5-flash" && viper.IsSet("generation.gemini_model") {
		config.GeminiModel = viper.GetString("generation.gemini_model")
	}
	if viper.IsSet("generation.temperature") {
		config.Temperature = viper.GetFloat64("generation.temperature")
	}

	return config
}

// metaForTopic builds the generation request for a topic from the flags
func (p *Processor) metaForTopic(topic string) (vocab.Meta, error) {
	generateType, err := vocab.ParseGenerateType(p.flags.GenerateType)
	if err != nil {
		return vocab.Meta{}, err
	}

	return vocab.Meta{
		Type:     generateType,
		Language: p.flags.Language,
		Level:    p.flags.Level,
		Topic:    topic,
	}, nil
}

// ProcessSingleTopic generates one vocabulary list from the command line
func (p *Processor) ProcessSingleTopic(topic string) error {
	meta, err := p.metaForTopic(topic)
	if err != nil {
		return err
	}

	provider, err := p.ensureProvider()
	if err != nil {
		return err
	}

	// Create output directory (including parent directories)
	if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fmt.Printf("\nGenerating: %s\n", topic)

	d := deck.New()
	if err := d.Generate(context.Background(), provider, meta); err != nil {
		return err
	}

	p.printList(d)

	if d.Len() == 0 {
		fmt.Println("No usable items were returned, nothing saved.")
		return nil
	}

	path, err := p.saveListFile(d)
	if err != nil {
		return err
	}
	fmt.Printf("\nSaved list to %s\n", path)

	return nil
}

// ProcessBatch generates one vocabulary list per topic from a batch file
func (p *Processor) ProcessBatch() error {
	entries, err := batch.ReadTopicsFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	baseType, err := vocab.ParseGenerateType(p.flags.GenerateType)
	if err != nil {
		return err
	}

	provider, err := p.ensureProvider()
	if err != nil {
		return err
	}

	// Create output directory (including parent directories)
	if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Track statistics
	processedCount := 0
	skippedCount := 0
	errorCount := 0

	for i, entry := range entries {
		fmt.Printf("\nProcessing %d/%d: %s\n", i+1, len(entries), entry.Topic)

		// Skip topics that already have a saved list
		listPath := p.listFilePath(entry.Topic)
		if _, err := os.Stat(listPath); err == nil {
			fmt.Printf("  ✓ Skipping '%s' - list already exists in %s\n", entry.Topic, filepath.Base(listPath))
			skippedCount++
			continue
		}

		meta := vocab.Meta{
			Type:     baseType,
			Language: p.flags.Language,
			Level:    p.flags.Level,
			Topic:    entry.Topic,
		}
		if entry.HasType {
			meta.Type = entry.Type
		}

		d := deck.New()
		if err := d.Generate(context.Background(), provider, meta); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing '%s': %v\n", entry.Topic, err)
			errorCount++
			// Continue with next topic
			continue
		}

		if d.Len() == 0 {
			fmt.Printf("  Skipping '%s' - the model returned no usable items\n", entry.Topic)
			skippedCount++
			continue
		}

		path, err := p.saveListFile(d)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error processing '%s': %v\n", entry.Topic, err)
			errorCount++
			continue
		}

		fmt.Printf("  Saved %d items (%s) to %s\n", d.Len(), meta.Summary(), filepath.Base(path))
		processedCount++
	}

	// Print summary
	fmt.Printf("\n=== Batch Processing Summary ===\n")
	fmt.Printf("Total topics: %d\n", len(entries))
	fmt.Printf("Processed: %d\n", processedCount)
	fmt.Printf("Skipped: %d\n", skippedCount)
	if errorCount > 0 {
		fmt.Printf("Errors: %d\n", errorCount)
	}
	fmt.Printf("================================\n")

	return nil
}

// GenerateAnkiFile builds an Anki import file from the saved list files
// and returns the output path
func (p *Processor) GenerateAnkiFile() (string, error) {
	// When --anki is used from the CLI, save to the home directory
	var outputDir string
	if p.flags.GenerateAnki {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		outputDir = homeDir
	} else {
		outputDir = p.flags.OutputDir
	}

	gen := anki.NewGenerator(&anki.GeneratorOptions{
		OutputPath:     filepath.Join(outputDir, "anki_import.csv"),
		IncludeHeaders: true,
	})

	// Collect cards from every saved list in the output directory
	listFiles, err := filepath.Glob(filepath.Join(p.flags.OutputDir, "*.txt"))
	if err != nil {
		return "", fmt.Errorf("failed to scan output directory: %w", err)
	}
	if len(listFiles) == 0 {
		return "", fmt.Errorf("no list files found in %s", p.flags.OutputDir)
	}

	for _, path := range listFiles {
		added, err := gen.GenerateFromListFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", filepath.Base(path), err)
			continue
		}
		fmt.Printf("  Added %d cards from %s\n", added, filepath.Base(path))
	}

	if len(gen.GetCards()) == 0 {
		return "", fmt.Errorf("no vocabulary cards found in %s", p.flags.OutputDir)
	}

	var outputPath string
	if p.flags.AnkiCSV {
		// Generate CSV
		outputPath = filepath.Join(outputDir, "anki_import.csv")
		if err := gen.GenerateCSV(); err != nil {
			return "", fmt.Errorf("failed to generate CSV: %w", err)
		}
	} else {
		// Generate APKG
		outputPath = filepath.Join(outputDir, fmt.Sprintf("%s.apkg", internal.SanitizeFilename(p.flags.DeckName)))
		if err := gen.GenerateAPKG(outputPath, p.flags.DeckName); err != nil {
			return "", fmt.Errorf("failed to generate APKG: %w", err)
		}
	}

	// Print stats
	total, withBack, withNotes := gen.Stats()
	fmt.Printf("  Generated %d cards (%d with English side, %d with notes)\n",
		total, withBack, withNotes)

	return outputPath, nil
}

// RunGUIMode launches the GUI application
func (p *Processor) RunGUIMode() error {
	// Create GUI configuration from command line flags and viper config
	guiConfig := &gui.Config{
		ProviderConfig: providerConfig(p.flags),
		Language:       p.flags.Language,
		Level:          p.flags.Level,
		Type:           p.flags.GenerateType,
		DeckName:       p.flags.DeckName,
	}

	// Only set OutputDir if it was explicitly provided via flag.
	// Otherwise gui.New uses its own default (XDG state directory)
	home, _ := os.UserHomeDir()
	defaultOutputDir := filepath.Join(home, ".local", "state", "palabra", "lists")
	if p.flags.OutputDir != defaultOutputDir {
		guiConfig.OutputDir = p.flags.OutputDir
	}

	// Create and run GUI application
	app := gui.New(guiConfig)
	app.Run()

	return nil
}

// Helper methods

func (p *Processor) listFilePath(topic string) string {
	return filepath.Join(p.flags.OutputDir, internal.SanitizeFilename(topic)+".txt")
}

// printList writes the generated list to stdout
func (p *Processor) printList(d *deck.Deck) {
	meta := d.Meta()
	fmt.Printf("\n%s\n", meta.Type.ListLabel())
	fmt.Printf("%s\n\n", meta.Summary())

	for _, item := range d.Items() {
		fmt.Printf("- %s — %s\n", item.Front, item.Back)
	}

	fmt.Printf("\nItems: %d/%d\n", d.Len(), d.Desired())
}

// saveListFile writes the list as "- front — back" lines with a comment
// header naming the topic and settings. The header is skipped when the
// file is read back through vocab.ParseItems.
func (p *Processor) saveListFile(d *deck.Deck) (string, error) {
	meta := d.Meta()
	content := fmt.Sprintf("# %s (%s)\n%s", meta.Topic, meta.Summary(), vocab.FormatItems(d.Items()))

	path := p.listFilePath(meta.Topic)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write list file: %w", err)
	}

	return path, nil
}
