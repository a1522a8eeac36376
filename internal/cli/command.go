package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/palabra/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "palabra [topic]",
		Short: "Vocabulary Flashcard Generator",
		Long: `palabra generates vocabulary lists for language learners.

A language model produces "- <target> — <English>" items for a topic at a
chosen CEFR level, ready to practise as flashcards or export to Anki.

Examples:
  palabra                                  # Launch interactive GUI (default)
  palabra "Rock climbing"                  # Generate a word list via CLI
  palabra --type Phrases "Ordering food"   # Full sentences instead of words
  palabra --batch topics.txt               # Process multiple topics from file`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Saved lists land next to the GUI state by default
	home, _ := os.UserHomeDir()
	defaultOutputDir := filepath.Join(home, ".local", "state", "palabra", "lists")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.palabra.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", defaultOutputDir, "Output directory for saved lists")
	cmd.Flags().StringVarP(&flags.Language, "language", "l", flags.Language, "Target language (Spanish, French, Italian, German, Catalan)")
	cmd.Flags().StringVar(&flags.Level, "level", flags.Level, "CEFR level (A1, A2, B1, B2, C1, C2)")
	cmd.Flags().StringVarP(&flags.GenerateType, "type", "t", flags.GenerateType, "Generation type (Words, Verbs, Phrases)")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process topics from file (one per line, optional '= Type' override)")
	cmd.Flags().BoolVar(&flags.GenerateAnki, "anki", false, "Generate Anki import file (APKG format by default, use --anki-csv for legacy CSV)")
	cmd.Flags().BoolVar(&flags.AnkiCSV, "anki-csv", false, "Generate legacy CSV format instead of APKG when using --anki")
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for APKG export")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")
	cmd.Flags().BoolVar(&flags.GUIMode, "gui", false, "Launch the GUI (default when no topic is given)")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Archive the saved lists directory and exit")

	// Provider flags
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Generation provider: openai or gemini")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model, e.g. gpt-4o-mini")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model, e.g. gemini-2.5-flash")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("generation.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("generation.language", cmd.Flags().Lookup("language"))
	viper.BindPFlag("generation.level", cmd.Flags().Lookup("level"))
	viper.BindPFlag("generation.type", cmd.Flags().Lookup("type"))
	viper.BindPFlag("generation.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("generation.gemini_model", cmd.Flags().Lookup("gemini-model"))
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("anki.deck_name", cmd.Flags().Lookup("deck-name"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".palabra" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".palabra")
	}

	// Environment variables
	viper.SetEnvPrefix("PALABRA")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("generation.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	// First check environment variable
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("generation.gemini_key")
}
