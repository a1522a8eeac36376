package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/palabra/internal/archive"
	"codeberg.org/snonux/palabra/internal/cli"
	"codeberg.org/snonux/palabra/internal/models"
	"codeberg.org/snonux/palabra/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --archive flag
	if flags.Archive {
		home, _ := os.UserHomeDir()
		listsDir := filepath.Join(home, ".local", "state", "palabra", "lists")
		if err := archive.ArchiveLists(listsDir); err != nil {
			return fmt.Errorf("failed to archive lists: %w", err)
		}
		return nil
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels()
	}

	if err := flags.Validate(); err != nil {
		return err
	}

	// Create processor
	proc := processor.NewProcessor(flags)

	// Handle batch processing
	if flags.BatchFile != "" {
		// Process batch file
		if err := proc.ProcessBatch(); err != nil {
			return err
		}
	} else if len(args) > 0 && !flags.GUIMode {
		// Process single topic
		if err := proc.ProcessSingleTopic(args[0]); err != nil {
			return err
		}
	} else {
		// No input provided - launch GUI mode by default
		return proc.RunGUIMode()
	}

	// Generate Anki file if requested
	if flags.GenerateAnki {
		fmt.Printf("\nGenerating Anki import file...\n")
		outputPath, err := proc.GenerateAnkiFile()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to generate Anki file: %v\n", err)
		} else {
			fmt.Printf("Anki file created: %s\n", outputPath)
		}
	}

	fmt.Printf("\nDone! Lists saved to: %s\n", flags.OutputDir)
	return nil
}
