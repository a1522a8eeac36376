package gui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/palabra/internal"
	"codeberg.org/snonux/palabra/internal/anki"
	"codeberg.org/snonux/palabra/internal/deck"
	"codeberg.org/snonux/palabra/internal/generate"
	"codeberg.org/snonux/palabra/internal/vocab"
)

// Application represents the main GUI application
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	// Generate tab
	typeSelect     *widget.Select
	languageSelect *widget.Select
	levelSelect    *widget.Select
	topicEntry     *CustomEntry
	generateButton *ttwidget.Button
	listLabel      *widget.Label
	listCaption    *widget.Label
	listHint       *widget.Label
	listEmpty      *widget.Label
	topUpButton    *ttwidget.Button
	topUpCaption   *widget.Label
	itemRows       *fyne.Container
	itemsScroll    *container.Scroll
	replyViewer    *ReplyViewer

	// Flashcards tab
	cardCaption   *widget.Label
	cardPosition  *widget.Label
	cardSideLabel *widget.Label
	cardEmpty     *widget.Label
	cardFace      *CardFace
	prevCardBtn   *ttwidget.Button
	flipCardBtn   *ttwidget.Button
	nextCardBtn   *ttwidget.Button

	tabs *container.AppTabs

	// Status section
	statusLabel *widget.Label
	progressBar *widget.ProgressBarInfinite

	// Session state. The deck is only touched from the Fyne main thread or
	// from the single worker goroutine that runs while busy is set, so the
	// busy flag doubles as the deck's write lock.
	deck        *deck.Deck
	provider    generate.Provider
	providerErr error
	busy        bool

	// Configuration
	config *Config

	// Background processing
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// Config holds GUI application configuration
type Config struct {
	ProviderConfig *generate.Config
	Language       string
	Level          string
	Type           string
	DeckName       string
	OutputDir      string
}

// DefaultConfig returns default GUI configuration
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	// Use XDG Base Directory specification for state data
	outputDir := filepath.Join(homeDir, ".local", "state", "palabra", "lists")

	return &Config{
		Language:  "Spanish",
		Level:     "B1",
		Type:      string(vocab.Words),
		DeckName:  "Vocabulary Deck",
		OutputDir: outputDir,
	}
}

// New creates a new GUI application
func New(config *Config) *Application {
	if config == nil {
		config = DefaultConfig()
	} else {
		// Fill in missing fields with defaults
		defaults := DefaultConfig()
		if config.Language == "" {
			config.Language = defaults.Language
		}
		if config.Level == "" {
			config.Level = defaults.Level
		}
		if config.Type == "" {
			config.Type = defaults.Type
		}
		if config.DeckName == "" {
			config.DeckName = defaults.DeckName
		}
		if config.OutputDir == "" {
			config.OutputDir = defaults.OutputDir
		}
	}

	// Ensure output directory exists
	os.MkdirAll(config.OutputDir, 0755)

	ctx, cancel := context.WithCancel(context.Background())

	myApp := app.NewWithID("org.codeberg.snonux.palabra")
	myApp.SetIcon(GetAppIcon())

	a := &Application{
		app:    myApp,
		config: config,
		ctx:    ctx,
		cancel: cancel,
		deck:   deck.New(),
	}

	// A missing API key must not keep the window from opening, so the
	// provider error is held back until the first generation is requested.
	providerConfig := config.ProviderConfig
	if providerConfig == nil {
		providerConfig = generate.DefaultProviderConfig()
		providerConfig.OpenAIKey = os.Getenv("OPENAI_API_KEY")
		providerConfig.GeminiKey = os.Getenv("GEMINI_API_KEY")
	}
	a.provider, a.providerErr = generate.NewProvider(providerConfig)

	a.setupUI()

	return a
}

// setupUI creates the main user interface
func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("Palabra v%s - Vocabulary Flashcard Generator", internal.Version))
	a.window.SetIcon(GetAppIcon())
	a.window.Resize(fyne.NewSize(900, 700))

	generateTab := a.buildGenerateTab()
	cardsTab := a.buildCardsTab()

	a.tabs = container.NewAppTabs(
		container.NewTabItem("Generate", generateTab),
		container.NewTabItem("Flashcards", cardsTab),
	)
	a.tabs.OnSelected = func(*container.TabItem) {
		if !a.isBusy() {
			a.refreshAll()
		}
	}

	// Create toolbar buttons (tooltips are set after the tooltip layer exists)
	exportButton := ttwidget.NewButtonWithIcon("", theme.UploadIcon(), a.onExportToAnki)
	saveButton := ttwidget.NewButtonWithIcon("", theme.DocumentSaveIcon(), a.onSaveList)
	helpButton := ttwidget.NewButtonWithIcon("", theme.HelpIcon(), a.onShowHotkeys)

	toolbar := container.NewHBox(
		exportButton,
		saveButton,
		widget.NewSeparator(),
		helpButton,
	)

	// Create status section
	a.statusLabel = widget.NewLabel("Ready")
	a.progressBar = widget.NewProgressBarInfinite()
	a.progressBar.Hide()

	statusSection := container.NewVBox(
		widget.NewSeparator(),
		a.statusLabel,
		a.progressBar,
	)

	content := container.NewBorder(
		container.NewVBox(
			toolbar,
			widget.NewSeparator(),
		),
		statusSection,
		nil, nil,
		a.tabs,
	)

	// Add the tooltip layer to enable tooltips
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))

	// Now that tooltip layer is created, set all tooltips
	a.setupTooltips()

	exportButton.SetToolTip("Export to Anki (x)")
	saveButton.SetToolTip("Save list to file (s)")
	helpButton.SetToolTip("Show hotkeys (h)")

	a.window.SetOnClosed(func() {
		a.cancel()
		a.wg.Wait()
	})

	// Set up keyboard shortcuts
	a.setupKeyboardShortcuts()

	a.refreshAll()
}

// Run starts the GUI application
func (a *Application) Run() {
	// Don't focus any input field on startup - let user choose
	a.window.ShowAndRun()
}

// onGenerate handles topic submission
func (a *Application) onGenerate() {
	if a.isBusy() {
		return
	}
	if a.providerErr != nil {
		a.showError(a.providerErr)
		return
	}

	topic := a.topicEntry.Text
	if strings.TrimSpace(topic) == "" {
		a.updateStatus("Please enter a topic or sentence first.")
		return
	}

	genType, err := vocab.ParseGenerateType(a.typeSelect.Selected)
	if err != nil {
		a.showError(err)
		return
	}

	meta := vocab.Meta{
		Type:     genType,
		Language: a.languageSelect.Selected,
		Level:    a.levelSelect.Selected,
		Topic:    topic,
	}

	a.beginAction("Generating...")

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		err := a.deck.Generate(a.ctx, a.provider, meta)

		fyne.Do(func() {
			a.endAction()
			a.refreshAll()
			if err != nil {
				a.showError(err)
				return
			}
			if a.deck.Len() == 0 {
				a.updateStatus("The model returned no usable items.")
			} else {
				a.updateStatus(fmt.Sprintf("Generated %d items.", a.deck.Len()))
			}
		})
	}()
}

// onTopUp requests only the items missing from the current list
func (a *Application) onTopUp() {
	if a.isBusy() {
		return
	}
	if a.providerErr != nil {
		a.showError(a.providerErr)
		return
	}
	if a.deck.Missing() == 0 {
		return
	}

	a.beginAction("Topping up...")

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		_, err := a.deck.TopUp(a.ctx, a.provider)

		fyne.Do(func() {
			a.endAction()
			a.refreshAll()
			if err != nil {
				a.showError(err)
				return
			}
			a.updateStatus(fmt.Sprintf("Topped up. Items now: %d", a.deck.Len()))
		})
	}()
}

// onSaveList writes the current list to a text file in the output directory
func (a *Application) onSaveList() {
	if a.isBusy() {
		return
	}
	if a.deck.Len() == 0 {
		a.updateStatus("Nothing to save yet. Generate a list first.")
		return
	}

	meta := a.deck.Meta()
	topic := meta.Topic
	if topic == "" {
		topic = "General"
	}

	path := filepath.Join(a.config.OutputDir, internal.SanitizeFilename(topic)+".txt")
	content := fmt.Sprintf("# %s (%s)\n%s", topic, meta.Summary(), vocab.FormatItems(a.deck.Items()))

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		a.showError(fmt.Errorf("failed to save list: %w", err))
		return
	}

	a.updateStatus(fmt.Sprintf("Saved list to %s", path))
}

// onExportToAnki shows the export dialog for the current list
func (a *Application) onExportToAnki() {
	if a.isBusy() {
		return
	}
	if a.deck.Len() == 0 {
		dialog.ShowInformation("No Cards", "No cards to export yet. Generate a list first!", a.window)
		return
	}

	// Create format selection dialog
	formatOptions := []string{"APKG (Recommended)", "CSV (Legacy)"}
	formatSelect := widget.NewSelect(formatOptions, nil)
	formatSelect.SetSelected(formatOptions[0])

	deckNameEntry := widget.NewEntry()
	deckNameEntry.SetPlaceHolder(a.config.DeckName)

	// Export directory selection
	homeDir, _ := os.UserHomeDir()
	defaultExportDir := filepath.Join(homeDir, "Downloads")
	selectedDir := defaultExportDir

	dirLabel := widget.NewLabel(selectedDir)

	dirButton := widget.NewButton("Browse...", func() {
		folderDialog := dialog.NewFolderOpen(func(dir fyne.ListableURI, err error) {
			if err != nil || dir == nil {
				return
			}
			selectedDir = dir.Path()
			dirLabel.SetText(selectedDir)
		}, a.window)

		// Try to set initial directory
		if uri, err := storage.ParseURI("file://" + selectedDir); err == nil {
			if listableURI, ok := uri.(fyne.ListableURI); ok {
				folderDialog.SetLocation(listableURI)
			}
		}

		folderDialog.Show()
	})

	dirContainer := container.NewBorder(nil, nil, nil, dirButton, dirLabel)

	content := container.NewVBox(
		widget.NewLabel("Export Format:"),
		formatSelect,
		widget.NewSeparator(),
		widget.NewLabel("Deck Name:"),
		deckNameEntry,
		widget.NewSeparator(),
		widget.NewLabel("Export Directory:"),
		dirContainer,
		widget.NewLabel(""),
		widget.NewRichTextFromMarkdown("**APKG**: Ready-to-import Anki package\n**CSV**: Text only, import with front and back fields"),
	)

	// Store export dialog state
	exportDialogOpen := true

	customDialog := dialog.NewCustomConfirm("Export to Anki", "Export (e)", "Cancel (c)", content, func(export bool) {
		exportDialogOpen = false
		if !export {
			return
		}

		isAPKG := formatSelect.Selected == formatOptions[0]
		deckName := deckNameEntry.Text
		if deckName == "" {
			deckName = a.config.DeckName
		}

		var outputPath string

		if isAPKG {
			filename := fmt.Sprintf("%s.apkg", internal.SanitizeFilename(deckName))
			outputPath = filepath.Join(selectedDir, filename)

			gen := anki.NewGenerator(nil)
			gen.AddItems(a.deck.Items())

			if err := gen.GenerateAPKG(outputPath, deckName); err != nil {
				dialog.ShowError(fmt.Errorf("Failed to generate APKG: %w", err), a.window)
				return
			}

			total, withBack, _ := gen.Stats()
			a.updateStatus(fmt.Sprintf("Exported %d cards to %s (%d with English side)",
				total, outputPath, withBack))
		} else {
			outputPath = filepath.Join(selectedDir, "anki_import.csv")

			gen := anki.NewGenerator(&anki.GeneratorOptions{
				OutputPath:     outputPath,
				IncludeHeaders: true,
			})
			gen.AddItems(a.deck.Items())

			if err := gen.GenerateCSV(); err != nil {
				dialog.ShowError(fmt.Errorf("Failed to generate CSV: %w", err), a.window)
				return
			}

			total, withBack, _ := gen.Stats()
			a.updateStatus(fmt.Sprintf("Exported %d cards to %s (%d with English side)",
				total, outputPath, withBack))
		}
	}, a.window)

	// Store original keyboard handler
	originalRuneHandler := a.window.Canvas().OnTypedRune()

	// Add keyboard shortcuts for the export dialog
	a.window.Canvas().SetOnTypedRune(func(r rune) {
		if exportDialogOpen {
			switch r {
			case 'e', 'E':
				// Trigger export
				customDialog.Hide()
				exportDialogOpen = false
				customDialog.Confirm()
			case 'c', 'C':
				// Cancel dialog
				customDialog.Hide()
				exportDialogOpen = false
			}
			return
		}
		// Call original handler if it exists
		if originalRuneHandler != nil {
			originalRuneHandler(r)
		}
	})

	// Restore original handler when dialog closes
	customDialog.SetOnClosed(func() {
		exportDialogOpen = false
		a.window.Canvas().SetOnTypedRune(originalRuneHandler)
	})

	customDialog.Resize(fyne.NewSize(420, 320))
	customDialog.Show()
}

// onShowHotkeys displays a dialog with all available keyboard shortcuts
func (a *Application) onShowHotkeys() {
	hotkeys := `[Project Page: https://codeberg.org/snonux/palabra](https://codeberg.org/snonux/palabra)

---

## Generate
**t** Focus topic input
**g** Generate list
**u** Top up missing items
**Esc** Clear and leave topic input

## Flashcards
**f** Open Flashcards tab
**←** Previous card
**→** Next card
**Space** Flip card

## Export
**x** Export to Anki
**s** Save list to file

## Help
**h** Show hotkeys
**c** Close dialog
**q** Quit application

---

Press **c** to close this dialog`

	content := widget.NewRichTextFromMarkdown(hotkeys)
	content.Wrapping = fyne.TextWrapWord

	// Create a container with padding to prevent text cutoff
	paddedContent := container.NewPadded(content)

	scroll := container.NewScroll(paddedContent)
	scroll.SetMinSize(fyne.NewSize(520, 460))

	d := dialog.NewCustom("Keyboard Shortcuts", "Close", scroll, a.window)

	// Store dialog state
	dialogOpen := true

	originalRuneHandler := a.window.Canvas().OnTypedRune()

	// Add temporary handler for 'c' to close the dialog
	a.window.Canvas().SetOnTypedRune(func(r rune) {
		if dialogOpen && (r == 'c' || r == 'C') {
			d.Hide()
			return
		}
		if originalRuneHandler != nil {
			originalRuneHandler(r)
		}
	})

	d.Show()

	// Restore original handlers when dialog closes
	d.SetOnClosed(func() {
		dialogOpen = false
		a.setupKeyboardShortcuts()
	})
}

// Helper methods

// beginAction marks the start of a provider call and locks the UI
func (a *Application) beginAction(message string) {
	a.mu.Lock()
	a.busy = true
	a.mu.Unlock()

	a.setControlsEnabled(false)
	a.progressBar.Show()
	a.progressBar.Start()
	a.updateStatus(message)
}

// endAction unlocks the UI after a provider call has finished
func (a *Application) endAction() {
	a.mu.Lock()
	a.busy = false
	a.mu.Unlock()

	a.progressBar.Stop()
	a.progressBar.Hide()
	a.setControlsEnabled(true)
}

func (a *Application) isBusy() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.busy
}

func (a *Application) setControlsEnabled(enabled bool) {
	if enabled {
		a.typeSelect.Enable()
		a.languageSelect.Enable()
		a.levelSelect.Enable()
		a.topicEntry.Enable()
		a.generateButton.Enable()
		a.topUpButton.Enable()
		a.prevCardBtn.Enable()
		a.flipCardBtn.Enable()
		a.nextCardBtn.Enable()
	} else {
		a.typeSelect.Disable()
		a.languageSelect.Disable()
		a.levelSelect.Disable()
		a.topicEntry.Disable()
		a.generateButton.Disable()
		a.topUpButton.Disable()
		a.prevCardBtn.Disable()
		a.flipCardBtn.Disable()
		a.nextCardBtn.Disable()
	}
}

func (a *Application) updateStatus(message string) {
	a.statusLabel.SetText(message)
}

func (a *Application) showError(err error) {
	dialog.ShowError(err, a.window)
	a.updateStatus("Error: " + err.Error())
}

// refreshAll redraws both tabs from the deck state
func (a *Application) refreshAll() {
	a.updateListView()
	a.updateCardView()
}

// setupTooltips sets up all tooltips after the tooltip layer has been created
func (a *Application) setupTooltips() {
	a.generateButton.SetToolTip("Generate list (g)")
	a.topUpButton.SetToolTip("Top up missing items (u)")
	a.prevCardBtn.SetToolTip("Previous card (←)")
	a.flipCardBtn.SetToolTip("Flip card (Space)")
	a.nextCardBtn.SetToolTip("Next card (→)")
}

func (a *Application) setupKeyboardShortcuts() {
	// Handle character input (for shortcuts that shouldn't type the character)
	a.window.Canvas().SetOnTypedRune(func(r rune) {
		// If the topic entry is focused, let the character be typed normally
		focused := a.window.Canvas().Focused()
		if focused == a.topicEntry {
			return
		}

		switch r {
		case 't', 'T':
			a.tabs.SelectIndex(0)
			a.window.Canvas().Focus(a.topicEntry)
		case 'g', 'G':
			if !a.generateButton.Disabled() {
				a.tabs.SelectIndex(0)
				a.onGenerate()
			}
		case 'u', 'U':
			if !a.topUpButton.Disabled() {
				a.onTopUp()
			}
		case 'f', 'F':
			a.tabs.SelectIndex(1)
		case 'x', 'X':
			a.onExportToAnki()
		case 's', 'S':
			a.onSaveList()
		case 'h', 'H':
			a.onShowHotkeys()
		case 'q', 'Q':
			a.window.Close()
		}
	})

	// Create a custom shortcut handler for special keys
	a.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		// Handle Escape key to unfocus any field
		if ev.Name == fyne.KeyEscape {
			a.window.Canvas().Unfocus()
			return
		}

		// If the topic entry is focused, don't process shortcuts
		focused := a.window.Canvas().Focused()
		if focused == a.topicEntry {
			return
		}

		a.handleShortcutKey(ev.Name)
	})
}

// handleShortcutKey handles the actual shortcut action
func (a *Application) handleShortcutKey(key fyne.KeyName) {
	switch key {
	case fyne.KeyLeft: // Previous card
		if a.prevCardBtn.Disabled() {
			return
		}
		a.onPrevCard()

	case fyne.KeyRight: // Next card
		if a.nextCardBtn.Disabled() {
			return
		}
		a.onNextCard()

	case fyne.KeySpace: // Flip card
		if a.flipCardBtn.Disabled() {
			return
		}
		a.onFlipCard()
	}
}
