package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/palabra/internal/vocab"
)

// buildGenerateTab creates the generation form and the item list view
func (a *Application) buildGenerateTab() fyne.CanvasObject {
	a.typeSelect = widget.NewSelect(vocab.Types, nil)
	a.typeSelect.SetSelected(a.config.Type)

	a.languageSelect = widget.NewSelect(vocab.Languages, nil)
	a.languageSelect.SetSelected(a.config.Language)

	a.levelSelect = widget.NewSelect(vocab.Levels, nil)
	a.levelSelect.SetSelected(a.config.Level)

	a.topicEntry = NewCustomEntry()
	a.topicEntry.SetPlaceHolder("e.g., Rock climbing")
	a.topicEntry.OnSubmitted = func(string) {
		a.onGenerate()
		// Remove focus from input field after submit
		a.window.Canvas().Unfocus()
	}
	a.topicEntry.SetOnEscape(func() {
		a.topicEntry.SetText("")
		a.window.Canvas().Unfocus()
	})

	a.generateButton = ttwidget.NewButton("Generate", a.onGenerate)
	a.generateButton.Importance = widget.HighImportance

	selectsGrid := container.New(layout.NewGridLayout(3),
		container.NewVBox(widget.NewLabel("Generate"), a.typeSelect),
		container.NewVBox(widget.NewLabel("Language"), a.languageSelect),
		container.NewVBox(widget.NewLabel("Level"), a.levelSelect),
	)

	topicRow := container.NewBorder(
		widget.NewLabel("Topic or sentence"),
		nil,
		nil,
		a.generateButton,
		a.topicEntry,
	)

	form := container.NewVBox(selectsGrid, topicRow)

	// List section
	a.listLabel = widget.NewLabel("Your list")
	a.listLabel.TextStyle = fyne.TextStyle{Bold: true}

	a.listCaption = widget.NewLabel("")
	a.listCaption.TextStyle = fyne.TextStyle{Italic: true}

	a.listHint = widget.NewLabel("Click ➖ to remove items you already know.")
	a.listHint.Hide()

	a.listEmpty = widget.NewLabel("Generate a list to see results here.")

	a.topUpButton = ttwidget.NewButton("Top up", a.onTopUp)
	a.topUpButton.Disable()

	a.topUpCaption = widget.NewLabel("")
	a.topUpCaption.TextStyle = fyne.TextStyle{Italic: true}

	a.itemRows = container.NewVBox()
	a.itemsScroll = container.NewScroll(a.itemRows)
	a.itemsScroll.SetMinSize(fyne.NewSize(0, 240))

	a.replyViewer = NewReplyViewer()
	replyAccordion := widget.NewAccordion(
		widget.NewAccordionItem("Raw model reply", a.replyViewer),
	)

	listHeader := container.NewBorder(
		nil, nil,
		container.NewVBox(a.listLabel, a.listCaption),
		container.NewVBox(a.topUpButton, a.topUpCaption),
	)

	listSection := container.NewBorder(
		container.NewVBox(listHeader, a.listHint, a.listEmpty),
		replyAccordion,
		nil, nil,
		a.itemsScroll,
	)

	return container.NewBorder(
		container.NewVBox(form, widget.NewSeparator()),
		nil, nil, nil,
		listSection,
	)
}

// updateListView redraws the item list from the deck state
func (a *Application) updateListView() {
	meta := a.deck.Meta()
	items := a.deck.Items()

	a.replyViewer.SetReply(a.deck.RawReply())
	a.itemRows.RemoveAll()

	if len(items) == 0 {
		a.listLabel.SetText("Your list")
		a.listCaption.SetText("")
		a.listEmpty.Show()
		a.listHint.Hide()
		a.topUpButton.SetText("Top up")
		a.topUpButton.Disable()
		a.topUpCaption.SetText("")
		a.itemRows.Refresh()
		return
	}

	a.listLabel.SetText(meta.Type.ListLabel())
	a.listCaption.SetText(meta.Summary())
	a.listEmpty.Hide()
	a.listHint.Show()

	// The top-up control reflects how far the list is from the target size
	missing := a.deck.Missing()
	desired := a.deck.Desired()
	if missing > 0 {
		a.topUpButton.SetText(fmt.Sprintf("Top up (%d)", missing))
		a.topUpButton.Enable()
		a.topUpCaption.SetText(fmt.Sprintf("Missing %d to reach %d.", missing, desired))
	} else {
		a.topUpButton.SetText("Top up")
		a.topUpButton.Disable()
		a.topUpCaption.SetText(fmt.Sprintf("List is full (%d).", desired))
	}

	// Header row
	itemHeader := widget.NewLabel("Item")
	itemHeader.TextStyle = fyne.TextStyle{Bold: true}
	translationHeader := widget.NewLabel("Translation")
	translationHeader.TextStyle = fyne.TextStyle{Bold: true}
	removeHeader := widget.NewLabel("Remove")
	removeHeader.TextStyle = fyne.TextStyle{Bold: true}

	a.itemRows.Add(container.NewBorder(nil, nil, nil, removeHeader,
		container.New(layout.NewGridLayout(2), itemHeader, translationHeader)))
	a.itemRows.Add(widget.NewSeparator())

	for i, item := range items {
		index := i
		removeBtn := ttwidget.NewButton("➖", func() {
			a.onRemoveItem(index)
		})
		removeBtn.SetToolTip("Remove item")

		front := widget.NewLabel(item.Front)
		front.Wrapping = fyne.TextWrapWord
		back := widget.NewLabel(item.Back)
		back.Wrapping = fyne.TextWrapWord

		row := container.NewBorder(nil, nil, nil, removeBtn,
			container.New(layout.NewGridLayout(2), front, back))
		a.itemRows.Add(row)
	}

	a.itemRows.Refresh()
}

// onRemoveItem deletes one list row
func (a *Application) onRemoveItem(i int) {
	if a.isBusy() {
		return
	}

	if err := a.deck.RemoveAt(i); err != nil {
		return
	}

	a.refreshAll()
	a.updateStatus(fmt.Sprintf("Removed item. %d left.", a.deck.Len()))
}
