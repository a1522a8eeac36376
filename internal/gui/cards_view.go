package gui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
)

// Card face colours. The front carries the target language, the back the
// English side, and the colour switch makes the current side obvious.
var (
	frontFaceColor = color.NRGBA{R: 0x16, G: 0xa3, B: 0x4a, A: 0xff}
	backFaceColor  = color.NRGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff}
)

// buildCardsTab creates the flashcard practice view
func (a *Application) buildCardsTab() fyne.CanvasObject {
	a.cardCaption = widget.NewLabel("")
	a.cardCaption.TextStyle = fyne.TextStyle{Italic: true}
	a.cardCaption.Alignment = fyne.TextAlignCenter

	a.cardPosition = widget.NewLabel("")
	a.cardPosition.Alignment = fyne.TextAlignCenter

	a.cardEmpty = widget.NewLabel("Generate a list first, then come back here to practise with flashcards.")
	a.cardEmpty.Alignment = fyne.TextAlignCenter
	a.cardEmpty.Wrapping = fyne.TextWrapWord

	a.cardFace = NewCardFace()
	a.cardFace.SetOnTapped(a.onFlipCard)

	a.cardSideLabel = widget.NewLabel("")
	a.cardSideLabel.Alignment = fyne.TextAlignCenter
	a.cardSideLabel.TextStyle = fyne.TextStyle{Italic: true}

	a.prevCardBtn = ttwidget.NewButton("⬅️ Previous", a.onPrevCard)
	a.flipCardBtn = ttwidget.NewButton("🔄 Flip", a.onFlipCard)
	a.nextCardBtn = ttwidget.NewButton("Next ➡️", a.onNextCard)

	controls := container.New(layout.NewGridLayout(3),
		a.prevCardBtn,
		a.flipCardBtn,
		a.nextCardBtn,
	)

	cardArea := container.NewVBox(
		a.cardCaption,
		a.cardPosition,
		a.cardEmpty,
		container.NewCenter(a.cardFace),
		a.cardSideLabel,
		controls,
	)

	return container.NewCenter(cardArea)
}

// updateCardView redraws the current flashcard from the deck state
func (a *Application) updateCardView() {
	item, ok := a.deck.Current()
	if !ok {
		a.cardEmpty.Show()
		a.cardFace.Hide()
		a.cardCaption.SetText("")
		a.cardPosition.SetText("")
		a.cardSideLabel.SetText("")
		a.prevCardBtn.Disable()
		a.flipCardBtn.Disable()
		a.nextCardBtn.Disable()
		return
	}

	a.cardEmpty.Hide()
	a.cardFace.Show()
	a.prevCardBtn.Enable()
	a.flipCardBtn.Enable()
	a.nextCardBtn.Enable()

	a.cardCaption.SetText(a.deck.Meta().Summary())
	a.cardPosition.SetText(fmt.Sprintf("Card: %d / %d", a.deck.Index()+1, a.deck.Len()))

	if a.deck.ShowBack() {
		a.cardFace.SetFace(item.Back, backFaceColor)
		a.cardSideLabel.SetText("English")
	} else {
		a.cardFace.SetFace(item.Front, frontFaceColor)
		a.cardSideLabel.SetText("Target language")
	}
}

// onPrevCard moves to the previous card
func (a *Application) onPrevCard() {
	if a.isBusy() || a.deck.Len() == 0 {
		return
	}
	a.deck.Previous()
	a.updateCardView()
}

// onNextCard moves to the next card
func (a *Application) onNextCard() {
	if a.isBusy() || a.deck.Len() == 0 {
		return
	}
	a.deck.Next()
	a.updateCardView()
}

// onFlipCard turns the current card over
func (a *Application) onFlipCard() {
	if a.isBusy() || a.deck.Len() == 0 {
		return
	}
	a.deck.Flip()
	a.updateCardView()
}
