package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// CardFace is a custom widget showing one side of a flashcard as a
// coloured panel with centered text. Tapping the card flips it.
type CardFace struct {
	widget.BaseWidget

	container  *fyne.Container
	background *canvas.Rectangle
	text       *canvas.Text

	onTapped func()
}

// NewCardFace creates a new card face widget
func NewCardFace() *CardFace {
	c := &CardFace{}

	c.background = canvas.NewRectangle(frontFaceColor)
	c.background.CornerRadius = 12
	c.background.SetMinSize(fyne.NewSize(420, 220))

	c.text = canvas.NewText("", color.White)
	c.text.TextStyle = fyne.TextStyle{Bold: true}
	c.text.TextSize = 28
	c.text.Alignment = fyne.TextAlignCenter

	c.container = container.NewStack(c.background, container.NewCenter(c.text))

	c.ExtendBaseWidget(c)
	return c
}

// CreateRenderer implements fyne.Widget
func (c *CardFace) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.container)
}

// SetFace updates the card text and background colour
func (c *CardFace) SetFace(text string, bg color.Color) {
	c.background.FillColor = bg
	c.text.Text = text
	c.text.TextSize = faceTextSize(text)
	c.background.Refresh()
	c.text.Refresh()
}

// SetOnTapped sets the callback for when the card is tapped
func (c *CardFace) SetOnTapped(f func()) {
	c.onTapped = f
}

// Tapped implements fyne.Tappable
func (c *CardFace) Tapped(_ *fyne.PointEvent) {
	if c.onTapped != nil {
		c.onTapped()
	}
}

// faceTextSize shrinks the font for long phrases so they still fit the card.
func faceTextSize(s string) float32 {
	switch n := len([]rune(s)); {
	case n > 70:
		return 14
	case n > 36:
		return 19
	default:
		return 28
	}
}
