package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ReplyViewer is a widget that displays the raw model reply behind the
// parsed list, which helps when a line was dropped by the parser.
type ReplyViewer struct {
	widget.BaseWidget

	container  *fyne.Container
	replyEntry *widget.Entry
	scrollView *container.Scroll
}

// NewReplyViewer creates a new reply viewer widget
func NewReplyViewer() *ReplyViewer {
	v := &ReplyViewer{}

	// Read-only multiline entry
	v.replyEntry = widget.NewMultiLineEntry()
	v.replyEntry.Disable()
	v.replyEntry.Wrapping = fyne.TextWrapWord

	v.scrollView = container.NewScroll(v.replyEntry)
	v.scrollView.SetMinSize(fyne.NewSize(0, 140))
	v.scrollView.Direction = container.ScrollBoth

	v.container = container.NewBorder(nil, nil, nil, nil, v.scrollView)

	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer implements fyne.Widget
func (v *ReplyViewer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.container)
}

// SetReply replaces the displayed reply text
func (v *ReplyViewer) SetReply(text string) {
	v.replyEntry.SetText(text)
	v.scrollView.Offset = fyne.NewPos(0, 0)
	v.scrollView.Refresh()
}

// Clear clears the viewer
func (v *ReplyViewer) Clear() {
	v.replyEntry.SetText("")
	v.scrollView.Offset = fyne.NewPos(0, 0)
	v.scrollView.Refresh()
}
