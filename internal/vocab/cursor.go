package vocab

// Cursor tracks which card of a list is showing and which face is up. The
// zero value is ready to use: first card, front face. The cursor does not
// hold the list itself; navigation takes the current list length, and callers
// signal structural changes via OnListChanged.
type Cursor struct {
	index    int
	showBack bool
}

// Index returns the current card position.
func (c *Cursor) Index() int { return c.index }

// ShowBack reports whether the back face is up.
func (c *Cursor) ShowBack() bool { return c.showBack }

// Next advances to the following card, wrapping past the end of a list of
// length n, and turns the front face up. No-op on an empty list.
func (c *Cursor) Next(n int) {
	if n == 0 {
		return
	}
	c.index = (c.index + 1) % n
	c.showBack = false
}

// Previous moves to the preceding card, wrapping before the start, and turns
// the front face up. No-op on an empty list.
func (c *Cursor) Previous(n int) {
	if n == 0 {
		return
	}
	c.index = (c.index - 1 + n) % n
	c.showBack = false
}

// Flip turns the card over without moving it.
func (c *Cursor) Flip() {
	c.showBack = !c.showBack
}

// OnListChanged resets the cursor after any structural list change, growth
// included: back to the first card, front face up.
func (c *Cursor) OnListChanged() {
	c.index = 0
	c.showBack = false
}
