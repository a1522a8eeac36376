// Package deck holds the state of one study session: the generated item
// list, the selections it was generated with, and the flashcard cursor. Its
// methods implement the user-facing actions (generate, top up, remove,
// navigate, flip) on top of the vocab primitives.
package deck
