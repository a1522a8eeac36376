package deck

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"codeberg.org/snonux/palabra/internal/generate"
	"codeberg.org/snonux/palabra/internal/vocab"
)

// ErrEmptyTopic reports a generation request with a blank topic
var ErrEmptyTopic = errors.New("topic must not be empty")

// ErrGeneratorUnavailable reports a failed call to the generation backend
var ErrGeneratorUnavailable = errors.New("generation request failed")

// Deck is the state of one study session. A failing action leaves the deck
// exactly as it was. Deck is not safe for concurrent use; callers run one
// action at a time.
type Deck struct {
	items    []vocab.Item
	meta     vocab.Meta
	cursor   vocab.Cursor
	rawReply string
}

// New returns an empty deck with the default selections
func New() *Deck {
	return &Deck{meta: vocab.DefaultMeta()}
}

// Generate replaces the deck contents with a fresh list for meta. A reply
// that parses to zero items is not an error: the empty list is committed and
// the caller shows its empty state.
func (d *Deck) Generate(ctx context.Context, provider generate.Provider, meta vocab.Meta) error {
	if strings.TrimSpace(meta.Topic) == "" {
		return ErrEmptyTopic
	}

	count := meta.Type.DesiredCount()
	instructions := generate.SystemRules(meta, count)

	raw, err := provider.GenerateVocabulary(ctx, instructions, meta.Topic, generate.MaxTokensFor(meta.Type))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGeneratorUnavailable, err)
	}

	d.items = vocab.ParseItems(raw)
	d.meta = meta
	d.rawReply = raw
	d.cursor.OnListChanged()
	return nil
}

// TopUp asks the provider for the missing items and merges the reply into
// the list, skipping fronts that are already present. The selections stored
// from the last Generate are authoritative; the topic falls back to
// "General" when none is stored. It reports how many items were added.
func (d *Deck) TopUp(ctx context.Context, provider generate.Provider) (int, error) {
	desired := d.meta.Type.DesiredCount()
	missing := vocab.MissingCount(len(d.items), desired)
	if missing == 0 {
		return 0, nil
	}

	instructions := generate.SystemRules(d.meta, missing) +
		generate.DedupeGuard(generate.AvoidKeys(d.items))

	topic := d.meta.Topic
	if topic == "" {
		topic = "General"
	}

	raw, err := provider.GenerateVocabulary(ctx, instructions, topic, generate.MaxTokensFor(d.meta.Type))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrGeneratorUnavailable, err)
	}

	before := len(d.items)
	d.items = vocab.Reconcile(d.items, vocab.ParseItems(raw), desired)
	d.rawReply = raw
	d.cursor.OnListChanged()
	return len(d.items) - before, nil
}

// RemoveAt deletes the item at index i
func (d *Deck) RemoveAt(i int) error {
	if i < 0 || i >= len(d.items) {
		return fmt.Errorf("no item at index %d", i)
	}

	d.items = append(d.items[:i], d.items[i+1:]...)
	d.cursor.OnListChanged()
	return nil
}

// Next moves the cursor to the following card
func (d *Deck) Next() {
	d.cursor.Next(len(d.items))
}

// Previous moves the cursor to the preceding card
func (d *Deck) Previous() {
	d.cursor.Previous(len(d.items))
}

// Flip turns the current card over
func (d *Deck) Flip() {
	d.cursor.Flip()
}

// Items returns the current list in display order
func (d *Deck) Items() []vocab.Item {
	return d.items
}

// Len returns the number of items on the list
func (d *Deck) Len() int {
	return len(d.items)
}

// Meta returns the selections the current list was generated with
func (d *Deck) Meta() vocab.Meta {
	return d.meta
}

// Desired returns the target list size for the current generation type
func (d *Deck) Desired() int {
	return d.meta.Type.DesiredCount()
}

// Missing returns how many items are needed to reach the target size
func (d *Deck) Missing() int {
	return vocab.MissingCount(len(d.items), d.Desired())
}

// Current returns the card under the cursor, or false when the deck is empty
func (d *Deck) Current() (vocab.Item, bool) {
	if len(d.items) == 0 {
		return vocab.Item{}, false
	}
	return d.items[d.cursor.Index()], true
}

// Index returns the cursor position
func (d *Deck) Index() int {
	return d.cursor.Index()
}

// ShowBack reports whether the current card shows its back face
func (d *Deck) ShowBack() bool {
	return d.cursor.ShowBack()
}

// RawReply returns the unparsed text of the last model reply
func (d *Deck) RawReply() string {
	return d.rawReply
}
