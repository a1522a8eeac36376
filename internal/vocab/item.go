package vocab

import "strings"

// Item is a single flashcard. Front holds the target-language text, Back the
// English gloss. Both sides are trimmed; either may be empty (see ParseItems).
type Item struct {
	Front string
	Back  string
}

const (
	// lineMarker prefixes every well-formed line in a model reply.
	lineMarker = "- "
	// itemSeparator divides the two card faces: space, em dash, space.
	// Hyphen, en dash and unspaced variants do not match; a near-miss line
	// is dropped, never mis-split.
	itemSeparator = " — "
)

// ParseItems converts model output lines of the form
//
//	- <target language> — <English>
//
// into an ordered list of items. Lines are trimmed first; lines without the
// "- " marker or without the exact " — " separator contribute nothing. The
// split happens on the first separator occurrence and both sides are trimmed
// afterwards, so a side may come out empty; such items are still emitted.
// Malformed input never raises an error, the worst case is an empty result.
func ParseItems(text string) []Item {
	var items []Item
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, lineMarker) {
			continue
		}
		line = strings.TrimPrefix(line, lineMarker)
		if !strings.Contains(line, itemSeparator) {
			continue
		}
		parts := strings.SplitN(line, itemSeparator, 2)
		items = append(items, Item{
			Front: strings.TrimSpace(parts[0]),
			Back:  strings.TrimSpace(parts[1]),
		})
	}
	return items
}

// FormatItems renders items back into the line format ParseItems reads,
// one "- <front> — <back>" line per item. FormatItems and ParseItems
// round-trip for any already-trimmed items.
func FormatItems(items []Item) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(lineMarker)
		b.WriteString(item.Front)
		b.WriteString(itemSeparator)
		b.WriteString(item.Back)
		b.WriteString("\n")
	}
	return b.String()
}
