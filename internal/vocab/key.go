package vocab

import "strings"

// NormalizeKey returns the canonical comparison form of a card front:
// trimmed and lowercased, with every whitespace run collapsed to a single
// space. It is idempotent and used only for duplicate detection, never for
// display.
func NormalizeKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
