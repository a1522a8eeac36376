package internal

import "unicode"

// SanitizeFilename creates a safe filename from a string, typically a topic.
// Letters and digits are kept (including accented ones, which the target
// languages use a lot), everything else becomes an underscore.
func SanitizeFilename(s string) string {
	result := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			result = append(result, r)
		} else {
			result = append(result, '_')
		}
	}
	return string(result)
}
