package vocab

import (
	"fmt"
	"strings"
)

// GenerateType selects what kind of vocabulary items the model produces.
type GenerateType string

const (
	Words   GenerateType = "Words"
	Verbs   GenerateType = "Verbs"
	Phrases GenerateType = "Phrases"
)

// Types lists the supported generation types in display order.
var Types = []string{string(Words), string(Verbs), string(Phrases)}

// Languages lists the supported target languages in display order.
var Languages = []string{"Spanish", "French", "Italian", "German", "Catalan"}

// Levels lists the CEFR proficiency levels from lowest to highest.
var Levels = []string{"A1", "A2", "B1", "B2", "C1", "C2"}

// ParseGenerateType validates a user-supplied type string. Matching is
// case-insensitive; the canonical form is returned.
func ParseGenerateType(s string) (GenerateType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "words":
		return Words, nil
	case "verbs":
		return Verbs, nil
	case "phrases":
		return Phrases, nil
	}
	return "", fmt.Errorf("unknown generation type %q (use Words, Verbs or Phrases)", s)
}

// ValidLanguage reports whether s is a supported target language.
func ValidLanguage(s string) bool {
	for _, l := range Languages {
		if l == s {
			return true
		}
	}
	return false
}

// ValidLevel reports whether s is a CEFR level.
func ValidLevel(s string) bool {
	for _, l := range Levels {
		if l == s {
			return true
		}
	}
	return false
}

// DesiredCount is the target list size for this generation type. Phrase items
// are longer and costlier to generate per call, so their target is smaller.
func (t GenerateType) DesiredCount() int {
	if t == Phrases {
		return 10
	}
	return 20
}

// ListLabel is the heading shown above a list of this type.
func (t GenerateType) ListLabel() string {
	switch t {
	case Words:
		return "Your word list"
	case Verbs:
		return "Your verb list"
	case Phrases:
		return "Your phrase list"
	}
	return "Your list"
}

// Meta records the provenance of the current item list. It is replaced
// wholesale on a fresh generation and treated as read-only during top-up.
type Meta struct {
	Type     GenerateType
	Language string
	Level    string
	Topic    string
}

// DefaultMeta returns the selection the UI starts out with.
func DefaultMeta() Meta {
	return Meta{Type: Words, Language: "Spanish", Level: "B1"}
}

// Summary renders the provenance line shown under list and card views,
// e.g. "Spanish • B1 • Words".
func (m Meta) Summary() string {
	return fmt.Sprintf("%s • %s • %s", m.Language, m.Level, m.Type)
}
