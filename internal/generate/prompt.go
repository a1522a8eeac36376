package generate

import (
	"fmt"
	"sort"
	"strings"

	"codeberg.org/snonux/palabra/internal/vocab"
)

// maxAvoidKeys caps the avoid list sent with a top-up so the system prompt
// stays small.
const maxAvoidKeys = 80

// systemRulesFormat is the system prompt. The model is told to emit nothing
// but "- <target> — <English>" lines; everything else is dropped by the
// parser, so the rules are strict on purpose.
const systemRulesFormat = `
You are a language teacher. Generate exactly %[1]d items about the user's topic.

Target language: %[2]s
CEFR level: %[3]s
Generation type: %[4]s

CEFR guidance:
- A1/A2: very common, concrete, high-frequency language.
- B1: practical everyday language.
- B2: more precise language; some abstraction.
- C1/C2: advanced, nuanced language appropriate to the topic.

STRICT output format:
- Output ONLY %[1]d lines (no intro, no headings).
- Each line MUST start with "- " (dash + space).
- Each line MUST be: - <target language> — <English>
- Use " — " exactly (space em-dash space). No extra text.
- If you cannot follow the type rules, regenerate internally until you can.

Type rules (apply ONLY the matching section):

[WORDS]
- Output single-word items only (one token/word, or an article + single noun).
- Allowed formats:
  - Noun: article + singular noun (e.g., "el libro", "la casa"). No multi-word nouns.
  - Verb/adjective/adverb: single word only. No article.
- NOT allowed: phrases, collocations, multi-word items, sentences, punctuation.

[VERBS]
- Output infinitive verbs only, single word (e.g., "hablar", "comer").
- NOT allowed: any nouns, any sentences, any multi-word items.

[PHRASES]
- Output complete, useful sentences a learner would actually say (8–14 words).
- Each item MUST contain a verb and end with punctuation (., ?, !).
- NOT allowed: single words, noun-only entries.

Quality rules:
- Avoid English loanwords unless they are the most common term in the target language.
- Keep items relevant to the topic and appropriate to the CEFR level.
`

// SystemRules builds the system instructions asking for itemCount items of
// meta's type, language and level.
func SystemRules(meta vocab.Meta, itemCount int) string {
	return fmt.Sprintf(systemRulesFormat, itemCount, meta.Language, meta.Level, meta.Type)
}

// DedupeGuard builds the extra system rule for a top-up that forbids items
// whose target side matches one of keys. It returns "" when keys is empty.
func DedupeGuard(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n\nAdditional rule:\n")
	b.WriteString("- Do NOT output any item whose target-language side matches (case-insensitive) any of:\n")
	for _, key := range keys {
		b.WriteString("  - ")
		b.WriteString(key)
		b.WriteString("\n")
	}
	return b.String()
}

// AvoidKeys collects the normalized fronts of items for a dedupe guard:
// unique, sorted, empty keys skipped, at most maxAvoidKeys entries.
func AvoidKeys(items []vocab.Item) []string {
	uniq := make(map[string]bool, len(items))
	for _, item := range items {
		if key := vocab.NormalizeKey(item.Front); key != "" {
			uniq[key] = true
		}
	}

	keys := make([]string, 0, len(uniq))
	for key := range uniq {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	if len(keys) > maxAvoidKeys {
		keys = keys[:maxAvoidKeys]
	}
	return keys
}

// MaxTokensFor returns the completion token budget for a generation type.
// Phrases are longer than single words and get more room.
func MaxTokensFor(generateType vocab.GenerateType) int {
	if generateType == vocab.Phrases {
		return 600
	}
	return 400
}
