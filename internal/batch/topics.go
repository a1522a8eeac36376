package batch

import (
	"fmt"
	"os"
	"strings"

	"codeberg.org/snonux/palabra/internal/vocab"
)

// TopicEntry represents one topic to generate a vocabulary list for
type TopicEntry struct {
	Topic string
	Type  vocab.GenerateType
	// HasType indicates the line carried an explicit generation type
	HasType bool
}

// ReadTopicsFile reads topics from a file and returns TopicEntry slice
// Supports formats:
// - Topic only: "Rock climbing" (generated with the default type)
// - With type override: "Rock climbing = Phrases"
// Blank lines and lines starting with '#' are skipped.
func ReadTopicsFile(filename string) ([]TopicEntry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read topics file: %w", err)
	}

	var entries []TopicEntry

	for i, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !strings.Contains(line, "=") {
			entries = append(entries, TopicEntry{Topic: line})
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		topic := strings.TrimSpace(parts[0])
		typeName := strings.TrimSpace(parts[1])

		if topic == "" {
			// A type without a topic is useless; skip the line.
			continue
		}
		if typeName == "" {
			entries = append(entries, TopicEntry{Topic: topic})
			continue
		}

		generateType, err := vocab.ParseGenerateType(typeName)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		entries = append(entries, TopicEntry{
			Topic:   topic,
			Type:    generateType,
			HasType: true,
		})
	}

	return entries, nil
}
