package vocab

import "testing"

func TestDesiredCount(t *testing.T) {
	tests := []struct {
		name     string
		typ      GenerateType
		expected int
	}{
		{"words", Words, 20},
		{"verbs", Verbs, 20},
		{"phrases", Phrases, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.DesiredCount(); got != tt.expected {
				t.Errorf("DesiredCount() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestListLabel(t *testing.T) {
	tests := []struct {
		typ      GenerateType
		expected string
	}{
		{Words, "Your word list"},
		{Verbs, "Your verb list"},
		{Phrases, "Your phrase list"},
		{GenerateType("Mystery"), "Your list"},
	}

	for _, tt := range tests {
		if got := tt.typ.ListLabel(); got != tt.expected {
			t.Errorf("ListLabel(%s) = %q, want %q", tt.typ, got, tt.expected)
		}
	}
}

func TestParseGenerateType(t *testing.T) {
	for _, s := range Types {
		if _, err := ParseGenerateType(s); err != nil {
			t.Errorf("ParseGenerateType(%q) returned error: %v", s, err)
		}
	}

	// Case-insensitive, canonical form returned.
	got, err := ParseGenerateType("phrases")
	if err != nil {
		t.Fatalf("ParseGenerateType(\"phrases\") returned error: %v", err)
	}
	if got != Phrases {
		t.Errorf("ParseGenerateType(\"phrases\") = %q, want %q", got, Phrases)
	}

	if _, err := ParseGenerateType("Nouns"); err == nil {
		t.Error("Expected error for unknown generation type")
	}
}

func TestValidLanguage(t *testing.T) {
	if !ValidLanguage("Spanish") {
		t.Error("Expected Spanish to be a valid language")
	}
	if ValidLanguage("Klingon") {
		t.Error("Expected Klingon to be rejected")
	}
}

func TestValidLevel(t *testing.T) {
	for _, l := range Levels {
		if !ValidLevel(l) {
			t.Errorf("Expected %s to be a valid level", l)
		}
	}
	if ValidLevel("D1") {
		t.Error("Expected D1 to be rejected")
	}
}

func TestDefaultMeta(t *testing.T) {
	m := DefaultMeta()

	if m.Type != Words {
		t.Errorf("Expected default type Words, got %s", m.Type)
	}
	if m.Language != "Spanish" {
		t.Errorf("Expected default language Spanish, got %s", m.Language)
	}
	if m.Level != "B1" {
		t.Errorf("Expected default level B1, got %s", m.Level)
	}
}

func TestMetaSummary(t *testing.T) {
	m := Meta{Type: Verbs, Language: "French", Level: "A2", Topic: "Cooking"}

	expected := "French • A2 • Verbs"
	if got := m.Summary(); got != expected {
		t.Errorf("Summary() = %q, want %q", got, expected)
	}
}
