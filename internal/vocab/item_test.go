package vocab

import (
	"reflect"
	"testing"
)

func TestParseItems(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Item
	}{
		{
			name:  "two well formed lines",
			input: "- hola — hello\n- adios — bye",
			expected: []Item{
				{Front: "hola", Back: "hello"},
				{Front: "adios", Back: "bye"},
			},
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  -  el libro  —  the book  ",
			expected: []Item{
				{Front: "el libro", Back: "the book"},
			},
		},
		{
			name:     "line without marker dropped",
			input:    "hola — hello",
			expected: nil,
		},
		{
			name:     "hyphen separator rejected",
			input:    "- hola - hello",
			expected: nil,
		},
		{
			name:     "en dash separator rejected",
			input:    "- hola – hello",
			expected: nil,
		},
		{
			name:     "unspaced em dash rejected",
			input:    "- hola—hello",
			expected: nil,
		},
		{
			name:  "split on first separator only",
			input: "- uno — one — single",
			expected: []Item{
				{Front: "uno", Back: "one — single"},
			},
		},
		{
			name:  "empty front still emitted",
			input: "-  — hello",
			expected: []Item{
				{Front: "", Back: "hello"},
			},
		},
		{
			name:  "prose around valid lines ignored",
			input: "Here are your words:\n- hola — hello\nThat is all!",
			expected: []Item{
				{Front: "hola", Back: "hello"},
			},
		},
		{
			name:  "windows line endings",
			input: "- hola — hello\r\n- adios — bye\r\n",
			expected: []Item{
				{Front: "hola", Back: "hello"},
				{Front: "adios", Back: "bye"},
			},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "nothing parseable",
			input:    "1. hola - hello\n2. adios - bye",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseItems(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseItems(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseItemsIsPure(t *testing.T) {
	input := "- hola — hello\n- adios — bye"

	first := ParseItems(input)
	second := ParseItems(input)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical results for identical input, got %v and %v", first, second)
	}
}

func TestParseItemsPreservesLineOrder(t *testing.T) {
	input := "- uno — one\n- dos — two\n- tres — three"

	items := ParseItems(input)
	if len(items) != 3 {
		t.Fatalf("Expected 3 items, got %d", len(items))
	}

	expected := []string{"uno", "dos", "tres"}
	for i, front := range expected {
		if items[i].Front != front {
			t.Errorf("Item %d front = %q, want %q", i, items[i].Front, front)
		}
	}
}

func TestFormatItems(t *testing.T) {
	items := []Item{
		{Front: "hola", Back: "hello"},
		{Front: "el libro", Back: "the book"},
	}

	got := FormatItems(items)
	want := "- hola — hello\n- el libro — the book\n"
	if got != want {
		t.Errorf("FormatItems() = %q, want %q", got, want)
	}

	if FormatItems(nil) != "" {
		t.Errorf("FormatItems(nil) = %q, want empty string", FormatItems(nil))
	}
}

func TestFormatItemsRoundTrip(t *testing.T) {
	items := []Item{
		{Front: "uno", Back: "one"},
		{Front: "dos", Back: "two"},
		{Front: "tres", Back: "three"},
	}

	parsed := ParseItems(FormatItems(items))
	if !reflect.DeepEqual(parsed, items) {
		t.Errorf("Round trip changed items: got %v, want %v", parsed, items)
	}
}
