package deck

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"codeberg.org/snonux/palabra/internal/testutil"
	"codeberg.org/snonux/palabra/internal/vocab"
)

func testMeta(topic string) vocab.Meta {
	return vocab.Meta{
		Type:     vocab.Words,
		Language: "Spanish",
		Level:    "B1",
		Topic:    topic,
	}
}

// seededDeck returns a deck holding n items, the last one "la cuerda"
func seededDeck(n int, topic string) *Deck {
	items := make([]vocab.Item, 0, n)
	for i := 0; i < n-1; i++ {
		items = append(items, vocab.Item{
			Front: fmt.Sprintf("palabra%02d", i),
			Back:  fmt.Sprintf("word%02d", i),
		})
	}
	items = append(items, vocab.Item{Front: "la cuerda", Back: "rope"})

	return &Deck{items: items, meta: testMeta(topic)}
}

func TestNew(t *testing.T) {
	d := New()

	if d.Len() != 0 {
		t.Errorf("Expected empty deck, got %d items", d.Len())
	}
	if d.Meta().Language != "Spanish" || d.Meta().Level != "B1" || d.Meta().Type != vocab.Words {
		t.Errorf("Expected default selections, got %+v", d.Meta())
	}
	if _, ok := d.Current(); ok {
		t.Error("Current() should report no card for an empty deck")
	}
}

func TestGenerate(t *testing.T) {
	mock := &testutil.MockProvider{
		Reply: "Here you go:\n- el piolet — ice axe\n- la cuerda — rope\nnot a list line",
	}
	d := New()

	meta := testMeta("Rock climbing")
	if err := d.Generate(context.Background(), mock, meta); err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	if d.Len() != 2 {
		t.Fatalf("Expected 2 items, got %d", d.Len())
	}
	if d.Items()[0].Front != "el piolet" || d.Items()[0].Back != "ice axe" {
		t.Errorf("Unexpected first item: %+v", d.Items()[0])
	}
	if d.Meta() != meta {
		t.Errorf("Meta() = %+v, want %+v", d.Meta(), meta)
	}
	if !strings.Contains(d.RawReply(), "not a list line") {
		t.Error("RawReply() should keep the unparsed reply text")
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("Expected 1 provider call, got %d", len(mock.Calls))
	}
	call := mock.Calls[0]
	if call.Topic != "Rock climbing" {
		t.Errorf("Expected topic 'Rock climbing', got '%s'", call.Topic)
	}
	if call.MaxTokens != 400 {
		t.Errorf("Expected 400 max tokens for words, got %d", call.MaxTokens)
	}
	if !strings.Contains(call.Instructions, "Generate exactly 20 items") {
		t.Error("Instructions should ask for the full word count")
	}
	if !strings.Contains(call.Instructions, "Target language: Spanish") {
		t.Error("Instructions should name the target language")
	}
}

func TestGenerateSendsTopicVerbatim(t *testing.T) {
	mock := &testutil.MockProvider{Reply: "- hola — hello"}
	d := New()

	if err := d.Generate(context.Background(), mock, testMeta("  Rock climbing ")); err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	if mock.Calls[0].Topic != "  Rock climbing " {
		t.Errorf("Topic was altered: %q", mock.Calls[0].Topic)
	}
}

func TestGeneratePhrasesTokenBudget(t *testing.T) {
	mock := &testutil.MockProvider{Reply: "- ¿Dónde está la estación? — Where is the station?"}
	d := New()

	meta := testMeta("Travel")
	meta.Type = vocab.Phrases
	if err := d.Generate(context.Background(), mock, meta); err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	if mock.Calls[0].MaxTokens != 600 {
		t.Errorf("Expected 600 max tokens for phrases, got %d", mock.Calls[0].MaxTokens)
	}
	if !strings.Contains(mock.Calls[0].Instructions, "Generate exactly 10 items") {
		t.Error("Instructions should ask for 10 phrases")
	}
}

func TestGenerateEmptyTopic(t *testing.T) {
	mock := &testutil.MockProvider{Reply: "- hola — hello"}
	d := seededDeck(3, "Travel")
	d.Next()

	for _, topic := range []string{"", "   ", "\t\n"} {
		err := d.Generate(context.Background(), mock, testMeta(topic))
		if !errors.Is(err, ErrEmptyTopic) {
			t.Errorf("Generate(%q) error = %v, want ErrEmptyTopic", topic, err)
		}
	}

	if len(mock.Calls) != 0 {
		t.Errorf("Expected no provider calls, got %d", len(mock.Calls))
	}
	if d.Len() != 3 || d.Index() != 1 {
		t.Error("Deck changed on a rejected generation")
	}
}

func TestGenerateProviderError(t *testing.T) {
	mock := &testutil.MockProvider{Err: errors.New("backend down")}
	d := seededDeck(3, "Travel")
	d.Next()
	d.Flip()

	err := d.Generate(context.Background(), mock, testMeta("Cooking"))
	if !errors.Is(err, ErrGeneratorUnavailable) {
		t.Fatalf("Generate() error = %v, want ErrGeneratorUnavailable", err)
	}
	if !strings.Contains(err.Error(), "backend down") {
		t.Errorf("Error should carry the cause, got: %v", err)
	}

	// The failed attempt must not touch the deck.
	if d.Len() != 3 || d.Meta().Topic != "Travel" || d.Index() != 1 || !d.ShowBack() {
		t.Error("Deck changed on a failed generation")
	}
}

func TestGenerateEmptyParseCommits(t *testing.T) {
	mock := &testutil.MockProvider{Reply: "I cannot help with that."}
	d := seededDeck(3, "Travel")

	if err := d.Generate(context.Background(), mock, testMeta("Cooking")); err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	if d.Len() != 0 {
		t.Errorf("Expected empty list, got %d items", d.Len())
	}
	if d.Meta().Topic != "Cooking" {
		t.Error("Meta should be replaced even when nothing parsed")
	}
	if d.RawReply() != "I cannot help with that." {
		t.Errorf("RawReply() = %q", d.RawReply())
	}
	if _, ok := d.Current(); ok {
		t.Error("Current() should report no card")
	}
}

func TestGenerateResetsCursor(t *testing.T) {
	mock := &testutil.MockProvider{Reply: "- uno — one\n- dos — two\n- tres — three"}
	d := seededDeck(3, "Travel")
	d.Next()
	d.Flip()

	if err := d.Generate(context.Background(), mock, testMeta("Numbers")); err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	if d.Index() != 0 || d.ShowBack() {
		t.Errorf("Cursor not reset: index=%d showBack=%v", d.Index(), d.ShowBack())
	}
}

func TestTopUp(t *testing.T) {
	mock := &testutil.MockProvider{
		Reply: "- La cuerda — rope again\n- el arnés — harness\n- la roca — rock",
	}
	d := seededDeck(18, "Rock climbing")
	d.Next()
	d.Flip()

	added, err := d.TopUp(context.Background(), mock)
	if err != nil {
		t.Fatalf("TopUp() unexpected error: %v", err)
	}

	if added != 2 {
		t.Errorf("Expected 2 items added, got %d", added)
	}
	if d.Len() != 20 {
		t.Errorf("Expected 20 items, got %d", d.Len())
	}
	for _, item := range d.Items() {
		if item.Back == "rope again" {
			t.Error("Duplicate front slipped through the merge")
		}
	}
	if d.Index() != 0 || d.ShowBack() {
		t.Error("Cursor not reset after top up")
	}

	call := mock.Calls[0]
	if call.Topic != "Rock climbing" {
		t.Errorf("Expected stored topic, got '%s'", call.Topic)
	}
	if !strings.Contains(call.Instructions, "Generate exactly 2 items") {
		t.Error("Instructions should ask only for the missing count")
	}
	if !strings.Contains(call.Instructions, "Additional rule:") {
		t.Error("Instructions should carry the dedupe guard")
	}
	if !strings.Contains(call.Instructions, "  - la cuerda\n") {
		t.Error("Dedupe guard should list existing fronts")
	}
}

func TestTopUpAtDesiredCount(t *testing.T) {
	mock := &testutil.MockProvider{Reply: "- uno — one"}
	d := seededDeck(20, "Rock climbing")

	added, err := d.TopUp(context.Background(), mock)
	if err != nil {
		t.Fatalf("TopUp() unexpected error: %v", err)
	}

	if added != 0 {
		t.Errorf("Expected 0 items added, got %d", added)
	}
	if len(mock.Calls) != 0 {
		t.Errorf("Expected no provider calls, got %d", len(mock.Calls))
	}
}

func TestTopUpRespectsDesiredCap(t *testing.T) {
	mock := &testutil.MockProvider{
		Reply: "- el arnés — harness\n- la roca — rock\n- el nudo — knot",
	}
	d := seededDeck(19, "Rock climbing")

	added, err := d.TopUp(context.Background(), mock)
	if err != nil {
		t.Fatalf("TopUp() unexpected error: %v", err)
	}

	if added != 1 {
		t.Errorf("Expected 1 item added, got %d", added)
	}
	if d.Len() != 20 {
		t.Errorf("Expected 20 items, got %d", d.Len())
	}
}

func TestTopUpFallbackTopic(t *testing.T) {
	mock := &testutil.MockProvider{Reply: "- uno — one"}
	d := seededDeck(19, "")

	if _, err := d.TopUp(context.Background(), mock); err != nil {
		t.Fatalf("TopUp() unexpected error: %v", err)
	}

	if mock.Calls[0].Topic != "General" {
		t.Errorf("Expected fallback topic 'General', got '%s'", mock.Calls[0].Topic)
	}
}

func TestTopUpProviderError(t *testing.T) {
	mock := &testutil.MockProvider{Err: errors.New("backend down")}
	d := seededDeck(18, "Rock climbing")

	added, err := d.TopUp(context.Background(), mock)
	if !errors.Is(err, ErrGeneratorUnavailable) {
		t.Fatalf("TopUp() error = %v, want ErrGeneratorUnavailable", err)
	}

	if added != 0 || d.Len() != 18 {
		t.Error("Deck changed on a failed top up")
	}
}

func TestRemoveAt(t *testing.T) {
	d := seededDeck(3, "Travel")
	d.Next()
	d.Flip()

	if err := d.RemoveAt(1); err != nil {
		t.Fatalf("RemoveAt() unexpected error: %v", err)
	}

	if d.Len() != 2 {
		t.Fatalf("Expected 2 items, got %d", d.Len())
	}
	if d.Items()[0].Front != "palabra00" || d.Items()[1].Front != "la cuerda" {
		t.Errorf("Unexpected items after removal: %+v", d.Items())
	}
	if d.Index() != 0 || d.ShowBack() {
		t.Error("Cursor not reset after removal")
	}
}

func TestRemoveAtOutOfRange(t *testing.T) {
	d := seededDeck(3, "Travel")

	for _, i := range []int{-1, 3, 42} {
		if err := d.RemoveAt(i); err == nil {
			t.Errorf("RemoveAt(%d) expected error", i)
		}
	}
	if d.Len() != 3 {
		t.Errorf("Expected 3 items, got %d", d.Len())
	}
}

func TestRemoveLastItem(t *testing.T) {
	d := seededDeck(1, "Travel")

	if err := d.RemoveAt(0); err != nil {
		t.Fatalf("RemoveAt() unexpected error: %v", err)
	}

	if d.Len() != 0 {
		t.Errorf("Expected empty deck, got %d items", d.Len())
	}
	if _, ok := d.Current(); ok {
		t.Error("Current() should report no card after removing the last item")
	}
}

func TestNavigation(t *testing.T) {
	d := seededDeck(3, "Travel")

	d.Next()
	d.Next()
	if d.Index() != 2 {
		t.Errorf("Expected index 2, got %d", d.Index())
	}

	d.Next() // wraps
	if d.Index() != 0 {
		t.Errorf("Expected wrap to 0, got %d", d.Index())
	}

	d.Previous() // wraps backwards
	if d.Index() != 2 {
		t.Errorf("Expected wrap to 2, got %d", d.Index())
	}

	d.Flip()
	if !d.ShowBack() {
		t.Error("Flip() should show the back face")
	}

	d.Next()
	if d.ShowBack() {
		t.Error("Navigation should reset to the front face")
	}

	item, ok := d.Current()
	if !ok {
		t.Fatal("Current() should return a card")
	}
	if item.Front != "palabra00" {
		t.Errorf("Unexpected current card: %+v", item)
	}
}
