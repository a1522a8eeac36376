package testutil

import "context"

// MockProvider mocks a vocabulary generation backend. It satisfies
// generate.Provider.
type MockProvider struct {
	Reply        string            // Default reply
	Replies      map[string]string // Per-topic replies
	Errors       map[string]error  // Per-topic errors
	Err          error             // Error returned for every call
	AvailableErr error
	Calls        []MockGenerateCall
}

// MockGenerateCall records one GenerateVocabulary invocation
type MockGenerateCall struct {
	Instructions string
	Topic        string
	MaxTokens    int
}

// GenerateVocabulary mocks a model call
func (m *MockProvider) GenerateVocabulary(ctx context.Context, instructions, topic string, maxTokens int) (string, error) {
	m.Calls = append(m.Calls, MockGenerateCall{
		Instructions: instructions,
		Topic:        topic,
		MaxTokens:    maxTokens,
	})

	if m.Err != nil {
		return "", m.Err
	}

	if err, ok := m.Errors[topic]; ok {
		return "", err
	}

	if reply, ok := m.Replies[topic]; ok {
		return reply, nil
	}

	return m.Reply, nil
}

// Name returns the provider name
func (m *MockProvider) Name() string {
	return "mock"
}

// IsAvailable reports the configured availability error
func (m *MockProvider) IsAvailable() error {
	return m.AvailableErr
}
