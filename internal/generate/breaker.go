package generate

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

// ProviderWithBreaker wraps a provider with a circuit breaker. After three
// consecutive failures further calls are refused for a cooldown instead of
// hitting the backend again. Failures are surfaced immediately; nothing is
// retried.
type ProviderWithBreaker struct {
	inner   Provider
	breaker *gobreaker.CircuitBreaker
}

// NewProviderWithBreaker wraps provider with a circuit breaker
func NewProviderWithBreaker(provider Provider) *ProviderWithBreaker {
	settings := gobreaker.Settings{
		Name:        provider.Name(),
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	}

	return &ProviderWithBreaker{
		inner:   provider,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// GenerateVocabulary forwards to the wrapped provider through the breaker
func (p *ProviderWithBreaker) GenerateVocabulary(ctx context.Context, instructions, topic string, maxTokens int) (string, error) {
	result, err := p.breaker.Execute(func() (interface{}, error) {
		return p.inner.GenerateVocabulary(ctx, instructions, topic, maxTokens)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// Name returns the wrapped provider name
func (p *ProviderWithBreaker) Name() string {
	return p.inner.Name()
}

// IsAvailable reports the breaker state before asking the wrapped provider
func (p *ProviderWithBreaker) IsAvailable() error {
	if p.breaker.State() == gobreaker.StateOpen {
		return fmt.Errorf("generation suspended after repeated failures, retrying in up to 30s")
	}
	return p.inner.IsAvailable()
}
