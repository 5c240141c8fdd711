package providers

import (
	"context"
	"errors"
)

// Message is a single chat turn sent to a generative-text provider.
type Message struct {
	Role    string
	Content string
}

// Provider issues a single chat completion attempt. Implementations do not
// retry; callers are expected to fall back to default prose when a call
// fails.
type Provider interface {
	Chat(ctx context.Context, messages []Message) (string, error)
	Name() string
}

// ErrUnavailable reports that no remote generative provider is configured.
// Callers treat it like any other remote failure and substitute defaults.
var ErrUnavailable = errors.New("generative provider unavailable")

// LocalProvider is the no-credentials fallback. Every chat attempt fails
// with ErrUnavailable so report assembly sticks to its template defaults
// instead of fabricating prose.
type LocalProvider struct{}

func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

func (l *LocalProvider) Chat(ctx context.Context, messages []Message) (string, error) {
	return "", ErrUnavailable
}

func (l *LocalProvider) Name() string {
	return "local"
}
