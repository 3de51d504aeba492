package cardsink

import "context"

// Sink is where finished flashcards go. The implementation is chosen
// once at startup: a real Mochi client when an API key is configured,
// otherwise a no-op. Callers never check for credentials themselves.
type Sink interface {
	// CreateCard composes and stores one flashcard and returns its
	// remote identifier. The call is not idempotent: submitting the
	// same content twice creates two cards.
	CreateCard(ctx context.Context, problem, explanation, code string) (string, error)
}

// NoopSink is selected when no card-sink credential is configured.
// Card creation silently degrades to nothing: no network call, no
// error, no identifier.
type NoopSink struct{}

func (NoopSink) CreateCard(ctx context.Context, problem, explanation, code string) (string, error) {
	return "", nil
}
