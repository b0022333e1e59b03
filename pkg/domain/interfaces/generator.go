package interfaces

import "context"

// TextGenerator produces free text from a system prompt and a user
// prompt. Implementations return ErrGenerationUnavailable (possibly
// wrapped) for any transport, auth, or timeout failure so callers can
// fall back uniformly.
type TextGenerator interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Embedder converts search text into a dense vector
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
