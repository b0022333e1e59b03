package types

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors shared across the generation pipeline
var (
	// ErrInvalidProfile is the only error class surfaced to a caller
	// before generation begins. Everything else degrades confidence
	// instead of failing the request.
	ErrInvalidProfile = goerr.New("invalid trial profile")

	// ErrGenerationUnavailable marks a failed external text-generation
	// call (auth failure, rate limit, timeout, malformed response).
	// It triggers the per-section fallback ladder and is never
	// surfaced as a top-level error.
	ErrGenerationUnavailable = goerr.New("text generation unavailable")

	// ErrRetrievalUnavailable marks a failed similarity search. Callers
	// treat it as an empty result, not a failure.
	ErrRetrievalUnavailable = goerr.New("similarity retrieval unavailable")

	// ErrNotFound marks a lookup for a record that does not exist,
	// regardless of storage backend.
	ErrNotFound = goerr.New("record not found")
)

// Context keys for error values
const (
	ProtocolIDKey = "protocol_id"
	ExampleIDKey  = "example_id"
	SectionKey    = "section"
	FieldKey      = "field"
)
