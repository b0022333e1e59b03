package model

import (
	"time"

	"github.com/google/uuid"
)

// EmbeddingDimension is the dimensionality requested from the
// embedding model and stored alongside every indexed example.
const EmbeddingDimension = 768

// ExampleID is the unique identifier for a stored protocol example
type ExampleID string

// NewExampleID generates a new unique ExampleID
func NewExampleID() ExampleID {
	return ExampleID(uuid.New().String())
}

// String returns the string representation of ExampleID
func (id ExampleID) String() string {
	return string(id)
}

// StoredExample is a historical protocol kept in the example corpus
// for similarity retrieval.
type StoredExample struct {
	ID        ExampleID         `json:"id" firestore:"id"`
	Profile   TrialProfile      `json:"profile" firestore:"profile"`
	Summary   string            `json:"summary,omitempty" firestore:"summary,omitempty"`
	Embedding []float32         `json:"-" firestore:"embedding"`
	Metadata  map[string]string `json:"metadata,omitempty" firestore:"metadata,omitempty"`
	CreatedAt time.Time         `json:"created_at" firestore:"created_at"`
}

// ScoredExample pairs a stored example with its cosine similarity to
// a query embedding.
type ScoredExample struct {
	Example    *StoredExample `json:"example"`
	Similarity float64        `json:"similarity"`
}

// RetrievedExample is the retrieval result handed to the context
// assembler. Similarity is nil when the backend could not report a
// score for the match.
type RetrievedExample struct {
	ID         ExampleID         `json:"id"`
	Profile    TrialProfile      `json:"profile"`
	Summary    string            `json:"summary,omitempty"`
	Similarity *float64          `json:"similarity,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}
