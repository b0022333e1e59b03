package interfaces

import (
	"context"

	"github.com/trialworks/protodraft/pkg/domain/model"
)

// Repository provides access to all persistence backends
type Repository interface {
	Outcome() OutcomeRepository
	Example() ExampleRepository
	Close() error
}

// OutcomeRepository stores generation outcomes
type OutcomeRepository interface {
	Put(ctx context.Context, outcome *model.GenerationOutcome) error
	Get(ctx context.Context, id model.ProtocolID) (*model.GenerationOutcome, error)
	List(ctx context.Context, limit int) ([]*model.GenerationOutcome, error)
	Delete(ctx context.Context, id model.ProtocolID) error
}

// ExampleRepository stores the protocol example corpus and serves
// vector similarity search over it.
type ExampleRepository interface {
	Put(ctx context.Context, example *model.StoredExample) error
	Get(ctx context.Context, id model.ExampleID) (*model.StoredExample, error)
	List(ctx context.Context, limit int) ([]*model.StoredExample, error)
	Delete(ctx context.Context, id model.ExampleID) error
	Count(ctx context.Context) (int, error)

	// FindNearest returns up to limit examples ordered by descending
	// cosine similarity to the query embedding.
	FindNearest(ctx context.Context, embedding []float32, limit int) ([]*model.ScoredExample, error)
}
