package interfaces

import (
	"context"

	"github.com/trialworks/protodraft/pkg/domain/model"
)

// Retriever finds historical examples similar to a trial profile.
// A failed search yields an empty slice, never an error surfaced to
// the pipeline.
type Retriever interface {
	Retrieve(ctx context.Context, profile *model.TrialProfile, k int) []model.RetrievedExample
}

// Indexer adds a profile to the example corpus for future retrieval
type Indexer interface {
	Index(ctx context.Context, example *model.StoredExample) error
}
