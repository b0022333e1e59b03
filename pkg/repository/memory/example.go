package memory

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/trialworks/protodraft/pkg/domain/model"
	"github.com/trialworks/protodraft/pkg/domain/types"
)

type exampleRepository struct {
	mu       sync.RWMutex
	examples map[model.ExampleID]*model.StoredExample
}

func newExampleRepository() *exampleRepository {
	return &exampleRepository{
		examples: make(map[model.ExampleID]*model.StoredExample),
	}
}

func copyExample(e *model.StoredExample) *model.StoredExample {
	copied := *e
	if e.Embedding != nil {
		copied.Embedding = make([]float32, len(e.Embedding))
		copy(copied.Embedding, e.Embedding)
	}
	if e.Metadata != nil {
		copied.Metadata = make(map[string]string, len(e.Metadata))
		for k, v := range e.Metadata {
			copied.Metadata[k] = v
		}
	}
	return &copied
}

func (r *exampleRepository) Put(ctx context.Context, example *model.StoredExample) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyExample(example)
	if stored.ID == "" {
		stored.ID = model.NewExampleID()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	r.examples[stored.ID] = stored

	// Reflect assigned fields back to the caller
	example.ID = stored.ID
	example.CreatedAt = stored.CreatedAt
	return nil
}

func (r *exampleRepository) Get(ctx context.Context, id model.ExampleID) (*model.StoredExample, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	example, exists := r.examples[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "example not found", goerr.V(types.ExampleIDKey, id))
	}
	return copyExample(example), nil
}

func (r *exampleRepository) List(ctx context.Context, limit int) ([]*model.StoredExample, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.StoredExample, 0, len(r.examples))
	for _, e := range r.examples {
		result = append(result, copyExample(e))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if limit > 0 && limit < len(result) {
		result = result[:limit]
	}
	return result, nil
}

func (r *exampleRepository) Delete(ctx context.Context, id model.ExampleID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.examples[id]; !exists {
		return goerr.Wrap(ErrNotFound, "example not found", goerr.V(types.ExampleIDKey, id))
	}
	delete(r.examples, id)
	return nil
}

func (r *exampleRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.examples), nil
}

func (r *exampleRepository) FindNearest(ctx context.Context, embedding []float32, limit int) ([]*model.ScoredExample, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var candidates []*model.ScoredExample
	for _, e := range r.examples {
		if len(e.Embedding) == 0 {
			continue
		}
		s := cosineSimilarity(embedding, e.Embedding)
		candidates = append(candidates, &model.ScoredExample{
			Example:    copyExample(e),
			Similarity: s,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Similarity > candidates[j].Similarity
	})

	if limit > len(candidates) {
		limit = len(candidates)
	}
	return candidates[:limit], nil
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}

	return dot / denom
}
