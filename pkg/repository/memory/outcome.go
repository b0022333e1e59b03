package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/trialworks/protodraft/pkg/domain/model"
	"github.com/trialworks/protodraft/pkg/domain/types"
)

type outcomeRepository struct {
	mu       sync.RWMutex
	outcomes map[model.ProtocolID]*model.GenerationOutcome
}

func newOutcomeRepository() *outcomeRepository {
	return &outcomeRepository{
		outcomes: make(map[model.ProtocolID]*model.GenerationOutcome),
	}
}

func copyOutcome(o *model.GenerationOutcome) *model.GenerationOutcome {
	copied := *o
	copied.Sections = make([]model.SectionResult, len(o.Sections))
	copy(copied.Sections, o.Sections)
	if o.Validation.Messages != nil {
		copied.Validation.Messages = make([]model.ValidationMessage, len(o.Validation.Messages))
		copy(copied.Validation.Messages, o.Validation.Messages)
	}
	return &copied
}

func (r *outcomeRepository) Put(ctx context.Context, outcome *model.GenerationOutcome) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if outcome.ID == "" {
		return goerr.New("outcome ID is required")
	}
	r.outcomes[outcome.ID] = copyOutcome(outcome)
	return nil
}

func (r *outcomeRepository) Get(ctx context.Context, id model.ProtocolID) (*model.GenerationOutcome, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	outcome, exists := r.outcomes[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "protocol not found", goerr.V(types.ProtocolIDKey, id))
	}
	return copyOutcome(outcome), nil
}

func (r *outcomeRepository) List(ctx context.Context, limit int) ([]*model.GenerationOutcome, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.GenerationOutcome, 0, len(r.outcomes))
	for _, o := range r.outcomes {
		result = append(result, copyOutcome(o))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].GeneratedAt.After(result[j].GeneratedAt)
	})

	if limit > 0 && limit < len(result) {
		result = result[:limit]
	}
	return result, nil
}

func (r *outcomeRepository) Delete(ctx context.Context, id model.ProtocolID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.outcomes[id]; !exists {
		return goerr.Wrap(ErrNotFound, "protocol not found", goerr.V(types.ProtocolIDKey, id))
	}
	delete(r.outcomes, id)
	return nil
}
