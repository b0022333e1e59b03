package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/trialworks/protodraft/pkg/domain/model"
	"github.com/trialworks/protodraft/pkg/domain/types"
	"github.com/trialworks/protodraft/pkg/service/export"
	"github.com/trialworks/protodraft/pkg/service/seed"
)

// GetOutcome retrieves a stored generation outcome
func (uc *UseCases) GetOutcome(ctx context.Context, id model.ProtocolID) (*model.GenerationOutcome, error) {
	outcome, err := uc.repo.Outcome().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get generation outcome",
			goerr.V(types.ProtocolIDKey, id))
	}
	return outcome, nil
}

// ListOutcomes returns stored outcomes, newest first
func (uc *UseCases) ListOutcomes(ctx context.Context, limit int) ([]*model.GenerationOutcome, error) {
	outcomes, err := uc.repo.Outcome().List(ctx, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list generation outcomes")
	}
	return outcomes, nil
}

// DeleteOutcome removes a stored outcome
func (uc *UseCases) DeleteOutcome(ctx context.Context, id model.ProtocolID) error {
	if err := uc.repo.Outcome().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete generation outcome",
			goerr.V(types.ProtocolIDKey, id))
	}
	return nil
}

// Export renders a stored outcome in the requested interchange format
func (uc *UseCases) Export(ctx context.Context, id model.ProtocolID, format types.ExportFormat) (*export.Result, error) {
	outcome, err := uc.GetOutcome(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.exporter.Export(outcome, format)
}

// ValidateProfile checks a trial profile against the structural rules
// without generating a protocol. The visit rules run against the
// deterministic schedule the profile would receive.
func (uc *UseCases) ValidateProfile(ctx context.Context, profile *model.TrialProfile) (*model.ValidationOutcome, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	protocol := &model.Protocol{
		Title:             profile.Title,
		InclusionCriteria: profile.InclusionCriteria,
		ExclusionCriteria: profile.ExclusionCriteria,
		Endpoints:         profile.Endpoints,
		VisitSchedule:     fallbackVisitSchedule(profile),
	}

	outcome := uc.validator.Validate(profile, protocol)
	return &outcome, nil
}

// AddExample indexes a previously generated protocol into the example
// corpus so retrieval can match against it.
func (uc *UseCases) AddExample(ctx context.Context, id model.ProtocolID) (*model.StoredExample, error) {
	if uc.indexer == nil {
		return nil, goerr.Wrap(types.ErrRetrievalUnavailable, "indexer is not configured")
	}

	outcome, err := uc.GetOutcome(ctx, id)
	if err != nil {
		return nil, err
	}

	example := &model.StoredExample{
		Profile: outcome.Profile,
		Summary: outcome.Profile.Title,
		Metadata: map[string]string{
			"origin":      "user",
			"protocol_id": outcome.ID.String(),
		},
	}
	if err := uc.indexer.Index(ctx, example); err != nil {
		return nil, goerr.Wrap(err, "failed to index protocol as example",
			goerr.V(types.ProtocolIDKey, id))
	}
	return example, nil
}

// SearchExamples finds stored examples similar to the given profile
func (uc *UseCases) SearchExamples(ctx context.Context, profile *model.TrialProfile, k int) ([]model.RetrievedExample, error) {
	if uc.retriever == nil {
		return nil, goerr.Wrap(types.ErrRetrievalUnavailable, "retriever is not configured")
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return uc.retriever.Retrieve(ctx, profile, k), nil
}

// ListExamples returns stored examples, newest first
func (uc *UseCases) ListExamples(ctx context.Context, limit int) ([]*model.StoredExample, error) {
	examples, err := uc.repo.Example().List(ctx, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list examples")
	}
	return examples, nil
}

// GetExample retrieves one stored example
func (uc *UseCases) GetExample(ctx context.Context, id model.ExampleID) (*model.StoredExample, error) {
	example, err := uc.repo.Example().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get example",
			goerr.V(types.ExampleIDKey, id))
	}
	return example, nil
}

// DeleteExample removes a stored example from the corpus
func (uc *UseCases) DeleteExample(ctx context.Context, id model.ExampleID) error {
	if err := uc.repo.Example().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete example",
			goerr.V(types.ExampleIDKey, id))
	}
	return nil
}

// ExampleStats summarizes the example corpus
type ExampleStats struct {
	Count int `json:"count"`
}

// GetExampleStats returns statistics about the example corpus
func (uc *UseCases) GetExampleStats(ctx context.Context) (*ExampleStats, error) {
	count, err := uc.repo.Example().Count(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to count examples")
	}
	return &ExampleStats{Count: count}, nil
}

// SeedExamples populates the corpus with the curated sample profiles
func (uc *UseCases) SeedExamples(ctx context.Context) (int, error) {
	if uc.indexer == nil {
		return 0, goerr.Wrap(types.ErrRetrievalUnavailable, "indexer is not configured")
	}
	return seed.New(uc.indexer).Seed(ctx)
}
