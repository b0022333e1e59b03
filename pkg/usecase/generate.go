package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/trialworks/protodraft/pkg/domain/model"
	"github.com/trialworks/protodraft/pkg/domain/types"
	"github.com/trialworks/protodraft/pkg/utils/async"
	"github.com/trialworks/protodraft/pkg/utils/logging"
)

// Generate runs the full pipeline for one trial profile: retrieval,
// context assembly, section generation, protocol assembly, structural
// validation, narrative, CRF schema, confidence scoring, and storage.
// The generated protocol is also indexed into the example corpus in
// the background so later runs can retrieve it.
func (uc *UseCases) Generate(ctx context.Context, profile *model.TrialProfile) (*model.GenerationOutcome, error) {
	logger := logging.From(ctx)

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	var examples []model.RetrievedExample
	if uc.genCfg.UseRetrieval && uc.retriever != nil {
		examples = uc.retriever.Retrieve(ctx, profile, uc.genCfg.TopK)
	}
	contextBlock := AssembleContext(examples, uc.genCfg.ContextLimit)
	logger.Info("assembled retrieval context",
		"examples", contextBlock.ExampleCount,
		"indication", profile.Indication)

	sections := uc.generateSections(ctx, profile, &contextBlock)
	protocol := buildProtocol(profile, sections)

	validation := uc.validator.Validate(profile, protocol)
	confidence := scoreConfidence(uc.scoreCfg, &contextBlock, sections, validation)

	outcome := &model.GenerationOutcome{
		ID:          model.NewProtocolID(),
		GeneratedAt: time.Now().UTC(),
		Profile:     *profile,
		Protocol:    *protocol,
		Narrative:   buildNarrative(profile, protocol),
		CRF:         uc.buildCRF(ctx, profile, protocol),
		Sections:    sections,
		Context:     contextBlock,
		Validation:  validation,
		Confidence:  confidence,
	}

	if err := uc.repo.Outcome().Put(ctx, outcome); err != nil {
		return nil, goerr.Wrap(err, "failed to store generation outcome",
			goerr.V(types.ProtocolIDKey, outcome.ID))
	}

	uc.indexOutcome(ctx, outcome)

	logger.Info("protocol generated",
		"protocol_id", outcome.ID,
		"status", validation.Status,
		"confidence", confidence)
	return outcome, nil
}

// generateSections fans section generation out across a bounded worker
// group. Each worker fills its own slot, so the result order matches
// the canonical section order regardless of completion order.
func (uc *UseCases) generateSections(ctx context.Context, profile *model.TrialProfile, contextBlock *model.ContextBlock) []model.SectionResult {
	kinds := types.AllSectionKinds()
	results := make([]model.SectionResult, len(kinds))

	g, gctx := errgroup.WithContext(ctx)
	if uc.genCfg.Concurrency > 0 {
		g.SetLimit(uc.genCfg.Concurrency)
	}

	for i, kind := range kinds {
		g.Go(func() error {
			results[i] = uc.generateSection(gctx, kind, profile, contextBlock)
			return nil
		})
	}

	// Workers never return errors; the ladder absorbs every failure.
	_ = g.Wait()
	return results
}

// buildProtocol assembles the structured document from section
// contents. Structured sections carry JSON produced by the ladder; a
// section that fails to parse is replaced by its deterministic
// template so the protocol is always complete.
func buildProtocol(profile *model.TrialProfile, sections []model.SectionResult) *model.Protocol {
	protocol := &model.Protocol{
		Title: profile.Title,
	}

	for _, s := range sections {
		switch s.Kind {
		case types.SectionObjectives:
			var payload objectivesPayload
			if err := json.Unmarshal([]byte(s.Content), &payload); err == nil && payload.Primary != "" {
				protocol.Objectives = model.Objectives{Primary: payload.Primary, Secondary: payload.Secondary}
			} else {
				_ = json.Unmarshal([]byte(fallbackSection(s.Kind, profile)), &protocol.Objectives)
			}
		case types.SectionInclusionCriteria:
			if err := json.Unmarshal([]byte(s.Content), &protocol.InclusionCriteria); err != nil || len(protocol.InclusionCriteria) == 0 {
				protocol.InclusionCriteria = fallbackInclusionCriteria(profile)
			}
		case types.SectionExclusionCriteria:
			if err := json.Unmarshal([]byte(s.Content), &protocol.ExclusionCriteria); err != nil || len(protocol.ExclusionCriteria) == 0 {
				protocol.ExclusionCriteria = fallbackExclusionCriteria()
			}
		case types.SectionStudyDesign:
			protocol.StudyDesign = s.Content
		case types.SectionEndpoints:
			if err := json.Unmarshal([]byte(s.Content), &protocol.Endpoints); err != nil || len(protocol.Endpoints) == 0 {
				protocol.Endpoints = fallbackEndpoints(profile)
			}
		case types.SectionVisitSchedule:
			if err := json.Unmarshal([]byte(s.Content), &protocol.VisitSchedule); err != nil || len(protocol.VisitSchedule) == 0 {
				protocol.VisitSchedule = fallbackVisitSchedule(profile)
			}
		case types.SectionAssessments:
			if err := json.Unmarshal([]byte(s.Content), &protocol.Assessments); err != nil || len(protocol.Assessments) == 0 {
				protocol.Assessments = fallbackAssessments(profile)
			}
		}
	}

	return protocol
}

// indexOutcome adds the generated protocol to the example corpus in
// the background. Indexing failures are logged, never surfaced.
func (uc *UseCases) indexOutcome(ctx context.Context, outcome *model.GenerationOutcome) {
	if uc.indexer == nil {
		return
	}

	example := &model.StoredExample{
		Profile: outcome.Profile,
		Summary: outcome.Profile.Title,
		Metadata: map[string]string{
			"origin":      "generated",
			"protocol_id": outcome.ID.String(),
		},
	}

	async.Dispatch(ctx, func(ctx context.Context) error {
		if err := uc.indexer.Index(ctx, example); err != nil {
			return goerr.Wrap(err, "failed to index generated protocol",
				goerr.V(types.ProtocolIDKey, outcome.ID))
		}
		return nil
	})
}
