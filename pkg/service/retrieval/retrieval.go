package retrieval

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/trialworks/protodraft/pkg/domain/interfaces"
	"github.com/trialworks/protodraft/pkg/domain/model"
	"github.com/trialworks/protodraft/pkg/utils/logging"
)

// Service finds stored protocol examples similar to a trial profile.
// Retrieval is strictly best-effort: embedding or search failures are
// logged and reported as an empty result so generation proceeds
// without example context.
type Service struct {
	embedder interfaces.Embedder
	examples interfaces.ExampleRepository
}

var (
	_ interfaces.Retriever = &Service{}
	_ interfaces.Indexer   = &Service{}
)

// New creates a retrieval service over the given embedder and corpus
func New(embedder interfaces.Embedder, examples interfaces.ExampleRepository) *Service {
	return &Service{
		embedder: embedder,
		examples: examples,
	}
}

// BuildSearchText flattens the retrieval-relevant profile fields into
// a single string for embedding. Field order is fixed so that equal
// profiles embed identically.
func BuildSearchText(profile *model.TrialProfile) string {
	parts := []string{
		fmt.Sprintf("Phase: %s", profile.Phase),
		fmt.Sprintf("Indication: %s", profile.Indication),
	}
	if len(profile.Design) > 0 {
		parts = append(parts, fmt.Sprintf("Design: %s", strings.Join(profile.Design, ", ")))
	}
	parts = append(parts,
		fmt.Sprintf("Sample size: %d", profile.SampleSize),
		fmt.Sprintf("Duration: %d weeks", profile.DurationWeeks),
	)
	if profile.Region != "" {
		parts = append(parts, fmt.Sprintf("Region: %s", profile.Region))
	}
	if len(profile.Endpoints) > 0 {
		names := make([]string, 0, len(profile.Endpoints))
		for _, ep := range profile.Endpoints {
			names = append(names, ep.Name)
		}
		parts = append(parts, fmt.Sprintf("Endpoints: %s", strings.Join(names, ", ")))
	}
	// The first few inclusion criteria carry the population signal; the
	// full list would drown the embedding in boilerplate.
	if len(profile.InclusionCriteria) > 0 {
		criteria := profile.InclusionCriteria
		if len(criteria) > 3 {
			criteria = criteria[:3]
		}
		parts = append(parts, fmt.Sprintf("Inclusion: %s", strings.Join(criteria, "; ")))
	}
	if len(profile.TreatmentArms) > 0 {
		parts = append(parts, fmt.Sprintf("Arms: %s", strings.Join(profile.TreatmentArms, ", ")))
	}
	return strings.Join(parts, " | ")
}

// Retrieve returns up to k examples similar to the profile, ordered
// by descending similarity. It never returns an error.
func (s *Service) Retrieve(ctx context.Context, profile *model.TrialProfile, k int) []model.RetrievedExample {
	logger := logging.From(ctx)

	if s.embedder == nil || k <= 0 {
		return nil
	}

	embedding, err := s.embedder.Embed(ctx, BuildSearchText(profile))
	if err != nil {
		logger.Warn("embedding failed, skipping retrieval", "error", err)
		return nil
	}

	scored, err := s.examples.FindNearest(ctx, embedding, k)
	if err != nil {
		logger.Warn("similarity search failed, skipping retrieval", "error", err)
		return nil
	}

	results := make([]model.RetrievedExample, 0, len(scored))
	for _, sc := range scored {
		similarity := sc.Similarity
		results = append(results, model.RetrievedExample{
			ID:         sc.Example.ID,
			Profile:    sc.Example.Profile,
			Summary:    sc.Example.Summary,
			Similarity: &similarity,
			Metadata:   sc.Example.Metadata,
		})
	}
	return results
}

// Index embeds the example's search text and stores it in the corpus
func (s *Service) Index(ctx context.Context, example *model.StoredExample) error {
	if s.embedder == nil {
		return goerr.New("embedder is not configured")
	}

	if len(example.Embedding) == 0 {
		embedding, err := s.embedder.Embed(ctx, BuildSearchText(&example.Profile))
		if err != nil {
			return goerr.Wrap(err, "failed to embed example")
		}
		example.Embedding = embedding
	}

	if err := s.examples.Put(ctx, example); err != nil {
		return goerr.Wrap(err, "failed to store example")
	}
	return nil
}
