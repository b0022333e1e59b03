package seed

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/trialworks/protodraft/pkg/domain/interfaces"
	"github.com/trialworks/protodraft/pkg/domain/model"
	"github.com/trialworks/protodraft/pkg/utils/logging"
)

// Seeder populates the example corpus with curated historical
// protocols so retrieval has something to match against on a fresh
// deployment.
type Seeder struct {
	indexer interfaces.Indexer
}

// New creates a seeder over the given indexer
func New(indexer interfaces.Indexer) *Seeder {
	return &Seeder{indexer: indexer}
}

// Seed indexes every sample profile and returns the number stored.
// Failures on individual samples are logged and skipped.
func (s *Seeder) Seed(ctx context.Context) (int, error) {
	if s.indexer == nil {
		return 0, goerr.New("indexer is not configured")
	}

	logger := logging.From(ctx)
	stored := 0
	for _, profile := range SampleProfiles() {
		example := &model.StoredExample{
			Profile: profile,
			Summary: profile.Title,
			Metadata: map[string]string{
				"origin": "seed",
			},
		}
		if err := s.indexer.Index(ctx, example); err != nil {
			logger.Warn("failed to seed example", "title", profile.Title, "error", err)
			continue
		}
		stored++
	}

	logger.Info("seeded example corpus", "count", stored)
	return stored, nil
}
