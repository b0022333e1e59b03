package seed_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/trialworks/protodraft/pkg/domain/model"
	"github.com/trialworks/protodraft/pkg/service/seed"
)

type countingIndexer struct {
	indexed []*model.StoredExample
	failOn  string
}

func (i *countingIndexer) Index(ctx context.Context, example *model.StoredExample) error {
	if i.failOn != "" && example.Profile.Indication == i.failOn {
		return errors.New("index failed")
	}
	i.indexed = append(i.indexed, example)
	return nil
}

func TestSampleProfiles(t *testing.T) {
	profiles := seed.SampleProfiles()
	gt.Bool(t, len(profiles) >= 8).True()

	seen := map[string]bool{}
	for _, p := range profiles {
		gt.NoError(t, p.Validate())
		gt.Bool(t, seen[p.Indication]).False()
		seen[p.Indication] = true

		gt.Bool(t, len(p.PrimaryEndpoints()) >= 1).True()
		gt.Bool(t, len(p.InclusionCriteria) >= 2).True()
	}
}

func TestSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("indexes every sample", func(t *testing.T) {
		indexer := &countingIndexer{}
		count, err := seed.New(indexer).Seed(ctx)
		gt.NoError(t, err).Required()

		gt.Value(t, count).Equal(len(seed.SampleProfiles()))
		gt.Array(t, indexer.indexed).Length(count)
		for _, example := range indexer.indexed {
			gt.Value(t, example.Metadata["origin"]).Equal("seed")
			gt.Value(t, example.Summary).Equal(example.Profile.Title)
		}
	})

	t.Run("skips failing samples", func(t *testing.T) {
		indexer := &countingIndexer{failOn: "Hypercholesterolemia"}
		count, err := seed.New(indexer).Seed(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, count).Equal(len(seed.SampleProfiles()) - 1)
	})

	t.Run("missing indexer is an error", func(t *testing.T) {
		_, err := seed.New(nil).Seed(ctx)
		gt.Error(t, err)
	})
}
