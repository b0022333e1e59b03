package repository_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/trialworks/protodraft/pkg/domain/interfaces"
	"github.com/trialworks/protodraft/pkg/domain/model"
	"github.com/trialworks/protodraft/pkg/domain/types"
	"github.com/trialworks/protodraft/pkg/repository/firestore"
	"github.com/trialworks/protodraft/pkg/repository/memory"
)

func newExample(indication string, embedding []float32) *model.StoredExample {
	return &model.StoredExample{
		Profile: model.TrialProfile{
			Title:         "Historical study in " + indication,
			Indication:    indication,
			Phase:         types.Phase3,
			SampleSize:    300,
			DurationWeeks: 52,
		},
		Summary:   "Historical study in " + indication,
		Embedding: embedding,
		Metadata:  map[string]string{"origin": "seed"},
	}
}

func runExampleRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Put assigns ID and timestamp", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		example := newExample("Asthma", []float32{0.1, 0.2, 0.3})
		gt.NoError(t, repo.Example().Put(ctx, example)).Required()

		gt.Value(t, example.ID).NotEqual(model.ExampleID(""))
		gt.Bool(t, example.CreatedAt.IsZero()).False()

		retrieved, err := repo.Example().Get(ctx, example.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, retrieved.Profile.Indication).Equal("Asthma")
		gt.Value(t, retrieved.Metadata["origin"]).Equal("seed")
	})

	t.Run("Get returns ErrNotFound for unknown ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Example().Get(ctx, model.NewExampleID())
		gt.Bool(t, errors.Is(err, types.ErrNotFound)).True()
	})

	t.Run("Count tracks stored examples", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		count, err := repo.Example().Count(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, count).Equal(0)

		gt.NoError(t, repo.Example().Put(ctx, newExample("Asthma", nil))).Required()
		gt.NoError(t, repo.Example().Put(ctx, newExample("Diabetes", nil))).Required()

		count, err = repo.Example().Count(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, count).Equal(2)
	})

	t.Run("Delete removes example", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		example := newExample("Asthma", nil)
		gt.NoError(t, repo.Example().Put(ctx, example)).Required()

		gt.NoError(t, repo.Example().Delete(ctx, example.ID))

		_, err := repo.Example().Get(ctx, example.ID)
		gt.Bool(t, errors.Is(err, types.ErrNotFound)).True()
	})
}

func TestExampleRepository_Memory(t *testing.T) {
	runExampleRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestExampleRepository_Firestore(t *testing.T) {
	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("FIRESTORE_PROJECT_ID not set")
	}

	runExampleRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		repo, err := firestore.New(context.Background(), projectID, "",
			firestore.WithCollectionPrefix("test_"))
		gt.NoError(t, err).Required()
		return repo
	})
}

func TestFindNearestOrdering(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	exact := newExample("Hypertension", []float32{1, 0, 0})
	near := newExample("Hypercholesterolemia", []float32{0.9, 0.1, 0})
	far := newExample("Asthma", []float32{0, 1, 0})
	unembedded := newExample("Diabetes", nil)

	for _, e := range []*model.StoredExample{far, exact, unembedded, near} {
		gt.NoError(t, repo.Example().Put(ctx, e)).Required()
	}

	scored, err := repo.Example().FindNearest(ctx, []float32{1, 0, 0}, 2)
	gt.NoError(t, err).Required()
	gt.Array(t, scored).Length(2)

	gt.Value(t, scored[0].Example.ID).Equal(exact.ID)
	gt.Value(t, scored[1].Example.ID).Equal(near.ID)
	gt.Bool(t, scored[0].Similarity > scored[1].Similarity).True()
	gt.Bool(t, scored[0].Similarity > 0.999).True()

	// Examples without embeddings never surface in search results.
	all, err := repo.Example().FindNearest(ctx, []float32{1, 0, 0}, 10)
	gt.NoError(t, err).Required()
	gt.Array(t, all).Length(3)
}
