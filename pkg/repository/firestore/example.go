package firestore

import (
	"context"
	"encoding/json"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/trialworks/protodraft/pkg/domain/model"
	"github.com/trialworks/protodraft/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// distanceField is where FindNearest writes the cosine distance of
// each match. Similarity reported upstream is 1 - distance.
const distanceField = "vector_distance"

// exampleDoc is the Firestore document representation of
// model.StoredExample. Embedding is stored as firestore.Vector32 so
// that FindNearest vector search works.
type exampleDoc struct {
	ID         model.ExampleID    `firestore:"ID"`
	Indication string             `firestore:"Indication"`
	Phase      types.Phase        `firestore:"Phase"`
	Summary    string             `firestore:"Summary"`
	Profile    []byte             `firestore:"Profile"`
	Embedding  firestore.Vector32 `firestore:"Embedding,omitempty"`
	Metadata   map[string]string  `firestore:"Metadata,omitempty"`
	CreatedAt  time.Time          `firestore:"CreatedAt"`
}

func toExampleDoc(e *model.StoredExample) (*exampleDoc, error) {
	profile, err := json.Marshal(&e.Profile)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal example profile", goerr.V(types.ExampleIDKey, e.ID))
	}
	doc := &exampleDoc{
		ID:         e.ID,
		Indication: e.Profile.Indication,
		Phase:      e.Profile.Phase,
		Summary:    e.Summary,
		Profile:    profile,
		Metadata:   e.Metadata,
		CreatedAt:  e.CreatedAt,
	}
	if len(e.Embedding) > 0 {
		doc.Embedding = firestore.Vector32(e.Embedding)
	}
	return doc, nil
}

func fromExampleDoc(d *exampleDoc) (*model.StoredExample, error) {
	e := &model.StoredExample{
		ID:        d.ID,
		Summary:   d.Summary,
		Metadata:  d.Metadata,
		CreatedAt: d.CreatedAt,
	}
	if err := json.Unmarshal(d.Profile, &e.Profile); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal example profile", goerr.V(types.ExampleIDKey, d.ID))
	}
	if len(d.Embedding) > 0 {
		e.Embedding = []float32(d.Embedding)
	}
	return e, nil
}

func docToExample(doc *firestore.DocumentSnapshot) (*model.StoredExample, error) {
	var d exampleDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, err
	}
	return fromExampleDoc(&d)
}

type exampleRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newExampleRepository(client *firestore.Client) *exampleRepository {
	return &exampleRepository{
		client: client,
	}
}

func (r *exampleRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(r.collectionPrefix + "examples")
}

func (r *exampleRepository) Put(ctx context.Context, example *model.StoredExample) error {
	if example.ID == "" {
		example.ID = model.NewExampleID()
	}
	if example.CreatedAt.IsZero() {
		example.CreatedAt = time.Now().UTC()
	}

	doc, err := toExampleDoc(example)
	if err != nil {
		return err
	}

	docRef := r.collection().Doc(string(example.ID))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to store example", goerr.V(types.ExampleIDKey, example.ID))
	}
	return nil
}

func (r *exampleRepository) Get(ctx context.Context, id model.ExampleID) (*model.StoredExample, error) {
	docRef := r.collection().Doc(string(id))
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "example not found", goerr.V(types.ExampleIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get example", goerr.V(types.ExampleIDKey, id))
	}

	example, err := docToExample(doc)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal example", goerr.V(types.ExampleIDKey, id))
	}
	return example, nil
}

func (r *exampleRepository) List(ctx context.Context, limit int) ([]*model.StoredExample, error) {
	query := r.collection().OrderBy("CreatedAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	examples := make([]*model.StoredExample, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate examples")
		}

		example, err := docToExample(doc)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal example")
		}
		examples = append(examples, example)
	}

	return examples, nil
}

func (r *exampleRepository) Delete(ctx context.Context, id model.ExampleID) error {
	docRef := r.collection().Doc(string(id))

	_, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "example not found", goerr.V(types.ExampleIDKey, id))
		}
		return goerr.Wrap(err, "failed to get example", goerr.V(types.ExampleIDKey, id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete example", goerr.V(types.ExampleIDKey, id))
	}
	return nil
}

func (r *exampleRepository) Count(ctx context.Context) (int, error) {
	docs, err := r.collection().Select().Documents(ctx).GetAll()
	if err != nil {
		return 0, goerr.Wrap(err, "failed to count examples")
	}
	return len(docs), nil
}

func (r *exampleRepository) FindNearest(ctx context.Context, embedding []float32, limit int) ([]*model.ScoredExample, error) {
	vq := r.collection().FindNearest(
		"Embedding",
		firestore.Vector32(embedding),
		limit,
		firestore.DistanceMeasureCosine,
		&firestore.FindNearestOptions{DistanceResultField: distanceField},
	)

	iter := vq.Documents(ctx)
	defer iter.Stop()

	results := make([]*model.ScoredExample, 0, limit)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate vector search results")
		}

		example, err := docToExample(doc)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal example from vector search")
		}

		scored := &model.ScoredExample{Example: example}
		if distance, ok := doc.Data()[distanceField].(float64); ok {
			scored.Similarity = 1 - distance
		}
		results = append(results, scored)
	}

	return results, nil
}
