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

// outcomeDoc is the Firestore document representation of
// model.GenerationOutcome. The full outcome is stored as a JSON
// payload; a few fields are duplicated at the top level for queries.
type outcomeDoc struct {
	ID          model.ProtocolID       `firestore:"ID"`
	Indication  string                 `firestore:"Indication"`
	Phase       types.Phase            `firestore:"Phase"`
	Status      types.ValidationStatus `firestore:"Status"`
	Confidence  float64                `firestore:"Confidence"`
	GeneratedAt time.Time              `firestore:"GeneratedAt"`
	Payload     []byte                 `firestore:"Payload"`
}

func toOutcomeDoc(o *model.GenerationOutcome) (*outcomeDoc, error) {
	payload, err := json.Marshal(o)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal outcome", goerr.V(types.ProtocolIDKey, o.ID))
	}
	return &outcomeDoc{
		ID:          o.ID,
		Indication:  o.Profile.Indication,
		Phase:       o.Profile.Phase,
		Status:      o.Validation.Status,
		Confidence:  o.Confidence,
		GeneratedAt: o.GeneratedAt,
		Payload:     payload,
	}, nil
}

func docToOutcome(doc *firestore.DocumentSnapshot) (*model.GenerationOutcome, error) {
	var d outcomeDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, err
	}
	var outcome model.GenerationOutcome
	if err := json.Unmarshal(d.Payload, &outcome); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal outcome payload", goerr.V(types.ProtocolIDKey, d.ID))
	}
	return &outcome, nil
}

type outcomeRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newOutcomeRepository(client *firestore.Client) *outcomeRepository {
	return &outcomeRepository{
		client: client,
	}
}

func (r *outcomeRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(r.collectionPrefix + "protocols")
}

func (r *outcomeRepository) Put(ctx context.Context, outcome *model.GenerationOutcome) error {
	doc, err := toOutcomeDoc(outcome)
	if err != nil {
		return err
	}

	docRef := r.collection().Doc(string(outcome.ID))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to store outcome", goerr.V(types.ProtocolIDKey, outcome.ID))
	}
	return nil
}

func (r *outcomeRepository) Get(ctx context.Context, id model.ProtocolID) (*model.GenerationOutcome, error) {
	docRef := r.collection().Doc(string(id))
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "protocol not found", goerr.V(types.ProtocolIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get outcome", goerr.V(types.ProtocolIDKey, id))
	}

	outcome, err := docToOutcome(doc)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal outcome", goerr.V(types.ProtocolIDKey, id))
	}
	return outcome, nil
}

func (r *outcomeRepository) List(ctx context.Context, limit int) ([]*model.GenerationOutcome, error) {
	query := r.collection().OrderBy("GeneratedAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	outcomes := make([]*model.GenerationOutcome, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate outcomes")
		}

		outcome, err := docToOutcome(doc)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal outcome")
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

func (r *outcomeRepository) Delete(ctx context.Context, id model.ProtocolID) error {
	docRef := r.collection().Doc(string(id))

	_, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "protocol not found", goerr.V(types.ProtocolIDKey, id))
		}
		return goerr.Wrap(err, "failed to get outcome", goerr.V(types.ProtocolIDKey, id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete outcome", goerr.V(types.ProtocolIDKey, id))
	}
	return nil
}
