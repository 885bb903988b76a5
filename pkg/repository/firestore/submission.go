package firestore

import (
	"context"
	"encoding/json"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/formwork-lab/formwork/pkg/domain/model"
)

const submissionCollection = "submissions"

// submissionDoc keeps the queryable attributes as plain fields and the
// submitted values as an opaque JSON payload
type submissionDoc struct {
	ID            string    `firestore:"id"`
	ConfigVersion int       `firestore:"config_version"`
	Values        string    `firestore:"values"`
	CreatedAt     time.Time `firestore:"created_at"`
}

type submissionRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newSubmissionRepository(client *firestore.Client) *submissionRepository {
	return &submissionRepository{client: client}
}

func (r *submissionRepository) collection() string {
	return r.collectionPrefix + submissionCollection
}

func (r *submissionRepository) Put(ctx context.Context, sub *model.Submission) error {
	raw, err := json.Marshal(sub.Values)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal submission values", goerr.V("id", sub.ID))
	}

	doc := submissionDoc{
		ID:            sub.ID,
		ConfigVersion: sub.ConfigVersion,
		Values:        string(raw),
		CreatedAt:     sub.CreatedAt,
	}
	if _, err := r.client.Collection(r.collection()).Doc(sub.ID).Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to store submission", goerr.V("id", sub.ID))
	}
	return nil
}

func (r *submissionRepository) Get(ctx context.Context, id string) (*model.Submission, error) {
	snap, err := r.client.Collection(r.collection()).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get submission", goerr.V("id", id))
	}
	return decodeSubmission(snap)
}

func (r *submissionRepository) List(ctx context.Context) ([]*model.Submission, error) {
	iter := r.client.Collection(r.collection()).OrderBy("created_at", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	subs := make([]*model.Submission, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate submissions")
		}

		sub, err := decodeSubmission(snap)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}

	return subs, nil
}

func decodeSubmission(snap *firestore.DocumentSnapshot) (*model.Submission, error) {
	var doc submissionDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode submission")
	}

	var values model.FormData
	if err := json.Unmarshal([]byte(doc.Values), &values); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal submission values", goerr.V("id", doc.ID))
	}

	return &model.Submission{
		ID:            doc.ID,
		ConfigVersion: doc.ConfigVersion,
		Values:        values,
		CreatedAt:     doc.CreatedAt,
	}, nil
}
