// Package firestore persists form configurations and submissions in Google
// Cloud Firestore. The draft/published pair lives in well-known documents of
// one collection; Promote runs in a transaction so publishes are atomic.
package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"

	"github.com/formwork-lab/formwork/pkg/domain/interfaces"
)

type Firestore struct {
	client     *firestore.Client
	config     *configStore
	submission *submissionRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.config.collectionPrefix = prefix
		f.submission.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID), goerr.V("databaseID", databaseID))
	}

	f := &Firestore{
		client:     client,
		config:     newConfigStore(client),
		submission: newSubmissionRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Config() interfaces.ConfigStore {
	return f.config
}

func (f *Firestore) Submission() interfaces.SubmissionRepository {
	return f.submission
}

func (f *Firestore) Close() error {
	return f.client.Close()
}
