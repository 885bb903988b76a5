package firestore

import (
	"context"
	"encoding/json"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/formwork-lab/formwork/pkg/domain/model"
)

const (
	configCollection = "form_configs"
	draftDoc         = "draft"
	publishedDoc     = "published"
	metaDoc          = "meta"
)

// configDoc wraps the configuration as a JSON string so the document shape
// stays stable regardless of optional struct fields. Firestore treats the
// payload as opaque; versioned metadata lives in its own document.
type configDoc struct {
	Payload string `firestore:"payload"`
}

type configMeta struct {
	Version int `firestore:"version"`
}

type configStore struct {
	client           *firestore.Client
	collectionPrefix string
}

func newConfigStore(client *firestore.Client) *configStore {
	return &configStore{client: client}
}

func (s *configStore) collection() string {
	return s.collectionPrefix + configCollection
}

func (s *configStore) doc(name string) *firestore.DocumentRef {
	return s.client.Collection(s.collection()).Doc(name)
}

func (s *configStore) GetDraft(ctx context.Context) (*model.FormConfiguration, error) {
	return s.getConfig(ctx, draftDoc)
}

func (s *configStore) PutDraft(ctx context.Context, cfg *model.FormConfiguration) error {
	doc, err := encodeConfig(cfg)
	if err != nil {
		return err
	}
	if _, err := s.doc(draftDoc).Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to store draft configuration")
	}
	return nil
}

func (s *configStore) GetPublished(ctx context.Context) (*model.FormConfiguration, error) {
	return s.getConfig(ctx, publishedDoc)
}

func (s *configStore) PutPublished(ctx context.Context, cfg *model.FormConfiguration, version int) error {
	doc, err := encodeConfig(cfg)
	if err != nil {
		return err
	}

	err = s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if err := tx.Set(s.doc(publishedDoc), doc); err != nil {
			return err
		}
		return tx.Set(s.doc(metaDoc), configMeta{Version: version})
	})
	if err != nil {
		return goerr.Wrap(err, "failed to store published configuration", goerr.V("version", version))
	}
	return nil
}

func (s *configStore) PublishedVersion(ctx context.Context) (int, error) {
	snap, err := s.doc(metaDoc).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return 0, nil
		}
		return 0, goerr.Wrap(err, "failed to read configuration metadata")
	}

	var meta configMeta
	if err := snap.DataTo(&meta); err != nil {
		return 0, goerr.Wrap(err, "failed to decode configuration metadata")
	}
	return meta.Version, nil
}

func (s *configStore) HasUnpublishedChanges(ctx context.Context) (bool, error) {
	draft, err := s.GetDraft(ctx)
	if err != nil {
		return false, err
	}
	if draft == nil {
		return false, nil
	}

	published, err := s.GetPublished(ctx)
	if err != nil {
		return false, err
	}
	if published == nil {
		return true, nil
	}
	return !draft.Equal(published), nil
}

// Promote copies the draft document into the published slot and bumps the
// version, all inside one transaction. The bootstrap configuration counts as
// version 1, so the first promote yields version 2.
func (s *configStore) Promote(ctx context.Context) (int, error) {
	var version int

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		draftSnap, err := tx.Get(s.doc(draftDoc))
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.New("no draft configuration to promote")
			}
			return err
		}

		version = 2
		metaSnap, err := tx.Get(s.doc(metaDoc))
		if err == nil {
			var meta configMeta
			if err := metaSnap.DataTo(&meta); err != nil {
				return err
			}
			if meta.Version > 0 {
				version = meta.Version + 1
			}
		} else if status.Code(err) != codes.NotFound {
			return err
		}

		var doc configDoc
		if err := draftSnap.DataTo(&doc); err != nil {
			return err
		}

		if err := tx.Set(s.doc(publishedDoc), doc); err != nil {
			return err
		}
		return tx.Set(s.doc(metaDoc), configMeta{Version: version})
	})
	if err != nil {
		return 0, goerr.Wrap(err, "failed to promote draft configuration")
	}

	return version, nil
}

func (s *configStore) getConfig(ctx context.Context, name string) (*model.FormConfiguration, error) {
	snap, err := s.doc(name).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get configuration", goerr.V("doc", name))
	}

	var doc configDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode configuration", goerr.V("doc", name))
	}

	var cfg model.FormConfiguration
	if err := json.Unmarshal([]byte(doc.Payload), &cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal configuration", goerr.V("doc", name))
	}
	return &cfg, nil
}

func encodeConfig(cfg *model.FormConfiguration) (configDoc, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return configDoc{}, goerr.Wrap(err, "failed to marshal configuration")
	}
	return configDoc{Payload: string(raw)}, nil
}
