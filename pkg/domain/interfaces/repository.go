package interfaces

import (
	"context"

	"github.com/formwork-lab/formwork/pkg/domain/model"
)

// Repository defines the interface for data persistence
type Repository interface {
	Config() ConfigStore
	Submission() SubmissionRepository

	Close() error
}

// ConfigStore persists the draft/published configuration pair. Promote must
// be atomic: a concurrent reader observes either the pre-publish or the
// post-publish configuration in its entirety. GetDraft and GetPublished
// return nil without an error when the slot is empty.
type ConfigStore interface {
	GetDraft(ctx context.Context) (*model.FormConfiguration, error)
	PutDraft(ctx context.Context, cfg *model.FormConfiguration) error
	GetPublished(ctx context.Context) (*model.FormConfiguration, error)
	PutPublished(ctx context.Context, cfg *model.FormConfiguration, version int) error

	// PublishedVersion returns the monotonically increasing version of the
	// published slot, or 0 if nothing has ever been published.
	PublishedVersion(ctx context.Context) (int, error)

	// HasUnpublishedChanges reports whether the draft differs structurally
	// from the published configuration.
	HasUnpublishedChanges(ctx context.Context) (bool, error)

	// Promote atomically copies draft to published and bumps the published
	// version, returning the new version.
	Promote(ctx context.Context) (int, error)
}

// SubmissionRepository persists accepted submissions. Get returns nil
// without an error when the id is unknown; List is ordered by creation time.
type SubmissionRepository interface {
	Put(ctx context.Context, sub *model.Submission) error
	Get(ctx context.Context, id string) (*model.Submission, error)
	List(ctx context.Context) ([]*model.Submission, error)
}
