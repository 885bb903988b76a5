// Package upload implements the Uploader collaborator storing submitted
// file bytes and handing back opaque reference IDs.
package upload

import (
	"context"
	"io"
	"path"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/formwork-lab/formwork/pkg/domain/interfaces"
	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
)

// GCS stores uploads as objects under <ownerID>/<referenceID> in one bucket
type GCS struct {
	client *storage.Client
	bucket string
}

var _ interfaces.Uploader = &GCS{}

func NewGCS(ctx context.Context, bucket string) (*GCS, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client", goerr.V("bucket", bucket))
	}
	return &GCS{client: client, bucket: bucket}, nil
}

// ProcessUploads writes every upload targeting a declared file field and
// returns the generated reference IDs grouped by field key. Uploads for
// unknown fields are skipped; validation rejected them upstream.
func (s *GCS) ProcessUploads(ctx context.Context, ownerID string, fileFields []model.FieldDefinition, uploads []model.RawUpload) (map[types.FieldKey][]string, error) {
	declared := fieldKeySet(fileFields)

	refs := make(map[types.FieldKey][]string)
	for _, up := range uploads {
		if _, ok := declared[up.FieldKey]; !ok {
			continue
		}

		ref := uuid.NewString()
		if err := s.write(ctx, path.Join(ownerID, ref), up); err != nil {
			return nil, goerr.Wrap(err, "failed to store upload",
				goerr.V("field_key", up.FieldKey), goerr.V("file_name", up.FileName))
		}
		refs[up.FieldKey] = append(refs[up.FieldKey], ref)
	}

	return refs, nil
}

func (s *GCS) write(ctx context.Context, name string, up model.RawUpload) error {
	w := s.client.Bucket(s.bucket).Object(name).NewWriter(ctx)
	w.ContentType = up.MIMEType
	w.Metadata = map[string]string{"file_name": up.FileName}

	if up.Content != nil {
		if _, err := io.Copy(w, up.Content); err != nil {
			_ = w.Close()
			return err
		}
	}
	// Close commits the object; its error is the upload result.
	return w.Close()
}

func (s *GCS) Close() error {
	return s.client.Close()
}

func fieldKeySet(fields []model.FieldDefinition) map[types.FieldKey]struct{} {
	out := make(map[types.FieldKey]struct{}, len(fields))
	for i := range fields {
		out[fields[i].Key] = struct{}{}
	}
	return out
}
