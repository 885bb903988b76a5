package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/formwork-lab/formwork/pkg/domain/interfaces"
	"github.com/formwork-lab/formwork/pkg/service/upload"
	"github.com/formwork-lab/formwork/pkg/utils/logging"
)

// Uploader holds CLI flags for upload storage configuration
type Uploader struct {
	backend string
	bucket  string
}

// Flags returns CLI flags for uploader configuration
func (u *Uploader) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "upload-backend",
			Usage:       "Upload storage backend type (gcs or memory)",
			Value:       "memory",
			Sources:     cli.EnvVars("FORMWORK_UPLOAD_BACKEND"),
			Destination: &u.backend,
		},
		&cli.StringFlag{
			Name:        "upload-bucket",
			Usage:       "GCS bucket for uploaded files (required when using gcs backend)",
			Sources:     cli.EnvVars("FORMWORK_UPLOAD_BUCKET"),
			Destination: &u.bucket,
		},
	}
}

// Configure initializes the upload storage based on the configured backend.
// The returned closer releases the storage client and must be called on
// shutdown.
func (u *Uploader) Configure(ctx context.Context) (interfaces.Uploader, func(), error) {
	switch u.backend {
	case "gcs":
		if u.bucket == "" {
			return nil, nil, goerr.Wrap(ErrMissingUploadBucket, "uploader configuration")
		}
		svc, err := upload.NewGCS(ctx, u.bucket)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to initialize GCS uploader")
		}
		closer := func() {
			if err := svc.Close(); err != nil {
				logging.Default().Error("failed to close GCS uploader", "error", err.Error())
			}
		}
		logging.Default().Info("Using GCS upload storage", "bucket", u.bucket)
		return svc, closer, nil

	case "memory":
		logging.Default().Info("Using in-memory upload storage (development mode)")
		return upload.NewMemory(), func() {}, nil

	default:
		return nil, nil, goerr.Wrap(ErrInvalidBackend, "uploader configuration", goerr.V(BackendKey, u.backend))
	}
}
