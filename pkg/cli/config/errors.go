package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for CLI configuration
var (
	ErrConfigNotFound      = goerr.New("configuration file not found")
	ErrUnsupportedConfig   = goerr.New("unsupported configuration file format")
	ErrInvalidBackend      = goerr.New("invalid backend type")
	ErrMissingProjectID    = goerr.New("firestore-project-id is required when using firestore backend")
	ErrMissingUploadBucket = goerr.New("upload-bucket is required when using gcs backend")
)

// Context keys for error values
const (
	ConfigPathKey = "config_path"
	BackendKey    = "backend"
)
