package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/usecase"
)

// Form holds CLI flags for the bootstrap form configuration
type Form struct {
	path string
}

// Flags returns CLI flags for form configuration
func (f *Form) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "form-config",
			Usage:       "Path to a bootstrap form configuration file (.toml or .json). The built-in default is used when empty",
			Sources:     cli.EnvVars("FORMWORK_FORM_CONFIG"),
			Destination: &f.path,
		},
	}
}

// Path returns the configured file path
func (f *Form) Path() string {
	return f.path
}

// Configure loads, migrates and validates the bootstrap configuration.
// Returns nil without an error when no file is configured.
func (f *Form) Configure() (*model.FormConfiguration, error) {
	if f.path == "" {
		return nil, nil
	}
	return LoadFormConfiguration(f.path)
}

// LoadFormConfiguration reads a form configuration from a TOML or JSON file,
// upgrades it to the current schema version and validates its structure.
func LoadFormConfiguration(path string) (*model.FormConfiguration, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(ErrConfigNotFound, "failed to read form configuration", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read form configuration", goerr.V(ConfigPathKey, path))
	}

	var cfg model.FormConfiguration
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, goerr.Wrap(err, "failed to parse TOML form configuration", goerr.V(ConfigPathKey, path))
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, goerr.Wrap(err, "failed to parse JSON form configuration", goerr.V(ConfigPathKey, path))
		}
	default:
		return nil, goerr.Wrap(ErrUnsupportedConfig, "failed to load form configuration", goerr.V(ConfigPathKey, path))
	}

	migrated := usecase.MigrateConfiguration(&cfg)
	if err := usecase.ValidateConfiguration(migrated); err != nil {
		return nil, goerr.Wrap(err, "form configuration validation failed", goerr.V(ConfigPathKey, path))
	}

	return migrated, nil
}
