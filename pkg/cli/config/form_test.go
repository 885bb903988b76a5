package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/formwork-lab/formwork/pkg/cli/config"
	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
)

const v1FormTOML = `
version = 1

[settings]
title = "Application form"

[[steps]]
id = "about_you"
title = "About you"
position = 0

[[steps.fields]]
key = "first_name"
type = "text"
label = "First name"
is_required = true
is_enabled = true

[[steps.fields]]
key = "last_name"
type = "text"
label = "Last name"
is_required = true
is_enabled = true

[[steps.fields]]
key = "email"
type = "email"
label = "Email"
is_required = true
is_enabled = true

[[steps]]
id = "review"
title = "Review"
position = 1
is_finale = true

[[steps.fields]]
key = "privacy_consent"
label = "Privacy consent"
is_required = true
is_enabled = true
`

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestLoadFormConfigurationTOML(t *testing.T) {
	path := writeConfigFile(t, "form.toml", v1FormTOML)

	cfg, err := config.LoadFormConfiguration(path)
	gt.NoError(t, err).Required()

	// old documents come back migrated to the current schema
	gt.Value(t, cfg.Version).Equal(model.SchemaVersion2)
	gt.Value(t, cfg.Settings.Title).Equal("Application form")

	finale, ok := cfg.FinaleStep()
	gt.Bool(t, ok).True()
	gt.Array(t, finale.SystemFields).Length(1)
	gt.Value(t, finale.SystemFields[0].Key).Equal(types.FieldKeyPrivacyConsent)
	gt.Value(t, finale.SystemFields[0].Type).Equal(types.FieldTypeCheckbox)
}

func TestLoadFormConfigurationJSON(t *testing.T) {
	raw, err := json.Marshal(model.DefaultConfiguration())
	gt.NoError(t, err).Required()
	path := writeConfigFile(t, "form.json", string(raw))

	cfg, err := config.LoadFormConfiguration(path)
	gt.NoError(t, err).Required()
	gt.Bool(t, cfg.Equal(model.DefaultConfiguration())).True()
}

func TestLoadFormConfigurationMissingFile(t *testing.T) {
	_, err := config.LoadFormConfiguration(filepath.Join(t.TempDir(), "nope.toml"))
	gt.Error(t, err).Is(config.ErrConfigNotFound)
}

func TestLoadFormConfigurationUnsupportedExtension(t *testing.T) {
	path := writeConfigFile(t, "form.yaml", "steps: []")

	_, err := config.LoadFormConfiguration(path)
	gt.Error(t, err).Is(config.ErrUnsupportedConfig)
}

func TestLoadFormConfigurationStructurallyInvalid(t *testing.T) {
	// no step is marked as finale
	broken := `
version = 2

[[steps]]
id = "only"
title = "Only step"
position = 0
`
	path := writeConfigFile(t, "form.toml", broken)

	_, err := config.LoadFormConfiguration(path)
	gt.Error(t, err)

	code, ok := model.ConfigErrorCodeOf(err)
	gt.Bool(t, ok).True()
	gt.Value(t, code).Equal(types.ConfigErrMissingFinale)
}
