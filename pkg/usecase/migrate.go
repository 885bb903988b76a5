package usecase

import (
	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
)

// MigrateConfiguration upgrades a configuration to the current schema
// version. Version 2 documents pass through untouched; version 1 documents
// get their engine-owned fields relocated into the system slot, removability
// stamped and layout width hints attached. Migration is idempotent.
func MigrateConfiguration(cfg *model.FormConfiguration) *model.FormConfiguration {
	if cfg.Version >= model.SchemaVersion2 {
		return cfg
	}

	out := cfg.Clone()
	out.Version = model.SchemaVersion2

	for i := range out.Steps {
		migrateStep(&out.Steps[i])
	}

	return out
}

func migrateStep(step *model.FormStep) {
	kept := make([]model.FieldDefinition, 0, len(step.Fields))

	for _, f := range step.Fields {
		if types.IsSystemKey(f.Key) {
			step.SystemFields = append(step.SystemFields, asSystemField(f))
			continue
		}
		f.IsRemovable = !types.IsRequiredKey(f.Key)
		kept = append(kept, f)
	}
	step.Fields = kept

	stampWidths(step.Fields)
}

// asSystemField moves a v1 user-slot field into the system slot, stamping
// the type the engine expects for its key
func asSystemField(f model.FieldDefinition) model.FieldDefinition {
	f.IsSystem = true
	f.IsRemovable = false

	switch f.Key {
	case types.FieldKeyFileUpload:
		f.Type = types.FieldTypeFile
	case types.FieldKeySummary:
		f.Type = types.FieldTypeHTML
	case types.FieldKeyPrivacyConsent:
		f.Type = types.FieldTypeCheckbox
		if f.Settings.Mode == "" {
			f.Settings.Mode = model.CheckboxSingle
		}
	}

	if f.Settings.Width == "" {
		f.Settings.Width = types.WidthFull
	}
	return f
}

// stampWidths attaches layout hints: short identity fields that co-occur
// pairwise in a step render half width, everything else full width.
// Pre-existing hints are preserved.
func stampWidths(fields []model.FieldDefinition) {
	identity := 0
	for i := range fields {
		if isIdentityKey(fields[i].Key) {
			identity++
		}
	}

	for i := range fields {
		if fields[i].Settings.Width != "" {
			continue
		}
		if identity >= 2 && isIdentityKey(fields[i].Key) {
			fields[i].Settings.Width = types.WidthHalf
		} else {
			fields[i].Settings.Width = types.WidthFull
		}
	}
}

func isIdentityKey(key types.FieldKey) bool {
	switch key {
	case types.FieldKeyFirstName, types.FieldKeyLastName, types.FieldKeyEmail, types.FieldKeyPhone:
		return true
	}
	return false
}
