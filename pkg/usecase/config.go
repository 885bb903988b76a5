package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/formwork-lab/formwork/pkg/conditional"
	"github.com/formwork-lab/formwork/pkg/domain/interfaces"
	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
	"github.com/formwork-lab/formwork/pkg/utils/async"
	"github.com/formwork-lab/formwork/pkg/utils/logging"
)

// ConfigUseCase owns the draft/published configuration lifecycle: structural
// validation, publish/discard transitions, schema migration and resolution
// of the active field set.
type ConfigUseCase struct {
	store    interfaces.ConfigStore
	defaults *model.FormConfiguration

	cacheMu sync.RWMutex
	cache   *activeFieldsCache
}

type activeFieldsCache struct {
	version int
	fields  *ActiveFields
}

// ActiveFields is the flattened, end-user-facing field set of the published
// configuration
type ActiveFields struct {
	Fields       []model.FieldDefinition `json:"fields"`
	SystemFields []model.FieldDefinition `json:"system_fields"`
}

type ConfigOption func(*ConfigUseCase)

// WithDefaultConfiguration overrides the built-in bootstrap configuration,
// e.g. with one loaded from a TOML file
func WithDefaultConfiguration(cfg *model.FormConfiguration) ConfigOption {
	return func(uc *ConfigUseCase) {
		uc.defaults = cfg
	}
}

func NewConfigUseCase(store interfaces.ConfigStore, options ...ConfigOption) *ConfigUseCase {
	uc := &ConfigUseCase{
		store: store,
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}

func (uc *ConfigUseCase) defaultConfig() *model.FormConfiguration {
	if uc.defaults != nil {
		return uc.defaults.Clone()
	}
	return model.DefaultConfiguration()
}

// GetDraft loads the stored draft, falling back to the default configuration
// when none exists. The result is always migrated to the current schema.
func (uc *ConfigUseCase) GetDraft(ctx context.Context) (*model.FormConfiguration, error) {
	cfg, err := uc.store.GetDraft(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load draft configuration")
	}
	if cfg == nil {
		return uc.defaultConfig(), nil
	}
	return MigrateConfiguration(cfg), nil
}

// GetPublished loads the published configuration with the same default
// fallback and migration as GetDraft.
func (uc *ConfigUseCase) GetPublished(ctx context.Context) (*model.FormConfiguration, error) {
	cfg, err := uc.store.GetPublished(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load published configuration")
	}
	if cfg == nil {
		return uc.defaultConfig(), nil
	}
	return MigrateConfiguration(cfg), nil
}

// SaveDraft validates the configuration structurally and persists it as the
// draft. Checks run in a fixed order and fail fast: a structurally broken
// configuration must never be stored.
func (uc *ConfigUseCase) SaveDraft(ctx context.Context, cfg *model.FormConfiguration) error {
	if err := ValidateConfiguration(cfg); err != nil {
		return err
	}

	if err := uc.store.PutDraft(ctx, cfg); err != nil {
		return goerr.Wrap(err, "failed to store draft configuration")
	}
	return nil
}

// ValidateConfiguration runs the structural checks a draft must pass before
// it can be stored. The first violated rule wins.
func ValidateConfiguration(cfg *model.FormConfiguration) error {
	if cfg == nil || cfg.Steps == nil {
		return model.NewConfigError(types.ConfigErrMissingSteps, "configuration has no steps key")
	}
	if len(cfg.Steps) == 0 {
		return model.NewConfigError(types.ConfigErrEmptySteps, "configuration has no steps")
	}

	finale, ok := cfg.FinaleStep()
	if !ok {
		return model.NewConfigError(types.ConfigErrMissingFinale, "configuration needs exactly one finale step")
	}

	for _, key := range types.RequiredFieldKeys() {
		if !hasVisibleField(cfg, key) {
			return model.NewConfigError(types.ConfigErrMissingRequiredField,
				"a required field is missing or disabled",
				goerr.V(model.FieldKeyKey, key))
		}
	}

	if !hasConsentField(finale) {
		return model.NewConfigError(types.ConfigErrMissingPrivacyConsent,
			"finale step has no privacy consent field")
	}

	for i := range cfg.Steps {
		if strings.TrimSpace(cfg.Steps[i].ID) == "" {
			return model.NewConfigError(types.ConfigErrMissingStepID,
				"a step has no id",
				goerr.V(model.StepIDKey, cfg.Steps[i].ID))
		}
	}
	for i := range cfg.Steps {
		if strings.TrimSpace(cfg.Steps[i].Title) == "" {
			return model.NewConfigError(types.ConfigErrMissingStepTitle,
				"a step has no title",
				goerr.V(model.StepIDKey, cfg.Steps[i].ID))
		}
	}

	// Conditions must reference declared fields with known operators, and
	// visibility rules must not form a cycle.
	keys := cfg.FieldKeys()
	fields := cfg.AllFields()
	for i := range fields {
		if err := conditional.ValidateCondition(fields[i].Condition, keys); err != nil {
			return err
		}
	}
	if conditional.HasCircularDependency(fields) {
		return model.NewConfigError(types.ConfigErrCircularCondition,
			"visibility conditions form a cycle")
	}

	return nil
}

func hasVisibleField(cfg *model.FormConfiguration, key types.FieldKey) bool {
	f, ok := cfg.FindField(key)
	return ok && f.IsEnabled
}

func hasConsentField(finale *model.FormStep) bool {
	for i := range finale.SystemFields {
		if finale.SystemFields[i].Key == types.FieldKeyPrivacyConsent {
			return true
		}
	}
	return false
}

// Publish atomically promotes the draft to the published slot with a bumped
// version. It fails with a no_changes error when draft and published are
// structurally identical.
func (uc *ConfigUseCase) Publish(ctx context.Context) (int, error) {
	changed, err := uc.store.HasUnpublishedChanges(ctx)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to check for unpublished changes")
	}
	if !changed {
		return 0, noChangesError("draft and published configuration are identical")
	}

	version, err := uc.store.Promote(ctx)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to promote draft")
	}

	uc.invalidateActiveFields()
	// Warm the cache off the request path; the next reader recomputes
	// anyway if this loses the race.
	async.Dispatch(ctx, func(ctx context.Context) error {
		_, err := uc.ActiveFields(ctx)
		return err
	})

	logging.From(ctx).Info("published form configuration", "version", version)
	return version, nil
}

// DiscardDraft resets the draft to the published configuration. Like
// Publish it requires unpublished changes to exist.
func (uc *ConfigUseCase) DiscardDraft(ctx context.Context) error {
	changed, err := uc.store.HasUnpublishedChanges(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to check for unpublished changes")
	}
	if !changed {
		return noChangesError("draft has no unpublished changes to discard")
	}

	published, err := uc.GetPublished(ctx)
	if err != nil {
		return err
	}
	if err := uc.store.PutDraft(ctx, published); err != nil {
		return goerr.Wrap(err, "failed to reset draft")
	}
	return nil
}

// HasUnpublishedChanges reports whether the draft differs from the
// published configuration
func (uc *ConfigUseCase) HasUnpublishedChanges(ctx context.Context) (bool, error) {
	return uc.store.HasUnpublishedChanges(ctx)
}

// PublishedVersion returns the version end users currently see. Before the
// first publish the bootstrap configuration counts as version 1.
func (uc *ConfigUseCase) PublishedVersion(ctx context.Context) (int, error) {
	v, err := uc.store.PublishedVersion(ctx)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to read published version")
	}
	if v == 0 {
		return 1, nil
	}
	return v, nil
}

// IsFieldRemovable reports whether operators may remove the field from the
// configuration. Pure lookup, independent of any stored state.
func (uc *ConfigUseCase) IsFieldRemovable(key types.FieldKey) bool {
	return !types.IsRequiredKey(key) && key != types.FieldKeyPrivacyConsent
}

// RemoveField deletes an optional field from the draft configuration and
// stores the result. Required fields, the privacy consent field and system
// fields stay put, and a field another field's visibility condition depends
// on cannot go until that condition is removed first.
func (uc *ConfigUseCase) RemoveField(ctx context.Context, key types.FieldKey) error {
	draft, err := uc.GetDraft(ctx)
	if err != nil {
		return err
	}

	target, ok := draft.FindField(key)
	if !ok {
		return model.NewConfigError(types.ConfigErrUnknownField,
			"no such field in the draft configuration",
			goerr.V(model.FieldKeyKey, key))
	}
	if !uc.IsFieldRemovable(key) || target.IsSystem {
		return model.NewConfigError(types.ConfigErrFieldNotRemovable,
			"field is not removable",
			goerr.V(model.FieldKeyKey, key))
	}

	fields := draft.AllFields()
	for i := range fields {
		if c := fields[i].Condition; c != nil && c.Field == key {
			return goerr.Wrap(model.ErrFieldInUse,
				"another field's visibility condition references this field",
				goerr.V(model.ConfigCodeKey, types.ConfigErrFieldInUse),
				goerr.V(model.FieldKeyKey, key),
				goerr.V(model.DependentFieldKey, fields[i].Key))
		}
	}

	for si := range draft.Steps {
		step := &draft.Steps[si]
		for fi := range step.Fields {
			if step.Fields[fi].Key == key {
				step.Fields = append(step.Fields[:fi], step.Fields[fi+1:]...)
				break
			}
		}
	}

	if err := uc.SaveDraft(ctx, draft); err != nil {
		return err
	}
	logging.From(ctx).Info("removed field from draft", "field", key)
	return nil
}

// ActiveFields resolves the flattened, enabled field set of the published
// configuration. The result is cached keyed by the published version, so
// concurrent readers stay consistent across a publish.
func (uc *ConfigUseCase) ActiveFields(ctx context.Context) (*ActiveFields, error) {
	version, err := uc.PublishedVersion(ctx)
	if err != nil {
		return nil, err
	}

	uc.cacheMu.RLock()
	if c := uc.cache; c != nil && c.version == version {
		uc.cacheMu.RUnlock()
		return c.fields, nil
	}
	uc.cacheMu.RUnlock()

	cfg, err := uc.GetPublished(ctx)
	if err != nil {
		return nil, err
	}

	active := &ActiveFields{}
	for i := range cfg.Steps {
		for _, f := range cfg.Steps[i].Fields {
			if f.IsEnabled {
				active.Fields = append(active.Fields, f)
			}
		}
		for _, f := range cfg.Steps[i].SystemFields {
			if f.IsEnabled {
				active.SystemFields = append(active.SystemFields, f)
			}
		}
	}

	uc.cacheMu.Lock()
	uc.cache = &activeFieldsCache{version: version, fields: active}
	uc.cacheMu.Unlock()

	return active, nil
}

func (uc *ConfigUseCase) invalidateActiveFields() {
	uc.cacheMu.Lock()
	uc.cache = nil
	uc.cacheMu.Unlock()
}

func noChangesError(msg string) error {
	return goerr.Wrap(model.ErrNoChanges, msg,
		goerr.V(model.ConfigCodeKey, types.ConfigErrNoChanges))
}
