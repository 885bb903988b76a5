package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/formwork-lab/formwork/pkg/domain/interfaces"
	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
	"github.com/formwork-lab/formwork/pkg/utils/logging"
	"github.com/formwork-lab/formwork/pkg/validation"
)

// ErrSubmissionNotFound is returned when a submission id cannot be resolved
var ErrSubmissionNotFound = goerr.New("submission not found")

// SubmissionUseCase accepts, persists and exports form submissions against
// the currently published configuration.
type SubmissionUseCase struct {
	repo      interfaces.SubmissionRepository
	config    *ConfigUseCase
	validator *validation.Service
	uploader  interfaces.Uploader
	clock     interfaces.Clock
}

type SubmissionOption func(*SubmissionUseCase)

// WithUploader injects the upload collaborator storing file bytes
func WithUploader(up interfaces.Uploader) SubmissionOption {
	return func(uc *SubmissionUseCase) {
		uc.uploader = up
	}
}

// WithClock injects the submission timestamp clock
func WithClock(clock interfaces.Clock) SubmissionOption {
	return func(uc *SubmissionUseCase) {
		uc.clock = clock
	}
}

func NewSubmissionUseCase(repo interfaces.SubmissionRepository, config *ConfigUseCase, validator *validation.Service, options ...SubmissionOption) *SubmissionUseCase {
	uc := &SubmissionUseCase{
		repo:      repo,
		config:    config,
		validator: validator,
		clock:     interfaces.RealClock(),
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}

// Submit validates and sanitizes the submitted values against the active
// field set, stores any uploaded files through the upload collaborator and
// persists the resulting submission. Field-level problems come back in the
// second result; only infrastructure failures use the error return.
func (uc *SubmissionUseCase) Submit(ctx context.Context, data model.FormData, uploads []model.RawUpload) (*model.Submission, map[types.FieldKey]string, error) {
	active, err := uc.config.ActiveFields(ctx)
	if err != nil {
		return nil, nil, err
	}
	fields := append(append([]model.FieldDefinition{}, active.Fields...), active.SystemFields...)

	clean, fieldErrs := uc.validator.ValidateAndSanitize(data, fields, model.UploadsByField(uploads))
	if fieldErrs != nil {
		return nil, fieldErrs, nil
	}

	id := uuid.NewString()

	if len(uploads) > 0 {
		refs, uploadErrs, err := uc.processUploads(ctx, id, fields, uploads)
		if err != nil {
			return nil, nil, err
		}
		if uploadErrs != nil {
			return nil, uploadErrs, nil
		}
		for key, ids := range refs {
			clean[key] = mergeRefs(clean[key], ids)
		}
	}

	version, err := uc.config.PublishedVersion(ctx)
	if err != nil {
		return nil, nil, err
	}

	sub := &model.Submission{
		ID:            id,
		ConfigVersion: version,
		Values:        clean,
		CreatedAt:     uc.clock.Now(),
	}
	if err := uc.repo.Put(ctx, sub); err != nil {
		return nil, nil, goerr.Wrap(err, "failed to store submission",
			goerr.V("submission_id", sub.ID))
	}

	logging.From(ctx).Info("accepted submission",
		"id", sub.ID, "config_version", sub.ConfigVersion)
	return sub, nil, nil
}

// processUploads stores uploads one file field at a time. A storage failure
// is reported against the owning field instead of aborting the submission,
// so the caller can surface it next to ordinary validation errors while the
// remaining fields still get stored.
func (uc *SubmissionUseCase) processUploads(ctx context.Context, ownerID string, fields []model.FieldDefinition, uploads []model.RawUpload) (map[types.FieldKey][]string, map[types.FieldKey]string, error) {
	if uc.uploader == nil {
		return nil, nil, goerr.New("file upload received but no uploader is configured")
	}

	fileFields := make(map[types.FieldKey]*model.FieldDefinition)
	for i := range fields {
		if fields[i].Type == types.FieldTypeFile {
			fileFields[fields[i].Key] = &fields[i]
		}
	}

	refs := make(map[types.FieldKey][]string)
	var fieldErrs map[types.FieldKey]string
	for key, ups := range model.UploadsByField(uploads) {
		def, ok := fileFields[key]
		if !ok {
			continue
		}

		stored, err := uc.uploader.ProcessUploads(ctx, ownerID, []model.FieldDefinition{*def}, ups)
		if err != nil {
			logging.From(ctx).Warn("failed to store uploads",
				"field", key, "error", err)
			if fieldErrs == nil {
				fieldErrs = make(map[types.FieldKey]string)
			}
			fieldErrs[key] = fmt.Sprintf("%s could not be stored", def.Label)
			continue
		}
		for k, ids := range stored {
			refs[k] = append(refs[k], ids...)
		}
	}

	return refs, fieldErrs, nil
}

// mergeRefs appends new upload reference IDs to any references already
// present in the sanitized value
func mergeRefs(existing any, ids []string) []string {
	switch v := existing.(type) {
	case []string:
		return append(v, ids...)
	default:
		return ids
	}
}

// Get returns one stored submission by id
func (uc *SubmissionUseCase) Get(ctx context.Context, id string) (*model.Submission, error) {
	sub, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load submission", goerr.V("submission_id", id))
	}
	if sub == nil {
		return nil, goerr.Wrap(ErrSubmissionNotFound, "no such submission", goerr.V("submission_id", id))
	}
	return sub, nil
}

// Display renders one submission's values for human-facing output using the
// active field set's labels and per-type formatters.
func (uc *SubmissionUseCase) Display(ctx context.Context, id string) (map[types.FieldKey]validation.DisplayValue, error) {
	sub, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	fields, err := uc.activeFieldList(ctx)
	if err != nil {
		return nil, err
	}
	return uc.validator.FormatForDisplay(sub.Values, fields), nil
}

// ExportHeaders returns the export column labels of the active field set
func (uc *SubmissionUseCase) ExportHeaders(ctx context.Context) ([]string, error) {
	fields, err := uc.activeFieldList(ctx)
	if err != nil {
		return nil, err
	}
	return uc.validator.ExportHeaders(fields), nil
}

// ExportRows renders all stored submissions as plain-text rows aligned with
// ExportHeaders
func (uc *SubmissionUseCase) ExportRows(ctx context.Context) ([][]string, error) {
	fields, err := uc.activeFieldList(ctx)
	if err != nil {
		return nil, err
	}

	subs, err := uc.repo.List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list submissions")
	}

	rows := make([][]string, 0, len(subs))
	for _, sub := range subs {
		rows = append(rows, uc.validator.ExportRow(sub.Values, fields))
	}
	return rows, nil
}

func (uc *SubmissionUseCase) activeFieldList(ctx context.Context) ([]model.FieldDefinition, error) {
	active, err := uc.config.ActiveFields(ctx)
	if err != nil {
		return nil, err
	}
	return append(append([]model.FieldDefinition{}, active.Fields...), active.SystemFields...), nil
}
