package fieldtype_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
	"github.com/formwork-lab/formwork/pkg/fieldtype"
)

func uploadDef() *model.FieldDefinition {
	return &model.FieldDefinition{
		Key:      "file_upload",
		Label:    "Documents",
		Type:     types.FieldTypeFile,
		Settings: model.Settings{Multiple: true},
		Validation: model.ValidationRules{
			MaxFiles:          intPtr(2),
			MaxFileSize:       1 << 20,
			AllowedExtensions: []string{"pdf", "png"},
		},
	}
}

func envWithUploads(key types.FieldKey, uploads ...model.RawUpload) *fieldtype.Env {
	return &fieldtype.Env{
		Uploads: map[types.FieldKey][]model.RawUpload{key: uploads},
	}
}

func TestFileValidateUploads(t *testing.T) {
	c := getContract(t, types.FieldTypeFile)
	def := uploadDef()

	env := envWithUploads(def.Key,
		model.RawUpload{FieldKey: def.Key, FileName: "cv.pdf", Size: 1024, MIMEType: "application/pdf"},
	)
	gt.NoError(t, c.Validate(env, def, nil))

	env = envWithUploads(def.Key,
		model.RawUpload{FieldKey: def.Key, FileName: "huge.pdf", Size: 2 << 20},
	)
	gt.Error(t, c.Validate(env, def, nil)).Is(fieldtype.ErrFileTooLarge)

	env = envWithUploads(def.Key,
		model.RawUpload{FieldKey: def.Key, FileName: "script.exe", Size: 10},
	)
	gt.Error(t, c.Validate(env, def, nil)).Is(fieldtype.ErrFileType)

	// extension matching is case-insensitive
	env = envWithUploads(def.Key,
		model.RawUpload{FieldKey: def.Key, FileName: "SCAN.PDF", Size: 10},
	)
	gt.NoError(t, c.Validate(env, def, nil))

	env = envWithUploads(def.Key,
		model.RawUpload{FieldKey: def.Key, FileName: "a.pdf", Size: 1},
		model.RawUpload{FieldKey: def.Key, FileName: "b.pdf", Size: 1},
		model.RawUpload{FieldKey: def.Key, FileName: "c.pdf", Size: 1},
	)
	gt.Error(t, c.Validate(env, def, nil)).Is(fieldtype.ErrTooManyFiles)
}

func TestFileValidateMIMEAllowList(t *testing.T) {
	c := getContract(t, types.FieldTypeFile)
	def := uploadDef()
	def.Validation.AllowedExtensions = nil
	def.Validation.AllowedMIMETypes = []string{"application/pdf"}

	env := envWithUploads(def.Key,
		model.RawUpload{FieldKey: def.Key, FileName: "cv.pdf", Size: 10, MIMEType: "application/pdf"},
	)
	gt.NoError(t, c.Validate(env, def, nil))

	env = envWithUploads(def.Key,
		model.RawUpload{FieldKey: def.Key, FileName: "cv.pdf", Size: 10, MIMEType: "text/html"},
	)
	gt.Error(t, c.Validate(env, def, nil)).Is(fieldtype.ErrFileType)
}

func TestFileValidateSingleMode(t *testing.T) {
	c := getContract(t, types.FieldTypeFile)
	def := uploadDef()
	def.Settings.Multiple = false

	env := envWithUploads(def.Key,
		model.RawUpload{FieldKey: def.Key, FileName: "a.pdf", Size: 1},
		model.RawUpload{FieldKey: def.Key, FileName: "b.pdf", Size: 1},
	)
	gt.Error(t, c.Validate(env, def, nil)).Is(fieldtype.ErrTooManyFiles)
}

func TestFileRequiredSatisfiedByStoredRefs(t *testing.T) {
	c := getContract(t, types.FieldTypeFile)
	def := uploadDef()
	def.IsRequired = true

	// no new upload, no stored references
	gt.Error(t, c.Validate(&fieldtype.Env{}, def, nil)).Is(fieldtype.ErrRequired)

	// no new upload, but a previous submission already stored a reference
	gt.NoError(t, c.Validate(&fieldtype.Env{}, def, []string{"ref-123"}))
}

func TestFileSanitizeAndFormat(t *testing.T) {
	c := getContract(t, types.FieldTypeFile)
	def := uploadDef()

	got, ok := c.Sanitize(def, []any{" ref-1 ", "", "ref-2"})
	gt.Bool(t, ok).True()
	gt.Value(t, got).Equal(any([]string{"ref-1", "ref-2"}))

	gt.Value(t, c.FormatExport(def, []string{"ref-1", "ref-2"})).Equal("ref-1, ref-2")
	gt.Value(t, c.FormatDisplay(def, []string{"ref-1"})).
		Equal(`<a href="/files/ref-1">ref-1</a>`)
}
