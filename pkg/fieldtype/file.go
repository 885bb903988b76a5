package fieldtype

import (
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
)

// fileField validates incoming multipart upload metadata, not the stored
// value: size ceiling, extension/MIME allow-list and file count. The stored
// value is the list of reference IDs returned by the upload collaborator.
type fileField struct {
	base
}

func newFileField() *fileField {
	return &fileField{base{fieldType: types.FieldTypeFile}}
}

func (f *fileField) Validate(env *Env, def *model.FieldDefinition, value any) error {
	var uploads []model.RawUpload
	if env != nil {
		uploads = env.Uploads[def.Key]
	}

	if len(uploads) == 0 {
		// A required file field is satisfied by previously stored
		// references when no new upload arrives.
		if def.IsRequired && f.IsEmpty(value) {
			return requiredError(def)
		}
		return nil
	}

	maxFiles := 1
	if def.Settings.Multiple {
		maxFiles = 0
		if m := def.Validation.MaxFiles; m != nil {
			maxFiles = *m
		}
	}
	if maxFiles > 0 && len(uploads) > maxFiles {
		return fieldError(ErrTooManyFiles, def, "has too many files",
			goerr.V(LimitKey, maxFiles))
	}

	for _, up := range uploads {
		if err := f.validateUpload(def, up); err != nil {
			return err
		}
	}

	return nil
}

func (f *fileField) validateUpload(def *model.FieldDefinition, up model.RawUpload) error {
	if limit := def.Validation.MaxFileSize; limit > 0 && up.Size > limit {
		return fieldError(ErrFileTooLarge, def, "has a file that is too large",
			goerr.V(FileNameKey, up.FileName), goerr.V(LimitKey, limit))
	}

	if exts := def.Validation.AllowedExtensions; len(exts) > 0 {
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(up.FileName)), ".")
		if !containsFold(exts, ext) {
			return fieldError(ErrFileType, def, "has a file of a disallowed type",
				goerr.V(FileNameKey, up.FileName))
		}
	}

	if mimes := def.Validation.AllowedMIMETypes; len(mimes) > 0 {
		if !containsFold(mimes, up.MIMEType) {
			return fieldError(ErrFileType, def, "has a file of a disallowed type",
				goerr.V(FileNameKey, up.FileName))
		}
	}

	return nil
}

// Sanitize coerces the stored value to an array of reference IDs
func (f *fileField) Sanitize(def *model.FieldDefinition, value any) (any, bool) {
	refs := toStringSlice(value)
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		r = strings.TrimSpace(r)
		if r != "" {
			out = append(out, r)
		}
	}
	return out, true
}

func (f *fileField) FormatDisplay(def *model.FieldDefinition, value any) string {
	refs := toStringSlice(value)
	links := make([]string, len(refs))
	for i, r := range refs {
		links[i] = `<a href="/files/` + r + `">` + r + `</a>`
	}
	return strings.Join(links, "<br>")
}

func (f *fileField) FormatExport(def *model.FieldDefinition, value any) string {
	return strings.Join(toStringSlice(value), ", ")
}

func containsFold(list []string, v string) bool {
	for _, e := range list {
		if strings.EqualFold(e, v) {
			return true
		}
	}
	return false
}
