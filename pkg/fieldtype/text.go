package fieldtype

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"

	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
)

// textField covers both single-line text and textarea
type textField struct {
	base
}

func newTextField(t types.FieldType) *textField {
	return &textField{base{fieldType: t}}
}

func (f *textField) Validate(env *Env, def *model.FieldDefinition, value any) error {
	if done, err := checkRequired(f, def, value); done {
		return err
	}

	s := strings.TrimSpace(toString(value))
	length := utf8.RuneCountInString(s)

	if min := def.Validation.MinLength; min != nil && length < *min {
		return fieldError(ErrTooShort, def, "is too short", goerr.V(LimitKey, *min))
	}
	if max := def.Validation.MaxLength; max != nil && length > *max {
		return fieldError(ErrTooLong, def, "is too long", goerr.V(LimitKey, *max))
	}

	if pattern := def.Validation.Pattern; pattern != "" {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return fieldError(ErrInvalidPattern, def, "has an invalid validation pattern")
		}
		if !re.MatchString(s) {
			return fieldError(ErrPatternMismatch, def, "has an invalid format")
		}
	}

	return nil
}

func (f *textField) Sanitize(def *model.FieldDefinition, value any) (any, bool) {
	s := strings.TrimSpace(toString(value))
	if f.fieldType == types.FieldTypeTextarea {
		s = strings.ReplaceAll(s, "\r\n", "\n")
	}
	return s, true
}

func (f *textField) FormatDisplay(def *model.FieldDefinition, value any) string {
	return toString(value)
}

func (f *textField) FormatExport(def *model.FieldDefinition, value any) string {
	return toString(value)
}
