package fieldtype

import (
	"regexp"
	"strings"

	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
)

// phonePattern accepts international notation with common separators and
// between 6 and 20 digits overall
var (
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ()./-]{4,24}$`)
	phoneDigits  = regexp.MustCompile(`[0-9]`)
	phoneStrip   = regexp.MustCompile(`[^0-9+]`)
)

type phoneField struct {
	base
}

func newPhoneField() *phoneField {
	return &phoneField{base{fieldType: types.FieldTypePhone}}
}

func (f *phoneField) Validate(env *Env, def *model.FieldDefinition, value any) error {
	if done, err := checkRequired(f, def, value); done {
		return err
	}

	s := strings.TrimSpace(toString(value))
	digits := len(phoneDigits.FindAllString(s, -1))
	if !phonePattern.MatchString(s) || digits < 6 || digits > 20 {
		return fieldError(ErrInvalidPhone, def, "is not a valid phone number")
	}

	return nil
}

// Sanitize reduces the number to its canonical form: digits with an
// optional leading plus
func (f *phoneField) Sanitize(def *model.FieldDefinition, value any) (any, bool) {
	s := strings.TrimSpace(toString(value))
	hasPlus := strings.HasPrefix(s, "+")
	s = phoneStrip.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "+", "")
	if hasPlus && s != "" {
		s = "+" + s
	}
	return s, true
}

func (f *phoneField) FormatDisplay(def *model.FieldDefinition, value any) string {
	return toString(value)
}

func (f *phoneField) FormatExport(def *model.FieldDefinition, value any) string {
	return toString(value)
}
