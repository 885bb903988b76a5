package fieldtype

import (
	"net/mail"
	"strings"

	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
)

type emailField struct {
	base
}

func newEmailField() *emailField {
	return &emailField{base{fieldType: types.FieldTypeEmail}}
}

func (f *emailField) Validate(env *Env, def *model.FieldDefinition, value any) error {
	if done, err := checkRequired(f, def, value); done {
		return err
	}

	addr := strings.TrimSpace(toString(value))
	parsed, err := mail.ParseAddress(addr)
	if err != nil || parsed.Address != addr {
		return fieldError(ErrInvalidEmail, def, "is not a valid email address")
	}

	return nil
}

// Sanitize lowers the address; email comparison is case-insensitive in
// practice and a canonical form keeps deduplication stable.
func (f *emailField) Sanitize(def *model.FieldDefinition, value any) (any, bool) {
	return strings.ToLower(strings.TrimSpace(toString(value))), true
}

func (f *emailField) FormatDisplay(def *model.FieldDefinition, value any) string {
	return toString(value)
}

func (f *emailField) FormatExport(def *model.FieldDefinition, value any) string {
	return toString(value)
}
