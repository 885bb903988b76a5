package fieldtype

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
)

// choiceField covers select and radio: a single value picked from an
// option list, with an "allow other" escape hatch
type choiceField struct {
	base
}

func newChoiceField(t types.FieldType) *choiceField {
	return &choiceField{base{fieldType: t}}
}

func (f *choiceField) Validate(env *Env, def *model.FieldDefinition, value any) error {
	if done, err := checkRequired(f, def, value); done {
		return err
	}

	s := strings.TrimSpace(toString(value))
	if !hasOption(def, s) && !def.Settings.AllowOther {
		return fieldError(ErrInvalidOption, def, "has an invalid selection",
			goerr.V(ValueKey, s))
	}

	return nil
}

func (f *choiceField) Sanitize(def *model.FieldDefinition, value any) (any, bool) {
	return strings.TrimSpace(toString(value)), true
}

func (f *choiceField) FormatDisplay(def *model.FieldDefinition, value any) string {
	return optionLabel(def, toString(value))
}

func (f *choiceField) FormatExport(def *model.FieldDefinition, value any) string {
	return optionLabel(def, toString(value))
}
