package fieldtype

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
)

// checkboxField has two modes: single (a boolean, e.g. the consent box) and
// multi (a set of option values with optional selection-count bounds)
type checkboxField struct {
	base
}

func newCheckboxField() *checkboxField {
	return &checkboxField{base{fieldType: types.FieldTypeCheckbox}}
}

func (f *checkboxField) Validate(env *Env, def *model.FieldDefinition, value any) error {
	if def.Settings.Mode == model.CheckboxMulti {
		return f.validateMulti(def, value)
	}
	return f.validateSingle(def, value)
}

// validateSingle treats required as "must be checked": boolean true or "1"
func (f *checkboxField) validateSingle(def *model.FieldDefinition, value any) error {
	if def.IsRequired && !isChecked(value) {
		return requiredError(def)
	}
	return nil
}

func (f *checkboxField) validateMulti(def *model.FieldDefinition, value any) error {
	selected := toStringSlice(value)

	if len(selected) == 0 {
		if def.IsRequired {
			return requiredError(def)
		}
		return nil
	}

	for _, s := range selected {
		if !hasOption(def, s) {
			return fieldError(ErrInvalidOption, def, "has an invalid selection",
				goerr.V(ValueKey, s))
		}
	}

	if min := def.Validation.MinSelected; min != nil && len(selected) < *min {
		return fieldError(ErrTooFewSelected, def, "needs more selections",
			goerr.V(LimitKey, *min))
	}
	if max := def.Validation.MaxSelected; max != nil && len(selected) > *max {
		return fieldError(ErrTooManySelected, def, "has too many selections",
			goerr.V(LimitKey, *max))
	}

	return nil
}

// Sanitize coerces single mode to a boolean and multi mode to a
// de-duplicated string array preserving first-seen order
func (f *checkboxField) Sanitize(def *model.FieldDefinition, value any) (any, bool) {
	if def.Settings.Mode == model.CheckboxMulti {
		selected := toStringSlice(value)
		seen := make(map[string]bool, len(selected))
		out := make([]string, 0, len(selected))
		for _, s := range selected {
			s = strings.TrimSpace(s)
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
		return out, true
	}

	return isChecked(value), true
}

func (f *checkboxField) IsEmpty(value any) bool {
	if b, ok := value.(bool); ok {
		return !b
	}
	return isEmptyValue(value)
}

func (f *checkboxField) FormatDisplay(def *model.FieldDefinition, value any) string {
	if def.Settings.Mode == model.CheckboxMulti {
		return joinOptionLabels(def, value)
	}
	return yesNo(isChecked(value))
}

func (f *checkboxField) FormatExport(def *model.FieldDefinition, value any) string {
	return f.FormatDisplay(def, value)
}

func joinOptionLabels(def *model.FieldDefinition, value any) string {
	selected := toStringSlice(value)
	labels := make([]string, len(selected))
	for i, s := range selected {
		labels[i] = optionLabel(def, s)
	}
	return strings.Join(labels, ", ")
}

func isChecked(value any) bool {
	if b, ok := value.(bool); ok {
		return b
	}
	return toString(value) == "1"
}
