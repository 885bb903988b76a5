package fieldtype

import (
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
)

type numberField struct {
	base
}

func newNumberField() *numberField {
	return &numberField{base{fieldType: types.FieldTypeNumber}}
}

func (f *numberField) Validate(env *Env, def *model.FieldDefinition, value any) error {
	if done, err := checkRequired(f, def, value); done {
		return err
	}

	n, err := parseNumber(value)
	if err != nil {
		return fieldError(ErrNotNumber, def, "must be a number")
	}

	if min := def.Validation.Min; min != nil && n < *min {
		return fieldError(ErrOutOfRange, def, "is too small", goerr.V(LimitKey, *min))
	}
	if max := def.Validation.Max; max != nil && n > *max {
		return fieldError(ErrOutOfRange, def, "is too large", goerr.V(LimitKey, *max))
	}

	return nil
}

// Sanitize coerces the value to a number: an integer when the configured
// step has no fractional part, a float otherwise.
func (f *numberField) Sanitize(def *model.FieldDefinition, value any) (any, bool) {
	n, err := parseNumber(value)
	if err != nil {
		return nil, false
	}

	if stepIsIntegral(def.Settings.Step) {
		return int64(n), true
	}
	return n, true
}

func (f *numberField) FormatDisplay(def *model.FieldDefinition, value any) string {
	return toString(value)
}

func (f *numberField) FormatExport(def *model.FieldDefinition, value any) string {
	return toString(value)
}

func parseNumber(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return strconv.ParseFloat(strings.TrimSpace(toString(value)), 64)
	}
}

// stepIsIntegral reports whether the configured step keeps values integral.
// An unset step behaves like step 1.
func stepIsIntegral(step string) bool {
	if step == "" {
		return true
	}
	frac, err := strconv.ParseFloat(step, 64)
	if err != nil {
		return true
	}
	return frac == float64(int64(frac))
}
