package fieldtype

import (
	"strconv"
	"strings"

	"github.com/formwork-lab/formwork/pkg/domain/model"
)

// toString coerces a submitted value into its string form. Numbers drop
// trailing zeros, booleans map to "1"/"" and arrays are comma-joined,
// matching the loose comparison rules of the conditional engine.
func toString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "1"
		}
		return ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case []string:
		return strings.Join(v, ",")
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = toString(e)
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}

// toStringSlice coerces an array-bearing value into a string slice. Scalar
// values become a single-element slice so a lone selection still counts.
func toStringSlice(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			out = append(out, toString(e))
		}
		return out
	default:
		s := toString(v)
		if s == "" {
			return nil
		}
		return []string{s}
	}
}

// yesNo renders a boolean for humans
func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// optionLabel resolves an option value to its label, falling back to the
// raw value for unknown (e.g. "other") entries
func optionLabel(def *model.FieldDefinition, value string) string {
	for _, opt := range def.Options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}

// hasOption reports whether the value is in the field's option list
func hasOption(def *model.FieldDefinition, value string) bool {
	for _, opt := range def.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}
