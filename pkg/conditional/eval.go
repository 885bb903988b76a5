// Package conditional evaluates field visibility rules over a flat form-data
// map and derives the dependency graph between conditionally shown fields.
package conditional

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
)

// Mode combines multiple conditions
type Mode string

const (
	ModeAnd Mode = "and"
	ModeOr  Mode = "or"
)

// Evaluate resolves a single condition against the submitted form data.
// An absent condition is vacuously true. An unknown operator evaluates to
// false so a misconfigured rule fails closed instead of exposing a field.
func Evaluate(cond *model.Condition, data model.FormData) bool {
	if cond.IsZero() {
		return true
	}

	value := data[cond.Field]

	switch cond.Operator {
	case types.OperatorEquals:
		return Stringify(value) == cond.Value
	case types.OperatorNotEquals:
		return Stringify(value) != cond.Value
	case types.OperatorContains:
		return strings.Contains(Stringify(value), cond.Value)
	case types.OperatorNotEmpty:
		return Truthy(value)
	case types.OperatorEmpty:
		return !Truthy(value)
	case types.OperatorChecked:
		return IsChecked(value)
	case types.OperatorGreaterThan:
		return ParseFloat(Stringify(value)) > ParseFloat(cond.Value)
	case types.OperatorLessThan:
		return ParseFloat(Stringify(value)) < ParseFloat(cond.Value)
	case types.OperatorIn:
		needle := Stringify(value)
		for _, token := range strings.Split(cond.Value, ",") {
			if strings.TrimSpace(token) == needle {
				return true
			}
		}
		return false
	case types.OperatorStartsWith:
		return strings.HasPrefix(Stringify(value), cond.Value)
	default:
		return false
	}
}

// EvaluateAll folds Evaluate over a condition list with short-circuiting
// AND/OR semantics. An empty list is true for AND and false for OR.
func EvaluateAll(conds []model.Condition, mode Mode, data model.FormData) bool {
	if mode == ModeOr {
		for i := range conds {
			if Evaluate(&conds[i], data) {
				return true
			}
		}
		return false
	}

	for i := range conds {
		if !Evaluate(&conds[i], data) {
			return false
		}
	}
	return true
}

// Stringify renders a form value the way a loose string comparison expects:
// nil becomes "", booleans become "1"/"", numbers drop trailing zeros and
// arrays are comma-joined.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "1"
		}
		return ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case []string:
		return strings.Join(t, ",")
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = Stringify(e)
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}

// Truthy implements the emptiness semantics shared with field validation:
// nil, "", false, "0", zero numbers and empty arrays are all falsy.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != "" && t != "0"
	case bool:
		return t
	case float64:
		return t != 0
	case float32:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	case []string:
		return len(t) > 0
	case []any:
		return len(t) > 0
	default:
		return true
	}
}

// IsChecked reports whether a checkbox-bearing value counts as checked:
// boolean true or the string "1". Everything else is unchecked.
func IsChecked(v any) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return Stringify(v) == "1"
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)`)

// ParseFloat extracts the leading numeric prefix of s, defaulting to 0 when
// none exists. This mirrors the client-side interpreter so both sides of a
// numeric comparison coerce identically.
func ParseFloat(s string) float64 {
	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return f
}
