// Package fieldtype implements the per-type capability contract of form
// fields: validation, sanitization, emptiness and formatting. A Registry
// maps field type tags to their implementations; built-ins are registered
// lazily so extensions can hook in before first use.
package fieldtype

import (
	"strings"
	"time"

	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
)

// Env carries the per-submission context a field validation may need: the
// full form-data map for cross-field rules, raw upload metadata for file
// fields and the reference time for date bounds.
type Env struct {
	FormData model.FormData
	Uploads  map[types.FieldKey][]model.RawUpload
	Now      time.Time
}

// Contract is the capability every field type implements. Validate returns
// the first failing rule only; Sanitize's second result reports whether the
// value should be stored at all (display-only types never contribute data).
type Contract interface {
	Type() types.FieldType

	Validate(env *Env, def *model.FieldDefinition, value any) error
	Sanitize(def *model.FieldDefinition, value any) (any, bool)
	IsEmpty(value any) bool

	// FormatDisplay may emit markup; FormatExport must stay plain text
	// safe for CSV.
	FormatDisplay(def *model.FieldDefinition, value any) string
	FormatExport(def *model.FieldDefinition, value any) string
}

// base provides the shared emptiness rule and type tag
type base struct {
	fieldType types.FieldType
}

func (b base) Type() types.FieldType {
	return b.fieldType
}

// IsEmpty treats nil, whitespace-only strings and empty arrays as empty
func (b base) IsEmpty(value any) bool {
	return isEmptyValue(value)
}

func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	default:
		return false
	}
}

// checkRequired runs the required-ness rule that precedes all type-specific
// checks. done means validation is finished for this field: an empty value
// either fails required-ness or passes vacuously.
func checkRequired(c Contract, def *model.FieldDefinition, value any) (done bool, err error) {
	if !c.IsEmpty(value) {
		return false, nil
	}
	if def.IsRequired {
		return true, requiredError(def)
	}
	return true, nil
}
