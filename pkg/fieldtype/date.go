package fieldtype

import (
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
)

const isoDate = "2006-01-02"

type dateField struct {
	base
}

func newDateField() *dateField {
	return &dateField{base{fieldType: types.FieldTypeDate}}
}

func (f *dateField) Validate(env *Env, def *model.FieldDefinition, value any) error {
	if done, err := checkRequired(f, def, value); done {
		return err
	}

	d, err := time.Parse(isoDate, strings.TrimSpace(toString(value)))
	if err != nil {
		return fieldError(ErrInvalidDate, def, "is not a valid date")
	}

	if bound, ok := resolveDateBound(def.Validation.MinDate, env.Now); ok && d.Before(bound) {
		return fieldError(ErrDateOutOfRange, def, "is too early",
			goerr.V(LimitKey, bound.Format(isoDate)))
	}
	if bound, ok := resolveDateBound(def.Validation.MaxDate, env.Now); ok && d.After(bound) {
		return fieldError(ErrDateOutOfRange, def, "is too late",
			goerr.V(LimitKey, bound.Format(isoDate)))
	}

	return nil
}

func (f *dateField) Sanitize(def *model.FieldDefinition, value any) (any, bool) {
	d, err := time.Parse(isoDate, strings.TrimSpace(toString(value)))
	if err != nil {
		return nil, false
	}
	return d.Format(isoDate), true
}

func (f *dateField) FormatDisplay(def *model.FieldDefinition, value any) string {
	d, err := time.Parse(isoDate, toString(value))
	if err != nil {
		return toString(value)
	}
	return d.Format("Jan 2, 2006")
}

func (f *dateField) FormatExport(def *model.FieldDefinition, value any) string {
	return toString(value)
}

// resolveDateBound turns a configured bound into a concrete date. The bound
// is either an ISO date or the keyword "today", resolved against the
// injected reference time so validation stays deterministic.
func resolveDateBound(bound string, now time.Time) (time.Time, bool) {
	switch strings.TrimSpace(bound) {
	case "":
		return time.Time{}, false
	case "today":
		return now.UTC().Truncate(24 * time.Hour), true
	default:
		d, err := time.Parse(isoDate, bound)
		if err != nil {
			return time.Time{}, false
		}
		return d, true
	}
}
