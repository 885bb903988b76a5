package fieldtype

import (
	"net/url"
	"strings"

	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
)

type urlField struct {
	base
}

func newURLField() *urlField {
	return &urlField{base{fieldType: types.FieldTypeURL}}
}

func (f *urlField) Validate(env *Env, def *model.FieldDefinition, value any) error {
	if done, err := checkRequired(f, def, value); done {
		return err
	}

	if _, err := normalizeURL(toString(value)); err != nil {
		return fieldError(ErrInvalidURL, def, "is not a valid URL")
	}

	return nil
}

func (f *urlField) Sanitize(def *model.FieldDefinition, value any) (any, bool) {
	normalized, err := normalizeURL(toString(value))
	if err != nil {
		// Sanitize runs after validation; keep the trimmed raw value if a
		// stale value slips through
		return strings.TrimSpace(toString(value)), true
	}
	return normalized, true
}

func (f *urlField) FormatDisplay(def *model.FieldDefinition, value any) string {
	return toString(value)
}

func (f *urlField) FormatExport(def *model.FieldDefinition, value any) string {
	return toString(value)
}

// normalizeURL trims the value, defaults the scheme to https and requires a
// host and an http(s) scheme
func normalizeURL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", err
	}
	if u.Host == "" || !strings.Contains(u.Host, ".") {
		return "", errInvalidURLHost
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", errInvalidURLScheme
	}

	return u.String(), nil
}
