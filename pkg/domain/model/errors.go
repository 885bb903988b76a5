package model

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"

	"github.com/formwork-lab/formwork/pkg/domain/types"
)

// Configuration lifecycle errors
var (
	ErrInvalidConfig = goerr.New("invalid form configuration")
	ErrNoChanges     = goerr.New("no unpublished changes")
	ErrFieldInUse    = goerr.New("field is referenced by a condition")
)

// Context keys for error values
const (
	ConfigCodeKey     = "code"
	FieldKeyKey       = "field_key"
	DependentFieldKey = "dependent_field"
	StepIDKey         = "step_id"
	OperatorKey       = "operator"
)

// NewConfigError builds a structural configuration error carrying a stable
// code callers can match on
func NewConfigError(code types.ConfigErrorCode, msg string, options ...goerr.Option) error {
	options = append(options, goerr.V(ConfigCodeKey, code))
	return goerr.Wrap(ErrInvalidConfig, msg, options...)
}

// ConfigErrorCodeOf extracts the stable error code from a configuration
// error, if one is attached
func ConfigErrorCodeOf(err error) (types.ConfigErrorCode, bool) {
	var ge *goerr.Error
	if !errors.As(err, &ge) {
		return "", false
	}
	code, ok := ge.Values()[ConfigCodeKey].(types.ConfigErrorCode)
	return code, ok
}
