package fieldtype

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"

	"github.com/formwork-lab/formwork/pkg/domain/model"
)

// Validation errors
var (
	ErrRequired        = goerr.New("required value is missing")
	ErrTooShort        = goerr.New("value is too short")
	ErrTooLong         = goerr.New("value is too long")
	ErrPatternMismatch = goerr.New("value does not match the expected pattern")
	ErrInvalidPattern  = goerr.New("configured pattern is not a valid expression")
	ErrNotNumber       = goerr.New("value is not a number")
	ErrOutOfRange      = goerr.New("value is out of range")
	ErrInvalidDate     = goerr.New("value is not a valid date")
	ErrDateOutOfRange  = goerr.New("date is out of range")
	ErrInvalidEmail    = goerr.New("value is not a valid email address")
	ErrInvalidPhone    = goerr.New("value is not a valid phone number")
	ErrInvalidURL      = goerr.New("value is not a valid URL")
	ErrInvalidOption   = goerr.New("value is not one of the allowed options")
	ErrTooFewSelected  = goerr.New("too few options selected")
	ErrTooManySelected = goerr.New("too many options selected")
	ErrFileTooLarge    = goerr.New("file exceeds the size limit")
	ErrFileType        = goerr.New("file type is not allowed")
	ErrTooManyFiles    = goerr.New("too many files uploaded")
)

// Internal URL normalization failures, wrapped into ErrInvalidURL for callers
var (
	errInvalidURLHost   = goerr.New("URL has no valid host")
	errInvalidURLScheme = goerr.New("URL scheme must be http or https")
)

// Context keys for error values
const (
	ValueKey    = "value"
	LimitKey    = "limit"
	FileNameKey = "file_name"
)

func requiredError(def *model.FieldDefinition) error {
	return goerr.Wrap(ErrRequired, fmt.Sprintf("%s is required", def.Label),
		goerr.V(model.FieldKeyKey, def.Key))
}

func fieldError(cause error, def *model.FieldDefinition, msg string, options ...goerr.Option) error {
	options = append(options, goerr.V(model.FieldKeyKey, def.Key))
	return goerr.Wrap(cause, fmt.Sprintf("%s %s", def.Label, msg), options...)
}
