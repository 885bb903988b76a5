// Package validation runs full-submission validation, sanitization and
// formatting over a field list, dispatching per-field work to the field
// type registry and honoring conditional visibility.
package validation

import (
	"fmt"

	"github.com/formwork-lab/formwork/pkg/conditional"
	"github.com/formwork-lab/formwork/pkg/domain/interfaces"
	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
	"github.com/formwork-lab/formwork/pkg/fieldtype"
)

// Service validates and sanitizes submitted form data against a field list.
type Service struct {
	registry *fieldtype.Registry
	clock    interfaces.Clock
}

type Option func(*Service)

// WithClock injects the reference clock used for date-bound validation
func WithClock(clock interfaces.Clock) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

func New(registry *fieldtype.Registry, options ...Option) *Service {
	s := &Service{
		registry: registry,
		clock:    interfaces.RealClock(),
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Validate checks every visible, data-bearing field and collects all field
// errors. It returns nil when the submission is valid. Display-only fields
// and fields hidden by their condition are skipped; an unknown field type is
// reported as a per-field error instead of failing the whole run.
func (s *Service) Validate(data model.FormData, fields []model.FieldDefinition, uploads map[types.FieldKey][]model.RawUpload) map[types.FieldKey]string {
	env := &fieldtype.Env{
		FormData: data,
		Uploads:  uploads,
		Now:      s.clock.Now(),
	}

	var errs map[types.FieldKey]string
	for i := range fields {
		def := &fields[i]
		if def.Type.IsDisplayOnly() {
			continue
		}
		if !conditional.IsFieldVisible(def, data) {
			continue
		}

		contract, ok := s.registry.Get(def.Type)
		if !ok {
			errs = appendFieldError(errs, def.Key,
				fmt.Sprintf("%s has an unknown field type %q", def.Label, def.Type))
			continue
		}

		if err := contract.Validate(env, def, data[def.Key]); err != nil {
			errs = appendFieldError(errs, def.Key, err.Error())
		}
	}

	return errs
}

// appendFieldError records one field error, allocating the map on first use
// so a clean run stays nil
func appendFieldError(errs map[types.FieldKey]string, key types.FieldKey, msg string) map[types.FieldKey]string {
	if errs == nil {
		errs = make(map[types.FieldKey]string)
	}
	errs[key] = msg
	return errs
}

// Sanitize normalizes the submitted values of data-bearing fields. It does
// not re-check visibility: values for hidden fields were already dropped by
// Validate's contract with the caller, and sanitizing a leftover value is
// harmless. Values whose contract reports absence are omitted.
func (s *Service) Sanitize(data model.FormData, fields []model.FieldDefinition) model.FormData {
	out := make(model.FormData, len(fields))
	for i := range fields {
		def := &fields[i]
		if def.Type.IsDisplayOnly() {
			continue
		}

		contract, ok := s.registry.Get(def.Type)
		if !ok {
			continue
		}

		raw, present := data[def.Key]
		if !present {
			continue
		}
		clean, keep := contract.Sanitize(def, raw)
		if !keep {
			continue
		}
		out[def.Key] = clean
	}
	return out
}

// ValidateAndSanitize composes Validate and Sanitize. On validation failure
// the field error map is returned and no sanitized data is produced.
func (s *Service) ValidateAndSanitize(data model.FormData, fields []model.FieldDefinition, uploads map[types.FieldKey][]model.RawUpload) (model.FormData, map[types.FieldKey]string) {
	if errs := s.Validate(data, fields, uploads); errs != nil {
		return nil, errs
	}
	return s.Sanitize(data, fields), nil
}

// DisplayValue is one formatted field value for human-facing rendering
type DisplayValue struct {
	Label string          `json:"label"`
	Value string          `json:"value"`
	Type  types.FieldType `json:"type"`
}

// FormatForDisplay renders stored values for human-facing output, field by
// field. Display-only fields and fields without a stored value are skipped.
func (s *Service) FormatForDisplay(data model.FormData, fields []model.FieldDefinition) map[types.FieldKey]DisplayValue {
	out := make(map[types.FieldKey]DisplayValue)
	for i := range fields {
		def := &fields[i]
		if def.Type.IsDisplayOnly() {
			continue
		}
		contract, ok := s.registry.Get(def.Type)
		if !ok {
			continue
		}
		value, present := data[def.Key]
		if !present {
			continue
		}
		out[def.Key] = DisplayValue{
			Label: def.Label,
			Value: contract.FormatDisplay(def, value),
			Type:  def.Type,
		}
	}
	return out
}

// ExportHeaders returns the column labels for tabular export in field
// order, skipping display-only fields.
func (s *Service) ExportHeaders(fields []model.FieldDefinition) []string {
	headers := make([]string, 0, len(fields))
	for i := range fields {
		if fields[i].Type.IsDisplayOnly() {
			continue
		}
		headers = append(headers, fields[i].Label)
	}
	return headers
}

// ExportRow renders one submission's values as a plain-text row aligned
// with ExportHeaders.
func (s *Service) ExportRow(data model.FormData, fields []model.FieldDefinition) []string {
	row := make([]string, 0, len(fields))
	for i := range fields {
		def := &fields[i]
		if def.Type.IsDisplayOnly() {
			continue
		}
		contract, ok := s.registry.Get(def.Type)
		if !ok {
			row = append(row, "")
			continue
		}
		value, present := data[def.Key]
		if !present {
			row = append(row, "")
			continue
		}
		row = append(row, contract.FormatExport(def, value))
	}
	return row
}

// OperatorsFor returns the condition operators applicable to a field type
func (s *Service) OperatorsFor(t types.FieldType) []types.Operator {
	return types.OperatorsFor(t)
}
