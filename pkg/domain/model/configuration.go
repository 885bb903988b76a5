package model

import (
	"reflect"

	"github.com/formwork-lab/formwork/pkg/domain/types"
)

// Schema versions of the configuration document
const (
	SchemaVersion1 = 1
	SchemaVersion2 = 2

	CurrentSchemaVersion = SchemaVersion2
)

// FormStep is one page of a multi-step form
type FormStep struct {
	ID       string `json:"id" toml:"id"`
	Title    string `json:"title" toml:"title"`
	Position int    `json:"position" toml:"position"`
	// Fields are operator-editable; SystemFields are engine-owned and not
	// freely removable (file upload, summary, consent).
	Fields       []FieldDefinition `json:"fields" toml:"fields"`
	SystemFields []FieldDefinition `json:"system_fields,omitempty" toml:"system_fields,omitempty"`
	IsFinale     bool              `json:"is_finale,omitempty" toml:"is_finale,omitempty"`
}

// Clone creates a deep copy of the step
func (s *FormStep) Clone() FormStep {
	c := *s
	c.Fields = cloneFields(s.Fields)
	c.SystemFields = cloneFields(s.SystemFields)
	return c
}

// AllFields returns the step's fields followed by its system fields
func (s *FormStep) AllFields() []FieldDefinition {
	out := make([]FieldDefinition, 0, len(s.Fields)+len(s.SystemFields))
	out = append(out, s.Fields...)
	out = append(out, s.SystemFields...)
	return out
}

func cloneFields(fields []FieldDefinition) []FieldDefinition {
	if fields == nil {
		return nil
	}
	out := make([]FieldDefinition, len(fields))
	for i := range fields {
		out[i] = fields[i].Clone()
	}
	return out
}

// FormSettings holds form-wide presentation settings
type FormSettings struct {
	Title         string `json:"title,omitempty" toml:"title,omitempty"`
	Description   string `json:"description,omitempty" toml:"description,omitempty"`
	SubmitLabel   string `json:"submit_label,omitempty" toml:"submit_label,omitempty"`
	SuccessNotice string `json:"success_notice,omitempty" toml:"success_notice,omitempty"`
}

// FormConfiguration is the full configuration document. It exists in two
// slots: a mutable draft and an immutable published snapshot; only the
// published slot affects end users.
type FormConfiguration struct {
	Version  int          `json:"version" toml:"version"`
	Settings FormSettings `json:"settings,omitempty" toml:"settings,omitempty"`
	Steps    []FormStep   `json:"steps" toml:"steps"`
}

// Clone creates a deep copy of the configuration
func (c *FormConfiguration) Clone() *FormConfiguration {
	out := &FormConfiguration{
		Version:  c.Version,
		Settings: c.Settings,
	}
	if c.Steps != nil {
		out.Steps = make([]FormStep, len(c.Steps))
		for i := range c.Steps {
			out.Steps[i] = c.Steps[i].Clone()
		}
	}
	return out
}

// Equal reports structural equality with another configuration. Used to
// detect the no_changes case on publish and discard.
func (c *FormConfiguration) Equal(other *FormConfiguration) bool {
	if c == nil || other == nil {
		return c == other
	}
	return reflect.DeepEqual(c, other)
}

// AllFields flattens the configuration's fields and system fields across
// steps, preserving declaration order
func (c *FormConfiguration) AllFields() []FieldDefinition {
	var out []FieldDefinition
	for i := range c.Steps {
		out = append(out, c.Steps[i].AllFields()...)
	}
	return out
}

// FieldKeys returns the set of all field keys declared in the configuration
func (c *FormConfiguration) FieldKeys() map[types.FieldKey]struct{} {
	keys := make(map[types.FieldKey]struct{})
	for _, f := range c.AllFields() {
		keys[f.Key] = struct{}{}
	}
	return keys
}

// FindField looks up a field definition by key across all steps
func (c *FormConfiguration) FindField(key types.FieldKey) (*FieldDefinition, bool) {
	for i := range c.Steps {
		for j := range c.Steps[i].Fields {
			if c.Steps[i].Fields[j].Key == key {
				return &c.Steps[i].Fields[j], true
			}
		}
		for j := range c.Steps[i].SystemFields {
			if c.Steps[i].SystemFields[j].Key == key {
				return &c.Steps[i].SystemFields[j], true
			}
		}
	}
	return nil, false
}

// FinaleStep returns the step marked as finale, if exactly one exists
func (c *FormConfiguration) FinaleStep() (*FormStep, bool) {
	var found *FormStep
	for i := range c.Steps {
		if c.Steps[i].IsFinale {
			if found != nil {
				return nil, false
			}
			found = &c.Steps[i]
		}
	}
	return found, found != nil
}
