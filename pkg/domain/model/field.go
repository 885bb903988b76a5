package model

import (
	"github.com/formwork-lab/formwork/pkg/domain/types"
)

// FormData is one submission's raw key/value map. Values originate from a
// JSON body, so the dynamic types are string, bool, float64, []any and nil.
type FormData map[types.FieldKey]any

// Option is one selectable value/label pair of a choice field
type Option struct {
	Value string `json:"value" toml:"value"`
	Label string `json:"label" toml:"label"`
}

// Condition controls a field's visibility based on another field's live value
type Condition struct {
	Field    types.FieldKey `json:"field" toml:"field"`
	Operator types.Operator `json:"operator" toml:"operator"`
	Value    string         `json:"value,omitempty" toml:"value,omitempty"`
}

// IsZero reports whether the condition is absent
func (c *Condition) IsZero() bool {
	return c == nil || (c.Field == "" && c.Operator == "")
}

// CheckboxMode selects between a single boolean checkbox and a
// multi-select checkbox group
type CheckboxMode string

const (
	CheckboxSingle CheckboxMode = "single"
	CheckboxMulti  CheckboxMode = "multi"
)

// Settings holds type-specific presentation and behavior knobs. Only the
// fields relevant to the declaring field's type are set; everything is
// strongly typed so no serialized maps travel through the core.
type Settings struct {
	Rows       int          `json:"rows,omitempty" toml:"rows,omitempty"`               // textarea
	Step       string       `json:"step,omitempty" toml:"step,omitempty"`               // number input step, e.g. "0.01"
	Mode       CheckboxMode `json:"mode,omitempty" toml:"mode,omitempty"`               // checkbox
	AllowOther bool         `json:"allow_other,omitempty" toml:"allow_other,omitempty"` // select/radio
	Multiple   bool         `json:"multiple,omitempty" toml:"multiple,omitempty"`       // file
	Level      int          `json:"level,omitempty" toml:"level,omitempty"`             // heading
	Content    string       `json:"content,omitempty" toml:"content,omitempty"`         // html block body
	Width      types.Width  `json:"width,omitempty" toml:"width,omitempty"`
}

// ValidationRules holds type-specific validation constraints. Pointer fields
// distinguish "not configured" from a zero bound.
type ValidationRules struct {
	MinLength         *int     `json:"min_length,omitempty" toml:"min_length,omitempty"`
	MaxLength         *int     `json:"max_length,omitempty" toml:"max_length,omitempty"`
	Pattern           string   `json:"pattern,omitempty" toml:"pattern,omitempty"`
	Min               *float64 `json:"min,omitempty" toml:"min,omitempty"`
	Max               *float64 `json:"max,omitempty" toml:"max,omitempty"`
	MinDate           string   `json:"min_date,omitempty" toml:"min_date,omitempty"` // ISO date or "today"
	MaxDate           string   `json:"max_date,omitempty" toml:"max_date,omitempty"`
	MinSelected       *int     `json:"min_selected,omitempty" toml:"min_selected,omitempty"`
	MaxSelected       *int     `json:"max_selected,omitempty" toml:"max_selected,omitempty"`
	MaxFileSize       int64    `json:"max_file_size,omitempty" toml:"max_file_size,omitempty"` // bytes per file
	MaxFiles          *int     `json:"max_files,omitempty" toml:"max_files,omitempty"`
	AllowedExtensions []string `json:"allowed_extensions,omitempty" toml:"allowed_extensions,omitempty"`
	AllowedMIMETypes  []string `json:"allowed_mime_types,omitempty" toml:"allowed_mime_types,omitempty"`
}

// FieldDefinition is one form field's full declaration
type FieldDefinition struct {
	Key         types.FieldKey  `json:"key" toml:"key"`
	Type        types.FieldType `json:"type" toml:"type"`
	Label       string          `json:"label" toml:"label"`
	Placeholder string          `json:"placeholder,omitempty" toml:"placeholder,omitempty"`
	Description string          `json:"description,omitempty" toml:"description,omitempty"`
	IsRequired  bool            `json:"is_required" toml:"is_required"`
	IsEnabled   bool            `json:"is_enabled" toml:"is_enabled"`
	IsSystem    bool            `json:"is_system,omitempty" toml:"is_system,omitempty"`
	IsRemovable bool            `json:"is_removable" toml:"is_removable"`
	Options     []Option        `json:"options,omitempty" toml:"options,omitempty"`
	Settings    Settings        `json:"settings,omitempty" toml:"settings,omitempty"`
	Validation  ValidationRules `json:"validation,omitempty" toml:"validation,omitempty"`
	Condition   *Condition      `json:"condition,omitempty" toml:"condition,omitempty"`
}

// Clone creates a deep copy of the field definition
func (f *FieldDefinition) Clone() FieldDefinition {
	c := *f

	if f.Options != nil {
		c.Options = make([]Option, len(f.Options))
		copy(c.Options, f.Options)
	}
	if f.Condition != nil {
		cond := *f.Condition
		c.Condition = &cond
	}

	c.Validation = f.Validation.clone()
	return c
}

func (v ValidationRules) clone() ValidationRules {
	c := v
	c.MinLength = copyIntPtr(v.MinLength)
	c.MaxLength = copyIntPtr(v.MaxLength)
	c.MinSelected = copyIntPtr(v.MinSelected)
	c.MaxSelected = copyIntPtr(v.MaxSelected)
	c.MaxFiles = copyIntPtr(v.MaxFiles)
	if v.Min != nil {
		m := *v.Min
		c.Min = &m
	}
	if v.Max != nil {
		m := *v.Max
		c.Max = &m
	}
	if v.AllowedExtensions != nil {
		c.AllowedExtensions = make([]string, len(v.AllowedExtensions))
		copy(c.AllowedExtensions, v.AllowedExtensions)
	}
	if v.AllowedMIMETypes != nil {
		c.AllowedMIMETypes = make([]string, len(v.AllowedMIMETypes))
		copy(c.AllowedMIMETypes, v.AllowedMIMETypes)
	}
	return c
}

func copyIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
