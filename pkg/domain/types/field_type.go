package types

// FieldType represents the type of a form field
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeEmail    FieldType = "email"
	FieldTypePhone    FieldType = "phone"
	FieldTypeURL      FieldType = "url"
	FieldTypeNumber   FieldType = "number"
	FieldTypeDate     FieldType = "date"
	FieldTypeSelect   FieldType = "select"
	FieldTypeRadio    FieldType = "radio"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeFile     FieldType = "file"
	FieldTypeHeading  FieldType = "heading"
	FieldTypeHTML     FieldType = "html"
)

// FieldGroup classifies field types for editor palettes
type FieldGroup string

const (
	FieldGroupText    FieldGroup = "text"
	FieldGroupChoice  FieldGroup = "choice"
	FieldGroupSpecial FieldGroup = "special"
	FieldGroupLayout  FieldGroup = "layout"
)

// AllFieldTypes returns all valid field types
func AllFieldTypes() []FieldType {
	return []FieldType{
		FieldTypeText,
		FieldTypeTextarea,
		FieldTypeEmail,
		FieldTypePhone,
		FieldTypeURL,
		FieldTypeNumber,
		FieldTypeDate,
		FieldTypeSelect,
		FieldTypeRadio,
		FieldTypeCheckbox,
		FieldTypeFile,
		FieldTypeHeading,
		FieldTypeHTML,
	}
}

// IsValid checks if the field type is valid
func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeText,
		FieldTypeTextarea,
		FieldTypeEmail,
		FieldTypePhone,
		FieldTypeURL,
		FieldTypeNumber,
		FieldTypeDate,
		FieldTypeSelect,
		FieldTypeRadio,
		FieldTypeCheckbox,
		FieldTypeFile,
		FieldTypeHeading,
		FieldTypeHTML:
		return true
	default:
		return false
	}
}

// Group returns the palette group the field type belongs to
func (t FieldType) Group() FieldGroup {
	switch t {
	case FieldTypeText, FieldTypeTextarea, FieldTypeEmail, FieldTypePhone, FieldTypeURL:
		return FieldGroupText
	case FieldTypeSelect, FieldTypeRadio, FieldTypeCheckbox:
		return FieldGroupChoice
	case FieldTypeHeading, FieldTypeHTML:
		return FieldGroupLayout
	default:
		return FieldGroupSpecial
	}
}

// IsDisplayOnly reports whether the field type never carries submitted data
func (t FieldType) IsDisplayOnly() bool {
	return t == FieldTypeHeading || t == FieldTypeHTML
}

// IsNumeric reports whether values of this field type are ordered numerically
func (t FieldType) IsNumeric() bool {
	return t == FieldTypeNumber || t == FieldTypeDate
}

// String returns the string representation of the field type
func (t FieldType) String() string {
	return string(t)
}
