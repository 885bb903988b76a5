package types

// FieldKey identifies a field within a form configuration
type FieldKey string

// String returns the string representation of the field key
func (k FieldKey) String() string {
	return string(k)
}

// Well-known field keys owned by the engine
const (
	FieldKeyFirstName      FieldKey = "first_name"
	FieldKeyLastName       FieldKey = "last_name"
	FieldKeyEmail          FieldKey = "email"
	FieldKeyPhone          FieldKey = "phone"
	FieldKeyFileUpload     FieldKey = "file_upload"
	FieldKeySummary        FieldKey = "summary"
	FieldKeyPrivacyConsent FieldKey = "privacy_consent"
)

// RequiredFieldKeys returns the keys that must be present, visible and
// non-removable in every valid configuration
func RequiredFieldKeys() []FieldKey {
	return []FieldKey{FieldKeyFirstName, FieldKeyLastName, FieldKeyEmail}
}

// SystemFieldKeys returns the keys of engine-owned fields that live in a
// step's system slot after schema version 2
func SystemFieldKeys() []FieldKey {
	return []FieldKey{FieldKeyFileUpload, FieldKeySummary, FieldKeyPrivacyConsent}
}

// IsRequiredKey reports whether the key belongs to the required field set
func IsRequiredKey(k FieldKey) bool {
	for _, rk := range RequiredFieldKeys() {
		if rk == k {
			return true
		}
	}
	return false
}

// IsSystemKey reports whether the key belongs to an engine-owned field
func IsSystemKey(k FieldKey) bool {
	for _, sk := range SystemFieldKeys() {
		if sk == k {
			return true
		}
	}
	return false
}

// Width is a layout hint attached to fields during schema migration
type Width string

const (
	WidthHalf Width = "half"
	WidthFull Width = "full"
)
