package types

// ConfigErrorCode is a stable identifier for a configuration lifecycle
// failure. Codes are surfaced to calling layers as-is so they can be mapped
// to user-facing messages independently; they are never localized here.
type ConfigErrorCode string

const (
	ConfigErrMissingSteps          ConfigErrorCode = "missing_steps"
	ConfigErrEmptySteps            ConfigErrorCode = "empty_steps"
	ConfigErrMissingFinale         ConfigErrorCode = "missing_finale"
	ConfigErrMissingRequiredField  ConfigErrorCode = "missing_required_field"
	ConfigErrMissingPrivacyConsent ConfigErrorCode = "missing_privacy_consent"
	ConfigErrMissingStepID         ConfigErrorCode = "missing_step_id"
	ConfigErrMissingStepTitle      ConfigErrorCode = "missing_step_title"
	ConfigErrNoChanges             ConfigErrorCode = "no_changes"

	// Field removal codes
	ConfigErrUnknownField      ConfigErrorCode = "unknown_field"
	ConfigErrFieldNotRemovable ConfigErrorCode = "field_not_removable"
	ConfigErrFieldInUse        ConfigErrorCode = "field_in_use"

	// Condition integrity codes reported by condition validation
	ConfigErrUnknownOperator       ConfigErrorCode = "unknown_operator"
	ConfigErrUnknownConditionField ConfigErrorCode = "unknown_condition_field"
	ConfigErrCircularCondition     ConfigErrorCode = "circular_condition"
)

// String returns the string representation of the error code
func (c ConfigErrorCode) String() string {
	return string(c)
}
