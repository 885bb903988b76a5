package model

import (
	"github.com/formwork-lab/formwork/pkg/domain/types"
)

// DefaultConfiguration returns the configuration used before any draft has
// been saved: a three-step form with the required identity fields, a
// document upload step and a finale step carrying summary and consent.
func DefaultConfiguration() *FormConfiguration {
	intPtr := func(v int) *int { return &v }

	return &FormConfiguration{
		Version: CurrentSchemaVersion,
		Settings: FormSettings{
			SubmitLabel: "Submit",
		},
		Steps: []FormStep{
			{
				ID:       "about_you",
				Title:    "About you",
				Position: 0,
				Fields: []FieldDefinition{
					{
						Key:        types.FieldKeyFirstName,
						Type:       types.FieldTypeText,
						Label:      "First name",
						IsRequired: true,
						IsEnabled:  true,
						Settings:   Settings{Width: types.WidthHalf},
						Validation: ValidationRules{MaxLength: intPtr(100)},
					},
					{
						Key:        types.FieldKeyLastName,
						Type:       types.FieldTypeText,
						Label:      "Last name",
						IsRequired: true,
						IsEnabled:  true,
						Settings:   Settings{Width: types.WidthHalf},
						Validation: ValidationRules{MaxLength: intPtr(100)},
					},
					{
						Key:        types.FieldKeyEmail,
						Type:       types.FieldTypeEmail,
						Label:      "Email",
						IsRequired: true,
						IsEnabled:  true,
						Settings:   Settings{Width: types.WidthHalf},
					},
					{
						Key:         types.FieldKeyPhone,
						Type:        types.FieldTypePhone,
						Label:       "Phone",
						IsEnabled:   true,
						IsRemovable: true,
						Settings:    Settings{Width: types.WidthHalf},
					},
				},
			},
			{
				ID:       "documents",
				Title:    "Documents",
				Position: 1,
				Fields:   []FieldDefinition{},
				SystemFields: []FieldDefinition{
					{
						Key:       types.FieldKeyFileUpload,
						Type:      types.FieldTypeFile,
						Label:     "Documents",
						IsEnabled: true,
						IsSystem:  true,
						Settings:  Settings{Multiple: true, Width: types.WidthFull},
						Validation: ValidationRules{
							MaxFileSize:       10 << 20,
							MaxFiles:          intPtr(5),
							AllowedExtensions: []string{"pdf", "doc", "docx", "jpg", "jpeg", "png"},
						},
					},
				},
			},
			{
				ID:       "review",
				Title:    "Review & consent",
				Position: 2,
				Fields:   []FieldDefinition{},
				SystemFields: []FieldDefinition{
					{
						Key:       types.FieldKeySummary,
						Type:      types.FieldTypeHTML,
						Label:     "Summary",
						IsEnabled: true,
						IsSystem:  true,
						Settings:  Settings{Width: types.WidthFull},
					},
					{
						Key:        types.FieldKeyPrivacyConsent,
						Type:       types.FieldTypeCheckbox,
						Label:      "I agree to the privacy policy",
						IsRequired: true,
						IsEnabled:  true,
						IsSystem:   true,
						Settings:   Settings{Mode: CheckboxSingle, Width: types.WidthFull},
					},
				},
				IsFinale: true,
			},
		},
	}
}
