package fieldtype_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
	"github.com/formwork-lab/formwork/pkg/fieldtype"
)

func intPtr(v int) *int { return &v }

func getContract(t *testing.T, ft types.FieldType) fieldtype.Contract {
	t.Helper()
	c, ok := fieldtype.New().Get(ft)
	gt.Bool(t, ok).True()
	return c
}

func TestTextValidate(t *testing.T) {
	c := getContract(t, types.FieldTypeText)

	tests := []struct {
		name    string
		def     model.FieldDefinition
		value   any
		wantErr error
	}{
		{
			name:    "required empty fails",
			def:     model.FieldDefinition{Key: "first_name", Label: "First name", IsRequired: true},
			value:   "",
			wantErr: fieldtype.ErrRequired,
		},
		{
			name:    "required whitespace-only fails",
			def:     model.FieldDefinition{Key: "first_name", Label: "First name", IsRequired: true},
			value:   "   ",
			wantErr: fieldtype.ErrRequired,
		},
		{
			name:  "optional empty passes without type checks",
			def:   model.FieldDefinition{Key: "nickname", Label: "Nickname", Validation: model.ValidationRules{MinLength: intPtr(3)}},
			value: "",
		},
		{
			name:    "below min length",
			def:     model.FieldDefinition{Key: "bio", Label: "Bio", Validation: model.ValidationRules{MinLength: intPtr(5)}},
			value:   "hey",
			wantErr: fieldtype.ErrTooShort,
		},
		{
			name:    "above max length",
			def:     model.FieldDefinition{Key: "bio", Label: "Bio", Validation: model.ValidationRules{MaxLength: intPtr(3)}},
			value:   "hello",
			wantErr: fieldtype.ErrTooLong,
		},
		{
			name:    "pattern mismatch",
			def:     model.FieldDefinition{Key: "zip", Label: "ZIP", Validation: model.ValidationRules{Pattern: `^\d{5}$`}},
			value:   "abcde",
			wantErr: fieldtype.ErrPatternMismatch,
		},
		{
			name:    "broken pattern reports configuration problem",
			def:     model.FieldDefinition{Key: "zip", Label: "ZIP", Validation: model.ValidationRules{Pattern: `[`}},
			value:   "12345",
			wantErr: fieldtype.ErrInvalidPattern,
		},
		{
			name:  "valid value",
			def:   model.FieldDefinition{Key: "zip", Label: "ZIP", Validation: model.ValidationRules{Pattern: `^\d{5}$`}},
			value: "10115",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.Validate(&fieldtype.Env{}, &tt.def, tt.value)
			if tt.wantErr != nil {
				gt.Error(t, err).Is(tt.wantErr)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}

func TestTextSanitizeIdempotent(t *testing.T) {
	c := getContract(t, types.FieldTypeText)
	def := &model.FieldDefinition{Key: "name", Label: "Name"}

	once, ok := c.Sanitize(def, "  Jane Doe  ")
	gt.Bool(t, ok).True()
	gt.Value(t, once).Equal(any("Jane Doe"))

	twice, ok := c.Sanitize(def, once)
	gt.Bool(t, ok).True()
	gt.Value(t, twice).Equal(once)
}

func TestTextareaSanitizeNormalizesLineEndings(t *testing.T) {
	c := getContract(t, types.FieldTypeTextarea)
	def := &model.FieldDefinition{Key: "msg", Label: "Message"}

	got, ok := c.Sanitize(def, "line one\r\nline two")
	gt.Bool(t, ok).True()
	gt.Value(t, got).Equal(any("line one\nline two"))
}

func TestEmailValidate(t *testing.T) {
	c := getContract(t, types.FieldTypeEmail)
	def := &model.FieldDefinition{Key: "email", Label: "Email", IsRequired: true}

	gt.NoError(t, c.Validate(&fieldtype.Env{}, def, "jane@example.com"))
	gt.Error(t, c.Validate(&fieldtype.Env{}, def, "not-an-email")).Is(fieldtype.ErrInvalidEmail)
	gt.Error(t, c.Validate(&fieldtype.Env{}, def, "")).Is(fieldtype.ErrRequired)
}

func TestEmailSanitizeCanonicalizes(t *testing.T) {
	c := getContract(t, types.FieldTypeEmail)
	def := &model.FieldDefinition{Key: "email", Label: "Email"}

	got, ok := c.Sanitize(def, "  Jane@Example.COM ")
	gt.Bool(t, ok).True()
	gt.Value(t, got).Equal(any("jane@example.com"))
}

func TestPhoneValidate(t *testing.T) {
	c := getContract(t, types.FieldTypePhone)
	def := &model.FieldDefinition{Key: "phone", Label: "Phone"}

	gt.NoError(t, c.Validate(&fieldtype.Env{}, def, "+49 30 1234567"))
	gt.NoError(t, c.Validate(&fieldtype.Env{}, def, "030 123-4567"))
	gt.Error(t, c.Validate(&fieldtype.Env{}, def, "12")).Is(fieldtype.ErrInvalidPhone)
	gt.Error(t, c.Validate(&fieldtype.Env{}, def, "call me maybe")).Is(fieldtype.ErrInvalidPhone)
}

func TestPhoneSanitizeCanonicalizes(t *testing.T) {
	c := getContract(t, types.FieldTypePhone)
	def := &model.FieldDefinition{Key: "phone", Label: "Phone"}

	got, ok := c.Sanitize(def, "+49 (30) 123-4567")
	gt.Bool(t, ok).True()
	gt.Value(t, got).Equal(any("+49301234567"))
}

func TestURLValidate(t *testing.T) {
	c := getContract(t, types.FieldTypeURL)
	def := &model.FieldDefinition{Key: "website", Label: "Website"}

	gt.NoError(t, c.Validate(&fieldtype.Env{}, def, "https://example.com/page"))
	gt.NoError(t, c.Validate(&fieldtype.Env{}, def, "example.com"))
	gt.Error(t, c.Validate(&fieldtype.Env{}, def, "not a url")).Is(fieldtype.ErrInvalidURL)
	gt.Error(t, c.Validate(&fieldtype.Env{}, def, "ftp://example.com")).Is(fieldtype.ErrInvalidURL)
}

func TestURLSanitizeAddsScheme(t *testing.T) {
	c := getContract(t, types.FieldTypeURL)
	def := &model.FieldDefinition{Key: "website", Label: "Website"}

	got, ok := c.Sanitize(def, "example.com/about")
	gt.Bool(t, ok).True()
	gt.Value(t, got).Equal(any("https://example.com/about"))
}
