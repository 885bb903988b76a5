package fieldtype_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
	"github.com/formwork-lab/formwork/pkg/fieldtype"
)

func floatPtr(v float64) *float64 { return &v }

func TestNumberValidate(t *testing.T) {
	c := getContract(t, types.FieldTypeNumber)
	def := &model.FieldDefinition{
		Key:   "age",
		Label: "Age",
		Validation: model.ValidationRules{
			Min: floatPtr(18),
			Max: floatPtr(120),
		},
	}

	gt.NoError(t, c.Validate(&fieldtype.Env{}, def, "25"))
	gt.NoError(t, c.Validate(&fieldtype.Env{}, def, 18))
	gt.NoError(t, c.Validate(&fieldtype.Env{}, def, float64(120)))
	gt.Error(t, c.Validate(&fieldtype.Env{}, def, "17")).Is(fieldtype.ErrOutOfRange)
	gt.Error(t, c.Validate(&fieldtype.Env{}, def, "121")).Is(fieldtype.ErrOutOfRange)
	gt.Error(t, c.Validate(&fieldtype.Env{}, def, "twenty")).Is(fieldtype.ErrNotNumber)
	gt.Error(t, c.Validate(&fieldtype.Env{}, def, "25abc")).Is(fieldtype.ErrNotNumber)
}

func TestNumberSanitizeCoercion(t *testing.T) {
	c := getContract(t, types.FieldTypeNumber)

	intDef := &model.FieldDefinition{Key: "age", Label: "Age"}
	got, ok := c.Sanitize(intDef, " 42 ")
	gt.Bool(t, ok).True()
	gt.Value(t, got).Equal(any(int64(42)))

	floatDef := &model.FieldDefinition{
		Key:      "weight",
		Label:    "Weight",
		Settings: model.Settings{Step: "0.1"},
	}
	got, ok = c.Sanitize(floatDef, "72.5")
	gt.Bool(t, ok).True()
	gt.Value(t, got).Equal(any(72.5))

	_, ok = c.Sanitize(intDef, "abc")
	gt.Bool(t, ok).False()
}

func TestDateValidate(t *testing.T) {
	c := getContract(t, types.FieldTypeDate)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	env := &fieldtype.Env{Now: now}

	birthDef := &model.FieldDefinition{
		Key:   "birth_date",
		Label: "Date of birth",
		Validation: model.ValidationRules{
			MinDate: "1900-01-01",
			MaxDate: "today",
		},
	}

	gt.NoError(t, c.Validate(env, birthDef, "1990-06-01"))
	gt.NoError(t, c.Validate(env, birthDef, "2026-03-15"))
	gt.Error(t, c.Validate(env, birthDef, "2026-03-16")).Is(fieldtype.ErrDateOutOfRange)
	gt.Error(t, c.Validate(env, birthDef, "1899-12-31")).Is(fieldtype.ErrDateOutOfRange)
	gt.Error(t, c.Validate(env, birthDef, "not-a-date")).Is(fieldtype.ErrInvalidDate)
	gt.Error(t, c.Validate(env, birthDef, "15.03.2026")).Is(fieldtype.ErrInvalidDate)
}

func TestDateFormat(t *testing.T) {
	c := getContract(t, types.FieldTypeDate)
	def := &model.FieldDefinition{Key: "birth_date", Label: "Date of birth"}

	gt.Value(t, c.FormatDisplay(def, "1990-06-01")).Equal("Jun 1, 1990")
	gt.Value(t, c.FormatExport(def, "1990-06-01")).Equal("1990-06-01")

	got, ok := c.Sanitize(def, " 1990-06-01 ")
	gt.Bool(t, ok).True()
	gt.Value(t, got).Equal(any("1990-06-01"))
}
