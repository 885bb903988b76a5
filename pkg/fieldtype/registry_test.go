package fieldtype_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
	"github.com/formwork-lab/formwork/pkg/fieldtype"
)

func TestRegistryBuiltins(t *testing.T) {
	reg := fieldtype.New()

	for _, ft := range types.AllFieldTypes() {
		c, ok := reg.Get(ft)
		gt.Bool(t, ok).True()
		gt.Value(t, c.Type()).Equal(ft)
	}
}

func TestRegistryUnknownType(t *testing.T) {
	reg := fieldtype.New()

	_, ok := reg.Get("signature")
	gt.Bool(t, ok).False()
	gt.Bool(t, reg.Has("signature")).False()
}

func TestRegistryDeregister(t *testing.T) {
	reg := fieldtype.New()

	gt.Bool(t, reg.Has(types.FieldTypeFile)).True()
	reg.Deregister(types.FieldTypeFile)
	gt.Bool(t, reg.Has(types.FieldTypeFile)).False()
}

// stubContract lets tests replace a built-in before first access
type stubContract struct {
	t types.FieldType
}

func (s *stubContract) Type() types.FieldType { return s.t }
func (s *stubContract) Validate(env *fieldtype.Env, def *model.FieldDefinition, value any) error {
	return nil
}
func (s *stubContract) Sanitize(def *model.FieldDefinition, value any) (any, bool) {
	return value, true
}
func (s *stubContract) IsEmpty(value any) bool { return value == nil }
func (s *stubContract) FormatDisplay(def *model.FieldDefinition, value any) string {
	return "stub"
}
func (s *stubContract) FormatExport(def *model.FieldDefinition, value any) string {
	return "stub"
}

func TestRegistryExternalRegistrationWinsOverBuiltin(t *testing.T) {
	reg := fieldtype.New()

	// Registered before the first read access, so lazy built-in
	// registration must not overwrite it.
	stub := &stubContract{t: types.FieldTypeText}
	reg.Register(stub)

	c, ok := reg.Get(types.FieldTypeText)
	gt.Bool(t, ok).True()
	gt.Value(t, c.FormatDisplay(nil, "x")).Equal("stub")
}

func TestRegistryCustomType(t *testing.T) {
	reg := fieldtype.New()

	custom := &stubContract{t: "signature"}
	reg.Register(custom)

	gt.Bool(t, reg.Has("signature")).True()
	gt.Array(t, reg.All()).Length(len(types.AllFieldTypes()) + 1)
}

func TestRegistryByGroup(t *testing.T) {
	reg := fieldtype.New()

	groups := reg.ByGroup()
	gt.Array(t, groups[types.FieldGroupText]).Length(5)
	gt.Array(t, groups[types.FieldGroupChoice]).Length(3)
	gt.Array(t, groups[types.FieldGroupLayout]).Length(2)
	gt.Array(t, groups[types.FieldGroupSpecial]).Length(3)
}

func TestRegistryIsolatedInstances(t *testing.T) {
	a := fieldtype.New()
	b := fieldtype.New()

	a.Deregister(types.FieldTypeText)
	gt.Bool(t, a.Has(types.FieldTypeText)).False()
	gt.Bool(t, b.Has(types.FieldTypeText)).True()
}
