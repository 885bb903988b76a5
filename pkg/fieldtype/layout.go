package fieldtype

import (
	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
)

// layoutField covers heading and html blocks. They are display-only:
// validation always passes and sanitize yields no stored value.
type layoutField struct {
	base
}

func newLayoutField(t types.FieldType) *layoutField {
	return &layoutField{base{fieldType: t}}
}

func (f *layoutField) Validate(env *Env, def *model.FieldDefinition, value any) error {
	return nil
}

func (f *layoutField) Sanitize(def *model.FieldDefinition, value any) (any, bool) {
	return nil, false
}

func (f *layoutField) IsEmpty(value any) bool {
	return true
}

func (f *layoutField) FormatDisplay(def *model.FieldDefinition, value any) string {
	if f.fieldType == types.FieldTypeHTML {
		return def.Settings.Content
	}
	return def.Label
}

func (f *layoutField) FormatExport(def *model.FieldDefinition, value any) string {
	return ""
}
