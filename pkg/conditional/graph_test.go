package conditional_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/formwork-lab/formwork/pkg/conditional"
	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
)

func condField(key types.FieldKey, on types.FieldKey, op types.Operator, value string) model.FieldDefinition {
	f := model.FieldDefinition{
		Key:       key,
		Type:      types.FieldTypeText,
		Label:     string(key),
		IsEnabled: true,
	}
	if on != "" {
		f.Condition = &model.Condition{Field: on, Operator: op, Value: value}
	}
	return f
}

func TestBuildDependencyGraph(t *testing.T) {
	fields := []model.FieldDefinition{
		condField("a", "", "", ""),
		condField("b", "a", types.OperatorNotEmpty, ""),
		condField("c", "b", types.OperatorEquals, "x"),
	}

	graph := conditional.BuildDependencyGraph(fields)

	gt.Map(t, graph).HasKey("a")
	gt.Map(t, graph).HasKey("b")
	gt.Map(t, graph).HasKey("c")
	gt.Array(t, graph["a"]).Equal([]types.FieldKey{"b"})
	gt.Array(t, graph["b"]).Equal([]types.FieldKey{"c"})
	gt.Value(t, len(graph["c"])).Equal(0)
}

func TestHasCircularDependency(t *testing.T) {
	t.Run("chain is acyclic", func(t *testing.T) {
		fields := []model.FieldDefinition{
			condField("a", "", "", ""),
			condField("b", "a", types.OperatorNotEmpty, ""),
			condField("c", "b", types.OperatorNotEmpty, ""),
		}
		gt.Value(t, conditional.HasCircularDependency(fields)).Equal(false)
	})

	t.Run("closing the chain creates a cycle", func(t *testing.T) {
		fields := []model.FieldDefinition{
			condField("a", "c", types.OperatorNotEmpty, ""),
			condField("b", "a", types.OperatorNotEmpty, ""),
			condField("c", "b", types.OperatorNotEmpty, ""),
		}
		gt.Value(t, conditional.HasCircularDependency(fields)).Equal(true)
	})

	t.Run("self-reference is a cycle", func(t *testing.T) {
		fields := []model.FieldDefinition{
			condField("a", "a", types.OperatorNotEmpty, ""),
		}
		gt.Value(t, conditional.HasCircularDependency(fields)).Equal(true)
	})

	t.Run("no conditions no cycles", func(t *testing.T) {
		fields := []model.FieldDefinition{
			condField("a", "", "", ""),
			condField("b", "", "", ""),
		}
		gt.Value(t, conditional.HasCircularDependency(fields)).Equal(false)
	})
}

func TestFilterVisibleFields(t *testing.T) {
	fields := []model.FieldDefinition{
		condField("country", "", "", ""),
		condField("state", "country", types.OperatorEquals, "US"),
		condField("province", "country", types.OperatorEquals, "CA"),
	}

	t.Run("keeps matching fields in order", func(t *testing.T) {
		visible := conditional.FilterVisibleFields(fields, model.FormData{"country": "US"})
		gt.Array(t, visible).Length(2)
		gt.Value(t, visible[0].Key).Equal("country")
		gt.Value(t, visible[1].Key).Equal("state")
	})

	t.Run("one-level semantics: no transitive hiding", func(t *testing.T) {
		chain := []model.FieldDefinition{
			condField("a", "", "", ""),
			condField("b", "a", types.OperatorEquals, "show"),
			condField("c", "b", types.OperatorEmpty, ""),
		}
		// b is hidden (a != "show"), but c only looks at b's value, which is
		// empty, so c stays visible.
		visible := conditional.FilterVisibleFields(chain, model.FormData{"a": "hide"})
		gt.Array(t, visible).Length(2)
		gt.Value(t, visible[0].Key).Equal("a")
		gt.Value(t, visible[1].Key).Equal("c")
	})
}

func TestValidateCondition(t *testing.T) {
	validKeys := map[types.FieldKey]struct{}{
		"email": {},
		"age":   {},
	}

	t.Run("nil condition is valid", func(t *testing.T) {
		gt.NoError(t, conditional.ValidateCondition(nil, validKeys))
	})

	t.Run("unknown field key", func(t *testing.T) {
		err := conditional.ValidateCondition(
			&model.Condition{Field: "ghost", Operator: types.OperatorEquals, Value: "x"}, validKeys)
		gt.Error(t, err).Is(model.ErrInvalidConfig)
		code, ok := model.ConfigErrorCodeOf(err)
		gt.Bool(t, ok).True()
		gt.Value(t, code).Equal(types.ConfigErrUnknownConditionField)
	})

	t.Run("unknown operator", func(t *testing.T) {
		err := conditional.ValidateCondition(
			&model.Condition{Field: "age", Operator: "between", Value: "1,2"}, validKeys)
		gt.Error(t, err)
		code, ok := model.ConfigErrorCodeOf(err)
		gt.Bool(t, ok).True()
		gt.Value(t, code).Equal(types.ConfigErrUnknownOperator)
	})

	t.Run("valid condition", func(t *testing.T) {
		gt.NoError(t, conditional.ValidateCondition(
			&model.Condition{Field: "age", Operator: types.OperatorGreaterThan, Value: "18"}, validKeys))
	})
}

func TestToExpression(t *testing.T) {
	t.Run("nil condition", func(t *testing.T) {
		gt.Value(t, conditional.ToExpression(nil)).Equal("true")
	})

	t.Run("equals", func(t *testing.T) {
		expr := conditional.ToExpression(&model.Condition{
			Field: "country", Operator: types.OperatorEquals, Value: "DE",
		})
		gt.Value(t, expr).Equal(`fwStr(values["country"]) === "DE"`)
	})

	t.Run("in trims tokens", func(t *testing.T) {
		expr := conditional.ToExpression(&model.Condition{
			Field: "country", Operator: types.OperatorIn, Value: "DE, AT, CH",
		})
		gt.Value(t, expr).Equal(`["DE", "AT", "CH"].indexOf(fwStr(values["country"])) !== -1`)
	})

	t.Run("unknown operator emits false", func(t *testing.T) {
		expr := conditional.ToExpression(&model.Condition{
			Field: "country", Operator: "matches", Value: "x",
		})
		gt.Value(t, expr).Equal("false")
	})
}
