package conditional

import (
	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
)

// BuildDependencyGraph maps each field key to the keys whose visibility
// condition references it. Every field appears as a node; fields without
// dependents keep an empty entry. The graph is derived on demand and never
// cached across configuration edits.
func BuildDependencyGraph(fields []model.FieldDefinition) map[types.FieldKey][]types.FieldKey {
	graph := make(map[types.FieldKey][]types.FieldKey, len(fields))

	for i := range fields {
		if _, ok := graph[fields[i].Key]; !ok {
			graph[fields[i].Key] = nil
		}
	}

	for i := range fields {
		cond := fields[i].Condition
		if cond.IsZero() {
			continue
		}
		graph[cond.Field] = append(graph[cond.Field], fields[i].Key)
	}

	return graph
}

// HasCircularDependency reports whether any field's visibility eventually
// depends on itself. Depth-first traversal with a visiting marker detects
// back-edges.
func HasCircularDependency(fields []model.FieldDefinition) bool {
	graph := BuildDependencyGraph(fields)

	const (
		unvisited = iota
		visiting
		visited
	)
	state := make(map[types.FieldKey]int, len(graph))

	var visit func(key types.FieldKey) bool
	visit = func(key types.FieldKey) bool {
		switch state[key] {
		case visiting:
			return true
		case visited:
			return false
		}

		state[key] = visiting
		for _, dependent := range graph[key] {
			if visit(dependent) {
				return true
			}
		}
		state[key] = visited
		return false
	}

	for key := range graph {
		if visit(key) {
			return true
		}
	}
	return false
}

// IsFieldVisible reports whether the field should currently be shown.
// A field without a condition is always visible.
func IsFieldVisible(field *model.FieldDefinition, data model.FormData) bool {
	if field.Condition.IsZero() {
		return true
	}
	return Evaluate(field.Condition, data)
}

// FilterVisibleFields keeps the fields whose own condition holds, preserving
// order. Visibility is one-level: a field stays visible even when the field
// its condition references is itself hidden.
func FilterVisibleFields(fields []model.FieldDefinition, data model.FormData) []model.FieldDefinition {
	out := make([]model.FieldDefinition, 0, len(fields))
	for i := range fields {
		if IsFieldVisible(&fields[i], data) {
			out = append(out, fields[i])
		}
	}
	return out
}

// ValidateCondition checks a condition's structural integrity against the
// set of declared field keys. An absent condition is valid. Errors are
// returned, never panicked, so a broken rule degrades to a reportable
// configuration problem.
func ValidateCondition(cond *model.Condition, validKeys map[types.FieldKey]struct{}) error {
	if cond.IsZero() {
		return nil
	}

	if _, ok := validKeys[cond.Field]; !ok {
		return model.NewConfigError(types.ConfigErrUnknownConditionField,
			"condition references an unknown field",
			fieldKeyValue(cond.Field))
	}

	if !cond.Operator.IsValid() {
		return model.NewConfigError(types.ConfigErrUnknownOperator,
			"condition uses an unknown operator",
			fieldKeyValue(cond.Field),
			operatorValue(cond.Operator))
	}

	return nil
}
