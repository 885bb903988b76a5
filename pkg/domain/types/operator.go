package types

// Operator represents a conditional-visibility comparison operator
type Operator string

const (
	OperatorEquals      Operator = "equals"
	OperatorNotEquals   Operator = "not_equals"
	OperatorContains    Operator = "contains"
	OperatorNotEmpty    Operator = "not_empty"
	OperatorEmpty       Operator = "empty"
	OperatorChecked     Operator = "checked"
	OperatorGreaterThan Operator = "greater_than"
	OperatorLessThan    Operator = "less_than"
	OperatorIn          Operator = "in"
	OperatorStartsWith  Operator = "starts_with"
)

// AllOperators returns all valid operators
func AllOperators() []Operator {
	return []Operator{
		OperatorEquals,
		OperatorNotEquals,
		OperatorContains,
		OperatorNotEmpty,
		OperatorEmpty,
		OperatorChecked,
		OperatorGreaterThan,
		OperatorLessThan,
		OperatorIn,
		OperatorStartsWith,
	}
}

// IsValid checks if the operator is valid
func (o Operator) IsValid() bool {
	switch o {
	case OperatorEquals,
		OperatorNotEquals,
		OperatorContains,
		OperatorNotEmpty,
		OperatorEmpty,
		OperatorChecked,
		OperatorGreaterThan,
		OperatorLessThan,
		OperatorIn,
		OperatorStartsWith:
		return true
	default:
		return false
	}
}

// NeedsValue reports whether the operator compares against a condition value.
// empty, not_empty and checked only inspect the referenced field.
func (o Operator) NeedsValue() bool {
	switch o {
	case OperatorNotEmpty, OperatorEmpty, OperatorChecked:
		return false
	default:
		return true
	}
}

// OperatorsFor returns the operators applicable to a field of the given type.
// Numeric comparisons are only offered for numerically ordered field types,
// and checked only for checkboxes.
func OperatorsFor(t FieldType) []Operator {
	ops := make([]Operator, 0, 10)
	for _, op := range AllOperators() {
		switch op {
		case OperatorGreaterThan, OperatorLessThan:
			if !t.IsNumeric() {
				continue
			}
		case OperatorChecked:
			if t != FieldTypeCheckbox {
				continue
			}
		}
		ops = append(ops, op)
	}
	return ops
}

// String returns the string representation of the operator
func (o Operator) String() string {
	return string(o)
}
