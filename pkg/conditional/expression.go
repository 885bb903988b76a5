package conditional

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
)

// ToExpression renders a condition as a boolean expression for the
// client-side rule interpreter. The emitted expression references the live
// value map as `values` and the interpreter's coercion helpers fwStr, fwNum,
// fwTruthy and fwChecked, which mirror Stringify, ParseFloat, Truthy and
// IsChecked. For any input the expression evaluates to the same result as
// Evaluate.
func ToExpression(cond *model.Condition) string {
	if cond.IsZero() {
		return "true"
	}

	access := fmt.Sprintf("values[%s]", strconv.Quote(cond.Field.String()))
	value := strconv.Quote(cond.Value)

	switch cond.Operator {
	case types.OperatorEquals:
		return fmt.Sprintf("fwStr(%s) === %s", access, value)
	case types.OperatorNotEquals:
		return fmt.Sprintf("fwStr(%s) !== %s", access, value)
	case types.OperatorContains:
		return fmt.Sprintf("fwStr(%s).indexOf(%s) !== -1", access, value)
	case types.OperatorNotEmpty:
		return fmt.Sprintf("fwTruthy(%s)", access)
	case types.OperatorEmpty:
		return fmt.Sprintf("!fwTruthy(%s)", access)
	case types.OperatorChecked:
		return fmt.Sprintf("fwChecked(%s)", access)
	case types.OperatorGreaterThan:
		return fmt.Sprintf("fwNum(%s) > fwNum(%s)", access, value)
	case types.OperatorLessThan:
		return fmt.Sprintf("fwNum(%s) < fwNum(%s)", access, value)
	case types.OperatorIn:
		tokens := strings.Split(cond.Value, ",")
		quoted := make([]string, len(tokens))
		for i, token := range tokens {
			quoted[i] = strconv.Quote(strings.TrimSpace(token))
		}
		return fmt.Sprintf("[%s].indexOf(fwStr(%s)) !== -1", strings.Join(quoted, ", "), access)
	case types.OperatorStartsWith:
		return fmt.Sprintf("fwStr(%s).indexOf(%s) === 0", access, value)
	default:
		// Unknown operators fail closed on the client as well
		return "false"
	}
}

// ToExpressionAll renders a condition list combined with the given mode
func ToExpressionAll(conds []model.Condition, mode Mode) string {
	if len(conds) == 0 {
		if mode == ModeOr {
			return "false"
		}
		return "true"
	}

	parts := make([]string, len(conds))
	for i := range conds {
		parts[i] = "(" + ToExpression(&conds[i]) + ")"
	}

	join := " && "
	if mode == ModeOr {
		join = " || "
	}
	return strings.Join(parts, join)
}
