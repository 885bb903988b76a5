package conditional

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
)

func fieldKeyValue(k types.FieldKey) goerr.Option {
	return goerr.V(model.FieldKeyKey, k)
}

func operatorValue(o types.Operator) goerr.Option {
	return goerr.V(model.OperatorKey, o)
}
