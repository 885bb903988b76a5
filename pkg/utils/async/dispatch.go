package async

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/formwork-lab/formwork/pkg/utils/logging"
)

// Dispatch runs the handler in a new goroutine detached from the caller's
// context lifetime. The request-scoped logger is carried over; errors and
// panics are logged, never propagated.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	bgCtx := logging.With(context.Background(), logging.From(ctx))

	go func() {
		logger := logging.From(bgCtx)
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic in async handler", "panic", r)
			}
		}()

		if err := handler(bgCtx); err != nil {
			logger.Error("async handler failed", "error", goerr.Unwrap(err))
		}
	}()
}
