package interfaces

import (
	"context"
	"time"

	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
)

// Uploader stores raw upload bytes and returns opaque reference IDs. The
// core validates declared upload constraints before delegating; it never
// touches file content itself.
type Uploader interface {
	ProcessUploads(ctx context.Context, ownerID string, fileFields []model.FieldDefinition, uploads []model.RawUpload) (map[types.FieldKey][]string, error)
}

// Clock abstracts wall-clock access so date-bound validation stays
// deterministic under test
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface
type ClockFunc func() time.Time

// Now returns the function's current time
func (f ClockFunc) Now() time.Time {
	return f()
}

// RealClock returns a Clock backed by time.Now
func RealClock() Clock {
	return ClockFunc(time.Now)
}
