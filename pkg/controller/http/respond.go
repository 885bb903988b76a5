package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
	"github.com/formwork-lab/formwork/pkg/utils/errutil"
)

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		_ = errutil.Handle(ctx, err, "failed to encode response")
	}
}

// respondError maps domain errors onto the API contract: configuration
// lifecycle errors carry a stable code and map to 422, everything else is an
// internal error.
func respondError(ctx context.Context, w http.ResponseWriter, err error) {
	if code, ok := model.ConfigErrorCodeOf(err); ok {
		_ = errutil.Handle(ctx, err, "configuration rejected")
		respondJSON(ctx, w, http.StatusUnprocessableEntity, map[string]any{
			"error": code,
		})
		return
	}

	if errors.Is(err, model.ErrNoChanges) {
		respondJSON(ctx, w, http.StatusUnprocessableEntity, map[string]any{
			"error": types.ConfigErrNoChanges,
		})
		return
	}

	errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
}

// respondFieldErrors reports per-field validation failures
func respondFieldErrors(ctx context.Context, w http.ResponseWriter, fieldErrs map[types.FieldKey]string) {
	respondJSON(ctx, w, http.StatusBadRequest, map[string]any{
		"fields": fieldErrs,
	})
}
