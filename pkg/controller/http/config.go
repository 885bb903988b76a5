package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/domain/types"
)

func (s *Server) getDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cfg, err := s.uc.Config.GetDraft(ctx)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, cfg)
}

func (s *Server) putDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var cfg model.FormConfiguration
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{
			"error": "invalid configuration document",
		})
		return
	}

	if err := s.uc.Config.SaveDraft(ctx, &cfg); err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, map[string]bool{"saved": true})
}

func (s *Server) removeField(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	key := types.FieldKey(chi.URLParam(r, "key"))
	if err := s.uc.Config.RemoveField(ctx, key); err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, map[string]bool{"removed": true})
}

func (s *Server) getPublished(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cfg, err := s.uc.Config.GetPublished(ctx)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, cfg)
}

func (s *Server) publish(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	version, err := s.uc.Config.Publish(ctx)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, map[string]int{"version": version})
}

func (s *Server) discard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := s.uc.Config.DiscardDraft(ctx); err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, map[string]bool{"discarded": true})
}

func (s *Server) activeFields(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	active, err := s.uc.Config.ActiveFields(ctx)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, active)
}

// operators lists the condition operator catalogue, optionally narrowed to
// one field type via the ?type query parameter
func (s *Server) operators(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if raw := r.URL.Query().Get("type"); raw != "" {
		ft := types.FieldType(raw)
		if !ft.IsValid() {
			respondJSON(ctx, w, http.StatusBadRequest, map[string]string{
				"error": "unknown field type",
			})
			return
		}
		respondJSON(ctx, w, http.StatusOK, map[string]any{
			"operators": types.OperatorsFor(ft),
		})
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{
		"operators": types.AllOperators(),
	})
}
