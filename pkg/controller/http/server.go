// Package http exposes the configuration lifecycle and submission intake as
// a thin JSON API over chi.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/formwork-lab/formwork/pkg/usecase"
	"github.com/formwork-lab/formwork/pkg/utils/logging"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

func New(uc *usecase.UseCases) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}

	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/config", func(r chi.Router) {
			r.Get("/draft", s.getDraft)
			r.Put("/draft", s.putDraft)
			r.Get("/published", s.getPublished)
			r.Post("/publish", s.publish)
			r.Post("/discard", s.discard)
			r.Delete("/draft/fields/{key}", s.removeField)
		})

		r.Get("/fields/active", s.activeFields)
		r.Get("/operators", s.operators)

		r.Route("/submissions", func(r chi.Router) {
			r.Post("/", s.createSubmission)
			r.Get("/export", s.exportSubmissions)
			r.Get("/{id}", s.getSubmission)
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger logs every request and puts a request-scoped logger with the
// request id into the context
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		logger := logging.Default().With("request_id", middleware.GetReqID(r.Context()))
		r = r.WithContext(logging.With(r.Context(), logger))

		defer func() {
			logger.Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
