// Package http exposes catalog and run introspection over a JSON API,
// along with the Prometheus metrics endpoint.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/gantry"
	"github.com/aretw0/gantry/internal/observability"
	"github.com/aretw0/gantry/pkg/domain"
)

// Server wraps the Orchestrator for read-only HTTP introspection.
// Runs are driven by the CLI host loop, not over HTTP; this surface exists
// for dashboards and debugging.
type Server struct {
	orc    *gantry.Orchestrator
	logger *slog.Logger
}

// NewHandler creates the HTTP handler for the orchestrator.
// metrics may be nil, in which case /metrics is not mounted.
func NewHandler(orc *gantry.Orchestrator, metrics *observability.Metrics, logger *slog.Logger) http.Handler {
	s := &Server{orc: orc, logger: logger}

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Get("/recipes", s.handleListRecipes)
	r.Get("/recipes/{id}", s.handleGetRecipe)
	r.Get("/runs", s.handleListRuns)
	r.Get("/runs/{session}", s.handleGetRun)
	if metrics != nil {
		r.Handle("/metrics", metrics.Handler())
	}
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{"status": "ok", "version": gantry.Version})
}

func (s *Server) handleListRecipes(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]any{"recipes": s.orc.Recipes()})
}

func (s *Server) handleGetRecipe(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	recipe, err := s.orc.Recipe(id)
	if err != nil {
		s.respondError(w, http.StatusNotFound, err)
		return
	}
	s.respond(w, http.StatusOK, recipe)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.orc.Sessions(r.Context())
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err)
		return
	}
	if sessions == nil {
		sessions = []string{}
	}
	s.respond(w, http.StatusOK, map[string]any{"sessions": sessions})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	session := chi.URLParam(r, "session")

	run, err := s.orc.ResumeRun(r.Context(), session)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrSessionNotFound) {
			status = http.StatusNotFound
		}
		s.respondError(w, status, err)
		return
	}
	s.respond(w, http.StatusOK, run)
}

func (s *Server) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("encoding response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, err error) {
	s.respond(w, status, map[string]string{"error": err.Error()})
}
