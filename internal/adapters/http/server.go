// Package http exposes a small control surface over a running loop: liveness,
// cooperative stop, and recorded run history.
package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kevin-j-channon/not-a-timer/pkg/ports"
)

// Controller is the slice of the Runner the control surface needs.
// *notatimer.Runner satisfies it directly.
type Controller interface {
	Stop()
	IsRunning() bool
}

// StatusResponse is the body of GET /status.
type StatusResponse struct {
	Running bool `json:"running"`
}

// Server wires the controller and run store into HTTP handlers.
type Server struct {
	Controller Controller
	Store      ports.RunStore
}

// NewHandler creates the control HTTP handler. The metrics handler (typically
// promhttp.Handler()) is mounted at /metrics when non-nil; the store may be
// nil, in which case the run-history routes respond 404.
func NewHandler(ctrl Controller, store ports.RunStore, metrics http.Handler) http.Handler {
	server := &Server{Controller: ctrl, Store: store}
	r := chi.NewRouter()

	r.Get("/status", server.Status)
	r.Post("/stop", server.Stop)
	if store != nil {
		r.Get("/runs", server.ListRuns)
		r.Get("/runs/{id}", server.GetRun)
	}
	if metrics != nil {
		r.Handle("/metrics", metrics)
	}

	return r
}

// Status handles GET /status.
func (s *Server) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{Running: s.Controller.IsRunning()})
}

// Stop handles POST /stop. The stop is cooperative, so the response is 202:
// the loop exits at the next iteration boundary, not by the time we reply.
func (s *Server) Stop(w http.ResponseWriter, r *http.Request) {
	s.Controller.Stop()
	w.WriteHeader(http.StatusAccepted)
}

// ListRuns handles GET /runs.
func (s *Server) ListRuns(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Store.List(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("List error: %v", err), http.StatusInternalServerError)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, ids)
}

// GetRun handles GET /runs/{id}.
func (s *Server) GetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, err := s.Store.Load(r.Context(), id)
	if err != nil {
		if err == ports.ErrRunNotFound {
			http.Error(w, "run not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Load error: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Printf("encode error: %v\n", err)
	}
}
