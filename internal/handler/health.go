package handler

import (
	"errors"
	"net/http"

	"github.com/pkordes/startrek-travel/internal/domain"
	"github.com/pkordes/startrek-travel/spec"
)

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

// getHealth handles GET /healthz. The site degrades to fallback data when
// the store is down, so the status is always "ok"; Store says why.
func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	store := "ok"
	if s.store != nil {
		if err := s.store.Ping(r.Context()); err != nil {
			store = "unavailable"
			if errors.Is(err, domain.ErrNotConfigured) {
				store = "demo"
			}
		}
	}
	s.writeJSON(w, r, http.StatusOK, HealthResponse{Status: "ok", Store: store})
}

// getOpenAPI handles GET /openapi.yaml.
func (s *Server) getOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(spec.OpenAPI)
}
