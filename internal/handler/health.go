package handler

import (
	"net/http"
)

// GetHealth handles GET /api/healthcheck.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, messageBody{Message: "All OK"})
}

// GetEndpoints handles GET /api with the endpoint description document.
func (s *Server) GetEndpoints(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(s.endpoints)
}
