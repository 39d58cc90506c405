package handler

import (
	"net/http"

	"github.com/pkordes/nc-news/backend/internal/domain"
)

type topicJSON struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

var topicFields = []string{"slug", "description"}

// ListTopics handles GET /api/topics.
func (s *Server) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := s.topics.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	out := make([]topicJSON, len(topics))
	for i, t := range topics {
		out[i] = topicJSON(t)
	}
	writeJSON(w, http.StatusOK, map[string][]topicJSON{"topics": out})
}

// CreateTopic handles POST /api/topics.
func (s *Server) CreateTopic(w http.ResponseWriter, r *http.Request) {
	var req topicJSON
	if err := decodeAllowed(r, "topic", topicFields, &req); err != nil {
		writeError(w, r, err)
		return
	}
	created, err := s.topics.Create(r.Context(), domain.Topic(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]topicJSON{"topic": topicJSON(created)})
}
