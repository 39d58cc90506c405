package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type userJSON struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// ListUsers handles GET /api/users.
func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	out := make([]userJSON, len(users))
	for i, u := range users {
		out[i] = userJSON(u)
	}
	writeJSON(w, http.StatusOK, map[string][]userJSON{"users": out})
}

// GetUser handles GET /api/users/{username}.
func (s *Server) GetUser(w http.ResponseWriter, r *http.Request) {
	u, err := s.users.GetByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]userJSON{"user": userJSON(u)})
}
