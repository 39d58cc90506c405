package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/nc-news/backend/internal/middleware"
)

// trivialHandler is a minimal http.Handler that always returns 200.
var trivialHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestCORSHandler_GET_AllowedOrigin(t *testing.T) {
	h := middleware.NewCORSHandler([]string{"http://localhost:5173"})(trivialHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

// TestCORSHandler_OPTIONS_PreflightPatch checks the vote endpoints' verb is
// allowed cross-origin.
func TestCORSHandler_OPTIONS_PreflightPatch(t *testing.T) {
	h := middleware.NewCORSHandler([]string{"http://localhost:5173"})(trivialHandler)

	req := httptest.NewRequest(http.MethodOptions, "/api/articles/1", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	// Browsers send Access-Control-Request-Headers in lowercase and rs/cors
	// compares verbatim.
	req.Header.Set("Access-Control-Request-Headers", "content-type")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.True(t, rec.Code == http.StatusNoContent || rec.Code == http.StatusOK,
		"expected 2xx for OPTIONS preflight, got %d", rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
}

func TestCORSHandler_GET_DisallowedOrigin(t *testing.T) {
	h := middleware.NewCORSHandler([]string{"http://localhost:5173"})(trivialHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSHandler_Wildcard(t *testing.T) {
	h := middleware.NewCORSHandler([]string{"*"})(trivialHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/topics", nil)
	req.Header.Set("Origin", "http://anywhere.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
