package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/nc-news/backend/internal/middleware"
)

// bodyReadingHandler reads the full request body and answers 413 if the read
// fails, as a JSON-decoding handler would.
var bodyReadingHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	_, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		return
	}
	w.WriteHeader(http.StatusOK)
})

func TestMaxBodySizeHandler_SmallBody_PassesThrough(t *testing.T) {
	h := middleware.NewMaxBodySizeHandler(100)(bodyReadingHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(strings.Repeat("x", 50)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

// A declared Content-Length over the limit is rejected before the handler runs.
func TestMaxBodySizeHandler_ContentLengthExceedsLimit_Returns413(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
	h := middleware.NewMaxBodySizeHandler(100)(next)

	req := httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(strings.Repeat("x", 200)))
	req.ContentLength = 200
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.JSONEq(t, `{"message":"Request Entity Too Large"}`, rec.Body.String())
	assert.False(t, called)
}

// With no Content-Length, MaxBytesReader makes the read inside the handler fail.
func TestMaxBodySizeHandler_StreamingBodyExceedsLimit_Returns413(t *testing.T) {
	h := middleware.NewMaxBodySizeHandler(100)(bodyReadingHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(strings.Repeat("x", 200)))
	req.ContentLength = -1
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestMaxBodySizeHandler_ZeroLimitDisables(t *testing.T) {
	h := middleware.NewMaxBodySizeHandler(0)(bodyReadingHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(strings.Repeat("x", 5000)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
