package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pkordes/nc-news/backend/internal/domain"
)

// messageBody is the shape of every error response and the health check.
type messageBody struct {
	Message string `json:"message"`
}

// payloadMessages names the rejection message per create-body entity.
var payloadMessages = map[string]string{
	"article": "Invalid Article",
	"comment": "Invalid Comment",
	"topic":   "Invalid Topic",
}

// statusFor maps an error from any layer onto an HTTP status and message.
// Per-entity not-found checks come before the generic ErrNotFound so the
// message names what was missing.
func statusFor(err error) (int, string) {
	var (
		payloadErr *domain.PayloadError
		tooLarge   *http.MaxBytesError
	)
	switch {
	case errors.As(err, &payloadErr):
		if msg, ok := payloadMessages[payloadErr.Entity]; ok {
			return http.StatusBadRequest, msg
		}
		return http.StatusBadRequest, "Bad Request"
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, "Request Entity Too Large"
	case errors.Is(err, domain.ErrInvalidQuery):
		return http.StatusBadRequest, "Invalid Query"
	case errors.Is(err, domain.ErrMalformedInput):
		return http.StatusBadRequest, "Bad Request"
	case errors.Is(err, domain.ErrArticleNotFound):
		return http.StatusNotFound, "Article Does Not Exist"
	case errors.Is(err, domain.ErrCommentNotFound):
		return http.StatusNotFound, "Comment Does Not Exist"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User Does Not Exist"
	case errors.Is(err, domain.ErrTopicNotFound):
		return http.StatusNotFound, "Topic Does Not Exist"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Not Found"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "Already Exists"
	}
	return http.StatusInternalServerError, "Internal Server Error"
}

// writeError writes the {message} response for err. Unclassified errors are
// logged, since the client only ever sees a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "unhandled error",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}
	writeJSON(w, status, messageBody{Message: msg})
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}
