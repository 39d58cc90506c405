package middleware

import "net/http"

// NewMaxBodySizeHandler returns a middleware that limits incoming request body
// sizes to limit bytes. A request whose Content-Length already exceeds the
// limit is rejected with 413 before reaching the next handler; otherwise the
// body is wrapped in http.MaxBytesReader so a streamed body fails on read.
// A limit of zero or less disables the check.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limit <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				writeMessage(w, http.StatusRequestEntityTooLarge, "Request Entity Too Large")
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

// writeMessage writes the API's {"message": ...} error shape.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"message":"` + msg + `"}` + "\n"))
}
