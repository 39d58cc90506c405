package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRateLimiter returns a middleware enforcing at most limit requests per
// window for each client IP, counted in Redis with a fixed window per key.
//
// The limiter fails open: with a nil client, a non-positive limit, or a Redis
// error, requests pass through. Wire it after chimiddleware.RealIP so
// r.RemoteAddr is the client address.
func NewRateLimiter(rdb *redis.Client, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if rdb == nil || limit <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, err := checkRateLimit(r.Context(), rdb, "api", clientIP(r), limit, window)
			if err != nil {
				slog.WarnContext(r.Context(), "rate limit check failed, allowing request", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
				writeMessage(w, http.StatusTooManyRequests, "Too Many Requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// checkRateLimit increments the counter for resource/id and reports whether
// it is still within limit. The key expires one window after its first hit.
func checkRateLimit(ctx context.Context, rdb *redis.Client, resource, id string, limit int, window time.Duration) (bool, error) {
	key := fmt.Sprintf("rl:%s:%s", resource, id)

	cnt, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("middleware.checkRateLimit: incr: %w", err)
	}
	if cnt == 1 {
		if err := rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, fmt.Errorf("middleware.checkRateLimit: expire: %w", err)
		}
	}
	return cnt <= int64(limit), nil
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
