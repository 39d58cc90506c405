// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server and the newsctl CLI.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "9090".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["*"]. Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// RedisURL is the redis:// URL backing the rate limiter.
	// Empty disables rate limiting.
	RedisURL string

	// RateLimit is the number of requests a client may make per RateLimitWindow.
	// Defaults to 100; zero disables rate limiting.
	RateLimit int

	// RateLimitWindow is the length of a rate limit window. Defaults to 1m.
	RateLimitWindow time.Duration

	// MaxBodyBytes caps request body sizes. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// A .env file in the working directory, if present, is loaded first; variables
// already set in the environment take precedence over it.
// Returns an error listing any required variables that are not set, or any
// numeric variables that do not parse.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		Port:        getEnv("PORT", "9090"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "*")),
		RedisURL:    os.Getenv("REDIS_URL"),
	}

	var missing, invalid []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	var err error
	if cfg.RateLimit, err = strconv.Atoi(getEnv("RATE_LIMIT", "100")); err != nil || cfg.RateLimit < 0 {
		invalid = append(invalid, "RATE_LIMIT")
	}
	if cfg.RateLimitWindow, err = time.ParseDuration(getEnv("RATE_LIMIT_WINDOW", "1m")); err != nil || cfg.RateLimitWindow <= 0 {
		invalid = append(invalid, "RATE_LIMIT_WINDOW")
	}
	if cfg.MaxBodyBytes, err = strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64); err != nil || cfg.MaxBodyBytes < 0 {
		invalid = append(invalid, "MAX_BODY_BYTES")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
