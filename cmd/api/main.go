// Package main is the entry point for the NC News API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"github.com/pkordes/nc-news/backend/internal/config"
	"github.com/pkordes/nc-news/backend/internal/handler"
	"github.com/pkordes/nc-news/backend/internal/middleware"
	"github.com/pkordes/nc-news/backend/internal/repo"
	"github.com/pkordes/nc-news/backend/internal/service"
	"github.com/pkordes/nc-news/backend/spec"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// --- Redis (optional) -------------------------------------------------
	// Without REDIS_URL the rate limiter is a passthrough.
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			slog.Error("invalid REDIS_URL", "error", err)
			os.Exit(1)
		}
		rdb = redis.NewClient(opts)
		defer rdb.Close()

		if err := rdb.Ping(context.Background()).Err(); err != nil {
			// The limiter fails open, so an unreachable Redis is not fatal.
			slog.Warn("redis unreachable; rate limiting will fail open", "error", err)
		} else {
			slog.Info("redis connection established")
		}
	}

	// --- Services ---------------------------------------------------------
	articleRepo := repo.NewArticleRepo(pool)
	commentRepo := repo.NewCommentRepo(pool)
	topicRepo := repo.NewTopicRepo(pool)
	userRepo := repo.NewUserRepo(pool)

	api := handler.NewServer(
		service.NewArticleService(articleRepo, topicRepo),
		service.NewCommentService(commentRepo, articleRepo, userRepo),
		service.NewTopicService(topicRepo),
		service.NewUserService(userRepo),
		spec.Endpoints,
	)

	// --- Metrics ----------------------------------------------------------
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(reg)

	// --- Router -----------------------------------------------------------
	// Metrics sit outside Recoverer so a recovered panic is counted as a 500.
	// The rate limiter runs last so CORS preflights and oversized bodies are
	// answered without spending a client's budget.
	r := chi.NewRouter()
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.NotFound)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(metrics.Handler)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Use(middleware.NewRateLimiter(rdb, cfg.RateLimit, cfg.RateLimitWindow))

	r.Method(http.MethodGet, "/metrics", metrics.Exposition())
	r.Mount("/", api.Routes())

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
