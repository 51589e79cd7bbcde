// Package main is the entry point for the StarTrek site server.
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
	"github.com/joho/godotenv"

	"github.com/pkordes/startrek-travel/internal/config"
	"github.com/pkordes/startrek-travel/internal/gateway"
	"github.com/pkordes/startrek-travel/internal/handler"
	"github.com/pkordes/startrek-travel/internal/logging"
	"github.com/pkordes/startrek-travel/internal/metrics"
	"github.com/pkordes/startrek-travel/internal/middleware"
	"github.com/pkordes/startrek-travel/internal/service"
)

func main() {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not read .env", "error", err)
	}

	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Plain default logger: the configured one depends on cfg.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	// --- Gateway ----------------------------------------------------------
	// Unconfigured, this is the stub and the site runs in demo mode.
	gw, err := gateway.New(context.Background(), cfg.Gateway, logger)
	if err != nil {
		slog.Error("failed to create storage gateway", "error", err)
		os.Exit(1)
	}
	defer gw.Close()

	if gw.Configured() {
		// Hosted-service errors are soft: the site keeps serving fallback
		// data, so an unreachable store is only worth a warning.
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := gw.Ping(pingCtx); err != nil {
			slog.Warn("database not reachable at start-up", "error", err)
		} else {
			slog.Info("database connection established")
		}
		cancel()
	}

	// --- Services ---------------------------------------------------------
	m := metrics.New()
	srv, err := handler.NewServer(handler.Deps{
		Trips:    service.NewTripService(gw.Trips(), logger),
		Signups:  service.NewSignupService(gw.Signups()),
		Contacts: service.NewContactService(gw.Messages()),
		Surveys:  service.NewSurveyService(gw.Surveys()),
		Images:   service.NewImageService(gw.Trips(), gw.Images()),
		Store:    gw,
		Log:      logger,
		Metrics:  m,
	})
	if err != nil {
		slog.Error("failed to build handlers", "error", err)
		os.Exit(1)
	}

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP.
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)

	r.Handle("/metrics", m.Handler())
	r.Mount("/", srv.Routes(handler.Middleware{
		API:    middleware.NewCORSHandler(cfg.CORSOrigins),
		Admin:  middleware.NewAdminAuth(cfg.AdminUser, cfg.AdminPassword),
		Upload: middleware.NewMaxBodySizeHandler(cfg.MaxUploadBytes),
	}))

	if cfg.AdminPassword == "" {
		slog.Warn("ADMIN_PASSWORD not set, /admin is unprotected")
	}

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	// Writes get longer than reads' header budget to cover image uploads.
	httpSrv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr, "demo_mode", !gw.Configured())
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
