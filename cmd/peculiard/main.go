// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/peculiardigitals/peculiar-go/internal/backend"
	"github.com/peculiardigitals/peculiar-go/internal/config"
	"github.com/peculiardigitals/peculiar-go/internal/dashboard"
	"github.com/peculiardigitals/peculiar-go/internal/data"
	"github.com/peculiardigitals/peculiar-go/internal/eventlog"
	"github.com/peculiardigitals/peculiar-go/internal/handler"
	"github.com/peculiardigitals/peculiar-go/internal/middleware"
	"github.com/peculiardigitals/peculiar-go/internal/session"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		_, _ = fmt.Printf("peculiard %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	// Local SQLite backs the event log and the session store.
	slog.Info("initializing event log database", "path", cfg.EventLogDBPath)
	if dir := filepath.Dir(cfg.EventLogDBPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating database directory: %w", err)
		}
	}
	db, err := eventlog.Open(cfg.EventLogDBPath)
	if err != nil {
		return fmt.Errorf("opening event log database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}()

	if err := eventlog.Migrate(db); err != nil {
		return fmt.Errorf("migrating event log database: %w", err)
	}

	// Re-create the logger with event log mirroring for warnings and errors.
	eventStore := eventlog.NewStore(db)
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger = slog.New(eventlog.NewHandler(textHandler, eventStore))
	slog.SetDefault(logger)
	slog.Info("event log integration enabled", "min_level", "warn")

	// Hosted backend clients. Unconfigured credentials put the whole data
	// layer in demo mode.
	client := backend.NewClient(cfg.BackendURL, cfg.BackendAnonKey)
	storage := backend.NewStorage(cfg.BackendURL, cfg.BackendAnonKey)
	auth := backend.NewAuth(cfg.BackendURL, cfg.BackendAnonKey)
	svc := data.New(client, storage, logger)
	if svc.Configured() {
		slog.Info("hosted backend configured", "url", cfg.BackendURL)
	} else {
		slog.Warn("hosted backend not configured, running in demo mode")
	}

	ctrl := dashboard.New(svc, auth, cfg.DemoAdminEmail, cfg.DemoAdminPasswordHash, logger)

	sessionManager := session.New(db, cfg.IsDevelopment())
	slog.Info("session manager initialized")

	// Event log retention
	scheduler := cron.New()
	if err := eventlog.ScheduleRetention(scheduler, eventStore, cfg.EventRetentionDays, logger); err != nil {
		return fmt.Errorf("scheduling event retention: %w", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Route tree
	pub := handler.NewPublicHandler(svc, logger)
	admin := handler.NewAdminHandler(ctrl, eventStore, sessionManager, cfg.MaxUploadSize, logger)
	router := handler.NewRouter(pub, admin, sessionManager, handler.RouterConfig{
		CSRFKey:        []byte(cfg.SessionSecret)[:32],
		IsDev:          cfg.IsDevelopment(),
		InquiryLimiter: middleware.NewRateLimiter(1, 5, logger),
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
