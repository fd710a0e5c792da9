// Copyright (c) 2026 ForFit. All rights reserved.
// Author: mehmetakif.git@gmail.com

// Command api is the entry point for the ForFit dashboard API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Register Prometheus collectors.
//  7. Wire access control, feature toggles, and domain handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
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

	"github.com/mehmetakif-git/forfit-api/internal/access"
	"github.com/mehmetakif-git/forfit-api/internal/api"
	"github.com/mehmetakif-git/forfit-api/internal/core/attendance"
	"github.com/mehmetakif-git/forfit-api/internal/core/member"
	"github.com/mehmetakif-git/forfit-api/internal/core/payment"
	"github.com/mehmetakif-git/forfit-api/internal/core/plan"
	"github.com/mehmetakif-git/forfit-api/internal/core/trainer"
	"github.com/mehmetakif-git/forfit-api/internal/features"
	"github.com/mehmetakif-git/forfit-api/internal/platform/config"
	"github.com/mehmetakif-git/forfit-api/internal/platform/constants"
	"github.com/mehmetakif-git/forfit-api/internal/platform/metrics"
	"github.com/mehmetakif-git/forfit-api/internal/platform/migration"
	pgstore "github.com/mehmetakif-git/forfit-api/internal/platform/postgres"
	redisstore "github.com/mehmetakif-git/forfit-api/internal/platform/redis"
	"github.com/mehmetakif-git/forfit-api/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[ForFit] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("demo_accounts", cfg.DemoAccounts),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// Lifecycle context for background workers (rate limiter cleanup).
	lifecycleCtx, lifecycleCancel := context.WithCancel(context.Background())
	defer lifecycleCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Metrics ────────────────────────────────────────────────────────
	metrics.Init()

	// ── 7. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 8. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 9. Access Control Wiring ──────────────────────────────────────────
	sessionSlot := access.NewRedisSessionSlot(rdb)
	sessionStore := access.NewStore(sessionSlot, log)
	directory := access.NewDirectoryStore(pool)
	verifier := access.NewVerifier(directory, sessionStore, jwtSvc, log, cfg.DemoAccounts)
	routePolicy := access.DefaultRoutePolicy()
	routeGuard := access.NewRouteGuard(routePolicy, sessionStore, nil, log)
	accessHandler := access.NewHandler(verifier, sessionStore, routeGuard, routePolicy)

	// ── 10. Feature Toggle Wiring ─────────────────────────────────────────
	featureRepository := features.NewPostgresRepository(pool)
	featureService := features.NewService(featureRepository, log)
	featureGuard := features.NewGuard(featureService)
	featureHandler := features.NewHandler(featureService, featureGuard)

	// ── 11. Domain Wiring ─────────────────────────────────────────────────
	memberHandler := member.NewHandler(member.NewService(member.NewPostgresRepository(pool), log))
	trainerHandler := trainer.NewHandler(trainer.NewService(trainer.NewPostgresRepository(pool), log))
	planHandler := plan.NewHandler(plan.NewService(plan.NewPostgresRepository(pool), log))
	paymentHandler := payment.NewHandler(payment.NewService(payment.NewPostgresRepository(pool), log))
	attendanceHandler := attendance.NewHandler(attendance.NewService(attendance.NewPostgresRepository(pool), log))

	// ── 12. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Access:     accessHandler,
		Features:   featureHandler,
		Member:     memberHandler,
		Trainer:    trainerHandler,
		Plan:       planHandler,
		Payment:    paymentHandler,
		Attendance: attendanceHandler,
	}

	server := api.NewServer(lifecycleCtx, cfg, log, jwtSvc, handlers)

	// ── 13. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
