// Copyright (c) 2026 ForFit. All rights reserved.
// Author: mehmetakif.git@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/mehmetakif-git/forfit-api/internal/access"
	"github.com/mehmetakif-git/forfit-api/internal/core/attendance"
	"github.com/mehmetakif-git/forfit-api/internal/core/member"
	"github.com/mehmetakif-git/forfit-api/internal/core/payment"
	"github.com/mehmetakif-git/forfit-api/internal/core/plan"
	"github.com/mehmetakif-git/forfit-api/internal/core/trainer"
	"github.com/mehmetakif-git/forfit-api/internal/features"
	"github.com/mehmetakif-git/forfit-api/internal/platform/config"
	"github.com/mehmetakif-git/forfit-api/internal/platform/constants"
	"github.com/mehmetakif-git/forfit-api/internal/platform/metrics"
	"github.com/mehmetakif-git/forfit-api/internal/platform/middleware"
	"github.com/mehmetakif-git/forfit-api/internal/platform/sec"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Access handles login, logout, session restore, and the route guard.
	Access *access.Handler

	// Features handles toggle administration and the feature gate.
	Features *features.Handler

	// Member manages the member roster.
	Member *member.Handler

	// Trainer manages the coach roster.
	Trainer *trainer.Handler

	// Plan manages subscription plans.
	Plan *plan.Handler

	// Payment logs and lists payments.
	Payment *payment.Handler

	// Attendance handles visit check-in/out.
	Attendance *attendance.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// Every page-level route group sits behind the route guard for its route
// key; sub-features inside an allowed page sit behind the feature gate.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(metrics.Instrument)
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(ctx))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated probes for container orchestration and scraping.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	// # Application API
	// Domain-specific route groups mounted under versioned prefix. Each
	// group is gated on its route key before any handler runs.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Access.Routes())

		api.Group(func(guarded chi.Router) {
			guarded.Use(middleware.RequireAuth)

			guarded.Route("/members", func(sub chi.Router) {
				sub.Use(h.Access.GuardRoute(access.RouteMembers))
				h.Member.RegisterRoutes(sub)
			})

			guarded.Route("/plans", func(sub chi.Router) {
				sub.Use(h.Access.GuardRoute(access.RouteSubscriptions))
				h.Plan.RegisterRoutes(sub)
			})

			guarded.Route("/payments", func(sub chi.Router) {
				sub.Use(h.Access.GuardRoute(access.RoutePayments))
				sub.Use(h.Features.Gate("payment_logging"))
				h.Payment.RegisterRoutes(sub)
			})

			guarded.Route("/attendance", func(sub chi.Router) {
				sub.Use(h.Access.GuardRoute(access.RouteAttendance))
				sub.Use(h.Features.Gate("attendance_tracking"))
				h.Attendance.RegisterRoutes(sub)
			})

			guarded.Route("/trainers", func(sub chi.Router) {
				sub.Use(h.Access.GuardRoute(access.RouteTrainers))
				h.Trainer.RegisterRoutes(sub)
			})

			guarded.Route("/features", func(sub chi.Router) {
				// The gate probe serves every authenticated role. Guarding
				// it would let a routine mount-time check trip the denial
				// countdown for non-admin sessions.
				sub.Get("/{name}/check", h.Features.Check)

				sub.Group(func(admin chi.Router) {
					admin.Use(h.Access.GuardRoute(access.RouteSettings))
					admin.Use(middleware.RequireRole(sec.RoleAdmin))
					admin.Mount("/", h.Features.Routes())
				})
			})
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
