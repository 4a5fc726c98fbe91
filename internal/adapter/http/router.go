package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/networth/internal/adapter/http/handler"
	"github.com/iho/networth/internal/adapter/http/middleware"
	"github.com/iho/networth/internal/infrastructure/auth"
	"github.com/iho/networth/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AssetHandler       *handler.AssetHandler
	BankAccountHandler *handler.BankAccountHandler
	LiabilityHandler   *handler.LiabilityHandler
	NetWorthHandler    *handler.NetWorthHandler
	SettingsHandler    *handler.SettingsHandler
	AuthHandler        *handler.AuthHandler
	UserHandler        *handler.UserHandler
	HealthHandler      *handler.HealthHandler

	Logger           zerolog.Logger
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	JWTManager       *auth.JWTManager
	AuthEnabled      bool
	RateLimiter      *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.AuthEnabled && cfg.JWTManager != nil {
			r.Post("/auth/login", cfg.AuthHandler.Login)
		}

		r.Group(func(r chi.Router) {
			if cfg.AuthEnabled && cfg.JWTManager != nil {
				r.Use(middleware.AuthMiddleware(cfg.JWTManager))
				r.Get("/auth/me", cfg.AuthHandler.GetCurrentUser)
			}

			// Idempotency middleware for mutating requests
			if cfg.IdempotencyStore != nil {
				idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
				r.Use(idempotencyMiddleware.Wrap)
			}

			// Assets
			r.Route("/assets", func(r chi.Router) {
				r.Post("/", cfg.AssetHandler.Create)
				r.Get("/", cfg.AssetHandler.List)
				r.Get("/{id}", cfg.AssetHandler.Get)
				r.Put("/{id}", cfg.AssetHandler.Update)
				r.Delete("/{id}", cfg.AssetHandler.Delete)
			})

			// Bank accounts
			r.Route("/bankaccounts", func(r chi.Router) {
				r.Post("/", cfg.BankAccountHandler.Create)
				r.Get("/", cfg.BankAccountHandler.List)
				r.Put("/{id}", cfg.BankAccountHandler.Update)
				r.Delete("/{id}", cfg.BankAccountHandler.Delete)
			})

			// Liabilities
			r.Route("/liabilities", func(r chi.Router) {
				r.Post("/", cfg.LiabilityHandler.Create)
				r.Get("/", cfg.LiabilityHandler.List)
				r.Put("/{id}", cfg.LiabilityHandler.Update)
				r.Delete("/{id}", cfg.LiabilityHandler.Delete)
			})

			// Net worth snapshots
			r.Route("/net-worth", func(r chi.Router) {
				r.Get("/snapshots", cfg.NetWorthHandler.ListSnapshots)
				r.Post("/recalculate", cfg.NetWorthHandler.Recalculate)
				r.Delete("/snapshots", cfg.NetWorthHandler.ClearSnapshots)
			})

			// Settings
			r.Route("/settings", func(r chi.Router) {
				r.Get("/", cfg.SettingsHandler.Get)
				r.Put("/", cfg.SettingsHandler.Update)
			})

			// User management (admin only)
			if cfg.AuthEnabled && cfg.JWTManager != nil {
				r.Route("/users", func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", cfg.UserHandler.Create)
					r.Get("/", cfg.UserHandler.List)
					r.Get("/{id}", cfg.UserHandler.Get)
					r.Put("/{id}", cfg.UserHandler.Update)
					r.Delete("/{id}", cfg.UserHandler.Delete)
				})
			}
		})
	})

	return r
}
