package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/networth/internal/adapter/http"
	"github.com/iho/networth/internal/adapter/http/handler"
	"github.com/iho/networth/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/networth/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/networth/internal/adapter/repository/redis"
	"github.com/iho/networth/internal/infrastructure/auth"
	"github.com/iho/networth/internal/infrastructure/config"
	"github.com/iho/networth/internal/infrastructure/metrics"
	"github.com/iho/networth/internal/infrastructure/postgres"
	"github.com/iho/networth/internal/infrastructure/redis"
	"github.com/iho/networth/internal/usecase"
)

func main() {
	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	ctx := context.Background()

	// Run migrations when a migrations path is configured
	if cfg.MigrationsPath != "" {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	assetRepo := postgresRepo.NewAssetRepository(pool)
	bankRepo := postgresRepo.NewBankAccountRepository(pool)
	liabilityRepo := postgresRepo.NewLiabilityRepository(pool)
	snapshotRepo := postgresRepo.NewSnapshotRepository(pool)
	settingRepo := postgresRepo.NewSettingRepository(pool)
	userRepo := postgresRepo.NewUserRepository(pool)
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	// Metrics
	m := metrics.New()

	// Initialize use cases
	netWorthUC := usecase.NewNetWorthUseCase(assetRepo, bankRepo, liabilityRepo, snapshotRepo, idGen, cache, m)
	assetUC := usecase.NewAssetUseCase(assetRepo, netWorthUC, idGen)
	bankUC := usecase.NewBankAccountUseCase(txManager, bankRepo, assetRepo, netWorthUC, idGen)
	liabilityUC := usecase.NewLiabilityUseCase(liabilityRepo, netWorthUC, idGen)
	settingsUC := usecase.NewSettingsUseCase(settingRepo, idGen)
	userUC := usecase.NewUserUseCase(userRepo, idGen)

	// Optional JWT auth
	var jwtManager *auth.JWTManager
	if cfg.AuthEnabled && cfg.JWTSecret != "" {
		jwtManager = auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
	}

	// Initialize handlers
	assetHandler := handler.NewAssetHandler(assetUC)
	bankHandler := handler.NewBankAccountHandler(bankUC)
	liabilityHandler := handler.NewLiabilityHandler(liabilityUC)
	netWorthHandler := handler.NewNetWorthHandler(netWorthUC)
	settingsHandler := handler.NewSettingsHandler(settingsUC)
	authHandler := handler.NewAuthHandler(userUC, jwtManager, m)
	userHandler := handler.NewUserHandler(userUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AssetHandler:       assetHandler,
		BankAccountHandler: bankHandler,
		LiabilityHandler:   liabilityHandler,
		NetWorthHandler:    netWorthHandler,
		SettingsHandler:    settingsHandler,
		AuthHandler:        authHandler,
		UserHandler:        userHandler,
		HealthHandler:      healthHandler,
		Logger:             log.Logger,
		IdempotencyStore:   idempotencyStore,
		IdempotencyTTL:     cfg.IdempotencyTTL,
		JWTManager:         jwtManager,
		AuthEnabled:        jwtManager != nil,
		RateLimiter:        middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst),
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
