package main

import (
	"log/slog"
	"net/http"
	"os"

	"galaxy-server/internal/bodies"
	"galaxy-server/internal/galaxy"
	"galaxy-server/internal/middleware"
	"galaxy-server/internal/server"
	"galaxy-server/internal/shared/config"
	"galaxy-server/internal/shared/database"
	"galaxy-server/internal/shared/logger"
	"galaxy-server/internal/shared/redis"
)

func main() {
	if err := config.Init(); err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	logger.Init()
	appLogger := slog.With("component", "main")
	appLogger.Info("Starting galaxy server",
		"environment", config.GlobalConfig.Server.Environment,
		"port", config.GlobalConfig.Server.Port)

	db, err := database.Connect()
	if err != nil {
		appLogger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("Failed to close database", "error", err)
		}
	}()

	if err := db.RunMigrations(); err != nil {
		appLogger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	cache, err := redis.Connect()
	if err != nil {
		appLogger.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := cache.Close(); err != nil {
			appLogger.Error("Failed to close Redis", "error", err)
		}
	}()

	catalog := bodies.NewCatalog()
	galaxyRepo := galaxy.NewRepository(db, appLogger)
	galaxyService := galaxy.NewService(galaxyRepo, cache, catalog, appLogger)

	routes := server.NewRoutes(db, galaxyService, catalog, appLogger)
	mux := routes.Setup()

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Enabled:           config.GlobalConfig.RateLimit.Enabled,
		RequestsPerSecond: config.GlobalConfig.RateLimit.RequestsPerSecond,
		BurstSize:         config.GlobalConfig.RateLimit.BurstSize,
	})
	corsMiddleware := middleware.NewCORS()

	handler := corsMiddleware.Middleware(rateLimiter.Middleware(mux))

	srv := &http.Server{
		Addr:         ":" + config.GlobalConfig.Server.Port,
		Handler:      handler,
		ReadTimeout:  config.GlobalConfig.Server.ReadTimeout,
		WriteTimeout: config.GlobalConfig.Server.WriteTimeout,
		IdleTimeout:  config.GlobalConfig.Server.IdleTimeout,
	}

	appLogger.Info("Galaxy server listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		appLogger.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
