package server

import (
	"log/slog"
	"net/http"

	"galaxy-server/internal/bodies"
	"galaxy-server/internal/galaxy"
	galaxyHandlers "galaxy-server/internal/galaxy/handlers"
	"galaxy-server/internal/middleware"
	serverHandlers "galaxy-server/internal/server/handlers"
	"galaxy-server/internal/shared/database"
)

type Routes struct {
	db            *database.DB
	galaxyService *galaxy.Service
	catalog       *bodies.Catalog
	logger        *slog.Logger
}

func NewRoutes(db *database.DB, galaxyService *galaxy.Service, catalog *bodies.Catalog, logger *slog.Logger) *Routes {
	return &Routes{
		db:            db,
		galaxyService: galaxyService,
		catalog:       catalog,
		logger:        logger,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(r.db)
	galaxyHandler := galaxyHandlers.NewGalaxyHandler(r.galaxyService)
	systemDetailHandler := galaxyHandlers.NewSystemDetailHandler(r.galaxyService, r.catalog)

	// Public endpoints
	mux.Handle("/api/server/health", healthHandler)
	mux.HandleFunc("/api/galaxy", galaxyHandler.Current)
	mux.HandleFunc("/api/galaxy/health", galaxyHandler.Health)
	mux.Handle("/api/systems/{id}/detail", systemDetailHandler)

	// Admin-only endpoints (authenticated + admin role)
	mux.Handle("/api/galaxy/generate", middleware.RequireAdmin(http.HandlerFunc(galaxyHandler.Generate)))

	logger.Info("Routes configured successfully",
		"public_endpoints", []string{"/api/server/health", "/api/galaxy", "/api/galaxy/health", "/api/systems/{id}/detail"},
		"admin_endpoints", []string{"/api/galaxy/generate"},
	)

	return mux
}
