package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/creditapp/creditapp-api/internal/core/services"
	"github.com/creditapp/creditapp-api/internal/handlers"
	"github.com/creditapp/creditapp-api/internal/middleware"
	"github.com/creditapp/creditapp-api/internal/repositories/database/pgsql"
	"github.com/creditapp/creditapp-api/pkg/config"
	"github.com/creditapp/creditapp-api/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// @title CreditApp API
// @version 1.0
// @description CRUD API backing the credit simulation front-end.

// @host localhost:8080
// @BasePath /api
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Money fields serialize as bare JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	// Migrations fall back to direct schema creation internally, so a
	// returned error here is unrecoverable.
	if err := database.RunMigrations(context.Background(), cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to prepare database schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The browser front-end sends credentials, so the origin list must be
	// explicit rather than a wildcard.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	repos := pgsql.NewRepositoryProvider(dbPool)
	svc := services.NewServiceContainer(repos)
	handlers.RegisterRoutes(r, cfg, svc)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
