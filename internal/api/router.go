package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/joblane/careers-api/internal/api/handler"
	"github.com/joblane/careers-api/internal/api/middleware"
	"github.com/joblane/careers-api/internal/core/policy"
	"github.com/joblane/careers-api/internal/core/service"
	mongodb "github.com/joblane/careers-api/internal/infrastructure/db/mongo"
	redisdb "github.com/joblane/careers-api/internal/infrastructure/db/redis"
	"github.com/joblane/careers-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("careers"))
	e.Use(middleware.Auth(cfg.JWTSecret))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	appRepo := mongodb.NewApplicationRepository(db)
	catalog := redisdb.NewJobCache(rdb, mongodb.NewJobCatalog(db))

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo, appRepo, authService, log)
	applicationService := service.NewApplicationService(userRepo, appRepo, catalog, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	applicationHandler := handler.NewApplicationHandler(applicationService)

	// --- Auth routes ---
	e.POST("/auth/token", authHandler.Token)

	// --- User routes; each declares its access tier as data ---
	users := e.Group("/users")
	users.POST("", userHandler.Create, middleware.RequireTier(policy.TierAdmin, ""))
	users.GET("", userHandler.List, middleware.RequireTier(policy.TierAdmin, ""))
	users.GET("/:username", userHandler.Get, middleware.RequireTier(policy.TierSelfOrAdmin, "username"))
	users.PATCH("/:username", userHandler.Update, middleware.RequireTier(policy.TierSelfOrAdmin, "username"))
	users.DELETE("/:username", userHandler.Delete, middleware.RequireTier(policy.TierSelfOrAdmin, "username"))
	users.POST("/:username/jobs/:id", applicationHandler.Apply, middleware.RequireTier(policy.TierSelfOrAdmin, "username"))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
