package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pawprint/animals-api/internal/api/handler"
	"github.com/pawprint/animals-api/internal/api/middleware"
	"github.com/pawprint/animals-api/internal/core/service"
	"github.com/pawprint/animals-api/internal/infrastructure/config"
	"github.com/pawprint/animals-api/internal/infrastructure/db/postgres"
	redisdb "github.com/pawprint/animals-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("animals"))

	// --- Dependencies ---
	catRepo := postgres.NewCatRepository(pool)
	catService := service.NewCatService(catRepo, log)
	catHandler := handler.NewCatHandler(catService)

	userRepo := postgres.NewUserRepository(pool)
	tokenStore := redisdb.NewTokenStore(rdb)
	authService := service.NewAuthService(userRepo, tokenStore, cfg.JWTSecret, cfg.TokenTTL, cfg.BcryptCost, log)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)

	rootHandler := handler.NewRootHandler()
	authRequired := middleware.Auth(cfg.JWTSecret, tokenStore)

	// --- Routes ---
	e.GET("/", rootHandler.Welcome)

	e.GET("/cats", catHandler.Index)
	e.GET("/cats/:id", catHandler.Show)
	e.POST("/cats", catHandler.Create)
	e.PATCH("/cats/:id", catHandler.Update)
	e.PUT("/cats/:id", catHandler.Update)
	e.DELETE("/cats/:id", catHandler.Destroy)

	e.POST("/users/register", authHandler.Register)
	e.POST("/users/login", authHandler.Login)
	e.POST("/users/logout", authHandler.Logout, authRequired)
	e.GET("/users/me", userHandler.Me, authRequired)
	e.GET("/users", userHandler.List, authRequired, middleware.AdminOnly())

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
