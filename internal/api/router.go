package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/todoapp/task-api/internal/api/handler"
	"github.com/todoapp/task-api/internal/api/middleware"
	"github.com/todoapp/task-api/internal/auth"
	"github.com/todoapp/task-api/internal/core/service"
	"github.com/todoapp/task-api/internal/infrastructure/config"
	"github.com/todoapp/task-api/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *postgres.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("task_api"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	taskRepo := postgres.NewTaskRepository(db)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens, log)
	taskService := service.NewTaskService(taskRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	authGuard := middleware.Auth(tokens, userRepo)

	// --- Auth routes ---
	e.POST("/authenticate", authHandler.Authenticate)

	// --- Task routes (bearer token required) ---
	tasks := e.Group("/tasks", authGuard)
	tasks.POST("", taskHandler.Create)
	tasks.GET("", taskHandler.List)
	tasks.GET("/:id", taskHandler.Get)
	tasks.PATCH("/:id/status", taskHandler.ToggleStatus)
	tasks.DELETE("/:id", taskHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
