package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	redisclient "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/keepnote/notes-api/internal/api/handler"
	"github.com/keepnote/notes-api/internal/api/middleware"
	"github.com/keepnote/notes-api/internal/core/service"
	"github.com/keepnote/notes-api/internal/infrastructure/config"
	mongodb "github.com/keepnote/notes-api/internal/infrastructure/db/mongo"
	redisdb "github.com/keepnote/notes-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redisclient.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Gzip())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("notes"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	noteRepo := mongodb.NewNoteRepository(db)
	hasher := service.NewBcryptHasher()
	tokens := service.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	noteService := service.NewNoteService(noteRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	noteHandler := handler.NewNoteHandler(noteService)

	limiter := redisdb.NewFixedWindowLimiter(rdb, cfg.RateLimit.Max, cfg.RateLimit.Window)
	rateLimit := middleware.RateLimit(limiter, log)
	auth := middleware.Auth(tokens, userRepo)

	// --- Auth routes (unprotected entry points) ---
	authGroup := e.Group("/auth", rateLimit)
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	// --- Note routes (bearer token required) ---
	notes := e.Group("/notes", rateLimit, auth)
	notes.GET("", noteHandler.List)
	notes.POST("", noteHandler.Create)
	notes.GET("/:id", noteHandler.Get)
	notes.PUT("/:id", noteHandler.Update)
	notes.DELETE("/:id", noteHandler.Delete)

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
