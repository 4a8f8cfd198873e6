package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/saddam-69/zcardgen/docs"
	"github.com/saddam-69/zcardgen/internal/api/handler"
	"github.com/saddam-69/zcardgen/internal/api/middleware"
	"github.com/saddam-69/zcardgen/internal/core/service"
	"github.com/saddam-69/zcardgen/internal/infrastructure/config"
	"github.com/saddam-69/zcardgen/internal/infrastructure/db/postgres"
	redisdb "github.com/saddam-69/zcardgen/internal/infrastructure/db/redis"
	"github.com/saddam-69/zcardgen/internal/infrastructure/queue"
	"github.com/saddam-69/zcardgen/internal/infrastructure/storage"
)

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the view dispatcher, which the caller must Start.
func NewRouter(db *gorm.DB, rdb *redis.Client, blobs *storage.LocalStore, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("zcardgen"))
	e.Use(echomiddleware.Logger())

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	cardRepo := postgres.NewCardRepository(db)
	viewRepo := postgres.NewViewRepository(db)
	authRepo := postgres.NewAuthRepository(db)
	revocations := redisdb.NewRevocationList(rdb)

	cardService := service.NewCardService(cardRepo, authRepo, log)
	viewService := service.NewViewService(cardRepo, viewRepo, log)
	authService := service.NewAuthService(authRepo, revocations, cfg.JWTSecret, cfg.TokenTTL)

	dispatcher := queue.NewDispatcher(cfg.Track.Workers, viewService, log)

	cardHandler := handler.NewCardHandler(cardService)
	trackHandler := handler.NewTrackHandler(viewService, dispatcher)
	uploadHandler := handler.NewUploadHandler(blobs, log)
	authHandler := handler.NewAuthHandler(authService)

	authMiddleware := middleware.Auth(cfg.JWTSecret, revocations)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	// --- API routes ---
	v1 := e.Group("/v1")

	// Public: card pages are shareable, and view tracking carries no auth.
	v1.GET("/cards/:id", cardHandler.GetPublic)
	v1.POST("/track", trackHandler.Track)

	// Owner-scoped card management.
	v1.POST("/cards", cardHandler.Create, authMiddleware)
	v1.GET("/cards", cardHandler.List, authMiddleware)
	v1.PUT("/cards", cardHandler.Update, authMiddleware)
	v1.DELETE("/cards", cardHandler.Delete, authMiddleware)
	v1.DELETE("/cards/:id", cardHandler.DeleteByID, authMiddleware)

	// Logo uploads.
	v1.POST("/uploads", uploadHandler.Upload, authMiddleware)
	v1.DELETE("/uploads", uploadHandler.Remove, authMiddleware)

	// Uploaded files are served straight off disk.
	e.Static("/uploads", blobs.Dir())

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, dispatcher
}
