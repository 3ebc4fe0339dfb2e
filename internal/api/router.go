package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ilgaur/auth-service/internal/api/handler"
	"github.com/ilgaur/auth-service/internal/api/middleware"
	"github.com/ilgaur/auth-service/internal/core/auth"
	"github.com/ilgaur/auth-service/internal/core/service"
	mongodb "github.com/ilgaur/auth-service/internal/infrastructure/db/mongo"
	redisdb "github.com/ilgaur/auth-service/internal/infrastructure/db/redis"
	"github.com/ilgaur/auth-service/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, tokenCfg auth.TokenConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("auth"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	loginAudit := redisdb.NewLoginAudit(rdb)
	issuer := auth.NewIssuer(tokenCfg)
	verifier := auth.NewVerifier(tokenCfg)
	credentials := service.NewCredentialService(userRepo, issuer, loginAudit, log)
	authorizer := service.NewAuthorizer(verifier, userRepo, log)

	authHandler := handler.NewAuthHandler(credentials)
	userHandler := handler.NewUserHandler(userRepo)
	authenticate := middleware.Authenticate(authorizer)
	requireAdmin := middleware.RequireAdmin(authorizer)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	// --- Protected routes ---
	e.GET("/me", userHandler.Me, authenticate)
	e.GET("/admin/users/:username", userHandler.GetUser, authenticate, requireAdmin)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
