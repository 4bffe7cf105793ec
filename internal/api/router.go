package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/technotes/notes-api/internal/api/handler"
	"github.com/technotes/notes-api/internal/api/middleware"
	"github.com/technotes/notes-api/internal/core/domain"
	"github.com/technotes/notes-api/internal/core/ports"
	"github.com/technotes/notes-api/internal/core/service"
	"github.com/technotes/notes-api/internal/infrastructure/config"
)

// Deps carries the already-connected infrastructure the router wires
// services and handlers from.
type Deps struct {
	Users  ports.UserRepository
	Notes  ports.NoteRepository
	Tokens ports.TokenStore
	Mongo  *mongo.Database
	Redis  *redis.Client
	Config *config.Config
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("technotes"))

	// --- Services and handlers ---
	userService := service.NewUserService(deps.Users, deps.Notes, deps.Logger)
	noteService := service.NewNoteService(deps.Notes, deps.Users, deps.Logger)
	authService := service.NewAuthService(deps.Users, deps.Tokens, deps.Config.JWTSecret, deps.Config.AccessTTL)

	userHandler := handler.NewUserHandler(userService)
	noteHandler := handler.NewNoteHandler(noteService)
	authHandler := handler.NewAuthHandler(authService)

	// --- Auth routes (no token required) ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/refresh", authHandler.Refresh)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Protected resources ---
	auth := middleware.Auth(deps.Config.JWTSecret)

	notes := e.Group("/notes", auth)
	notes.GET("", noteHandler.List)
	notes.POST("", noteHandler.Create)
	notes.PATCH("", noteHandler.Update)
	notes.DELETE("", noteHandler.Delete)

	users := e.Group("/users", auth, middleware.RBAC(domain.RoleManager, domain.RoleAdmin))
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.PATCH("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
