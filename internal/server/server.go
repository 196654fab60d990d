package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pageza/cookbook/backend/config"
	"github.com/pageza/cookbook/backend/internal/api"
	"github.com/pageza/cookbook/backend/internal/logger"
	"github.com/pageza/cookbook/backend/internal/middleware"
	"github.com/pageza/cookbook/backend/internal/router"
	"github.com/pageza/cookbook/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	log    *logger.Logger
}

// Deps are the external resources the server runs on. Redis and Storage
// are optional; without them rate limiting and preview uploads are off.
type Deps struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Storage api.PreviewStorage
	Log     *logger.Logger
}

// New creates a new server instance
func New(cfg *config.Config, deps Deps) *Server {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	recipes := service.NewRecipeService(deps.DB, deps.Log).WithStrictChildIDs(cfg.StrictChildIDs)
	topics := service.NewTopicService(deps.DB, deps.Log)

	handlers := router.Handlers{
		Auth: api.NewAuthHandler(service.NewAuthService(deps.DB, tokens, deps.Log)),
		Recipes: api.NewRecipeHandler(recipes, tokens,
			middleware.NewRecipeCreationRateLimiter(deps.Redis, cfg.RecipeCreateLimit, cfg.RateLimitWindow),
			middleware.NewRecipeModificationRateLimiter(deps.Redis, cfg.RecipeUpdateLimit, cfg.RateLimitWindow),
		),
		Topics: api.NewTopicHandler(topics, tokens),
		Images: api.NewImageHandler(deps.Storage, tokens),
		Health: api.HealthCheck(deps.DB),
	}
	r := router.SetupRouter(handlers, cfg.AllowedOrigins, deps.Log)

	return &Server{
		router: r,
		http: &http.Server{
			Addr:              net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: deps.Log.With("component", "server"),
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	s.log.Info("starting server", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
