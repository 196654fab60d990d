package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/cookbook/backend/internal/api"
	"github.com/pageza/cookbook/backend/internal/logger"
	"github.com/pageza/cookbook/backend/internal/metrics"
	"github.com/pageza/cookbook/backend/internal/middleware"
)

// Handlers groups everything mounted under /api/v1.
type Handlers struct {
	Auth    *api.AuthHandler
	Recipes *api.RecipeHandler
	Topics  *api.TopicHandler
	Images  *api.ImageHandler
	Health  gin.HandlerFunc
}

// SetupRouter configures the application routes
func SetupRouter(h Handlers, allowedOrigins []string, log *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.Recovery(log),
		metrics.Middleware(),
		middleware.CORS(allowedOrigins),
	)

	router.GET("/health", h.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/api/v1")
	h.Auth.RegisterRoutes(v1)
	h.Recipes.RegisterRoutes(v1)
	h.Topics.RegisterRoutes(v1)
	h.Images.RegisterRoutes(v1)

	return router
}
