package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/ai-cooking-suggest/backend/internal/middleware"
	"github.com/pageza/ai-cooking-suggest/backend/internal/service"
	"github.com/pageza/ai-cooking-suggest/backend/internal/types"
)

// Dependencies are the services the HTTP layer needs. Limiter may be nil.
type Dependencies struct {
	Auth    service.IAuthService
	Recipes service.IRecipeService
	Limiter *middleware.RateLimiter
	Log     *zap.Logger
}

// Root answers the plain-text liveness probe
func Root(c *gin.Context) {
	c.String(http.StatusOK, "AI Cooking Suggest Backend Running")
}

// HealthCheck reports the service status and the storage in use
func HealthCheck(recipes service.IRecipeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"storage": recipes.StorageKind(),
		})
	}
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	router.GET("/", Root)
	router.GET("/health", HealthCheck(deps.Recipes))

	api := router.Group("/api")
	NewAuthHandler(deps.Auth, deps.Log).RegisterRoutes(api)
	NewRecipeHandler(deps.Recipes, deps.Auth, deps.Limiter, deps.Log).RegisterRoutes(api)
	RegisterRateLimitRoutes(api, deps.Auth, deps.Limiter, deps.Log)
}

// RegisterRateLimitRoutes registers endpoints for checking rate limit status
func RegisterRateLimitRoutes(router *gin.RouterGroup, authService service.IAuthService, limiter *middleware.RateLimiter, log *zap.Logger) {
	rateLimits := router.Group("/rate-limits")
	rateLimits.Use(middleware.OptionalAuth(authService, log))
	{
		rateLimits.GET("/generate", func(c *gin.Context) {
			if limiter == nil {
				c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "rate limiting disabled"})
				return
			}

			remaining, resetTime, err := limiter.GetRemainingRequests(c.Request.Context(), middleware.CallerKey(c))
			if err != nil {
				log.Error("Failed to check rate limit", zap.Error(err))
				c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to check rate limit"})
				return
			}

			cfg := limiter.Config()
			c.JSON(http.StatusOK, gin.H{
				"limit":      cfg.Limit,
				"remaining":  remaining,
				"reset_time": resetTime.Unix(),
				"window":     cfg.Window.String(),
			})
		})
	}
}
