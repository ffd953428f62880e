package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/ai-cooking-suggest/backend/internal/middleware"
	"github.com/pageza/ai-cooking-suggest/backend/internal/models"
	"github.com/pageza/ai-cooking-suggest/backend/internal/service"
	"github.com/pageza/ai-cooking-suggest/backend/internal/types"
)

// RecipeHandler serves recipe generation and listing
type RecipeHandler struct {
	recipeService service.IRecipeService
	authService   service.IAuthService
	limiter       *middleware.RateLimiter
	log           *zap.Logger
}

// NewRecipeHandler creates a recipe handler. limiter may be nil.
func NewRecipeHandler(recipeService service.IRecipeService, authService service.IAuthService, limiter *middleware.RateLimiter, log *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		authService:   authService,
		limiter:       limiter,
		log:           log,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		generate := []gin.HandlerFunc{middleware.OptionalAuth(h.authService, h.log)}
		if h.limiter != nil {
			generate = append(generate, h.limiter.RateLimitMiddleware())
		}
		generate = append(generate, h.GenerateRecipe)

		recipes.POST("/generate", generate...)
		recipes.GET("", h.ListRecipes)
		recipes.GET("/my", middleware.AuthMiddleware(h.authService), h.ListMyRecipes)
	}
}

func (h *RecipeHandler) GenerateRecipe(c *gin.Context) {
	var req types.GenerateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Please provide ingredients"})
		return
	}

	recipe, err := h.recipeService.Generate(c.Request.Context(), req.Ingredients, middleware.IdentityFromContext(c))
	if err != nil {
		if errors.Is(err, service.ErrNoIngredients) {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Please provide ingredients"})
			return
		}
		h.log.Error("Error generating recipe", zap.Error(err))
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "Failed to generate recipe",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// ListRecipes returns the newest recipes from every user. Storage errors yield an empty list.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipeService.ListRecent(c.Request.Context())
	if err != nil {
		h.log.Warn("Failed to list recipes", zap.Error(err))
		recipes = nil
	}
	c.JSON(http.StatusOK, nonNil(recipes))
}

func (h *RecipeHandler) ListMyRecipes(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	if identity == nil {
		c.JSON(http.StatusUnauthorized, types.ErrorResponse{Error: "Access token required"})
		return
	}

	recipes, err := h.recipeService.ListByOwner(c.Request.Context(), identity.UserID)
	if err != nil {
		h.log.Error("Failed to fetch user recipes", zap.String("user_id", identity.UserID.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to fetch user recipes"})
		return
	}

	c.JSON(http.StatusOK, nonNil(recipes))
}

func nonNil(recipes []*models.Recipe) []*models.Recipe {
	if recipes == nil {
		return []*models.Recipe{}
	}
	return recipes
}
