package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/cookbook/backend/internal/middleware"
	"github.com/pageza/cookbook/backend/internal/service"
	"github.com/pageza/cookbook/backend/internal/types"
)

type RecipeHandler struct {
	recipes       service.IRecipeService
	tokens        middleware.TokenValidator
	createLimiter *middleware.RateLimiter
	updateLimiter *middleware.RateLimiter
}

// NewRecipeHandler wires the recipe routes. Nil limiters disable rate limiting.
func NewRecipeHandler(recipes service.IRecipeService, tokens middleware.TokenValidator, createLimiter, updateLimiter *middleware.RateLimiter) *RecipeHandler {
	return &RecipeHandler{
		recipes:       recipes,
		tokens:        tokens,
		createLimiter: createLimiter,
		updateLimiter: updateLimiter,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/newest", h.NewestRecipes)
		recipes.GET("/today", h.TodaySelection)
		recipes.GET("/featured", h.FeaturedRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", middleware.AuthMiddleware(h.tokens), h.createLimiter.RateLimitMiddleware(), h.CreateRecipe)
		recipes.PUT("/:id", middleware.AuthMiddleware(h.tokens), h.updateLimiter.PerRecipeRateLimitMiddleware(), h.UpdateRecipe)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	var params types.ListRecipesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.recipes.List(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.GetOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) NewestRecipes(c *gin.Context) {
	recipes, err := h.recipes.Newest(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) TodaySelection(c *gin.Context) {
	recipes, err := h.recipes.TodaySelection(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) FeaturedRecipes(c *gin.Context) {
	featured, err := h.recipes.Featured(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, featured)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.Create(c.Request.Context(), &types.CreateRecipeInput{
		RecipeRequest: req,
		AuthorID:      userID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

// UpdateRecipe applies the update and answers with a fresh read of the recipe.
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.recipes.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	recipe, err := h.recipes.GetOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result, "recipe": recipe})
}
