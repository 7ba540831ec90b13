package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/middleware"
	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/service"
	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/types"
)

// RecipeHandler serves the saved-recipe endpoints.
type RecipeHandler struct {
	recipes service.IRecipeService
}

// NewRecipeHandler creates a RecipeHandler.
func NewRecipeHandler(recipes service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// RegisterRoutes registers the recipe endpoints. Listing and fetching accept
// anonymous callers; mutations require a session.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, validator middleware.TokenValidator) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", middleware.OptionalAuth(validator), h.ListRecipes)
		recipes.GET("/:id", middleware.OptionalAuth(validator), h.GetRecipe)
		recipes.POST("", middleware.AuthMiddleware(validator), h.CreateRecipe)
		recipes.PUT("/:id", middleware.AuthMiddleware(validator), h.UpdateRecipe)
		recipes.DELETE("/:id", middleware.AuthMiddleware(validator), h.DeleteRecipe)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	filter := types.RecipeFilter{
		Search:     c.Query("q"),
		MatchCase:  c.Query("match_case") == "true",
		Difficulty: c.Query("difficulty"),
		Sort:       types.SortMode(c.Query("sort")),
	}

	recipes, err := h.recipes.ListRecipes(c.Request.Context(), middleware.UserID(c), filter)
	if err != nil {
		writeServiceError(c, err, "Failed to fetch recipes")
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.recipes.GetRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err, "Failed to fetch recipe")
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.CreateRecipe(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		writeServiceError(c, err, "Failed to save recipe")
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.UpdateRecipe(c.Request.Context(), middleware.UserID(c), c.Param("id"), &req)
	if err != nil {
		writeServiceError(c, err, "Failed to update recipe")
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id := c.Param("id")
	if err := h.recipes.DeleteRecipe(c.Request.Context(), middleware.UserID(c), id); err != nil {
		writeServiceError(c, err, "Failed to delete recipe")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully", "id": id})
}

// writeServiceError maps domain errors onto HTTP statuses. Anything
// unrecognized becomes a generic 500; the underlying cause is already logged
// at the service layer.
func writeServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrRecipeForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
