package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/api"
	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/database"
	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/middleware"
)

// SetupRouter configures the application routes.
func SetupRouter(
	authHandler *api.AuthHandler,
	recipeHandler *api.RecipeHandler,
	profileHandler *api.ProfileHandler,
	validator middleware.TokenValidator,
	healthDB *database.DB,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		if healthDB != nil {
			if err := healthDB.HealthCheck(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": "database unreachable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1)
	recipeHandler.RegisterRoutes(v1, validator)
	profileHandler.RegisterRoutes(v1, validator)

	return router
}
