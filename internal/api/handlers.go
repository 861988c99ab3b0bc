package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/retroplate/recipe-explorer/backend/internal/service"
)

// RegisterRoutes wires every catalog endpoint onto the router.
func RegisterRoutes(router *gin.Engine, db *gorm.DB) {
	categoryHandler := NewCategoryHandler(service.NewCategoryService(db))
	recipeHandler := NewRecipeHandler(service.NewRecipeService(db))
	favoriteHandler := NewFavoriteHandler(service.NewFavoriteService(db))

	root := router.Group("")
	categoryHandler.RegisterRoutes(root)
	recipeHandler.RegisterRoutes(root)
	favoriteHandler.RegisterRoutes(root)

	router.GET("/health", HealthCheck)
}

// HealthCheck reports process liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
