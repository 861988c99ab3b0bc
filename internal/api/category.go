package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/retroplate/recipe-explorer/backend/internal/service"
)

// CategoryHandler handles category HTTP endpoints
type CategoryHandler struct {
	categoryService service.ICategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService service.ICategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// RegisterRoutes registers the category routes
func (h *CategoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/categories", h.ListCategories)
}

// ListCategories returns all categories ordered by name.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		log.Printf("Failed to list categories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}
