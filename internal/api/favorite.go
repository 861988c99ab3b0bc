package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/retroplate/recipe-explorer/backend/internal/service"
	"github.com/retroplate/recipe-explorer/backend/internal/types"
)

// FavoriteHandler handles saved-recipe HTTP endpoints
type FavoriteHandler struct {
	favoriteService service.IFavoriteService
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(favoriteService service.IFavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// RegisterRoutes registers the favorite routes
func (h *FavoriteHandler) RegisterRoutes(router *gin.RouterGroup) {
	favorites := router.Group("/favorites")
	{
		favorites.GET("", h.ListFavorites)
		favorites.POST("", h.AddFavorite)
	}
}

// AddFavorite saves a recipe for a user. Responds 201 whether the pair is
// new or already saved, with the stored row either way.
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	var req types.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	favorite, err := h.favoriteService.AddFavorite(c.Request.Context(), *req.UserID, *req.RecipeID)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		log.Printf("Failed to add favorite: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
		return
	}
	c.JSON(http.StatusCreated, favorite)
}

// ListFavorites returns the favorites of the user named by the required
// user_id query parameter, newest first.
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	raw := c.Query("user_id")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	favorites, err := h.favoriteService.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Failed to list favorites: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list favorites"})
		return
	}
	c.JSON(http.StatusOK, favorites)
}
