package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/retroplate/recipe-explorer/backend/internal/models"
	"github.com/retroplate/recipe-explorer/backend/internal/types"
)

// FavoriteService handles saved-recipe operations
type FavoriteService struct {
	db *gorm.DB
}

// NewFavoriteService creates a new favorite service
func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// AddFavorite saves a recipe for a user. Saving the same recipe twice is
// not an error: the existing row is returned and no duplicate is written.
// Returns ErrRecipeNotFound when the recipe does not exist.
func (s *FavoriteService) AddFavorite(ctx context.Context, userID int64, recipeID uint) (*types.Favorite, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	favorite := models.Favorite{UserID: userID, RecipeID: recipeID}
	if err := s.db.WithContext(ctx).Create(&favorite).Error; err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("failed to create favorite: %w", err)
		}
		// Another request saved this pair first. Reuse its row.
		readErr := s.db.WithContext(ctx).
			Where("user_id = ? AND recipe_id = ?", userID, recipeID).
			First(&favorite).Error
		if readErr != nil {
			if errors.Is(readErr, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to create favorite: %w", err)
			}
			return nil, fmt.Errorf("failed to load existing favorite: %w", readErr)
		}
	}

	return &types.Favorite{
		ID:             favorite.ID,
		UserID:         favorite.UserID,
		RecipeID:       favorite.RecipeID,
		RecipeTitle:    recipe.Title,
		RecipeImageURL: recipe.ImageURL,
	}, nil
}

// ListFavorites returns a user's saved recipes, most recently saved first,
// joined with each recipe's title and image.
func (s *FavoriteService) ListFavorites(ctx context.Context, userID int64) ([]types.Favorite, error) {
	favorites := make([]types.Favorite, 0)
	if err := s.db.WithContext(ctx).
		Table("favorites").
		Select("favorites.id, favorites.user_id, favorites.recipe_id, recipes.title AS recipe_title, recipes.image_url AS recipe_image_url").
		Joins("JOIN recipes ON recipes.id = favorites.recipe_id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.id DESC").
		Scan(&favorites).Error; err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return favorites, nil
}
