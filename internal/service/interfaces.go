package service

import (
	"context"

	"github.com/retroplate/recipe-explorer/backend/internal/types"
)

// ICategoryService defines the interface for category operations
type ICategoryService interface {
	ListCategories(ctx context.Context) ([]types.Category, error)
}

// IRecipeService defines the interface for recipe catalog operations
type IRecipeService interface {
	ListRecipes(ctx context.Context, filter types.RecipeFilter) ([]types.RecipeSummary, error)
	GetRecipe(ctx context.Context, id uint) (*types.RecipeDetail, error)
}

// IFavoriteService defines the interface for favorite operations
type IFavoriteService interface {
	AddFavorite(ctx context.Context, userID int64, recipeID uint) (*types.Favorite, error)
	ListFavorites(ctx context.Context, userID int64) ([]types.Favorite, error)
}
