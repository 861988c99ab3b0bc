package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/retroplate/recipe-explorer/backend/internal/models"
	"github.com/retroplate/recipe-explorer/backend/internal/types"
)

// ErrRecipeNotFound is returned when the requested recipe does not exist.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeService handles recipe catalog operations
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new recipe service
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// ListRecipes returns recipe summaries ordered by id, optionally narrowed
// by category and by a case-insensitive substring match against the title
// and ingredient text.
func (s *RecipeService) ListRecipes(ctx context.Context, filter types.RecipeFilter) ([]types.RecipeSummary, error) {
	query := s.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Select("id, title, description, image_url, category_id")

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(ingredients) LIKE ?", like, like)
	}

	recipes := make([]types.RecipeSummary, 0)
	if err := query.Order("id ASC").Scan(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// GetRecipe returns the full detail of a single recipe. The category name
// is resolved separately and left empty if the category row is missing.
func (s *RecipeService) GetRecipe(ctx context.Context, id uint) (*types.RecipeDetail, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	var categoryName string
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, "id = ?", recipe.CategoryID).Error; err == nil {
		categoryName = category.Name
	}

	return &types.RecipeDetail{
		ID:           recipe.ID,
		Title:        recipe.Title,
		Description:  recipe.Description,
		ImageURL:     recipe.ImageURL,
		Ingredients:  splitIngredients(recipe.Ingredients),
		Instructions: recipe.Instructions,
		CategoryID:   recipe.CategoryID,
		CategoryName: categoryName,
	}, nil
}

// splitIngredients turns newline-delimited ingredient text into one trimmed
// entry per line, dropping blank lines.
func splitIngredients(raw string) []string {
	lines := strings.Split(raw, "\n")
	ingredients := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			ingredients = append(ingredients, trimmed)
		}
	}
	return ingredients
}
