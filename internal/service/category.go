package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/retroplate/recipe-explorer/backend/internal/models"
	"github.com/retroplate/recipe-explorer/backend/internal/types"
)

// CategoryService handles category catalog operations
type CategoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new category service
func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// ListCategories returns all categories ordered by name.
func (s *CategoryService) ListCategories(ctx context.Context) ([]types.Category, error) {
	categories := make([]types.Category, 0)
	if err := s.db.WithContext(ctx).
		Model(&models.Category{}).
		Order("name ASC").
		Scan(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
