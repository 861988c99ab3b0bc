package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/retroplate/recipe-explorer/backend/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Recipe{}, &models.Favorite{}))
	return db
}

func createCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func createRecipe(t *testing.T, db *gorm.DB, categoryID uint, title, ingredients string) models.Recipe {
	t.Helper()
	imageURL := "https://example.com/" + title + ".jpg"
	recipe := models.Recipe{
		Title:        title,
		Description:  "A test recipe",
		ImageURL:     &imageURL,
		Ingredients:  ingredients,
		Instructions: "Mix everything and cook.",
		CategoryID:   categoryID,
	}
	require.NoError(t, db.Create(&recipe).Error)
	return recipe
}
