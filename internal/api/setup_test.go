package api

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/retroplate/recipe-explorer/backend/internal/models"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Recipe{}, &models.Favorite{}))

	router := gin.New()
	RegisterRoutes(router, db)
	return router, db
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

func performRequest(router *gin.Engine, method, path string, body io.Reader) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}
