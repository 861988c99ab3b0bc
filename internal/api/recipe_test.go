package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/retroplate/recipe-explorer/backend/internal/mocks"
	"github.com/retroplate/recipe-explorer/backend/internal/types"
)

func TestListRecipesEndpoint(t *testing.T) {
	router, db := setupTestRouter(t)
	category := createCategory(t, db, "Breakfast")
	createRecipe(t, db, category.ID, "Pancakes", "flour\nmilk")
	createRecipe(t, db, category.ID, "Avocado Toast", "bread\navocado")

	w := performRequest(router, http.MethodGet, "/recipes", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var recipes []types.RecipeSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipes))
	require.Len(t, recipes, 2)
	assert.Equal(t, "Pancakes", recipes[0].Title)
	assert.Equal(t, "Avocado Toast", recipes[1].Title)

	// Summaries never carry the full recipe text.
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	_, hasIngredients := raw[0]["ingredients"]
	_, hasInstructions := raw[0]["instructions"]
	assert.False(t, hasIngredients)
	assert.False(t, hasInstructions)
}

func TestListRecipesEndpointFilters(t *testing.T) {
	router, db := setupTestRouter(t)
	breakfast := createCategory(t, db, "Breakfast")
	lunch := createCategory(t, db, "Lunch")
	createRecipe(t, db, breakfast.ID, "Cheese Omelette", "eggs\ncheese")
	grilledCheese := createRecipe(t, db, lunch.ID, "Grilled Cheese", "bread\ncheese")

	path := fmt.Sprintf("/recipes?category_id=%d&q=CHEESE", lunch.ID)
	w := performRequest(router, http.MethodGet, path, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var recipes []types.RecipeSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipes))
	require.Len(t, recipes, 1)
	assert.Equal(t, grilledCheese.ID, recipes[0].ID)
}

func TestListRecipesEndpointInvalidCategoryID(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := performRequest(router, http.MethodGet, "/recipes?category_id=abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid category ID"}`, w.Body.String())
}

func TestListRecipesEndpointEmptyResultIsArray(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := performRequest(router, http.MethodGet, "/recipes?q=nomatch", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGetRecipeEndpoint(t *testing.T) {
	router, db := setupTestRouter(t)
	category := createCategory(t, db, "Breakfast")
	recipe := createRecipe(t, db, category.ID, "Pancakes", "1 cup flour\n1 cup milk")

	w := performRequest(router, http.MethodGet, fmt.Sprintf("/recipes/%d", recipe.ID), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var detail types.RecipeDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, recipe.ID, detail.ID)
	assert.Equal(t, "Pancakes", detail.Title)
	assert.Equal(t, []string{"1 cup flour", "1 cup milk"}, detail.Ingredients)
	assert.Equal(t, "Breakfast", detail.CategoryName)
	assert.Equal(t, category.ID, detail.CategoryID)
}

func TestGetRecipeEndpointNotFound(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := performRequest(router, http.MethodGet, "/recipes/9999", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Recipe not found"}`, w.Body.String())
}

func TestGetRecipeEndpointInvalidID(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := performRequest(router, http.MethodGet, "/recipes/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid recipe ID"}`, w.Body.String())
}

func TestListRecipesEndpointServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := new(mocks.MockRecipeService)
	mockSvc.On("ListRecipes", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	router := gin.New()
	NewRecipeHandler(mockSvc).RegisterRoutes(router.Group(""))

	w := performRequest(router, http.MethodGet, "/recipes", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to list recipes"}`, w.Body.String())
	mockSvc.AssertExpectations(t)
}
