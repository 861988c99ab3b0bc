package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/retroplate/recipe-explorer/backend/internal/mocks"
	"github.com/retroplate/recipe-explorer/backend/internal/types"
)

func TestListCategoriesEndpoint(t *testing.T) {
	router, db := setupTestRouter(t)
	createCategory(t, db, "Lunch")
	createCategory(t, db, "Breakfast")

	w := performRequest(router, http.MethodGet, "/categories", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var categories []types.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	require.Len(t, categories, 2)
	assert.Equal(t, "Breakfast", categories[0].Name)
	assert.Equal(t, "Lunch", categories[1].Name)
}

func TestListCategoriesEndpointEmpty(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := performRequest(router, http.MethodGet, "/categories", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestListCategoriesEndpointServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := new(mocks.MockCategoryService)
	mockSvc.On("ListCategories", mock.Anything).Return(nil, errors.New("connection refused"))

	router := gin.New()
	NewCategoryHandler(mockSvc).RegisterRoutes(router.Group(""))

	w := performRequest(router, http.MethodGet, "/categories", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to list categories"}`, w.Body.String())
	mockSvc.AssertExpectations(t)
}
