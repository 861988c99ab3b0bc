package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/retroplate/recipe-explorer/backend/internal/types"
)

// MockFavoriteService is a mock implementation of service.IFavoriteService
type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) AddFavorite(ctx context.Context, userID int64, recipeID uint) (*types.Favorite, error) {
	args := m.Called(ctx, userID, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Favorite), args.Error(1)
}

func (m *MockFavoriteService) ListFavorites(ctx context.Context, userID int64) ([]types.Favorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Favorite), args.Error(1)
}
