package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/retroplate/recipe-explorer/backend/internal/types"
)

// MockCategoryService is a mock implementation of service.ICategoryService
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) ListCategories(ctx context.Context) ([]types.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Category), args.Error(1)
}
