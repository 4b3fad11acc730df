package mocks

import (
	"context"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
)

// MockCategoryRepository implements domain.CategoryRepository interface for testing
type MockCategoryRepository struct {
	ListFunc       func(ctx context.Context) ([]domain.Category, error)
	FindByUUIDFunc func(ctx context.Context, uuid string) (*domain.Category, error)
}

// NewMockCategoryRepository creates a new MockCategoryRepository with default behaviors
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{}
}

// List lists all categories
func (m *MockCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	// Default behavior: empty list
	return nil, nil
}

// FindByUUID finds a category by UUID
func (m *MockCategoryRepository) FindByUUID(ctx context.Context, uuid string) (*domain.Category, error) {
	if m.FindByUUIDFunc != nil {
		return m.FindByUUIDFunc(ctx, uuid)
	}
	// Default behavior: not found
	return nil, domain.ErrCategoryNotFound
}

// Compile-time interface compliance verification
var _ domain.CategoryRepository = (*MockCategoryRepository)(nil)
