package mocks

import (
	"context"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
)

// MockRestaurantRepository implements domain.RestaurantRepository interface for testing
type MockRestaurantRepository struct {
	ListFunc               func(ctx context.Context) ([]domain.Restaurant, error)
	FindByUUIDFunc         func(ctx context.Context, uuid string) (*domain.Restaurant, error)
	SearchByNameFunc       func(ctx context.Context, name string) ([]domain.Restaurant, error)
	ListByCategoryUUIDFunc func(ctx context.Context, categoryUUID string) ([]domain.Restaurant, error)
	UpdateRatingFunc       func(ctx context.Context, restaurant *domain.Restaurant) error
}

// NewMockRestaurantRepository creates a new MockRestaurantRepository with default behaviors
func NewMockRestaurantRepository() *MockRestaurantRepository {
	return &MockRestaurantRepository{}
}

// List lists all restaurants
func (m *MockRestaurantRepository) List(ctx context.Context) ([]domain.Restaurant, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	// Default behavior: empty list
	return nil, nil
}

// FindByUUID finds a restaurant by UUID
func (m *MockRestaurantRepository) FindByUUID(ctx context.Context, uuid string) (*domain.Restaurant, error) {
	if m.FindByUUIDFunc != nil {
		return m.FindByUUIDFunc(ctx, uuid)
	}
	// Default behavior: not found
	return nil, domain.ErrRestaurantNotFound
}

// SearchByName searches restaurants by partial name
func (m *MockRestaurantRepository) SearchByName(ctx context.Context, name string) ([]domain.Restaurant, error) {
	if m.SearchByNameFunc != nil {
		return m.SearchByNameFunc(ctx, name)
	}
	// Default behavior: empty list
	return nil, nil
}

// ListByCategoryUUID lists restaurants serving a category
func (m *MockRestaurantRepository) ListByCategoryUUID(ctx context.Context, categoryUUID string) ([]domain.Restaurant, error) {
	if m.ListByCategoryUUIDFunc != nil {
		return m.ListByCategoryUUIDFunc(ctx, categoryUUID)
	}
	// Default behavior: empty list
	return nil, nil
}

// UpdateRating persists a restaurant's rating fields
func (m *MockRestaurantRepository) UpdateRating(ctx context.Context, restaurant *domain.Restaurant) error {
	if m.UpdateRatingFunc != nil {
		return m.UpdateRatingFunc(ctx, restaurant)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.RestaurantRepository = (*MockRestaurantRepository)(nil)
