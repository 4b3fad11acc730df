package mocks

import (
	"context"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
)

// MockItemRepository implements domain.ItemRepository interface for testing
type MockItemRepository struct {
	FindByUUIDFunc          func(ctx context.Context, uuid string) (*domain.Item, error)
	PopularByRestaurantFunc func(ctx context.Context, restaurantID uint, limit int) ([]domain.Item, error)
}

// NewMockItemRepository creates a new MockItemRepository with default behaviors
func NewMockItemRepository() *MockItemRepository {
	return &MockItemRepository{}
}

// FindByUUID finds an item by UUID
func (m *MockItemRepository) FindByUUID(ctx context.Context, uuid string) (*domain.Item, error) {
	if m.FindByUUIDFunc != nil {
		return m.FindByUUIDFunc(ctx, uuid)
	}
	// Default behavior: not found
	return nil, domain.ErrItemNotFound
}

// PopularByRestaurant lists a restaurant's most ordered items
func (m *MockItemRepository) PopularByRestaurant(ctx context.Context, restaurantID uint, limit int) ([]domain.Item, error) {
	if m.PopularByRestaurantFunc != nil {
		return m.PopularByRestaurantFunc(ctx, restaurantID, limit)
	}
	// Default behavior: empty list
	return nil, nil
}

// Compile-time interface compliance verification
var _ domain.ItemRepository = (*MockItemRepository)(nil)
