package mocks

import (
	"context"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
)

// MockOrderRepository implements domain.OrderRepository interface for testing
type MockOrderRepository struct {
	SaveFunc             func(ctx context.Context, order *domain.Order) error
	ListByCustomerFunc   func(ctx context.Context, customerID uint) ([]domain.Order, error)
	CountByAddressFunc   func(ctx context.Context, addressID uint) (int64, error)
	FindCouponByNameFunc func(ctx context.Context, name string) (*domain.Coupon, error)
	FindCouponByUUIDFunc func(ctx context.Context, uuid string) (*domain.Coupon, error)
}

// NewMockOrderRepository creates a new MockOrderRepository with default behaviors
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{}
}

// Save persists an order with its items
func (m *MockOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, order)
	}
	// Default behavior: success
	return nil
}

// ListByCustomer lists a customer's orders
func (m *MockOrderRepository) ListByCustomer(ctx context.Context, customerID uint) ([]domain.Order, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(ctx, customerID)
	}
	// Default behavior: empty list
	return nil, nil
}

// CountByAddress counts orders delivered to an address
func (m *MockOrderRepository) CountByAddress(ctx context.Context, addressID uint) (int64, error) {
	if m.CountByAddressFunc != nil {
		return m.CountByAddressFunc(ctx, addressID)
	}
	// Default behavior: none
	return 0, nil
}

// FindCouponByName finds a coupon by name
func (m *MockOrderRepository) FindCouponByName(ctx context.Context, name string) (*domain.Coupon, error) {
	if m.FindCouponByNameFunc != nil {
		return m.FindCouponByNameFunc(ctx, name)
	}
	// Default behavior: not found
	return nil, domain.ErrCouponNotFound
}

// FindCouponByUUID finds a coupon by UUID
func (m *MockOrderRepository) FindCouponByUUID(ctx context.Context, uuid string) (*domain.Coupon, error) {
	if m.FindCouponByUUIDFunc != nil {
		return m.FindCouponByUUIDFunc(ctx, uuid)
	}
	// Default behavior: not found
	return nil, domain.ErrCouponNotFound
}

// Compile-time interface compliance verification
var _ domain.OrderRepository = (*MockOrderRepository)(nil)
