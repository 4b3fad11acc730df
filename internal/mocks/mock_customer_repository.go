package mocks

import (
	"context"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
)

// MockCustomerRepository implements domain.CustomerRepository interface for testing
type MockCustomerRepository struct {
	CreateFunc              func(ctx context.Context, customer *domain.Customer) error
	FindByContactNumberFunc func(ctx context.Context, contactNumber string) (*domain.Customer, error)
	FindByUUIDFunc          func(ctx context.Context, uuid string) (*domain.Customer, error)
	FindByIDFunc            func(ctx context.Context, id uint) (*domain.Customer, error)
	UpdateFunc              func(ctx context.Context, customer *domain.Customer) error
}

// NewMockCustomerRepository creates a new MockCustomerRepository with default behaviors
func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{}
}

// Create creates a new customer
func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, customer)
	}
	// Default behavior: success
	return nil
}

// FindByContactNumber finds a customer by contact number
func (m *MockCustomerRepository) FindByContactNumber(ctx context.Context, contactNumber string) (*domain.Customer, error) {
	if m.FindByContactNumberFunc != nil {
		return m.FindByContactNumberFunc(ctx, contactNumber)
	}
	// Default behavior: not registered
	return nil, domain.ErrCustomerNotRegistered
}

// FindByUUID finds a customer by UUID
func (m *MockCustomerRepository) FindByUUID(ctx context.Context, uuid string) (*domain.Customer, error) {
	if m.FindByUUIDFunc != nil {
		return m.FindByUUIDFunc(ctx, uuid)
	}
	// Default behavior: not registered
	return nil, domain.ErrCustomerNotRegistered
}

// FindByID finds a customer by ID
func (m *MockCustomerRepository) FindByID(ctx context.Context, id uint) (*domain.Customer, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not registered
	return nil, domain.ErrCustomerNotRegistered
}

// Update updates an existing customer
func (m *MockCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, customer)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.CustomerRepository = (*MockCustomerRepository)(nil)
