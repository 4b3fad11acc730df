package mocks

import (
	"context"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
)

// MockAddressRepository implements domain.AddressRepository interface for testing
type MockAddressRepository struct {
	CreateFunc          func(ctx context.Context, address *domain.Address, customerID uint) error
	FindByUUIDFunc      func(ctx context.Context, uuid string) (*domain.Address, error)
	ListByCustomerFunc  func(ctx context.Context, customerID uint) ([]domain.Address, error)
	OwnedByFunc         func(ctx context.Context, addressID, customerID uint) (bool, error)
	DeleteFunc          func(ctx context.Context, address *domain.Address) error
	DeactivateFunc      func(ctx context.Context, address *domain.Address) error
	FindStateByUUIDFunc func(ctx context.Context, uuid string) (*domain.State, error)
	ListStatesFunc      func(ctx context.Context) ([]domain.State, error)
}

// NewMockAddressRepository creates a new MockAddressRepository with default behaviors
func NewMockAddressRepository() *MockAddressRepository {
	return &MockAddressRepository{}
}

// Create saves an address for a customer
func (m *MockAddressRepository) Create(ctx context.Context, address *domain.Address, customerID uint) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, address, customerID)
	}
	// Default behavior: success
	return nil
}

// FindByUUID finds an address by UUID
func (m *MockAddressRepository) FindByUUID(ctx context.Context, uuid string) (*domain.Address, error) {
	if m.FindByUUIDFunc != nil {
		return m.FindByUUIDFunc(ctx, uuid)
	}
	// Default behavior: not found
	return nil, domain.ErrAddressNotFound
}

// ListByCustomer lists a customer's active addresses
func (m *MockAddressRepository) ListByCustomer(ctx context.Context, customerID uint) ([]domain.Address, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(ctx, customerID)
	}
	// Default behavior: empty list
	return nil, nil
}

// OwnedBy reports whether an address belongs to a customer
func (m *MockAddressRepository) OwnedBy(ctx context.Context, addressID, customerID uint) (bool, error) {
	if m.OwnedByFunc != nil {
		return m.OwnedByFunc(ctx, addressID, customerID)
	}
	// Default behavior: owned
	return true, nil
}

// Delete removes an address
func (m *MockAddressRepository) Delete(ctx context.Context, address *domain.Address) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, address)
	}
	// Default behavior: success
	return nil
}

// Deactivate soft-deletes an address
func (m *MockAddressRepository) Deactivate(ctx context.Context, address *domain.Address) error {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, address)
	}
	// Default behavior: success
	return nil
}

// FindStateByUUID finds a state by UUID
func (m *MockAddressRepository) FindStateByUUID(ctx context.Context, uuid string) (*domain.State, error) {
	if m.FindStateByUUIDFunc != nil {
		return m.FindStateByUUIDFunc(ctx, uuid)
	}
	// Default behavior: not found
	return nil, domain.ErrStateNotFound
}

// ListStates lists all states
func (m *MockAddressRepository) ListStates(ctx context.Context) ([]domain.State, error) {
	if m.ListStatesFunc != nil {
		return m.ListStatesFunc(ctx)
	}
	// Default behavior: empty list
	return nil, nil
}

// Compile-time interface compliance verification
var _ domain.AddressRepository = (*MockAddressRepository)(nil)
