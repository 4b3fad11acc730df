package mocks

import (
	"context"
	"time"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
)

// MockCustomerService implements domain.CustomerService interface for testing
type MockCustomerService struct {
	SignUpFunc         func(ctx context.Context, customer *domain.Customer, password string) (*domain.Customer, error)
	AuthenticateFunc   func(ctx context.Context, contactNumber, password string) (*domain.AuthResult, error)
	GetCustomerFunc    func(ctx context.Context, accessToken string) (*domain.Customer, error)
	LogoutFunc         func(ctx context.Context, accessToken string) (*domain.CustomerSession, error)
	UpdateDetailsFunc  func(ctx context.Context, accessToken, firstName, lastName string) (*domain.Customer, error)
	ChangePasswordFunc func(ctx context.Context, accessToken, oldPassword, newPassword string) (*domain.Customer, error)
}

// NewMockCustomerService creates a new MockCustomerService with default behaviors
func NewMockCustomerService() *MockCustomerService {
	return &MockCustomerService{}
}

// SignUp registers a new customer
func (m *MockCustomerService) SignUp(ctx context.Context, customer *domain.Customer, password string) (*domain.Customer, error) {
	if m.SignUpFunc != nil {
		return m.SignUpFunc(ctx, customer, password)
	}
	// Default behavior: echo the customer back with an ID
	customer.ID = 1
	if customer.UUID == "" {
		customer.UUID = "customer-uuid"
	}
	return customer, nil
}

// Authenticate verifies credentials and opens a session
func (m *MockCustomerService) Authenticate(ctx context.Context, contactNumber, password string) (*domain.AuthResult, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, contactNumber, password)
	}
	// Default behavior: fixed active session
	customer := &domain.Customer{ID: 1, UUID: "customer-uuid", FirstName: "Test", ContactNumber: contactNumber, Role: "customer"}
	session := &domain.CustomerSession{
		UUID:        "session-uuid",
		AccessToken: "test-token",
		CustomerID:  customer.ID,
		Customer:    customer,
		LoginAt:     time.Now(),
		ExpiresAt:   time.Now().Add(8 * time.Hour),
	}
	return &domain.AuthResult{Customer: customer, Session: session, AccessToken: session.AccessToken}, nil
}

// GetCustomer resolves the customer behind an access token
func (m *MockCustomerService) GetCustomer(ctx context.Context, accessToken string) (*domain.Customer, error) {
	if m.GetCustomerFunc != nil {
		return m.GetCustomerFunc(ctx, accessToken)
	}
	// Default behavior: unknown token
	return nil, domain.ErrNotLoggedIn
}

// Logout invalidates a session
func (m *MockCustomerService) Logout(ctx context.Context, accessToken string) (*domain.CustomerSession, error) {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, accessToken)
	}
	// Default behavior: unknown token
	return nil, domain.ErrNotLoggedIn
}

// UpdateDetails updates the customer's name
func (m *MockCustomerService) UpdateDetails(ctx context.Context, accessToken, firstName, lastName string) (*domain.Customer, error) {
	if m.UpdateDetailsFunc != nil {
		return m.UpdateDetailsFunc(ctx, accessToken, firstName, lastName)
	}
	// Default behavior: unknown token
	return nil, domain.ErrNotLoggedIn
}

// ChangePassword rotates the customer's password
func (m *MockCustomerService) ChangePassword(ctx context.Context, accessToken, oldPassword, newPassword string) (*domain.Customer, error) {
	if m.ChangePasswordFunc != nil {
		return m.ChangePasswordFunc(ctx, accessToken, oldPassword, newPassword)
	}
	// Default behavior: unknown token
	return nil, domain.ErrNotLoggedIn
}

// Compile-time interface compliance verification
var _ domain.CustomerService = (*MockCustomerService)(nil)
