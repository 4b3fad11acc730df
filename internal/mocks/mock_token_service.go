package mocks

import (
	"fmt"
	"time"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	IssueTokenFunc func(customerUUID string, issuedAt, expiresAt time.Time) (string, error)

	issued int
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// IssueToken encodes a bearer token for a customer
func (m *MockTokenService) IssueToken(customerUUID string, issuedAt, expiresAt time.Time) (string, error) {
	if m.IssueTokenFunc != nil {
		return m.IssueTokenFunc(customerUUID, issuedAt, expiresAt)
	}
	// Default behavior: unique fake token per call
	m.issued++
	return fmt.Sprintf("token_%s_%d", customerUUID, m.issued), nil
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
