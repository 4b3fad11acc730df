package mocks

import "github.com/Sehbaz/foodOrderingAppBackAPI/domain"

// MockPasswordService implements domain.PasswordService interface for testing
type MockPasswordService struct {
	NewSaltFunc func() (string, error)
	HashFunc    func(password, salt string) string
	MatchesFunc func(password, salt, digest string) bool
}

// NewMockPasswordService creates a new MockPasswordService with default behaviors
func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

// NewSalt generates a fresh salt
func (m *MockPasswordService) NewSalt() (string, error) {
	if m.NewSaltFunc != nil {
		return m.NewSaltFunc()
	}
	// Default behavior: fixed salt (for testing only)
	return "test_salt", nil
}

// Hash derives a digest from password and salt
func (m *MockPasswordService) Hash(password, salt string) string {
	if m.HashFunc != nil {
		return m.HashFunc(password, salt)
	}
	// Default behavior: simple concatenation (for testing only)
	return "hashed_" + password + "_" + salt
}

// Matches verifies a password against a stored digest
func (m *MockPasswordService) Matches(password, salt, digest string) bool {
	if m.MatchesFunc != nil {
		return m.MatchesFunc(password, salt, digest)
	}
	// Default behavior: re-derive and compare
	return digest == m.Hash(password, salt)
}

// Compile-time interface compliance verification
var _ domain.PasswordService = (*MockPasswordService)(nil)
