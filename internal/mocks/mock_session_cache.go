package mocks

import (
	"context"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
)

// MockSessionCache implements domain.SessionCache interface for testing
type MockSessionCache struct {
	PutFunc   func(ctx context.Context, session *domain.CustomerSession) error
	GetFunc   func(ctx context.Context, accessToken string) (*domain.CustomerSession, bool, error)
	EvictFunc func(ctx context.Context, accessToken string) error
}

// NewMockSessionCache creates a new MockSessionCache with default behaviors
func NewMockSessionCache() *MockSessionCache {
	return &MockSessionCache{}
}

// Put stores a session in the cache
func (m *MockSessionCache) Put(ctx context.Context, session *domain.CustomerSession) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, session)
	}
	// Default behavior: success
	return nil
}

// Get looks up a session by access token
func (m *MockSessionCache) Get(ctx context.Context, accessToken string) (*domain.CustomerSession, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, accessToken)
	}
	// Default behavior: miss
	return nil, false, nil
}

// Evict removes a session from the cache
func (m *MockSessionCache) Evict(ctx context.Context, accessToken string) error {
	if m.EvictFunc != nil {
		return m.EvictFunc(ctx, accessToken)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.SessionCache = (*MockSessionCache)(nil)
