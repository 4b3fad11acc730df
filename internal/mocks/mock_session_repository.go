package mocks

import (
	"context"
	"time"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
)

// MockSessionRepository implements domain.SessionRepository interface for testing
type MockSessionRepository struct {
	CreateFunc            func(ctx context.Context, session *domain.CustomerSession) error
	FindByAccessTokenFunc func(ctx context.Context, accessToken string) (*domain.CustomerSession, error)
	StampLogoutFunc       func(ctx context.Context, accessToken string, at time.Time) error
}

// NewMockSessionRepository creates a new MockSessionRepository with default behaviors
func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{}
}

// Create appends a session row
func (m *MockSessionRepository) Create(ctx context.Context, session *domain.CustomerSession) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	// Default behavior: success
	return nil
}

// FindByAccessToken finds a session by access token
func (m *MockSessionRepository) FindByAccessToken(ctx context.Context, accessToken string) (*domain.CustomerSession, error) {
	if m.FindByAccessTokenFunc != nil {
		return m.FindByAccessTokenFunc(ctx, accessToken)
	}
	// Default behavior: unknown token
	return nil, domain.ErrNotLoggedIn
}

// StampLogout marks a session as logged out
func (m *MockSessionRepository) StampLogout(ctx context.Context, accessToken string, at time.Time) error {
	if m.StampLogoutFunc != nil {
		return m.StampLogoutFunc(ctx, accessToken, at)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.SessionRepository = (*MockSessionRepository)(nil)
