package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
)

func seedCustomer(t *testing.T, repo domain.CustomerRepository) *domain.Customer {
	t.Helper()

	customer := &domain.Customer{
		UUID:          "customer-uuid-1",
		FirstName:     "Asha",
		LastName:      "Nair",
		Email:         "asha@example.com",
		ContactNumber: "9876543210",
		PasswordHash:  "digest",
		Salt:          "salt",
		Role:          "customer",
	}
	require.NoError(t, repo.Create(context.Background(), customer))
	return customer
}

func TestSessionRepositoryImpl_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	customerRepo := NewCustomerRepository(db)
	repo := NewSessionRepository(db)
	customer := seedCustomer(t, customerRepo)

	now := time.Now().Truncate(time.Second)
	session := &domain.CustomerSession{
		UUID:        "session-uuid-1",
		AccessToken: "token-1",
		CustomerID:  customer.ID,
		LoginAt:     now,
		ExpiresAt:   now.Add(8 * time.Hour),
	}
	require.NoError(t, repo.Create(context.Background(), session))
	assert.NotZero(t, session.ID)

	found, err := repo.FindByAccessToken(context.Background(), "token-1")
	require.NoError(t, err)
	assert.Equal(t, session.UUID, found.UUID)
	assert.Nil(t, found.LogoutAt)
	require.NotNil(t, found.Customer, "session lookup must load the owning customer")
	assert.Equal(t, customer.UUID, found.Customer.UUID)
}

func TestSessionRepositoryImpl_FindUnknownToken(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)

	_, err := repo.FindByAccessToken(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
}

func TestSessionRepositoryImpl_StampLogout(t *testing.T) {
	db := setupTestDB(t)
	customerRepo := NewCustomerRepository(db)
	repo := NewSessionRepository(db)
	customer := seedCustomer(t, customerRepo)

	now := time.Now().Truncate(time.Second)
	session := &domain.CustomerSession{
		UUID:        "session-uuid-2",
		AccessToken: "token-2",
		CustomerID:  customer.ID,
		LoginAt:     now,
		ExpiresAt:   now.Add(8 * time.Hour),
	}
	require.NoError(t, repo.Create(context.Background(), session))

	logoutAt := now.Add(time.Hour)
	require.NoError(t, repo.StampLogout(context.Background(), "token-2", logoutAt))

	found, err := repo.FindByAccessToken(context.Background(), "token-2")
	require.NoError(t, err)
	require.NotNil(t, found.LogoutAt)
	assert.WithinDuration(t, logoutAt, *found.LogoutAt, time.Second)

	// second logout loses the compare-and-set
	err = repo.StampLogout(context.Background(), "token-2", logoutAt.Add(time.Minute))
	assert.ErrorIs(t, err, domain.ErrLoggedOut)

	// stamping an unknown token is not logged in, not logged out
	err = repo.StampLogout(context.Background(), "missing-token", logoutAt)
	assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
}

func TestSessionRepositoryImpl_HistoryIsAppendOnly(t *testing.T) {
	db := setupTestDB(t)
	customerRepo := NewCustomerRepository(db)
	repo := NewSessionRepository(db)
	customer := seedCustomer(t, customerRepo)

	now := time.Now().Truncate(time.Second)
	for i, token := range []string{"hist-1", "hist-2", "hist-3"} {
		session := &domain.CustomerSession{
			UUID:        "hist-uuid-" + token,
			AccessToken: token,
			CustomerID:  customer.ID,
			LoginAt:     now.Add(time.Duration(i) * time.Minute),
			ExpiresAt:   now.Add(8 * time.Hour),
		}
		require.NoError(t, repo.Create(context.Background(), session))
	}
	require.NoError(t, repo.StampLogout(context.Background(), "hist-1", now.Add(time.Hour)))

	var count int64
	require.NoError(t, db.Model(&DBCustomerSession{}).Count(&count).Error)
	assert.EqualValues(t, 3, count, "logout must never delete session rows")
}
