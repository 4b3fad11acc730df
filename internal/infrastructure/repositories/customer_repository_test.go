package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
)

func TestCustomerRepositoryImpl_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomerRepository(db)
	customer := seedCustomer(t, repo)

	byContact, err := repo.FindByContactNumber(context.Background(), "9876543210")
	require.NoError(t, err)
	assert.Equal(t, customer.UUID, byContact.UUID)
	assert.Equal(t, "digest", byContact.PasswordHash)
	assert.Equal(t, "salt", byContact.Salt)

	byUUID, err := repo.FindByUUID(context.Background(), customer.UUID)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, byUUID.ID)

	byID, err := repo.FindByID(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.Equal(t, customer.ContactNumber, byID.ContactNumber)
}

func TestCustomerRepositoryImpl_UnknownContactNumber(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomerRepository(db)

	_, err := repo.FindByContactNumber(context.Background(), "7000000000")
	assert.ErrorIs(t, err, domain.ErrCustomerNotRegistered)
}

func TestCustomerRepositoryImpl_DuplicateContactNumber(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomerRepository(db)
	seedCustomer(t, repo)

	dup := &domain.Customer{
		UUID:          "customer-uuid-2",
		FirstName:     "Ravi",
		ContactNumber: "9876543210",
		PasswordHash:  "digest",
		Salt:          "salt",
		Role:          "customer",
	}
	assert.Error(t, repo.Create(context.Background(), dup), "contact number carries a unique index")
}

func TestCustomerRepositoryImpl_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomerRepository(db)
	customer := seedCustomer(t, repo)

	customer.FirstName = "Meera"
	customer.LastName = ""
	customer.PasswordHash = "new-digest"
	customer.Salt = "new-salt"
	require.NoError(t, repo.Update(context.Background(), customer))

	updated, err := repo.FindByID(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Meera", updated.FirstName)
	assert.Empty(t, updated.LastName)
	assert.Equal(t, "new-digest", updated.PasswordHash)
	assert.Equal(t, "new-salt", updated.Salt)
}
