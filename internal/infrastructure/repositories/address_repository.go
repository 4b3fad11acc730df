package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
)

// AddressRepositoryImpl implements domain.AddressRepository using GORM
type AddressRepositoryImpl struct {
	db *gorm.DB
}

// DBState represents the database model for State
type DBState struct {
	ID        uint   `gorm:"primaryKey"`
	UUID      string `gorm:"uniqueIndex;size:200;not null"`
	StateName string `gorm:"size:30"`
}

// TableName returns the table name for GORM
func (DBState) TableName() string {
	return "states"
}

// DBAddress represents the database model for Address
type DBAddress struct {
	ID                 uint    `gorm:"primaryKey"`
	UUID               string  `gorm:"uniqueIndex;size:200;not null"`
	FlatBuildingNumber string  `gorm:"column:flat_buil_number;size:255"`
	Locality           string  `gorm:"size:255"`
	City               string  `gorm:"size:30"`
	Pincode            string  `gorm:"size:30"`
	StateID            uint    `gorm:"index;not null"`
	State              DBState `gorm:"foreignKey:StateID"`
	Active             bool    `gorm:"default:true"`
}

// TableName returns the table name for GORM
func (DBAddress) TableName() string {
	return "addresses"
}

// DBCustomerAddress links customers to their saved addresses
type DBCustomerAddress struct {
	ID         uint `gorm:"primaryKey"`
	CustomerID uint `gorm:"index;not null"`
	AddressID  uint `gorm:"index;not null"`
}

// TableName returns the table name for GORM
func (DBCustomerAddress) TableName() string {
	return "customer_address"
}

// NewAddressRepository creates a new address repository
func NewAddressRepository(db *gorm.DB) domain.AddressRepository {
	return &AddressRepositoryImpl{db: db}
}

// Create implements domain.AddressRepository. The address row and its
// customer link are written in one transaction.
func (r *AddressRepositoryImpl) Create(ctx context.Context, address *domain.Address, customerID uint) error {
	dbAddress := addressToDB(address)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(dbAddress).Error; err != nil {
			return err
		}
		link := &DBCustomerAddress{CustomerID: customerID, AddressID: dbAddress.ID}
		return tx.Create(link).Error
	})
	if err != nil {
		return err
	}
	address.ID = dbAddress.ID
	return nil
}

// FindByUUID implements domain.AddressRepository
func (r *AddressRepositoryImpl) FindByUUID(ctx context.Context, uuid string) (*domain.Address, error) {
	var dbAddress DBAddress
	err := r.db.WithContext(ctx).
		Preload("State").
		Where("uuid = ?", uuid).
		First(&dbAddress).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrAddressNotFound
		}
		return nil, err
	}
	return addressToDomain(&dbAddress), nil
}

// ListByCustomer implements domain.AddressRepository
func (r *AddressRepositoryImpl) ListByCustomer(ctx context.Context, customerID uint) ([]domain.Address, error) {
	var dbAddresses []DBAddress
	err := r.db.WithContext(ctx).
		Preload("State").
		Joins("JOIN customer_address ON customer_address.address_id = addresses.id").
		Where("customer_address.customer_id = ? AND addresses.active = ?", customerID, true).
		Order("addresses.id DESC").
		Find(&dbAddresses).Error
	if err != nil {
		return nil, err
	}

	addresses := make([]domain.Address, 0, len(dbAddresses))
	for i := range dbAddresses {
		addresses = append(addresses, *addressToDomain(&dbAddresses[i]))
	}
	return addresses, nil
}

// OwnedBy implements domain.AddressRepository
func (r *AddressRepositoryImpl) OwnedBy(ctx context.Context, addressID, customerID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBCustomerAddress{}).
		Where("address_id = ? AND customer_id = ?", addressID, customerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete implements domain.AddressRepository. The customer link rows go
// with the address.
func (r *AddressRepositoryImpl) Delete(ctx context.Context, address *domain.Address) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("address_id = ?", address.ID).Delete(&DBCustomerAddress{}).Error; err != nil {
			return err
		}
		return tx.Delete(&DBAddress{}, address.ID).Error
	})
}

// Deactivate implements domain.AddressRepository
func (r *AddressRepositoryImpl) Deactivate(ctx context.Context, address *domain.Address) error {
	return r.db.WithContext(ctx).Model(&DBAddress{}).
		Where("id = ?", address.ID).
		Update("active", false).Error
}

// FindStateByUUID implements domain.AddressRepository
func (r *AddressRepositoryImpl) FindStateByUUID(ctx context.Context, uuid string) (*domain.State, error) {
	var dbState DBState
	err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&dbState).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrStateNotFound
		}
		return nil, err
	}
	return stateToDomain(&dbState), nil
}

// ListStates implements domain.AddressRepository
func (r *AddressRepositoryImpl) ListStates(ctx context.Context) ([]domain.State, error) {
	var dbStates []DBState
	if err := r.db.WithContext(ctx).Order("id").Find(&dbStates).Error; err != nil {
		return nil, err
	}

	states := make([]domain.State, 0, len(dbStates))
	for i := range dbStates {
		states = append(states, *stateToDomain(&dbStates[i]))
	}
	return states, nil
}

// addressToDB converts a domain address to the database model
func addressToDB(address *domain.Address) *DBAddress {
	return &DBAddress{
		ID:                 address.ID,
		UUID:               address.UUID,
		FlatBuildingNumber: address.FlatBuildingNumber,
		Locality:           address.Locality,
		City:               address.City,
		Pincode:            address.Pincode,
		StateID:            address.StateID,
		Active:             address.Active,
	}
}

// addressToDomain converts a database address to the domain model
func addressToDomain(dbAddress *DBAddress) *domain.Address {
	address := &domain.Address{
		ID:                 dbAddress.ID,
		UUID:               dbAddress.UUID,
		FlatBuildingNumber: dbAddress.FlatBuildingNumber,
		Locality:           dbAddress.Locality,
		City:               dbAddress.City,
		Pincode:            dbAddress.Pincode,
		StateID:            dbAddress.StateID,
		Active:             dbAddress.Active,
	}
	if dbAddress.State.ID != 0 {
		address.State = stateToDomain(&dbAddress.State)
	}
	return address
}

// stateToDomain converts a database state to the domain model
func stateToDomain(dbState *DBState) *domain.State {
	return &domain.State{
		ID:        dbState.ID,
		UUID:      dbState.UUID,
		StateName: dbState.StateName,
	}
}
