package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
)

// CustomerRepositoryImpl implements domain.CustomerRepository using GORM
type CustomerRepositoryImpl struct {
	db *gorm.DB
}

// DBCustomer represents the database model for Customer (with GORM tags)
type DBCustomer struct {
	ID            uint      `gorm:"primaryKey"`
	UUID          string    `gorm:"uniqueIndex;size:200;not null"`
	FirstName     string    `gorm:"size:30;not null"`
	LastName      string    `gorm:"size:30"`
	Email         string    `gorm:"size:50"`
	ContactNumber string    `gorm:"uniqueIndex;size:30;not null"`
	PasswordHash  string    `gorm:"column:password;size:255;not null"`
	Salt          string    `gorm:"size:255;not null"`
	Role          string    `gorm:"index;size:32"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBCustomer) TableName() string {
	return "customers"
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) domain.CustomerRepository {
	return &CustomerRepositoryImpl{db: db}
}

// Create implements domain.CustomerRepository
func (r *CustomerRepositoryImpl) Create(ctx context.Context, customer *domain.Customer) error {
	dbCustomer := customerToDB(customer)
	if err := r.db.WithContext(ctx).Create(dbCustomer).Error; err != nil {
		return err
	}
	customer.ID = dbCustomer.ID
	return nil
}

// FindByContactNumber implements domain.CustomerRepository
func (r *CustomerRepositoryImpl) FindByContactNumber(ctx context.Context, contactNumber string) (*domain.Customer, error) {
	var dbCustomer DBCustomer
	err := r.db.WithContext(ctx).Where("contact_number = ?", contactNumber).First(&dbCustomer).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrCustomerNotRegistered
		}
		return nil, err
	}
	return customerToDomain(&dbCustomer), nil
}

// FindByUUID implements domain.CustomerRepository
func (r *CustomerRepositoryImpl) FindByUUID(ctx context.Context, uuid string) (*domain.Customer, error) {
	var dbCustomer DBCustomer
	err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&dbCustomer).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrCustomerNotRegistered
		}
		return nil, err
	}
	return customerToDomain(&dbCustomer), nil
}

// FindByID implements domain.CustomerRepository
func (r *CustomerRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Customer, error) {
	var dbCustomer DBCustomer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbCustomer).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrCustomerNotRegistered
		}
		return nil, err
	}
	return customerToDomain(&dbCustomer), nil
}

// Update implements domain.CustomerRepository
func (r *CustomerRepositoryImpl) Update(ctx context.Context, customer *domain.Customer) error {
	return r.db.WithContext(ctx).Model(&DBCustomer{}).
		Where("id = ?", customer.ID).
		Updates(map[string]interface{}{
			"first_name": customer.FirstName,
			"last_name":  customer.LastName,
			"email":      customer.Email,
			"password":   customer.PasswordHash,
			"salt":       customer.Salt,
		}).Error
}

// customerToDB converts a domain customer to the database model
func customerToDB(customer *domain.Customer) *DBCustomer {
	return &DBCustomer{
		ID:            customer.ID,
		UUID:          customer.UUID,
		FirstName:     customer.FirstName,
		LastName:      customer.LastName,
		Email:         customer.Email,
		ContactNumber: customer.ContactNumber,
		PasswordHash:  customer.PasswordHash,
		Salt:          customer.Salt,
		Role:          customer.Role,
	}
}

// customerToDomain converts a database customer to the domain model
func customerToDomain(dbCustomer *DBCustomer) *domain.Customer {
	return &domain.Customer{
		ID:            dbCustomer.ID,
		UUID:          dbCustomer.UUID,
		FirstName:     dbCustomer.FirstName,
		LastName:      dbCustomer.LastName,
		Email:         dbCustomer.Email,
		ContactNumber: dbCustomer.ContactNumber,
		PasswordHash:  dbCustomer.PasswordHash,
		Salt:          dbCustomer.Salt,
		Role:          dbCustomer.Role,
		CreatedAt:     dbCustomer.CreatedAt,
		UpdatedAt:     dbCustomer.UpdatedAt,
	}
}
