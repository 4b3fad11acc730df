package database

import (
	"fmt"

	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Sehbaz/foodOrderingAppBackAPI/internal/infrastructure/repositories"
)

// Open creates a new database connection with production-ready settings
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate creates every application table plus the casbin policy
// table used for RBAC
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&repositories.DBCustomer{},
		&repositories.DBCustomerSession{},
		&repositories.DBState{},
		&repositories.DBAddress{},
		&repositories.DBCustomerAddress{},
		&repositories.DBRestaurant{},
		&repositories.DBCategory{},
		&repositories.DBItem{},
		&repositories.DBCoupon{},
		&repositories.DBOrder{},
		&repositories.DBOrderItem{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}

	// The adapter creates the casbin_rules table on first use
	if _, err := gormadapter.NewAdapterByDB(db); err != nil {
		return fmt.Errorf("failed to initialize Casbin GORM adapter: %w", err)
	}

	return nil
}
