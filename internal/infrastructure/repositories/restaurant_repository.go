package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
)

// RestaurantRepositoryImpl implements domain.RestaurantRepository using GORM
type RestaurantRepositoryImpl struct {
	db *gorm.DB
}

// DBRestaurant represents the database model for Restaurant
type DBRestaurant struct {
	ID                   uint         `gorm:"primaryKey"`
	UUID                 string       `gorm:"uniqueIndex;size:200;not null"`
	RestaurantName       string       `gorm:"size:50;not null"`
	PhotoURL             string       `gorm:"size:255"`
	CustomerRating       float64      `gorm:"not null"`
	AveragePriceForTwo   int          `gorm:"column:average_price_for_two;not null"`
	NumberCustomersRated int          `gorm:"not null"`
	AddressID            uint         `gorm:"index;not null"`
	Address              DBAddress    `gorm:"foreignKey:AddressID"`
	Categories           []DBCategory `gorm:"many2many:restaurant_category"`
}

// TableName returns the table name for GORM
func (DBRestaurant) TableName() string {
	return "restaurants"
}

// DBCategory represents the database model for Category
type DBCategory struct {
	ID           uint     `gorm:"primaryKey"`
	UUID         string   `gorm:"uniqueIndex;size:200;not null"`
	CategoryName string   `gorm:"size:255;not null"`
	Items        []DBItem `gorm:"many2many:category_item"`
}

// TableName returns the table name for GORM
func (DBCategory) TableName() string {
	return "categories"
}

// NewRestaurantRepository creates a new restaurant repository
func NewRestaurantRepository(db *gorm.DB) domain.RestaurantRepository {
	return &RestaurantRepositoryImpl{db: db}
}

// List implements domain.RestaurantRepository; highest rated first
func (r *RestaurantRepositoryImpl) List(ctx context.Context) ([]domain.Restaurant, error) {
	var dbRestaurants []DBRestaurant
	err := r.db.WithContext(ctx).
		Preload("Address.State").
		Preload("Categories", categoryOrder).
		Order("customer_rating DESC").
		Find(&dbRestaurants).Error
	if err != nil {
		return nil, err
	}
	return restaurantsToDomain(dbRestaurants), nil
}

// FindByUUID implements domain.RestaurantRepository; loads the full menu
func (r *RestaurantRepositoryImpl) FindByUUID(ctx context.Context, uuid string) (*domain.Restaurant, error) {
	var dbRestaurant DBRestaurant
	err := r.db.WithContext(ctx).
		Preload("Address.State").
		Preload("Categories", categoryOrder).
		Preload("Categories.Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("items.item_name")
		}).
		Where("uuid = ?", uuid).
		First(&dbRestaurant).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, err
	}
	return restaurantToDomain(&dbRestaurant), nil
}

// SearchByName implements domain.RestaurantRepository; case-insensitive
// substring match
func (r *RestaurantRepositoryImpl) SearchByName(ctx context.Context, name string) ([]domain.Restaurant, error) {
	var dbRestaurants []DBRestaurant
	err := r.db.WithContext(ctx).
		Preload("Address.State").
		Preload("Categories", categoryOrder).
		Where("LOWER(restaurant_name) LIKE ?", "%"+strings.ToLower(name)+"%").
		Order("restaurant_name").
		Find(&dbRestaurants).Error
	if err != nil {
		return nil, err
	}
	return restaurantsToDomain(dbRestaurants), nil
}

// ListByCategoryUUID implements domain.RestaurantRepository
func (r *RestaurantRepositoryImpl) ListByCategoryUUID(ctx context.Context, categoryUUID string) ([]domain.Restaurant, error) {
	var dbRestaurants []DBRestaurant
	err := r.db.WithContext(ctx).
		Preload("Address.State").
		Preload("Categories", categoryOrder).
		Joins("JOIN restaurant_category ON restaurant_category.db_restaurant_id = restaurants.id").
		Joins("JOIN categories ON categories.id = restaurant_category.db_category_id").
		Where("categories.uuid = ?", categoryUUID).
		Order("restaurants.restaurant_name").
		Find(&dbRestaurants).Error
	if err != nil {
		return nil, err
	}
	return restaurantsToDomain(dbRestaurants), nil
}

// UpdateRating implements domain.RestaurantRepository
func (r *RestaurantRepositoryImpl) UpdateRating(ctx context.Context, restaurant *domain.Restaurant) error {
	return r.db.WithContext(ctx).Model(&DBRestaurant{}).
		Where("id = ?", restaurant.ID).
		Updates(map[string]interface{}{
			"customer_rating":        restaurant.CustomerRating,
			"number_customers_rated": restaurant.NumberCustomersRated,
		}).Error
}

func categoryOrder(db *gorm.DB) *gorm.DB {
	return db.Order("categories.category_name")
}

// restaurantToDomain converts a database restaurant to the domain model
func restaurantToDomain(dbRestaurant *DBRestaurant) *domain.Restaurant {
	restaurant := &domain.Restaurant{
		ID:                   dbRestaurant.ID,
		UUID:                 dbRestaurant.UUID,
		RestaurantName:       dbRestaurant.RestaurantName,
		PhotoURL:             dbRestaurant.PhotoURL,
		CustomerRating:       dbRestaurant.CustomerRating,
		AveragePriceForTwo:   dbRestaurant.AveragePriceForTwo,
		NumberCustomersRated: dbRestaurant.NumberCustomersRated,
		AddressID:            dbRestaurant.AddressID,
	}
	if dbRestaurant.Address.ID != 0 {
		restaurant.Address = addressToDomain(&dbRestaurant.Address)
	}
	for i := range dbRestaurant.Categories {
		restaurant.Categories = append(restaurant.Categories, *categoryToDomain(&dbRestaurant.Categories[i]))
	}
	return restaurant
}

func restaurantsToDomain(dbRestaurants []DBRestaurant) []domain.Restaurant {
	restaurants := make([]domain.Restaurant, 0, len(dbRestaurants))
	for i := range dbRestaurants {
		restaurants = append(restaurants, *restaurantToDomain(&dbRestaurants[i]))
	}
	return restaurants
}

// categoryToDomain converts a database category to the domain model
func categoryToDomain(dbCategory *DBCategory) *domain.Category {
	category := &domain.Category{
		ID:           dbCategory.ID,
		UUID:         dbCategory.UUID,
		CategoryName: dbCategory.CategoryName,
	}
	for i := range dbCategory.Items {
		category.Items = append(category.Items, *itemToDomain(&dbCategory.Items[i]))
	}
	return category
}
