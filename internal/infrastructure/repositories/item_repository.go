package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
)

// ItemRepositoryImpl implements domain.ItemRepository using GORM
type ItemRepositoryImpl struct {
	db *gorm.DB
}

// DBItem represents the database model for Item
type DBItem struct {
	ID       uint   `gorm:"primaryKey"`
	UUID     string `gorm:"uniqueIndex;size:200;not null"`
	ItemName string `gorm:"size:30;not null"`
	Price    int    `gorm:"not null"`
	Type     string `gorm:"size:10;not null"`
}

// TableName returns the table name for GORM
func (DBItem) TableName() string {
	return "items"
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *gorm.DB) domain.ItemRepository {
	return &ItemRepositoryImpl{db: db}
}

// FindByUUID implements domain.ItemRepository
func (r *ItemRepositoryImpl) FindByUUID(ctx context.Context, uuid string) (*domain.Item, error) {
	var dbItem DBItem
	err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&dbItem).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	return itemToDomain(&dbItem), nil
}

// PopularByRestaurant implements domain.ItemRepository: items ranked by
// how many of the restaurant's orders contain them.
func (r *ItemRepositoryImpl) PopularByRestaurant(ctx context.Context, restaurantID uint, limit int) ([]domain.Item, error) {
	var dbItems []DBItem
	err := r.db.WithContext(ctx).
		Joins("JOIN order_items ON order_items.item_id = items.id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.restaurant_id = ?", restaurantID).
		Group("items.id").
		Order("COUNT(order_items.id) DESC").
		Limit(limit).
		Find(&dbItems).Error
	if err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(dbItems))
	for i := range dbItems {
		items = append(items, *itemToDomain(&dbItems[i]))
	}
	return items, nil
}

// itemToDomain converts a database item to the domain model
func itemToDomain(dbItem *DBItem) *domain.Item {
	return &domain.Item{
		ID:       dbItem.ID,
		UUID:     dbItem.UUID,
		ItemName: dbItem.ItemName,
		Price:    dbItem.Price,
		Type:     domain.ItemType(dbItem.Type),
	}
}
