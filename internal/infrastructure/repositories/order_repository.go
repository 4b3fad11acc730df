package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
)

// OrderRepositoryImpl implements domain.OrderRepository using GORM
type OrderRepositoryImpl struct {
	db *gorm.DB
}

// DBCoupon represents the database model for Coupon
type DBCoupon struct {
	ID      uint   `gorm:"primaryKey"`
	UUID    string `gorm:"uniqueIndex;size:200;not null"`
	Name    string `gorm:"uniqueIndex;size:255;not null"`
	Percent int    `gorm:"not null"`
}

// TableName returns the table name for GORM
func (DBCoupon) TableName() string {
	return "coupons"
}

// DBOrder represents the database model for Order
type DBOrder struct {
	ID           uint          `gorm:"primaryKey"`
	UUID         string        `gorm:"uniqueIndex;size:200;not null"`
	Bill         float64       `gorm:"not null"`
	Discount     float64       `gorm:"default:0"`
	Date         time.Time     `gorm:"index;not null"`
	CustomerID   uint          `gorm:"index;not null"`
	Customer     DBCustomer    `gorm:"foreignKey:CustomerID"`
	AddressID    uint          `gorm:"index;not null"`
	Address      DBAddress     `gorm:"foreignKey:AddressID"`
	RestaurantID uint          `gorm:"index;not null"`
	Restaurant   DBRestaurant  `gorm:"foreignKey:RestaurantID"`
	CouponID     *uint         `gorm:"index"`
	Coupon       *DBCoupon     `gorm:"foreignKey:CouponID"`
	Items        []DBOrderItem `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (DBOrder) TableName() string {
	return "orders"
}

// DBOrderItem represents one line of an order
type DBOrderItem struct {
	ID       uint   `gorm:"primaryKey"`
	OrderID  uint   `gorm:"index;not null"`
	ItemID   uint   `gorm:"index;not null"`
	Item     DBItem `gorm:"foreignKey:ItemID"`
	Quantity int    `gorm:"not null"`
	Price    int    `gorm:"not null"`
}

// TableName returns the table name for GORM
func (DBOrderItem) TableName() string {
	return "order_items"
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domain.OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

// Save implements domain.OrderRepository. The order row and all of its
// item rows are written in one transaction.
func (r *OrderRepositoryImpl) Save(ctx context.Context, order *domain.Order) error {
	dbOrder := orderToDB(order)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Customer", "Address", "Restaurant", "Coupon", "Items").Create(dbOrder).Error; err != nil {
			return err
		}
		for i := range dbOrder.Items {
			dbOrder.Items[i].OrderID = dbOrder.ID
		}
		if len(dbOrder.Items) == 0 {
			return nil
		}
		return tx.Omit("Item").Create(&dbOrder.Items).Error
	})
	if err != nil {
		return err
	}
	order.ID = dbOrder.ID
	return nil
}

// ListByCustomer implements domain.OrderRepository; newest first
func (r *OrderRepositoryImpl) ListByCustomer(ctx context.Context, customerID uint) ([]domain.Order, error) {
	var dbOrders []DBOrder
	err := r.db.WithContext(ctx).
		Preload("Items.Item").
		Preload("Address.State").
		Preload("Restaurant").
		Preload("Coupon").
		Where("customer_id = ?", customerID).
		Order("date DESC").
		Find(&dbOrders).Error
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(dbOrders))
	for i := range dbOrders {
		orders = append(orders, *orderToDomain(&dbOrders[i]))
	}
	return orders, nil
}

// CountByAddress implements domain.OrderRepository
func (r *OrderRepositoryImpl) CountByAddress(ctx context.Context, addressID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBOrder{}).
		Where("address_id = ?", addressID).
		Count(&count).Error
	return count, err
}

// FindCouponByName implements domain.OrderRepository
func (r *OrderRepositoryImpl) FindCouponByName(ctx context.Context, name string) (*domain.Coupon, error) {
	var dbCoupon DBCoupon
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&dbCoupon).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrCouponNotFound
		}
		return nil, err
	}
	return couponToDomain(&dbCoupon), nil
}

// FindCouponByUUID implements domain.OrderRepository
func (r *OrderRepositoryImpl) FindCouponByUUID(ctx context.Context, uuid string) (*domain.Coupon, error) {
	var dbCoupon DBCoupon
	err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&dbCoupon).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrCouponNotFound
		}
		return nil, err
	}
	return couponToDomain(&dbCoupon), nil
}

// orderToDB converts a domain order to the database model
func orderToDB(order *domain.Order) *DBOrder {
	dbOrder := &DBOrder{
		ID:           order.ID,
		UUID:         order.UUID,
		Bill:         order.Bill,
		Discount:     order.Discount,
		Date:         order.Date,
		CustomerID:   order.CustomerID,
		AddressID:    order.AddressID,
		RestaurantID: order.RestaurantID,
		CouponID:     order.CouponID,
	}
	for _, item := range order.Items {
		dbOrder.Items = append(dbOrder.Items, DBOrderItem{
			ItemID:   item.ItemID,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	return dbOrder
}

// orderToDomain converts a database order to the domain model
func orderToDomain(dbOrder *DBOrder) *domain.Order {
	order := &domain.Order{
		ID:           dbOrder.ID,
		UUID:         dbOrder.UUID,
		Bill:         dbOrder.Bill,
		Discount:     dbOrder.Discount,
		Date:         dbOrder.Date,
		CustomerID:   dbOrder.CustomerID,
		AddressID:    dbOrder.AddressID,
		RestaurantID: dbOrder.RestaurantID,
		CouponID:     dbOrder.CouponID,
	}
	if dbOrder.Address.ID != 0 {
		order.Address = addressToDomain(&dbOrder.Address)
	}
	if dbOrder.Restaurant.ID != 0 {
		order.Restaurant = restaurantToDomain(&dbOrder.Restaurant)
	}
	if dbOrder.Coupon != nil {
		order.Coupon = couponToDomain(dbOrder.Coupon)
	}
	for i := range dbOrder.Items {
		item := domain.OrderItem{
			ID:       dbOrder.Items[i].ID,
			OrderID:  dbOrder.Items[i].OrderID,
			ItemID:   dbOrder.Items[i].ItemID,
			Quantity: dbOrder.Items[i].Quantity,
			Price:    dbOrder.Items[i].Price,
		}
		if dbOrder.Items[i].Item.ID != 0 {
			item.Item = itemToDomain(&dbOrder.Items[i].Item)
		}
		order.Items = append(order.Items, item)
	}
	return order
}

// couponToDomain converts a database coupon to the domain model
func couponToDomain(dbCoupon *DBCoupon) *domain.Coupon {
	return &domain.Coupon{
		ID:      dbCoupon.ID,
		UUID:    dbCoupon.UUID,
		Name:    dbCoupon.Name,
		Percent: dbCoupon.Percent,
	}
}
