package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
)

// OrderServiceImpl implements domain.OrderService
type OrderServiceImpl struct {
	orderRepo       domain.OrderRepository
	addressRepo     domain.AddressRepository
	restaurantRepo  domain.RestaurantRepository
	itemRepo        domain.ItemRepository
	notificationSvc domain.NotificationService
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo domain.OrderRepository,
	addressRepo domain.AddressRepository,
	restaurantRepo domain.RestaurantRepository,
	itemRepo domain.ItemRepository,
	notificationSvc domain.NotificationService,
) domain.OrderService {
	return &OrderServiceImpl{
		orderRepo:       orderRepo,
		addressRepo:     addressRepo,
		restaurantRepo:  restaurantRepo,
		itemRepo:        itemRepo,
		notificationSvc: notificationSvc,
	}
}

// GetCouponByName implements domain.OrderService
func (s *OrderServiceImpl) GetCouponByName(ctx context.Context, name string) (*domain.Coupon, error) {
	if name == "" {
		return nil, domain.ErrCouponNameEmpty
	}
	return s.orderRepo.FindCouponByName(ctx, name)
}

// GetPastOrders implements domain.OrderService. Orders come back newest
// first.
func (s *OrderServiceImpl) GetPastOrders(ctx context.Context, customer *domain.Customer) ([]domain.Order, error) {
	return s.orderRepo.ListByCustomer(ctx, customer.ID)
}

// PlaceOrder implements domain.OrderService. Every referenced entity is
// resolved before anything persists. The bill is computed server side
// from current item prices; the client never supplies amounts.
func (s *OrderServiceImpl) PlaceOrder(ctx context.Context, customer *domain.Customer, request *domain.PlaceOrderRequest) (*domain.Order, error) {
	if len(request.Items) == 0 {
		return nil, domain.ErrNoItemsInOrder
	}

	address, err := s.addressRepo.FindByUUID(ctx, request.AddressUUID)
	if err != nil {
		return nil, err
	}
	owned, err := s.addressRepo.OwnedBy(ctx, address.ID, customer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check address ownership: %w", err)
	}
	if !owned {
		return nil, domain.ErrAddressNotOwned
	}

	restaurant, err := s.restaurantRepo.FindByUUID(ctx, request.RestaurantUUID)
	if err != nil {
		return nil, err
	}

	var coupon *domain.Coupon
	if request.CouponUUID != "" {
		coupon, err = s.orderRepo.FindCouponByUUID(ctx, request.CouponUUID)
		if err != nil {
			return nil, err
		}
	}

	order := &domain.Order{
		UUID:         uuid.NewString(),
		Date:         time.Now(),
		CustomerID:   customer.ID,
		AddressID:    address.ID,
		Address:      address,
		RestaurantID: restaurant.ID,
		Restaurant:   restaurant,
	}

	var bill float64
	for _, line := range request.Items {
		item, err := s.itemRepo.FindByUUID(ctx, line.ItemUUID)
		if err != nil {
			return nil, err
		}
		quantity := line.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		order.Items = append(order.Items, domain.OrderItem{
			ItemID:   item.ID,
			Item:     item,
			Quantity: quantity,
			Price:    item.Price,
		})
		bill += float64(item.Price * quantity)
	}

	order.Bill = bill
	if coupon != nil {
		order.CouponID = &coupon.ID
		order.Coupon = coupon
		order.Discount = bill * float64(coupon.Percent) / 100
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	s.notifyOrderPlaced(customer, order)

	return order, nil
}

// notifyOrderPlaced sends the confirmation SMS. Delivery failures do not
// fail the order.
func (s *OrderServiceImpl) notifyOrderPlaced(customer *domain.Customer, order *domain.Order) {
	if s.notificationSvc == nil {
		return
	}
	if err := s.notificationSvc.SendOrderConfirmation(customer.ContactNumber, order); err != nil {
		log.Printf("order confirmation SMS failed: %v", err)
	}
}
