package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
)

// OrderHandlers handles coupon and order HTTP requests
type OrderHandlers struct {
	orderSvc domain.OrderService
}

// NewOrderHandlers creates new order handlers
func NewOrderHandlers(orderSvc domain.OrderService) *OrderHandlers {
	return &OrderHandlers{orderSvc: orderSvc}
}

// PlaceOrderRequest represents an order placement request
type PlaceOrderRequest struct {
	AddressUUID    string             `json:"address_id"`
	RestaurantUUID string             `json:"restaurant_id"`
	CouponUUID     string             `json:"coupon_id"`
	Items          []OrderItemRequest `json:"item_quantities"`
}

// OrderItemRequest represents one order line in a placement request
type OrderItemRequest struct {
	ItemUUID string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// GetCoupon handles coupon lookup by name
func (h *OrderHandlers) GetCoupon(c *gin.Context) {
	coupon, err := h.orderSvc.GetCouponByName(c.Request.Context(), c.Param("coupon_name"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":          coupon.UUID,
		"coupon_name": coupon.Name,
		"percent":     coupon.Percent,
	})
}

// PastOrders handles listing the customer's order history
func (h *OrderHandlers) PastOrders(c *gin.Context) {
	customer := currentCustomer(c)
	orders, err := h.orderSvc.GetPastOrders(c.Request.Context(), customer)
	if err != nil {
		writeError(c, err)
		return
	}

	payload := make([]gin.H, 0, len(orders))
	for _, order := range orders {
		payload = append(payload, orderJSON(&order))
	}
	c.JSON(http.StatusOK, gin.H{"orders": payload})
}

// Place handles order placement
func (h *OrderHandlers) Place(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request := &domain.PlaceOrderRequest{
		AddressUUID:    req.AddressUUID,
		RestaurantUUID: req.RestaurantUUID,
		CouponUUID:     req.CouponUUID,
	}
	for _, line := range req.Items {
		request.Items = append(request.Items, domain.PlaceOrderItem{
			ItemUUID: line.ItemUUID,
			Quantity: line.Quantity,
		})
	}

	customer := currentCustomer(c)
	order, err := h.orderSvc.PlaceOrder(c.Request.Context(), customer, request)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":     order.UUID,
		"status": "ORDER SUCCESSFULLY PLACED",
	})
}

func orderJSON(order *domain.Order) gin.H {
	items := make([]gin.H, 0, len(order.Items))
	for _, line := range order.Items {
		entry := gin.H{"quantity": line.Quantity, "price": line.Price}
		if line.Item != nil {
			entry["item"] = itemJSON(line.Item)
		}
		items = append(items, entry)
	}

	out := gin.H{
		"id":       order.UUID,
		"bill":     order.Bill,
		"discount": order.Discount,
		"date":     order.Date.Format(time.RFC3339),
		"items":    items,
	}
	if order.Coupon != nil {
		out["coupon"] = gin.H{
			"id":          order.Coupon.UUID,
			"coupon_name": order.Coupon.Name,
			"percent":     order.Coupon.Percent,
		}
	}
	if order.Address != nil {
		out["address"] = addressJSON(order.Address)
	}
	if order.Restaurant != nil {
		out["restaurant"] = gin.H{
			"id":              order.Restaurant.UUID,
			"restaurant_name": order.Restaurant.RestaurantName,
		}
	}
	return out
}
