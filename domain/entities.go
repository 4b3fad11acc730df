package domain

import "time"

// Customer represents a registered customer identity
type Customer struct {
	ID            uint
	UUID          string
	FirstName     string
	LastName      string
	Email         string
	ContactNumber string
	PasswordHash  string
	Salt          string
	Role          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CustomerSession represents one authenticated login. Sessions are
// append-only: created on login, stamped once on logout, never deleted.
type CustomerSession struct {
	ID          uint
	UUID        string
	AccessToken string
	CustomerID  uint
	Customer    *Customer
	LoginAt     time.Time
	ExpiresAt   time.Time
	LogoutAt    *time.Time
}

// LoggedOut reports whether the session has been explicitly invalidated.
func (s *CustomerSession) LoggedOut() bool {
	return s.LogoutAt != nil
}

// Expired reports whether the session validity window has closed at now.
// The window is half-open: a session is expired once now >= ExpiresAt.
func (s *CustomerSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Active reports whether the session can still authorize requests at now.
func (s *CustomerSession) Active(now time.Time) bool {
	return !s.LoggedOut() && !s.Expired(now)
}

// AuthResult represents a successful authentication outcome
type AuthResult struct {
	Customer    *Customer
	Session     *CustomerSession
	AccessToken string
}

// State represents a geographic state addresses belong to
type State struct {
	ID        uint
	UUID      string
	StateName string
}

// Address represents a delivery address owned by a customer
type Address struct {
	ID                 uint
	UUID               string
	FlatBuildingNumber string
	Locality           string
	City               string
	Pincode            string
	StateID            uint
	State              *State
	Active             bool
}

// ItemType distinguishes vegetarian and non-vegetarian items
type ItemType string

const (
	ItemTypeVeg    ItemType = "VEG"
	ItemTypeNonVeg ItemType = "NON_VEG"
)

// Item represents a menu item; price is in the smallest currency unit
type Item struct {
	ID       uint
	UUID     string
	ItemName string
	Price    int
	Type     ItemType
}

// Category groups menu items
type Category struct {
	ID           uint
	UUID         string
	CategoryName string
	Items        []Item
}

// Restaurant represents a listed restaurant with its menu categories
type Restaurant struct {
	ID                   uint
	UUID                 string
	RestaurantName       string
	PhotoURL             string
	CustomerRating       float64
	AveragePriceForTwo   int
	NumberCustomersRated int
	AddressID            uint
	Address              *Address
	Categories           []Category
}

// Coupon represents a discount coupon applicable to an order
type Coupon struct {
	ID      uint
	UUID    string
	Name    string
	Percent int
}

// OrderItem represents one line of an order
type OrderItem struct {
	ID       uint
	OrderID  uint
	ItemID   uint
	Item     *Item
	Quantity int
	Price    int
}

// PlaceOrderItem names one menu item and quantity in an order request
type PlaceOrderItem struct {
	ItemUUID string
	Quantity int
}

// PlaceOrderRequest carries everything needed to place an order
type PlaceOrderRequest struct {
	AddressUUID    string
	RestaurantUUID string
	CouponUUID     string
	Items          []PlaceOrderItem
}

// Order represents a placed order
type Order struct {
	ID           uint
	UUID         string
	Bill         float64
	Discount     float64
	Date         time.Time
	CustomerID   uint
	Customer     *Customer
	AddressID    uint
	Address      *Address
	RestaurantID uint
	Restaurant   *Restaurant
	CouponID     *uint
	Coupon       *Coupon
	Items        []OrderItem
}
