package domain

import (
	"context"
	"time"
)

// CustomerRepository defines customer data access operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *Customer) error
	FindByContactNumber(ctx context.Context, contactNumber string) (*Customer, error)
	FindByUUID(ctx context.Context, uuid string) (*Customer, error)
	FindByID(ctx context.Context, id uint) (*Customer, error)
	Update(ctx context.Context, customer *Customer) error
}

// SessionRepository defines access to the append-only session history.
// StampLogout must be a compare-and-set on logout_at so that two racing
// logouts for the same token cannot both succeed.
type SessionRepository interface {
	Create(ctx context.Context, session *CustomerSession) error
	FindByAccessToken(ctx context.Context, accessToken string) (*CustomerSession, error)
	StampLogout(ctx context.Context, accessToken string, at time.Time) error
}

// SessionCache is a lookaside cache of active sessions keyed by access
// token. Entries are written on login, evicted on logout, and expire with
// the session. A miss is not an error.
type SessionCache interface {
	Put(ctx context.Context, session *CustomerSession) error
	Get(ctx context.Context, accessToken string) (*CustomerSession, bool, error)
	Evict(ctx context.Context, accessToken string) error
}

// AddressRepository defines address book and state lookup operations
type AddressRepository interface {
	Create(ctx context.Context, address *Address, customerID uint) error
	FindByUUID(ctx context.Context, uuid string) (*Address, error)
	ListByCustomer(ctx context.Context, customerID uint) ([]Address, error)
	OwnedBy(ctx context.Context, addressID, customerID uint) (bool, error)
	Delete(ctx context.Context, address *Address) error
	Deactivate(ctx context.Context, address *Address) error
	FindStateByUUID(ctx context.Context, uuid string) (*State, error)
	ListStates(ctx context.Context) ([]State, error)
}

// RestaurantRepository defines restaurant catalog operations
type RestaurantRepository interface {
	List(ctx context.Context) ([]Restaurant, error)
	FindByUUID(ctx context.Context, uuid string) (*Restaurant, error)
	SearchByName(ctx context.Context, name string) ([]Restaurant, error)
	ListByCategoryUUID(ctx context.Context, categoryUUID string) ([]Restaurant, error)
	UpdateRating(ctx context.Context, restaurant *Restaurant) error
}

// CategoryRepository defines menu category operations
type CategoryRepository interface {
	List(ctx context.Context) ([]Category, error)
	FindByUUID(ctx context.Context, uuid string) (*Category, error)
}

// ItemRepository defines menu item operations
type ItemRepository interface {
	FindByUUID(ctx context.Context, uuid string) (*Item, error)
	PopularByRestaurant(ctx context.Context, restaurantID uint, limit int) ([]Item, error)
}

// OrderRepository defines order and coupon persistence operations
type OrderRepository interface {
	Save(ctx context.Context, order *Order) error
	ListByCustomer(ctx context.Context, customerID uint) ([]Order, error)
	CountByAddress(ctx context.Context, addressID uint) (int64, error)
	FindCouponByName(ctx context.Context, name string) (*Coupon, error)
	FindCouponByUUID(ctx context.Context, uuid string) (*Coupon, error)
}

// CustomerService defines the authenticated-session lifecycle and
// customer profile business logic
type CustomerService interface {
	SignUp(ctx context.Context, customer *Customer, password string) (*Customer, error)
	Authenticate(ctx context.Context, contactNumber, password string) (*AuthResult, error)
	GetCustomer(ctx context.Context, accessToken string) (*Customer, error)
	Logout(ctx context.Context, accessToken string) (*CustomerSession, error)
	UpdateDetails(ctx context.Context, accessToken, firstName, lastName string) (*Customer, error)
	ChangePassword(ctx context.Context, accessToken, oldPassword, newPassword string) (*Customer, error)
}

// AddressService defines address book business logic
type AddressService interface {
	SaveAddress(ctx context.Context, customer *Customer, address *Address, stateUUID string) (*Address, error)
	GetAllAddresses(ctx context.Context, customer *Customer) ([]Address, error)
	DeleteAddress(ctx context.Context, customer *Customer, addressUUID string) (*Address, error)
	GetAllStates(ctx context.Context) ([]State, error)
}

// RestaurantService defines restaurant and menu listing business logic
type RestaurantService interface {
	GetAllRestaurants(ctx context.Context) ([]Restaurant, error)
	GetRestaurantByUUID(ctx context.Context, uuid string) (*Restaurant, error)
	SearchRestaurantsByName(ctx context.Context, name string) ([]Restaurant, error)
	GetRestaurantsByCategory(ctx context.Context, categoryUUID string) ([]Restaurant, error)
	UpdateRestaurantRating(ctx context.Context, restaurantUUID, customerRating string) (*Restaurant, error)
	GetAllCategories(ctx context.Context) ([]Category, error)
	GetCategoryByUUID(ctx context.Context, uuid string) (*Category, error)
	GetItemsByPopularity(ctx context.Context, restaurantUUID string) ([]Item, error)
}

// OrderService defines order placement business logic
type OrderService interface {
	GetCouponByName(ctx context.Context, name string) (*Coupon, error)
	GetPastOrders(ctx context.Context, customer *Customer) ([]Order, error)
	PlaceOrder(ctx context.Context, customer *Customer, request *PlaceOrderRequest) (*Order, error)
}

// PasswordService defines the salted password-hash capability
type PasswordService interface {
	NewSalt() (string, error)
	Hash(password, salt string) string
	Matches(password, salt, digest string) bool
}

// TokenService defines the bearer-token encoder capability
type TokenService interface {
	IssueToken(customerUUID string, issuedAt, expiresAt time.Time) (string, error)
}

// NotificationService defines notification operations
type NotificationService interface {
	SendSMS(to, message string) error
	SendEmail(to, subject, body string) error
	SendOrderConfirmation(to string, order *Order) error
}

// PolicyService defines authorization policy operations
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
	EnsureDefaultPolicies() error
}

// CasbinEnforcer interface defines the methods we need from Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
