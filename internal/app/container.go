package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
	"github.com/Sehbaz/foodOrderingAppBackAPI/internal/config"
	"github.com/Sehbaz/foodOrderingAppBackAPI/internal/infrastructure/auth"
	"github.com/Sehbaz/foodOrderingAppBackAPI/internal/infrastructure/database"
	"github.com/Sehbaz/foodOrderingAppBackAPI/internal/infrastructure/notifications"
	"github.com/Sehbaz/foodOrderingAppBackAPI/internal/infrastructure/repositories"
	"github.com/Sehbaz/foodOrderingAppBackAPI/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client
	Casbin      *auth.CasbinService

	// Repositories
	CustomerRepo   domain.CustomerRepository
	SessionRepo    domain.SessionRepository
	SessionCache   domain.SessionCache
	AddressRepo    domain.AddressRepository
	RestaurantRepo domain.RestaurantRepository
	CategoryRepo   domain.CategoryRepository
	ItemRepo       domain.ItemRepository
	OrderRepo      domain.OrderRepository

	// Services
	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	CustomerSvc     domain.CustomerService
	AddressSvc      domain.AddressService
	RestaurantSvc   domain.RestaurantService
	OrderSvc        domain.OrderService
	PolicySvc       domain.PolicyService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	if err := container.initRedis(); err != nil {
		return nil, err
	}

	container.initRepositories()
	container.initServices()

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(db, c.Config.CasbinModelPath)
	if err != nil {
		return err
	}

	c.DB = db
	c.Casbin = cas
	return nil
}

func (c *Container) initRedis() error {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
	return nil
}

func (c *Container) initRepositories() {
	c.CustomerRepo = repositories.NewCustomerRepository(c.DB)
	c.SessionRepo = repositories.NewSessionRepository(c.DB)
	c.SessionCache = repositories.NewSessionCache(c.RedisClient)
	c.AddressRepo = repositories.NewAddressRepository(c.DB)
	c.RestaurantRepo = repositories.NewRestaurantRepository(c.DB)
	c.CategoryRepo = repositories.NewCategoryRepository(c.DB)
	c.ItemRepo = repositories.NewItemRepository(c.DB)
	c.OrderRepo = repositories.NewOrderRepository(c.DB)
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer)
	c.NotificationSvc = notifications.NewTwilioService(
		c.Config.TwilioSID,
		c.Config.TwilioToken,
		c.Config.TwilioFrom,
	)

	c.CustomerSvc = services.NewCustomerService(
		c.CustomerRepo,
		c.SessionRepo,
		c.SessionCache,
		c.PasswordSvc,
		c.TokenSvc,
		c.Config.SessionTTL,
	)
	c.AddressSvc = services.NewAddressService(c.AddressRepo, c.OrderRepo)
	c.RestaurantSvc = services.NewRestaurantService(c.RestaurantRepo, c.CategoryRepo, c.ItemRepo)
	c.OrderSvc = services.NewOrderService(c.OrderRepo, c.AddressRepo, c.RestaurantRepo, c.ItemRepo, c.NotificationSvc)
	c.PolicySvc = services.NewPolicyService(c.Casbin.E)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
