package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sehbaz/foodOrderingAppBackAPI/internal/config"
	httpx "github.com/Sehbaz/foodOrderingAppBackAPI/internal/http"
	"github.com/Sehbaz/foodOrderingAppBackAPI/internal/http/handlers"
	"github.com/Sehbaz/foodOrderingAppBackAPI/internal/http/middleware"
	"github.com/Sehbaz/foodOrderingAppBackAPI/internal/services"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	customerH := handlers.NewCustomerHandlers(c.CustomerSvc)
	addressH := handlers.NewAddressHandlers(c.AddressSvc)
	restaurantH := handlers.NewRestaurantHandlers(c.RestaurantSvc)
	orderH := handlers.NewOrderHandlers(c.OrderSvc)
	policyH := handlers.NewPolicyHandlers(c.PolicySvc)

	authMW := middleware.NewAuthMW(c.CustomerSvc)
	casbinMW := middleware.NewCasbinMW(services.NewCasbinEnforcerWrapper(c.Casbin.E))

	r := httpx.BuildRouter(customerH, addressH, restaurantH, orderH, policyH, authMW, casbinMW)

	if err := c.PolicySvc.EnsureDefaultPolicies(); err != nil {
		return err
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
