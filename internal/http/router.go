package httpx

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Sehbaz/foodOrderingAppBackAPI/internal/http/handlers"
	"github.com/Sehbaz/foodOrderingAppBackAPI/internal/http/middleware"
)

// BuildRouter wires every route. Catalog browsing is public; the
// address book, profile and ordering routes sit behind the session
// guard plus casbin RBAC.
func BuildRouter(
	ch *handlers.CustomerHandlers,
	ah *handlers.AddressHandlers,
	rh *handlers.RestaurantHandlers,
	oh *handlers.OrderHandlers,
	ph *handlers.PolicyHandlers,
	authmw *middleware.AuthMW,
	cb *middleware.CasbinMW,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	r.POST("/customer/signup", ch.Signup)
	r.POST("/customer/login", ch.Login)

	r.GET("/restaurant", rh.List)
	r.GET("/restaurant/name/:restaurant_name", rh.SearchByName)
	r.GET("/restaurant/category/:category_id", rh.ListByCategory)
	r.GET("/restaurant/:restaurant_id", rh.Get)
	r.GET("/category", rh.ListCategories)
	r.GET("/category/:category_id", rh.GetCategory)
	r.GET("/item/restaurant/:restaurant_id", rh.PopularItems)

	// Logout carries its own token and reports guard failures itself,
	// so it stays off the middleware chain.
	r.POST("/customer/logout", ch.Logout)

	v := r.Group("/").Use(authmw.WithSession(), cb.Enforce())
	v.PUT("/customer", ch.Update)
	v.PUT("/customer/password", ch.ChangePassword)
	v.POST("/address", ah.Save)
	v.GET("/address/customer", ah.List)
	v.DELETE("/address/:address_id", ah.Delete)
	v.GET("/states", ah.States)
	v.PUT("/restaurant/:restaurant_id/rating", rh.UpdateRating)
	v.GET("/order/coupon/:coupon_name", oh.GetCoupon)
	v.GET("/order", oh.PastOrders)
	v.POST("/order", oh.Place)

	adm := r.Group("/admin").Use(authmw.WithSession(), cb.Enforce())
	adm.GET("/policies", ph.List)
	adm.POST("/policies", ph.Add)
	adm.DELETE("/policies", ph.Remove)

	return r
}
