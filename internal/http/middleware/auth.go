package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
)

// AuthMW wraps the customer service for the session middleware
type AuthMW struct {
	customerSvc domain.CustomerService
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(customerSvc domain.CustomerService) *AuthMW {
	return &AuthMW{customerSvc: customerSvc}
}

// WithSession returns the session guard middleware. It resolves the
// Bearer token to a customer and stores both on the request context.
func (mw *AuthMW) WithSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": domain.ErrInvalidAuthHeader.Error()})
			c.Abort()
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" || tokenParts[1] == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": domain.ErrInvalidAuthHeader.Error()})
			c.Abort()
			return
		}
		token := tokenParts[1]

		customer, err := mw.customerSvc.GetCustomer(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set("customer", customer)
		c.Set("access_token", token)
		c.Set("customer_role", customer.Role)

		c.Next()
	}
}
