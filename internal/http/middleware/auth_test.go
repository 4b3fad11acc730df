package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
	"github.com/Sehbaz/foodOrderingAppBackAPI/internal/mocks"
)

func guardedRouter(customerSvc domain.CustomerService, enforcer domain.CasbinEnforcer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/").Use(NewAuthMW(customerSvc).WithSession(), NewCasbinMW(enforcer).Enforce())
	group.GET("/order", func(c *gin.Context) {
		customer := c.MustGet("customer").(*domain.Customer)
		c.JSON(http.StatusOK, gin.H{"customer": customer.UUID})
	})
	group.GET("/admin/policies", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doGet(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMW_WithSession(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		getCustomerErr error
		expectedStatus int
	}{
		{"missing header", "", nil, http.StatusUnauthorized},
		{"malformed header", "Token abc", nil, http.StatusUnauthorized},
		{"unknown token", "Bearer nope", domain.ErrNotLoggedIn, http.StatusUnauthorized},
		{"logged out session", "Bearer stale", domain.ErrLoggedOut, http.StatusUnauthorized},
		{"expired session", "Bearer old", domain.ErrSessionExpired, http.StatusUnauthorized},
		{"valid session", "Bearer good", nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customerSvc := mocks.NewMockCustomerService()
			customerSvc.GetCustomerFunc = func(ctx context.Context, accessToken string) (*domain.Customer, error) {
				if tt.getCustomerErr != nil {
					return nil, tt.getCustomerErr
				}
				return &domain.Customer{ID: 1, UUID: "customer-uuid", Role: "customer"}, nil
			}
			router := guardedRouter(customerSvc, mocks.NewMockCasbinEnforcer())

			w := doGet(router, "/order", tt.authHeader)
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestCasbinMW_Enforce(t *testing.T) {
	newService := func(role string) *mocks.MockCustomerService {
		customerSvc := mocks.NewMockCustomerService()
		customerSvc.GetCustomerFunc = func(ctx context.Context, accessToken string) (*domain.Customer, error) {
			return &domain.Customer{ID: 1, UUID: "customer-uuid", Role: role}, nil
		}
		return customerSvc
	}

	t.Run("customer role cannot reach admin routes", func(t *testing.T) {
		router := guardedRouter(newService("customer"), mocks.NewMockCasbinEnforcer())

		w := doGet(router, "/admin/policies", "Bearer good")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("admin role reaches admin routes", func(t *testing.T) {
		router := guardedRouter(newService("admin"), mocks.NewMockCasbinEnforcer())

		w := doGet(router, "/admin/policies", "Bearer good")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
