package handlers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
	"github.com/Sehbaz/foodOrderingAppBackAPI/internal/mocks"
)

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCustomerHandlers_Signup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    SignupRequest
		setupMocks     func(*mocks.MockCustomerService)
		expectedStatus int
	}{
		{
			name: "successful signup",
			requestBody: SignupRequest{
				FirstName:     "Asha",
				Email:         "asha@example.com",
				ContactNumber: "9876543210",
				Password:      "Abcd123!",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "duplicate contact number",
			requestBody: SignupRequest{
				FirstName:     "Asha",
				Email:         "asha@example.com",
				ContactNumber: "9876543210",
				Password:      "Abcd123!",
			},
			setupMocks: func(svc *mocks.MockCustomerService) {
				svc.SignUpFunc = func(ctx context.Context, customer *domain.Customer, password string) (*domain.Customer, error) {
					return nil, domain.ErrContactRegistered
				}
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "weak password",
			requestBody: SignupRequest{
				FirstName:     "Asha",
				Email:         "asha@example.com",
				ContactNumber: "9876543210",
				Password:      "weak",
			},
			setupMocks: func(svc *mocks.MockCustomerService) {
				svc.SignUpFunc = func(ctx context.Context, customer *domain.Customer, password string) (*domain.Customer, error) {
					return nil, domain.ErrWeakPassword
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockCustomerService()
			if tt.setupMocks != nil {
				tt.setupMocks(svc)
			}
			router := gin.New()
			router.POST("/customer/signup", NewCustomerHandlers(svc).Signup)

			w := postJSON(t, router, "/customer/signup", tt.requestBody, nil)
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestCustomerHandlers_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	basic := func(contact, password string) string {
		return "Basic " + base64.StdEncoding.EncodeToString([]byte(contact+":"+password))
	}

	t.Run("successful login returns the token header", func(t *testing.T) {
		svc := mocks.NewMockCustomerService()
		router := gin.New()
		router.POST("/customer/login", NewCustomerHandlers(svc).Login)

		w := postJSON(t, router, "/customer/login", nil, map[string]string{
			"Authorization": basic("9876543210", "Abcd123!"),
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if w.Header().Get("access-token") == "" {
			t.Error("expected an access-token response header")
		}
	})

	t.Run("malformed basic header", func(t *testing.T) {
		svc := mocks.NewMockCustomerService()
		svc.AuthenticateFunc = func(ctx context.Context, contactNumber, password string) (*domain.AuthResult, error) {
			t.Error("authenticate must not run with a malformed header")
			return nil, domain.ErrInvalidCredentials
		}
		router := gin.New()
		router.POST("/customer/login", NewCustomerHandlers(svc).Login)

		w := postJSON(t, router, "/customer/login", nil, map[string]string{
			"Authorization": "Basic not-base64!",
		})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := mocks.NewMockCustomerService()
		svc.AuthenticateFunc = func(ctx context.Context, contactNumber, password string) (*domain.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		}
		router := gin.New()
		router.POST("/customer/login", NewCustomerHandlers(svc).Login)

		w := postJSON(t, router, "/customer/login", nil, map[string]string{
			"Authorization": basic("9876543210", "wrong"),
		})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unregistered contact number", func(t *testing.T) {
		svc := mocks.NewMockCustomerService()
		svc.AuthenticateFunc = func(ctx context.Context, contactNumber, password string) (*domain.AuthResult, error) {
			return nil, domain.ErrCustomerNotRegistered
		}
		router := gin.New()
		router.POST("/customer/login", NewCustomerHandlers(svc).Login)

		w := postJSON(t, router, "/customer/login", nil, map[string]string{
			"Authorization": basic("9999999999", "Abcd123!"),
		})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestCustomerHandlers_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("successful logout", func(t *testing.T) {
		svc := mocks.NewMockCustomerService()
		svc.LogoutFunc = func(ctx context.Context, accessToken string) (*domain.CustomerSession, error) {
			now := time.Now()
			return &domain.CustomerSession{UUID: "session-uuid", AccessToken: accessToken, LogoutAt: &now}, nil
		}
		router := gin.New()
		router.POST("/customer/logout", NewCustomerHandlers(svc).Logout)

		w := postJSON(t, router, "/customer/logout", nil, map[string]string{
			"Authorization": "Bearer valid-token",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	tests := []struct {
		name      string
		header    string
		logoutErr error
	}{
		{"missing header", "", nil},
		{"not a bearer header", "Basic abc", nil},
		{"unknown token", "Bearer nope", domain.ErrNotLoggedIn},
		{"already logged out", "Bearer stale", domain.ErrLoggedOut},
		{"expired session", "Bearer old", domain.ErrSessionExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockCustomerService()
			if tt.logoutErr != nil {
				svc.LogoutFunc = func(ctx context.Context, accessToken string) (*domain.CustomerSession, error) {
					return nil, tt.logoutErr
				}
			}
			router := gin.New()
			router.POST("/customer/logout", NewCustomerHandlers(svc).Logout)

			headers := map[string]string{}
			if tt.header != "" {
				headers["Authorization"] = tt.header
			}
			w := postJSON(t, router, "/customer/logout", nil, headers)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
		})
	}
}
