package handlers

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
)

// CustomerHandlers handles customer account HTTP requests
type CustomerHandlers struct {
	customerSvc domain.CustomerService
}

// NewCustomerHandlers creates new customer handlers
func NewCustomerHandlers(customerSvc domain.CustomerService) *CustomerHandlers {
	return &CustomerHandlers{customerSvc: customerSvc}
}

// SignupRequest represents a signup request
type SignupRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email_address"`
	ContactNumber string `json:"contact_number"`
	Password      string `json:"password"`
}

// UpdateCustomerRequest represents a profile update request
type UpdateCustomerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// Signup handles customer registration
func (h *CustomerHandlers) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer := &domain.Customer{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
	}
	created, err := h.customerSvc.SignUp(c.Request.Context(), customer, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":     created.UUID,
		"status": "CUSTOMER SUCCESSFULLY REGISTERED",
	})
}

// Login handles customer login with HTTP Basic credentials
func (h *CustomerHandlers) Login(c *gin.Context) {
	contactNumber, password, err := decodeBasicAuth(c.GetHeader("Authorization"))
	if err != nil {
		writeError(c, err)
		return
	}

	result, err := h.customerSvc.Authenticate(c.Request.Context(), contactNumber, password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("access-token", result.AccessToken)
	c.JSON(http.StatusOK, gin.H{
		"id":             result.Customer.UUID,
		"first_name":     result.Customer.FirstName,
		"last_name":      result.Customer.LastName,
		"email_address":  result.Customer.Email,
		"contact_number": result.Customer.ContactNumber,
		"message":        "LOGGED IN SUCCESSFULLY",
	})
}

// Logout handles session invalidation
func (h *CustomerHandlers) Logout(c *gin.Context) {
	token, err := bearerToken(c.GetHeader("Authorization"))
	if err != nil {
		writeError(c, err)
		return
	}

	session, err := h.customerSvc.Logout(c.Request.Context(), token)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      session.UUID,
		"message": "LOGGED OUT SUCCESSFULLY",
	})
}

// Update handles customer name changes
func (h *CustomerHandlers) Update(c *gin.Context) {
	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token := c.GetString("access_token")
	customer, err := h.customerSvc.UpdateDetails(c.Request.Context(), token, req.FirstName, req.LastName)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         customer.UUID,
		"first_name": customer.FirstName,
		"last_name":  customer.LastName,
		"status":     "CUSTOMER DETAILS UPDATED SUCCESSFULLY",
	})
}

// ChangePassword handles customer password rotation
func (h *CustomerHandlers) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token := c.GetString("access_token")
	customer, err := h.customerSvc.ChangePassword(c.Request.Context(), token, req.OldPassword, req.NewPassword)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     customer.UUID,
		"status": "CUSTOMER PASSWORD UPDATED SUCCESSFULLY",
	})
}

// decodeBasicAuth extracts contact number and password from a Basic
// authorization header
func decodeBasicAuth(header string) (string, string, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Basic" {
		return "", "", domain.ErrInvalidAuthHeader
	}
	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", "", domain.ErrInvalidAuthHeader
	}
	credentials := strings.SplitN(string(decoded), ":", 2)
	if len(credentials) != 2 {
		return "", "", domain.ErrInvalidAuthHeader
	}
	return credentials[0], credentials[1], nil
}

// bearerToken extracts the token from a Bearer authorization header
func bearerToken(header string) (string, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", domain.ErrInvalidAuthHeader
	}
	return parts[1], nil
}
