package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
)

// AddressHandlers handles address book HTTP requests
type AddressHandlers struct {
	addressSvc domain.AddressService
}

// NewAddressHandlers creates new address handlers
func NewAddressHandlers(addressSvc domain.AddressService) *AddressHandlers {
	return &AddressHandlers{addressSvc: addressSvc}
}

// SaveAddressRequest represents an address creation request
type SaveAddressRequest struct {
	FlatBuildingName string `json:"flat_building_name"`
	Locality         string `json:"locality"`
	City             string `json:"city"`
	Pincode          string `json:"pincode"`
	StateUUID        string `json:"state_uuid"`
}

// Save handles address creation
func (h *AddressHandlers) Save(c *gin.Context) {
	var req SaveAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer := currentCustomer(c)
	address := &domain.Address{
		FlatBuildingNumber: req.FlatBuildingName,
		Locality:           req.Locality,
		City:               req.City,
		Pincode:            req.Pincode,
	}
	saved, err := h.addressSvc.SaveAddress(c.Request.Context(), customer, address, req.StateUUID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":     saved.UUID,
		"status": "ADDRESS SUCCESSFULLY REGISTERED",
	})
}

// List handles listing the customer's saved addresses
func (h *AddressHandlers) List(c *gin.Context) {
	customer := currentCustomer(c)
	addresses, err := h.addressSvc.GetAllAddresses(c.Request.Context(), customer)
	if err != nil {
		writeError(c, err)
		return
	}

	payload := make([]gin.H, 0, len(addresses))
	for _, address := range addresses {
		payload = append(payload, addressJSON(&address))
	}
	c.JSON(http.StatusOK, gin.H{"addresses": payload})
}

// Delete handles address removal
func (h *AddressHandlers) Delete(c *gin.Context) {
	customer := currentCustomer(c)
	address, err := h.addressSvc.DeleteAddress(c.Request.Context(), customer, c.Param("address_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     address.UUID,
		"status": "ADDRESS DELETED SUCCESSFULLY",
	})
}

// States handles listing all states
func (h *AddressHandlers) States(c *gin.Context) {
	states, err := h.addressSvc.GetAllStates(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	payload := make([]gin.H, 0, len(states))
	for _, state := range states {
		payload = append(payload, gin.H{"id": state.UUID, "state_name": state.StateName})
	}
	c.JSON(http.StatusOK, gin.H{"states": payload})
}

func addressJSON(address *domain.Address) gin.H {
	out := gin.H{
		"id":                 address.UUID,
		"flat_building_name": address.FlatBuildingNumber,
		"locality":           address.Locality,
		"city":               address.City,
		"pincode":            address.Pincode,
	}
	if address.State != nil {
		out["state"] = gin.H{"id": address.State.UUID, "state_name": address.State.StateName}
	}
	return out
}

// currentCustomer returns the customer resolved by the auth middleware
func currentCustomer(c *gin.Context) *domain.Customer {
	return c.MustGet("customer").(*domain.Customer)
}
