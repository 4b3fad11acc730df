package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
)

// RestaurantHandlers handles restaurant and menu HTTP requests
type RestaurantHandlers struct {
	restaurantSvc domain.RestaurantService
}

// NewRestaurantHandlers creates new restaurant handlers
func NewRestaurantHandlers(restaurantSvc domain.RestaurantService) *RestaurantHandlers {
	return &RestaurantHandlers{restaurantSvc: restaurantSvc}
}

// UpdateRatingRequest represents a rating update request
type UpdateRatingRequest struct {
	CustomerRating string `json:"customer_rating"`
}

// List handles listing all restaurants ordered by rating
func (h *RestaurantHandlers) List(c *gin.Context) {
	restaurants, err := h.restaurantSvc.GetAllRestaurants(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": restaurantListJSON(restaurants)})
}

// Get handles fetching one restaurant with its full menu
func (h *RestaurantHandlers) Get(c *gin.Context) {
	restaurant, err := h.restaurantSvc.GetRestaurantByUUID(c.Request.Context(), c.Param("restaurant_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	out := restaurantJSON(restaurant)
	categories := make([]gin.H, 0, len(restaurant.Categories))
	for _, category := range restaurant.Categories {
		items := make([]gin.H, 0, len(category.Items))
		for _, item := range category.Items {
			items = append(items, itemJSON(&item))
		}
		categories = append(categories, gin.H{
			"id":            category.UUID,
			"category_name": category.CategoryName,
			"items":         items,
		})
	}
	out["categories"] = categories
	c.JSON(http.StatusOK, out)
}

// SearchByName handles partial, case-insensitive name search
func (h *RestaurantHandlers) SearchByName(c *gin.Context) {
	restaurants, err := h.restaurantSvc.SearchRestaurantsByName(c.Request.Context(), c.Param("restaurant_name"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": restaurantListJSON(restaurants)})
}

// ListByCategory handles listing restaurants serving a category
func (h *RestaurantHandlers) ListByCategory(c *gin.Context) {
	restaurants, err := h.restaurantSvc.GetRestaurantsByCategory(c.Request.Context(), c.Param("category_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": restaurantListJSON(restaurants)})
}

// UpdateRating handles a customer rating a restaurant
func (h *RestaurantHandlers) UpdateRating(c *gin.Context) {
	var req UpdateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant, err := h.restaurantSvc.UpdateRestaurantRating(c.Request.Context(), c.Param("restaurant_id"), req.CustomerRating)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     restaurant.UUID,
		"status": "RESTAURANT RATING UPDATED SUCCESSFULLY",
	})
}

// ListCategories handles listing all categories ordered by name
func (h *RestaurantHandlers) ListCategories(c *gin.Context) {
	categories, err := h.restaurantSvc.GetAllCategories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	payload := make([]gin.H, 0, len(categories))
	for _, category := range categories {
		payload = append(payload, gin.H{"id": category.UUID, "category_name": category.CategoryName})
	}
	c.JSON(http.StatusOK, gin.H{"categories": payload})
}

// GetCategory handles fetching one category with its items
func (h *RestaurantHandlers) GetCategory(c *gin.Context) {
	category, err := h.restaurantSvc.GetCategoryByUUID(c.Request.Context(), c.Param("category_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	items := make([]gin.H, 0, len(category.Items))
	for _, item := range category.Items {
		items = append(items, itemJSON(&item))
	}
	c.JSON(http.StatusOK, gin.H{
		"id":            category.UUID,
		"category_name": category.CategoryName,
		"items":         items,
	})
}

// PopularItems handles listing a restaurant's most ordered items
func (h *RestaurantHandlers) PopularItems(c *gin.Context) {
	items, err := h.restaurantSvc.GetItemsByPopularity(c.Request.Context(), c.Param("restaurant_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	payload := make([]gin.H, 0, len(items))
	for _, item := range items {
		payload = append(payload, itemJSON(&item))
	}
	c.JSON(http.StatusOK, gin.H{"items": payload})
}

func restaurantListJSON(restaurants []domain.Restaurant) []gin.H {
	payload := make([]gin.H, 0, len(restaurants))
	for _, restaurant := range restaurants {
		payload = append(payload, restaurantJSON(&restaurant))
	}
	return payload
}

func restaurantJSON(restaurant *domain.Restaurant) gin.H {
	out := gin.H{
		"id":                     restaurant.UUID,
		"restaurant_name":        restaurant.RestaurantName,
		"photo_url":              restaurant.PhotoURL,
		"customer_rating":        restaurant.CustomerRating,
		"average_price_for_two":  restaurant.AveragePriceForTwo,
		"number_customers_rated": restaurant.NumberCustomersRated,
	}
	if restaurant.Address != nil {
		out["address"] = addressJSON(restaurant.Address)
	}
	return out
}

func itemJSON(item *domain.Item) gin.H {
	return gin.H{
		"id":        item.UUID,
		"item_name": item.ItemName,
		"price":     item.Price,
		"item_type": item.Type,
	}
}
