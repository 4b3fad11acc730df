package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
	"github.com/Sehbaz/foodOrderingAppBackAPI/internal/validation"
)

const popularItemsLimit = 5

// RestaurantServiceImpl implements domain.RestaurantService
type RestaurantServiceImpl struct {
	restaurantRepo domain.RestaurantRepository
	categoryRepo   domain.CategoryRepository
	itemRepo       domain.ItemRepository
}

// NewRestaurantService creates a new restaurant service
func NewRestaurantService(
	restaurantRepo domain.RestaurantRepository,
	categoryRepo domain.CategoryRepository,
	itemRepo domain.ItemRepository,
) domain.RestaurantService {
	return &RestaurantServiceImpl{
		restaurantRepo: restaurantRepo,
		categoryRepo:   categoryRepo,
		itemRepo:       itemRepo,
	}
}

// GetAllRestaurants implements domain.RestaurantService
func (s *RestaurantServiceImpl) GetAllRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	return s.restaurantRepo.List(ctx)
}

// GetRestaurantByUUID implements domain.RestaurantService
func (s *RestaurantServiceImpl) GetRestaurantByUUID(ctx context.Context, uuid string) (*domain.Restaurant, error) {
	if uuid == "" {
		return nil, domain.ErrRestaurantIDMissing
	}
	return s.restaurantRepo.FindByUUID(ctx, uuid)
}

// SearchRestaurantsByName implements domain.RestaurantService
func (s *RestaurantServiceImpl) SearchRestaurantsByName(ctx context.Context, name string) ([]domain.Restaurant, error) {
	if name == "" {
		return nil, domain.ErrRestaurantNameMissing
	}
	return s.restaurantRepo.SearchByName(ctx, name)
}

// GetRestaurantsByCategory implements domain.RestaurantService
func (s *RestaurantServiceImpl) GetRestaurantsByCategory(ctx context.Context, categoryUUID string) ([]domain.Restaurant, error) {
	if categoryUUID == "" {
		return nil, domain.ErrCategoryIDMissing
	}
	if _, err := s.categoryRepo.FindByUUID(ctx, categoryUUID); err != nil {
		return nil, err
	}
	return s.restaurantRepo.ListByCategoryUUID(ctx, categoryUUID)
}

// UpdateRestaurantRating implements domain.RestaurantService. The new
// rating folds into the running average and bumps the rater count.
func (s *RestaurantServiceImpl) UpdateRestaurantRating(ctx context.Context, restaurantUUID, customerRating string) (*domain.Restaurant, error) {
	if restaurantUUID == "" {
		return nil, domain.ErrRestaurantIDMissing
	}
	if !validation.IsValidRating(customerRating) {
		return nil, domain.ErrInvalidRating
	}

	restaurant, err := s.restaurantRepo.FindByUUID(ctx, restaurantUUID)
	if err != nil {
		return nil, err
	}

	rating, err := strconv.ParseFloat(customerRating, 64)
	if err != nil {
		return nil, domain.ErrInvalidRating
	}

	rated := float64(restaurant.NumberCustomersRated)
	restaurant.CustomerRating = (restaurant.CustomerRating*rated + rating) / (rated + 1)
	restaurant.NumberCustomersRated++

	if err := s.restaurantRepo.UpdateRating(ctx, restaurant); err != nil {
		return nil, fmt.Errorf("failed to update restaurant rating: %w", err)
	}
	return restaurant, nil
}

// GetAllCategories implements domain.RestaurantService
func (s *RestaurantServiceImpl) GetAllCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.List(ctx)
}

// GetCategoryByUUID implements domain.RestaurantService
func (s *RestaurantServiceImpl) GetCategoryByUUID(ctx context.Context, uuid string) (*domain.Category, error) {
	if uuid == "" {
		return nil, domain.ErrCategoryIDMissing
	}
	return s.categoryRepo.FindByUUID(ctx, uuid)
}

// GetItemsByPopularity implements domain.RestaurantService. Returns the
// restaurant's most ordered items, at most popularItemsLimit of them.
func (s *RestaurantServiceImpl) GetItemsByPopularity(ctx context.Context, restaurantUUID string) ([]domain.Item, error) {
	restaurant, err := s.restaurantRepo.FindByUUID(ctx, restaurantUUID)
	if err != nil {
		return nil, err
	}
	return s.itemRepo.PopularByRestaurant(ctx, restaurant.ID, popularItemsLimit)
}
