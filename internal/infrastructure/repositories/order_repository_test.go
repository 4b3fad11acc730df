package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
)

type orderFixture struct {
	customer   *domain.Customer
	address    *DBAddress
	restaurant *DBRestaurant
	items      []DBItem
	coupon     *DBCoupon
}

func setupOrderFixture(t *testing.T) (*OrderRepositoryImpl, orderFixture) {
	t.Helper()
	db := setupTestDB(t)
	customerRepo := NewCustomerRepository(db)
	customer := seedCustomer(t, customerRepo)

	state := &DBState{UUID: "state-uuid-o", StateName: "Karnataka"}
	require.NoError(t, db.Create(state).Error)
	address := &DBAddress{UUID: "address-uuid-o", City: "Bengaluru", Pincode: "560034", StateID: state.ID, Active: true}
	require.NoError(t, db.Create(address).Error)

	restAddress := &DBAddress{UUID: "address-uuid-r", City: "Bengaluru", Pincode: "560095", StateID: state.ID, Active: true}
	require.NoError(t, db.Create(restAddress).Error)
	restaurant := &DBRestaurant{
		UUID:           "restaurant-uuid-o",
		RestaurantName: "Spice Route",
		CustomerRating: 4.2,
		AddressID:      restAddress.ID,
	}
	require.NoError(t, db.Create(restaurant).Error)

	items := []DBItem{
		{UUID: "item-uuid-1", ItemName: "Masala Dosa", Price: 8000, Type: string(domain.ItemTypeVeg)},
		{UUID: "item-uuid-2", ItemName: "Chicken Biryani", Price: 22000, Type: string(domain.ItemTypeNonVeg)},
	}
	require.NoError(t, db.Create(&items).Error)

	coupon := &DBCoupon{UUID: "coupon-uuid-1", Name: "FLAT20", Percent: 20}
	require.NoError(t, db.Create(coupon).Error)

	repo := NewOrderRepository(db).(*OrderRepositoryImpl)
	return repo, orderFixture{customer: customer, address: address, restaurant: restaurant, items: items, coupon: coupon}
}

func TestOrderRepositoryImpl_SaveAndList(t *testing.T) {
	repo, fx := setupOrderFixture(t)

	couponID := fx.coupon.ID
	order := &domain.Order{
		UUID:         "order-uuid-1",
		Bill:         300,
		Discount:     60,
		Date:         time.Now().Truncate(time.Second),
		CustomerID:   fx.customer.ID,
		AddressID:    fx.address.ID,
		RestaurantID: fx.restaurant.ID,
		CouponID:     &couponID,
		Items: []domain.OrderItem{
			{ItemID: fx.items[0].ID, Quantity: 1, Price: 8000},
			{ItemID: fx.items[1].ID, Quantity: 1, Price: 22000},
		},
	}
	require.NoError(t, repo.Save(context.Background(), order))
	assert.NotZero(t, order.ID)

	orders, err := repo.ListByCustomer(context.Background(), fx.customer.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	got := orders[0]
	assert.Equal(t, "order-uuid-1", got.UUID)
	assert.Equal(t, 300.0, got.Bill)
	require.Len(t, got.Items, 2)
	require.NotNil(t, got.Items[0].Item)
	require.NotNil(t, got.Coupon)
	assert.Equal(t, "FLAT20", got.Coupon.Name)
	require.NotNil(t, got.Restaurant)
	assert.Equal(t, "Spice Route", got.Restaurant.RestaurantName)
}

func TestOrderRepositoryImpl_CountByAddress(t *testing.T) {
	repo, fx := setupOrderFixture(t)

	count, err := repo.CountByAddress(context.Background(), fx.address.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	order := &domain.Order{
		UUID:         "order-uuid-2",
		Bill:         80,
		Date:         time.Now(),
		CustomerID:   fx.customer.ID,
		AddressID:    fx.address.ID,
		RestaurantID: fx.restaurant.ID,
		Items:        []domain.OrderItem{{ItemID: fx.items[0].ID, Quantity: 1, Price: 8000}},
	}
	require.NoError(t, repo.Save(context.Background(), order))

	count, err = repo.CountByAddress(context.Background(), fx.address.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestOrderRepositoryImpl_Coupons(t *testing.T) {
	repo, fx := setupOrderFixture(t)

	coupon, err := repo.FindCouponByName(context.Background(), "FLAT20")
	require.NoError(t, err)
	assert.Equal(t, 20, coupon.Percent)

	byUUID, err := repo.FindCouponByUUID(context.Background(), fx.coupon.UUID)
	require.NoError(t, err)
	assert.Equal(t, coupon.ID, byUUID.ID)

	_, err = repo.FindCouponByName(context.Background(), "NOPE")
	assert.ErrorIs(t, err, domain.ErrCouponNotFound)
}

func TestItemRepositoryImpl_PopularByRestaurant(t *testing.T) {
	repo, fx := setupOrderFixture(t)
	itemRepo := NewItemRepository(repo.db)

	// two orders with the dosa, one with the biryani
	for i, itemIdx := range []int{0, 0, 1} {
		order := &domain.Order{
			UUID:         "pop-order-" + string(rune('a'+i)),
			Bill:         80,
			Date:         time.Now(),
			CustomerID:   fx.customer.ID,
			AddressID:    fx.address.ID,
			RestaurantID: fx.restaurant.ID,
			Items:        []domain.OrderItem{{ItemID: fx.items[itemIdx].ID, Quantity: 1, Price: fx.items[itemIdx].Price}},
		}
		require.NoError(t, repo.Save(context.Background(), order))
	}

	popular, err := itemRepo.PopularByRestaurant(context.Background(), fx.restaurant.ID, 5)
	require.NoError(t, err)
	require.Len(t, popular, 2)
	assert.Equal(t, "Masala Dosa", popular[0].ItemName)
}
