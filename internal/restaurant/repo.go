package restaurant

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("restaurant: not found")

// Repository is the persistence contract for the restaurant domain.
type Repository interface {
	ListRestaurants(ctx context.Context) ([]Restaurant, error)
	GetRestaurant(ctx context.Context, id int64) (Restaurant, error)
	CreateRestaurant(ctx context.Context, r Restaurant) (Restaurant, error)
	UpdateRestaurant(ctx context.Context, r Restaurant) (Restaurant, error)
	DeleteRestaurant(ctx context.Context, id int64) error

	ListMenuItems(ctx context.Context, restaurantID int64) ([]MenuItem, error)
	GetMenuItem(ctx context.Context, restaurantID, itemID int64) (MenuItem, error)
	CreateMenuItem(ctx context.Context, m MenuItem) (MenuItem, error)

	CreateOrder(ctx context.Context, o OnlineOrder) (OnlineOrder, error)
	ListOrdersByUser(ctx context.Context, userID int64) ([]OnlineOrder, error)
}
