package restaurant

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repository useful for tests.
type MemoryRepo struct {
	mu sync.Mutex

	nextID      int64
	restaurants map[int64]Restaurant
	menuItems   map[int64]MenuItem
	orders      map[int64]OnlineOrder
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		nextID:      1,
		restaurants: make(map[int64]Restaurant),
		menuItems:   make(map[int64]MenuItem),
		orders:      make(map[int64]OnlineOrder),
	}
}

func (r *MemoryRepo) id() int64 {
	id := r.nextID
	r.nextID++
	return id
}

func (r *MemoryRepo) ListRestaurants(ctx context.Context) ([]Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Restaurant, 0, len(r.restaurants))
	for _, v := range r.restaurants {
		out = append(out, v)
	}
	return out, nil
}

func (r *MemoryRepo) GetRestaurant(ctx context.Context, id int64) (Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.restaurants[id]
	if !ok {
		return Restaurant{}, ErrNotFound
	}
	return v, nil
}

func (r *MemoryRepo) CreateRestaurant(ctx context.Context, v Restaurant) (Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v.ID = r.id()
	r.restaurants[v.ID] = v
	return v, nil
}

func (r *MemoryRepo) UpdateRestaurant(ctx context.Context, v Restaurant) (Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.restaurants[v.ID]; !ok {
		return Restaurant{}, ErrNotFound
	}
	r.restaurants[v.ID] = v
	return v, nil
}

func (r *MemoryRepo) DeleteRestaurant(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.restaurants[id]; !ok {
		return ErrNotFound
	}
	delete(r.restaurants, id)
	return nil
}

func (r *MemoryRepo) ListMenuItems(ctx context.Context, restaurantID int64) ([]MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []MenuItem
	for _, m := range r.menuItems {
		if m.RestaurantID == restaurantID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *MemoryRepo) GetMenuItem(ctx context.Context, restaurantID, itemID int64) (MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.menuItems[itemID]
	if !ok || m.RestaurantID != restaurantID {
		return MenuItem{}, ErrNotFound
	}
	return m, nil
}

func (r *MemoryRepo) CreateMenuItem(ctx context.Context, m MenuItem) (MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = r.id()
	r.menuItems[m.ID] = m
	return m, nil
}

func (r *MemoryRepo) CreateOrder(ctx context.Context, o OnlineOrder) (OnlineOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o.ID = r.id()
	o.CreatedAt = time.Now().UTC()
	r.orders[o.ID] = o
	return o, nil
}

func (r *MemoryRepo) ListOrdersByUser(ctx context.Context, userID int64) ([]OnlineOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []OnlineOrder
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}
