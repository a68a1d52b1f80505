package restaurant

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidArgument = errors.New("restaurant: invalid argument")

// Service holds the restaurant domain logic: CRUD validation and order
// pricing. Storage comes via Repository.
type Service struct {
	repo  Repository
	clock func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, clock: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Restaurant, error) {
	return s.repo.ListRestaurants(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Restaurant, error) {
	if id <= 0 {
		return Restaurant{}, ErrInvalidArgument
	}
	return s.repo.GetRestaurant(ctx, id)
}

func (s *Service) Create(ctx context.Context, r Restaurant) (Restaurant, error) {
	if r.Name == "" || r.Location == "" {
		return Restaurant{}, ErrInvalidArgument
	}
	r.ID = 0
	return s.repo.CreateRestaurant(ctx, r)
}

func (s *Service) Update(ctx context.Context, r Restaurant) (Restaurant, error) {
	if r.ID <= 0 || r.Name == "" || r.Location == "" {
		return Restaurant{}, ErrInvalidArgument
	}
	return s.repo.UpdateRestaurant(ctx, r)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArgument
	}
	return s.repo.DeleteRestaurant(ctx, id)
}

func (s *Service) ListMenuItems(ctx context.Context, restaurantID int64) ([]MenuItem, error) {
	if restaurantID <= 0 {
		return nil, ErrInvalidArgument
	}
	return s.repo.ListMenuItems(ctx, restaurantID)
}

func (s *Service) CreateMenuItem(ctx context.Context, m MenuItem) (MenuItem, error) {
	if m.RestaurantID <= 0 || m.Name == "" || m.PriceMinor < 0 {
		return MenuItem{}, ErrInvalidArgument
	}
	if _, err := s.repo.GetRestaurant(ctx, m.RestaurantID); err != nil {
		return MenuItem{}, err
	}
	m.ID = 0
	return s.repo.CreateMenuItem(ctx, m)
}

// QuoteLine is one priced order line.
type QuoteLine struct {
	MenuItemID int64  `json:"menu_item_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`

	PricePerItemMinor int64 `json:"price_per_item_minor"`
	ItemPriceMinor    int64 `json:"item_price_minor"`
}

// OrderQuote is the result of an order-price calculation.
type OrderQuote struct {
	Restaurant      string      `json:"restaurant"`
	Currency        string      `json:"currency"`
	Lines           []QuoteLine `json:"lines"`
	TotalPriceMinor int64       `json:"total_price_minor"`
}

// CalculateOrderPrice prices each line as price_per_item × quantity and sums
// the lines. Every item must belong to the restaurant.
func (s *Service) CalculateOrderPrice(ctx context.Context, restaurantID int64, lines []OrderLine) (OrderQuote, error) {
	if restaurantID <= 0 || len(lines) == 0 {
		return OrderQuote{}, ErrInvalidArgument
	}

	r, err := s.repo.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return OrderQuote{}, err
	}

	quote := OrderQuote{Restaurant: r.Name}
	for _, ln := range lines {
		if ln.Quantity < 1 {
			return OrderQuote{}, ErrInvalidArgument
		}
		m, err := s.repo.GetMenuItem(ctx, restaurantID, ln.MenuItemID)
		if err != nil {
			return OrderQuote{}, err
		}
		itemPrice := m.PriceMinor * int64(ln.Quantity)
		quote.Lines = append(quote.Lines, QuoteLine{
			MenuItemID:        m.ID,
			Name:              m.Name,
			Quantity:          ln.Quantity,
			PricePerItemMinor: m.PriceMinor,
			ItemPriceMinor:    itemPrice,
		})
		quote.Currency = m.Currency
		quote.TotalPriceMinor += itemPrice
	}
	return quote, nil
}

// CreateOrder prices the lines and persists a pending order for userID.
func (s *Service) CreateOrder(ctx context.Context, userID, restaurantID int64, lines []OrderLine) (OnlineOrder, error) {
	if userID <= 0 {
		return OnlineOrder{}, ErrInvalidArgument
	}
	quote, err := s.CalculateOrderPrice(ctx, restaurantID, lines)
	if err != nil {
		return OnlineOrder{}, err
	}
	return s.repo.CreateOrder(ctx, OnlineOrder{
		RestaurantID:    restaurantID,
		UserID:          userID,
		Lines:           lines,
		Currency:        quote.Currency,
		TotalPriceMinor: quote.TotalPriceMinor,
		Status:          OrderStatusPending,
	})
}

// ListOrdersFor returns the caller's own orders.
func (s *Service) ListOrdersFor(ctx context.Context, userID int64) ([]OnlineOrder, error) {
	if userID <= 0 {
		return nil, ErrInvalidArgument
	}
	return s.repo.ListOrdersByUser(ctx, userID)
}
