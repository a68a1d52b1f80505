package restaurant

import "time"

// Amounts are expressed in minor units (e.g., cents) using int64.

type Restaurant struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Location     string `json:"location" db:"location"`
	CuisineType  string `json:"cuisine_type" db:"cuisine_type"`
	OpeningHours string `json:"opening_hours" db:"opening_hours"`
	ContactInfo  string `json:"contact_info" db:"contact_info"`
}

type MenuItem struct {
	ID           int64  `json:"id" db:"id"`
	RestaurantID int64  `json:"restaurant_id" db:"restaurant_id"`
	Name         string `json:"name" db:"name"`
	Currency     string `json:"currency" db:"currency"`

	// PriceMinor is the per-item price in minor units.
	PriceMinor int64 `json:"price_minor" db:"price_minor"`

	Available bool `json:"available" db:"available"`
}

type OrderLine struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int   `json:"quantity"`
}

type OnlineOrder struct {
	ID           int64       `json:"id" db:"id"`
	RestaurantID int64       `json:"restaurant_id" db:"restaurant_id"`
	UserID       int64       `json:"user_id" db:"user_id"`
	Lines        []OrderLine `json:"lines"`

	Currency        string `json:"currency" db:"currency"`
	TotalPriceMinor int64  `json:"total_price_minor" db:"total_price_minor"`

	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
)
