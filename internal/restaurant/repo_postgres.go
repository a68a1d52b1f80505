package restaurant

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PostgresRepo persists the restaurant domain in Postgres.
//
// Expected tables: restaurants, menu_items, online_orders. Order lines are
// stored denormalized as JSONB on the order row; they are written once and
// never queried field-by-field.
type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) ListRestaurants(ctx context.Context) ([]Restaurant, error) {
	const q = `
SELECT id, name, location, cuisine_type, opening_hours, contact_info
FROM restaurants
ORDER BY id
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Restaurant
	for rows.Next() {
		var v Restaurant
		if err := rows.Scan(&v.ID, &v.Name, &v.Location, &v.CuisineType, &v.OpeningHours, &v.ContactInfo); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) GetRestaurant(ctx context.Context, id int64) (Restaurant, error) {
	const q = `
SELECT id, name, location, cuisine_type, opening_hours, contact_info
FROM restaurants
WHERE id = $1
`
	var v Restaurant
	err := r.db.QueryRowContext(ctx, q, id).Scan(&v.ID, &v.Name, &v.Location, &v.CuisineType, &v.OpeningHours, &v.ContactInfo)
	if errors.Is(err, sql.ErrNoRows) {
		return Restaurant{}, ErrNotFound
	}
	if err != nil {
		return Restaurant{}, err
	}
	return v, nil
}

func (r *PostgresRepo) CreateRestaurant(ctx context.Context, v Restaurant) (Restaurant, error) {
	const q = `
INSERT INTO restaurants (name, location, cuisine_type, opening_hours, contact_info)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`
	if err := r.db.QueryRowContext(ctx, q, v.Name, v.Location, v.CuisineType, v.OpeningHours, v.ContactInfo).Scan(&v.ID); err != nil {
		return Restaurant{}, err
	}
	return v, nil
}

func (r *PostgresRepo) UpdateRestaurant(ctx context.Context, v Restaurant) (Restaurant, error) {
	const q = `
UPDATE restaurants
SET name = $2, location = $3, cuisine_type = $4, opening_hours = $5, contact_info = $6
WHERE id = $1
`
	res, err := r.db.ExecContext(ctx, q, v.ID, v.Name, v.Location, v.CuisineType, v.OpeningHours, v.ContactInfo)
	if err != nil {
		return Restaurant{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Restaurant{}, ErrNotFound
	}
	return v, nil
}

func (r *PostgresRepo) DeleteRestaurant(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM restaurants WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) ListMenuItems(ctx context.Context, restaurantID int64) ([]MenuItem, error) {
	const q = `
SELECT id, restaurant_id, name, currency, price_minor, available
FROM menu_items
WHERE restaurant_id = $1
ORDER BY id
`
	rows, err := r.db.QueryContext(ctx, q, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MenuItem
	for rows.Next() {
		var m MenuItem
		if err := rows.Scan(&m.ID, &m.RestaurantID, &m.Name, &m.Currency, &m.PriceMinor, &m.Available); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) GetMenuItem(ctx context.Context, restaurantID, itemID int64) (MenuItem, error) {
	const q = `
SELECT id, restaurant_id, name, currency, price_minor, available
FROM menu_items
WHERE restaurant_id = $1 AND id = $2
`
	var m MenuItem
	err := r.db.QueryRowContext(ctx, q, restaurantID, itemID).Scan(&m.ID, &m.RestaurantID, &m.Name, &m.Currency, &m.PriceMinor, &m.Available)
	if errors.Is(err, sql.ErrNoRows) {
		return MenuItem{}, ErrNotFound
	}
	if err != nil {
		return MenuItem{}, err
	}
	return m, nil
}

func (r *PostgresRepo) CreateMenuItem(ctx context.Context, m MenuItem) (MenuItem, error) {
	const q = `
INSERT INTO menu_items (restaurant_id, name, currency, price_minor, available)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`
	if err := r.db.QueryRowContext(ctx, q, m.RestaurantID, m.Name, m.Currency, m.PriceMinor, m.Available).Scan(&m.ID); err != nil {
		return MenuItem{}, err
	}
	return m, nil
}

func (r *PostgresRepo) CreateOrder(ctx context.Context, o OnlineOrder) (OnlineOrder, error) {
	lines, err := json.Marshal(o.Lines)
	if err != nil {
		return OnlineOrder{}, err
	}
	const q = `
INSERT INTO online_orders (restaurant_id, user_id, lines, currency, total_price_minor, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, now())
RETURNING id, created_at
`
	if err := r.db.QueryRowContext(ctx, q,
		o.RestaurantID, o.UserID, lines, o.Currency, o.TotalPriceMinor, o.Status,
	).Scan(&o.ID, &o.CreatedAt); err != nil {
		return OnlineOrder{}, err
	}
	return o, nil
}

func (r *PostgresRepo) ListOrdersByUser(ctx context.Context, userID int64) ([]OnlineOrder, error) {
	const q = `
SELECT id, restaurant_id, user_id, lines, currency, total_price_minor, status, created_at
FROM online_orders
WHERE user_id = $1
ORDER BY id
`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OnlineOrder
	for rows.Next() {
		var o OnlineOrder
		var lines []byte
		if err := rows.Scan(&o.ID, &o.RestaurantID, &o.UserID, &lines, &o.Currency, &o.TotalPriceMinor, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		if len(lines) > 0 {
			if err := json.Unmarshal(lines, &o.Lines); err != nil {
				return nil, err
			}
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
