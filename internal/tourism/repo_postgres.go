package tourism

import (
	"context"
	"database/sql"
	"errors"
)

// PostgresRepo persists the tourist-information domain in Postgres.
//
// Expected tables: destinations, tours, event_notifications, tour_bookings.
// Tours reference their destination; bookings carry the remote user id (no FK
// to a local user table, identities live in their own shadow table).
type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) ListDestinations(ctx context.Context) ([]Destination, error) {
	const q = `
SELECT id, name, category, description, location, opening_hours, contact_info
FROM destinations
ORDER BY id
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Destination
	for rows.Next() {
		var d Destination
		if err := rows.Scan(
			&d.ID, &d.Name, &d.Category, &d.Description,
			&d.Location, &d.OpeningHours, &d.ContactInfo,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) GetDestination(ctx context.Context, id int64) (Destination, error) {
	const q = `
SELECT id, name, category, description, location, opening_hours, contact_info
FROM destinations
WHERE id = $1
`
	var d Destination
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&d.ID, &d.Name, &d.Category, &d.Description,
		&d.Location, &d.OpeningHours, &d.ContactInfo,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Destination{}, ErrNotFound
	}
	if err != nil {
		return Destination{}, err
	}
	return d, nil
}

func (r *PostgresRepo) CreateDestination(ctx context.Context, d Destination) (Destination, error) {
	const q = `
INSERT INTO destinations (name, category, description, location, opening_hours, contact_info)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`
	if err := r.db.QueryRowContext(ctx, q,
		d.Name, d.Category, d.Description, d.Location, d.OpeningHours, d.ContactInfo,
	).Scan(&d.ID); err != nil {
		return Destination{}, err
	}
	return d, nil
}

func (r *PostgresRepo) UpdateDestination(ctx context.Context, d Destination) (Destination, error) {
	const q = `
UPDATE destinations
SET name = $2, category = $3, description = $4, location = $5,
    opening_hours = $6, contact_info = $7
WHERE id = $1
`
	res, err := r.db.ExecContext(ctx, q,
		d.ID, d.Name, d.Category, d.Description, d.Location, d.OpeningHours, d.ContactInfo,
	)
	if err != nil {
		return Destination{}, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return Destination{}, err
	} else if n == 0 {
		return Destination{}, ErrNotFound
	}
	return d, nil
}

func (r *PostgresRepo) DeleteDestination(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM destinations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) ListTours(ctx context.Context) ([]Tour, error) {
	const q = `
SELECT id, destination_id, name, tour_type, duration, currency,
       price_per_person_minor, max_capacity, tour_date, guide_name
FROM tours
ORDER BY id
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Tour
	for rows.Next() {
		var t Tour
		if err := rows.Scan(
			&t.ID, &t.DestinationID, &t.Name, &t.TourType, &t.Duration, &t.Currency,
			&t.PricePerPersonMinor, &t.MaxCapacity, &t.TourDate, &t.GuideName,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) GetTour(ctx context.Context, id int64) (Tour, error) {
	const q = `
SELECT id, destination_id, name, tour_type, duration, currency,
       price_per_person_minor, max_capacity, tour_date, guide_name
FROM tours
WHERE id = $1
`
	var t Tour
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&t.ID, &t.DestinationID, &t.Name, &t.TourType, &t.Duration, &t.Currency,
		&t.PricePerPersonMinor, &t.MaxCapacity, &t.TourDate, &t.GuideName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Tour{}, ErrNotFound
	}
	if err != nil {
		return Tour{}, err
	}
	return t, nil
}

func (r *PostgresRepo) CreateTour(ctx context.Context, t Tour) (Tour, error) {
	const q = `
INSERT INTO tours (destination_id, name, tour_type, duration, currency,
                   price_per_person_minor, max_capacity, tour_date, guide_name)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id
`
	if err := r.db.QueryRowContext(ctx, q,
		t.DestinationID, t.Name, t.TourType, t.Duration, t.Currency,
		t.PricePerPersonMinor, t.MaxCapacity, t.TourDate, t.GuideName,
	).Scan(&t.ID); err != nil {
		return Tour{}, err
	}
	return t, nil
}

func (r *PostgresRepo) ListEvents(ctx context.Context) ([]EventNotification, error) {
	const q = `
SELECT id, title, description, event_date, location, currency,
       entry_fee_minor, target_audience
FROM event_notifications
ORDER BY event_date
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EventNotification
	for rows.Next() {
		var e EventNotification
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.EventDate, &e.Location,
			&e.Currency, &e.EntryFeeMinor, &e.TargetAudience,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) CreateEvent(ctx context.Context, e EventNotification) (EventNotification, error) {
	const q = `
INSERT INTO event_notifications (title, description, event_date, location,
                                 currency, entry_fee_minor, target_audience)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id
`
	if err := r.db.QueryRowContext(ctx, q,
		e.Title, e.Description, e.EventDate, e.Location,
		e.Currency, e.EntryFeeMinor, e.TargetAudience,
	).Scan(&e.ID); err != nil {
		return EventNotification{}, err
	}
	return e, nil
}

func (r *PostgresRepo) CreateTourBooking(ctx context.Context, b TourBooking) (TourBooking, error) {
	const q = `
INSERT INTO tour_bookings (tour_id, user_id, number_of_people, currency,
                           total_price_minor, booking_status, payment_status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id
`
	if err := r.db.QueryRowContext(ctx, q,
		b.TourID, b.UserID, b.NumberOfPeople, b.Currency,
		b.TotalPriceMinor, b.BookingStatus, b.PaymentStatus, b.CreatedAt,
	).Scan(&b.ID); err != nil {
		return TourBooking{}, err
	}
	return b, nil
}

func (r *PostgresRepo) ListTourBookings(ctx context.Context) ([]TourBooking, error) {
	return r.listTourBookings(ctx, `
SELECT id, tour_id, user_id, number_of_people, currency,
       total_price_minor, booking_status, payment_status, created_at
FROM tour_bookings
ORDER BY id
`)
}

func (r *PostgresRepo) ListTourBookingsByUser(ctx context.Context, userID int64) ([]TourBooking, error) {
	return r.listTourBookings(ctx, `
SELECT id, tour_id, user_id, number_of_people, currency,
       total_price_minor, booking_status, payment_status, created_at
FROM tour_bookings
WHERE user_id = $1
ORDER BY id
`, userID)
}

func (r *PostgresRepo) listTourBookings(ctx context.Context, q string, args ...any) ([]TourBooking, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TourBooking
	for rows.Next() {
		var b TourBooking
		if err := rows.Scan(
			&b.ID, &b.TourID, &b.UserID, &b.NumberOfPeople, &b.Currency,
			&b.TotalPriceMinor, &b.BookingStatus, &b.PaymentStatus, &b.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
