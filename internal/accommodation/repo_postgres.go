package accommodation

import (
	"context"
	"database/sql"
	"errors"
)

// PostgresRepo persists the accommodation domain in Postgres.
//
// Expected tables: accommodations, room_types, room_bookings, guest_services,
// feedback_reviews. Room types reference their accommodation; bookings and
// feedback carry the remote user id (no FK to a local user table, identities
// live in their own shadow table).
type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) ListAccommodations(ctx context.Context) ([]Accommodation, error) {
	const q = `
SELECT id, name, location, star_rating, total_rooms, amenities,
       check_in_time, check_out_time, contact_info, COALESCE(img_url, '')
FROM accommodations
ORDER BY id
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Accommodation
	for rows.Next() {
		var a Accommodation
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Location, &a.StarRating, &a.TotalRooms,
			&a.Amenities, &a.CheckInTime, &a.CheckOutTime, &a.ContactInfo, &a.ImgURL,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) GetAccommodation(ctx context.Context, id int64) (Accommodation, error) {
	const q = `
SELECT id, name, location, star_rating, total_rooms, amenities,
       check_in_time, check_out_time, contact_info, COALESCE(img_url, '')
FROM accommodations
WHERE id = $1
`
	var a Accommodation
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&a.ID, &a.Name, &a.Location, &a.StarRating, &a.TotalRooms,
		&a.Amenities, &a.CheckInTime, &a.CheckOutTime, &a.ContactInfo, &a.ImgURL,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Accommodation{}, ErrNotFound
	}
	if err != nil {
		return Accommodation{}, err
	}
	return a, nil
}

func (r *PostgresRepo) CreateAccommodation(ctx context.Context, a Accommodation) (Accommodation, error) {
	const q = `
INSERT INTO accommodations (name, location, star_rating, total_rooms, amenities,
                            check_in_time, check_out_time, contact_info, img_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''))
RETURNING id
`
	if err := r.db.QueryRowContext(ctx, q,
		a.Name, a.Location, a.StarRating, a.TotalRooms, a.Amenities,
		a.CheckInTime, a.CheckOutTime, a.ContactInfo, a.ImgURL,
	).Scan(&a.ID); err != nil {
		return Accommodation{}, err
	}
	return a, nil
}

func (r *PostgresRepo) UpdateAccommodation(ctx context.Context, a Accommodation) (Accommodation, error) {
	const q = `
UPDATE accommodations
SET name = $2, location = $3, star_rating = $4, total_rooms = $5, amenities = $6,
    check_in_time = $7, check_out_time = $8, contact_info = $9, img_url = NULLIF($10, '')
WHERE id = $1
`
	res, err := r.db.ExecContext(ctx, q,
		a.ID, a.Name, a.Location, a.StarRating, a.TotalRooms, a.Amenities,
		a.CheckInTime, a.CheckOutTime, a.ContactInfo, a.ImgURL,
	)
	if err != nil {
		return Accommodation{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Accommodation{}, ErrNotFound
	}
	return a, nil
}

func (r *PostgresRepo) DeleteAccommodation(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM accommodations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) ListRoomTypes(ctx context.Context, accommodationID int64) ([]RoomType, error) {
	const q = `
SELECT id, accommodation_id, room_type, currency, price_per_night_minor, max_occupancy, availability
FROM room_types
WHERE accommodation_id = $1
ORDER BY id
`
	rows, err := r.db.QueryContext(ctx, q, accommodationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RoomType
	for rows.Next() {
		var rt RoomType
		if err := rows.Scan(&rt.ID, &rt.AccommodationID, &rt.RoomType, &rt.Currency,
			&rt.PricePerNightMinor, &rt.MaxOccupancy, &rt.Availability); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) GetRoomType(ctx context.Context, accommodationID, roomTypeID int64) (RoomType, error) {
	const q = `
SELECT id, accommodation_id, room_type, currency, price_per_night_minor, max_occupancy, availability
FROM room_types
WHERE accommodation_id = $1 AND id = $2
`
	var rt RoomType
	err := r.db.QueryRowContext(ctx, q, accommodationID, roomTypeID).Scan(
		&rt.ID, &rt.AccommodationID, &rt.RoomType, &rt.Currency,
		&rt.PricePerNightMinor, &rt.MaxOccupancy, &rt.Availability,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return RoomType{}, ErrNotFound
	}
	if err != nil {
		return RoomType{}, err
	}
	return rt, nil
}

func (r *PostgresRepo) CreateRoomType(ctx context.Context, rt RoomType) (RoomType, error) {
	const q = `
INSERT INTO room_types (accommodation_id, room_type, currency, price_per_night_minor, max_occupancy, availability)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`
	if err := r.db.QueryRowContext(ctx, q,
		rt.AccommodationID, rt.RoomType, rt.Currency, rt.PricePerNightMinor, rt.MaxOccupancy, rt.Availability,
	).Scan(&rt.ID); err != nil {
		return RoomType{}, err
	}
	return rt, nil
}

func (r *PostgresRepo) CreateBooking(ctx context.Context, b RoomBooking) (RoomBooking, error) {
	const q = `
INSERT INTO room_bookings (accommodation_id, room_type_id, user_id, check_in_date, check_out_date,
                           currency, total_price_minor, booking_status, payment_status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
RETURNING id, created_at
`
	if err := r.db.QueryRowContext(ctx, q,
		b.AccommodationID, b.RoomTypeID, b.UserID, b.CheckInDate, b.CheckOutDate,
		b.Currency, b.TotalPriceMinor, b.BookingStatus, b.PaymentStatus,
	).Scan(&b.ID, &b.CreatedAt); err != nil {
		return RoomBooking{}, err
	}
	return b, nil
}

func (r *PostgresRepo) ListBookings(ctx context.Context) ([]RoomBooking, error) {
	return r.queryBookings(ctx, `
SELECT id, accommodation_id, room_type_id, user_id, check_in_date, check_out_date,
       currency, total_price_minor, booking_status, payment_status, created_at
FROM room_bookings
ORDER BY id
`)
}

func (r *PostgresRepo) ListBookingsByUser(ctx context.Context, userID int64) ([]RoomBooking, error) {
	return r.queryBookings(ctx, `
SELECT id, accommodation_id, room_type_id, user_id, check_in_date, check_out_date,
       currency, total_price_minor, booking_status, payment_status, created_at
FROM room_bookings
WHERE user_id = $1
ORDER BY id
`, userID)
}

func (r *PostgresRepo) queryBookings(ctx context.Context, q string, args ...any) ([]RoomBooking, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RoomBooking
	for rows.Next() {
		var b RoomBooking
		if err := rows.Scan(&b.ID, &b.AccommodationID, &b.RoomTypeID, &b.UserID,
			&b.CheckInDate, &b.CheckOutDate, &b.Currency, &b.TotalPriceMinor,
			&b.BookingStatus, &b.PaymentStatus, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) ListGuestServices(ctx context.Context, accommodationID int64) ([]GuestService, error) {
	const q = `
SELECT id, accommodation_id, service_name, currency, price_minor, availability_hours
FROM guest_services
WHERE accommodation_id = $1
ORDER BY id
`
	rows, err := r.db.QueryContext(ctx, q, accommodationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []GuestService
	for rows.Next() {
		var g GuestService
		if err := rows.Scan(&g.ID, &g.AccommodationID, &g.ServiceName, &g.Currency,
			&g.PriceMinor, &g.AvailabilityHours); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) CreateFeedback(ctx context.Context, f FeedbackReview) (FeedbackReview, error) {
	const q = `
INSERT INTO feedback_reviews (accommodation_id, user_id, rating, review, date)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`
	if err := r.db.QueryRowContext(ctx, q,
		f.AccommodationID, f.UserID, f.Rating, f.Review, f.Date,
	).Scan(&f.ID); err != nil {
		return FeedbackReview{}, err
	}
	return f, nil
}

func (r *PostgresRepo) ListFeedback(ctx context.Context, accommodationID int64) ([]FeedbackReview, error) {
	const q = `
SELECT id, accommodation_id, user_id, rating, review, date
FROM feedback_reviews
WHERE accommodation_id = $1
ORDER BY id
`
	rows, err := r.db.QueryContext(ctx, q, accommodationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FeedbackReview
	for rows.Next() {
		var f FeedbackReview
		if err := rows.Scan(&f.ID, &f.AccommodationID, &f.UserID, &f.Rating, &f.Review, &f.Date); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
