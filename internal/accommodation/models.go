package accommodation

import "time"

// Amounts are expressed in minor units (e.g., cents) using int64.

type Accommodation struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Location    string `json:"location" db:"location"`
	StarRating  int    `json:"star_rating" db:"star_rating"`
	TotalRooms  int    `json:"total_rooms" db:"total_rooms"`
	Amenities   string `json:"amenities" db:"amenities"`
	CheckInTime string `json:"check_in_time" db:"check_in_time"`
	CheckOutTime string `json:"check_out_time" db:"check_out_time"`
	ContactInfo string `json:"contact_info" db:"contact_info"`
	ImgURL      string `json:"img_url,omitempty" db:"img_url"`
}

type RoomType struct {
	ID              int64  `json:"id" db:"id"`
	AccommodationID int64  `json:"accommodation_id" db:"accommodation_id"`
	RoomType        string `json:"room_type" db:"room_type"`
	Currency        string `json:"currency" db:"currency"`

	// PricePerNightMinor is the nightly rate in minor units.
	PricePerNightMinor int64 `json:"price_per_night_minor" db:"price_per_night_minor"`

	MaxOccupancy int  `json:"max_occupancy" db:"max_occupancy"`
	Availability bool `json:"availability" db:"availability"`
}

type RoomBooking struct {
	ID              int64 `json:"id" db:"id"`
	AccommodationID int64 `json:"accommodation_id" db:"accommodation_id"`
	RoomTypeID      int64 `json:"room_type_id" db:"room_type_id"`
	UserID          int64 `json:"user_id" db:"user_id"`

	CheckInDate  time.Time `json:"check_in_date" db:"check_in_date"`
	CheckOutDate time.Time `json:"check_out_date" db:"check_out_date"`

	Currency        string `json:"currency" db:"currency"`
	TotalPriceMinor int64  `json:"total_price_minor" db:"total_price_minor"`

	BookingStatus bool `json:"booking_status" db:"booking_status"`
	PaymentStatus bool `json:"payment_status" db:"payment_status"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type GuestService struct {
	ID              int64  `json:"id" db:"id"`
	AccommodationID int64  `json:"accommodation_id" db:"accommodation_id"`
	ServiceName     string `json:"service_name" db:"service_name"`
	Currency        string `json:"currency" db:"currency"`
	PriceMinor      int64  `json:"price_minor" db:"price_minor"`
	AvailabilityHours string `json:"availability_hours" db:"availability_hours"`
}

type FeedbackReview struct {
	ID              int64     `json:"id" db:"id"`
	AccommodationID int64     `json:"accommodation_id" db:"accommodation_id"`
	UserID          int64     `json:"user_id" db:"user_id"`
	Rating          int       `json:"rating" db:"rating"`
	Review          string    `json:"review" db:"review"`
	Date            time.Time `json:"date" db:"date"`
}
