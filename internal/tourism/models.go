package tourism

import "time"

// Amounts are expressed in minor units (e.g., cents) using int64.

type Destination struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Category     string `json:"category" db:"category"`
	Description  string `json:"description" db:"description"`
	Location     string `json:"location" db:"location"`
	OpeningHours string `json:"opening_hours" db:"opening_hours"`
	ContactInfo  string `json:"contact_info" db:"contact_info"`
}

type Tour struct {
	ID            int64  `json:"id" db:"id"`
	DestinationID int64  `json:"destination_id" db:"destination_id"`
	Name          string `json:"name" db:"name"`
	TourType      string `json:"tour_type" db:"tour_type"`
	Duration      string `json:"duration" db:"duration"`
	Currency      string `json:"currency" db:"currency"`

	// PricePerPersonMinor is the per-head rate in minor units.
	PricePerPersonMinor int64 `json:"price_per_person_minor" db:"price_per_person_minor"`

	MaxCapacity int       `json:"max_capacity" db:"max_capacity"`
	TourDate    time.Time `json:"tour_date" db:"tour_date"`
	GuideName   string    `json:"guide_name" db:"guide_name"`
}

type EventNotification struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	EventDate   time.Time `json:"event_date" db:"event_date"`
	Location    string    `json:"location" db:"location"`
	Currency    string    `json:"currency" db:"currency"`

	EntryFeeMinor int64 `json:"entry_fee_minor" db:"entry_fee_minor"`

	TargetAudience string `json:"target_audience" db:"target_audience"`
}

type TourBooking struct {
	ID             int64 `json:"id" db:"id"`
	TourID         int64 `json:"tour_id" db:"tour_id"`
	UserID         int64 `json:"user_id" db:"user_id"`
	NumberOfPeople int   `json:"number_of_people" db:"number_of_people"`

	Currency        string `json:"currency" db:"currency"`
	TotalPriceMinor int64  `json:"total_price_minor" db:"total_price_minor"`

	BookingStatus bool      `json:"booking_status" db:"booking_status"`
	PaymentStatus bool      `json:"payment_status" db:"payment_status"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
