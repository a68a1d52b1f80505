package tourism

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("tourism: not found")

// Repository is the persistence contract for the tourist-information domain.
type Repository interface {
	ListDestinations(ctx context.Context) ([]Destination, error)
	GetDestination(ctx context.Context, id int64) (Destination, error)
	CreateDestination(ctx context.Context, d Destination) (Destination, error)
	UpdateDestination(ctx context.Context, d Destination) (Destination, error)
	DeleteDestination(ctx context.Context, id int64) error

	ListTours(ctx context.Context) ([]Tour, error)
	GetTour(ctx context.Context, id int64) (Tour, error)
	CreateTour(ctx context.Context, t Tour) (Tour, error)

	ListEvents(ctx context.Context) ([]EventNotification, error)
	CreateEvent(ctx context.Context, e EventNotification) (EventNotification, error)

	CreateTourBooking(ctx context.Context, b TourBooking) (TourBooking, error)
	ListTourBookings(ctx context.Context) ([]TourBooking, error)
	ListTourBookingsByUser(ctx context.Context, userID int64) ([]TourBooking, error)
}
