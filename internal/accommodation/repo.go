package accommodation

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("accommodation: not found")

// Repository is the persistence contract for the accommodation domain.
type Repository interface {
	ListAccommodations(ctx context.Context) ([]Accommodation, error)
	GetAccommodation(ctx context.Context, id int64) (Accommodation, error)
	CreateAccommodation(ctx context.Context, a Accommodation) (Accommodation, error)
	UpdateAccommodation(ctx context.Context, a Accommodation) (Accommodation, error)
	DeleteAccommodation(ctx context.Context, id int64) error

	ListRoomTypes(ctx context.Context, accommodationID int64) ([]RoomType, error)
	GetRoomType(ctx context.Context, accommodationID, roomTypeID int64) (RoomType, error)
	CreateRoomType(ctx context.Context, rt RoomType) (RoomType, error)

	CreateBooking(ctx context.Context, b RoomBooking) (RoomBooking, error)
	ListBookings(ctx context.Context) ([]RoomBooking, error)
	ListBookingsByUser(ctx context.Context, userID int64) ([]RoomBooking, error)

	ListGuestServices(ctx context.Context, accommodationID int64) ([]GuestService, error)

	CreateFeedback(ctx context.Context, f FeedbackReview) (FeedbackReview, error)
	ListFeedback(ctx context.Context, accommodationID int64) ([]FeedbackReview, error)
}
