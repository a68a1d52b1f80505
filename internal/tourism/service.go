package tourism

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidArgument = errors.New("tourism: invalid argument")

// Service holds the tourist-information domain logic: destination and tour
// CRUD, event notifications, and tour bookings priced per head.
type Service struct {
	repo  Repository
	clock func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, clock: time.Now}
}

func (s *Service) ListDestinations(ctx context.Context) ([]Destination, error) {
	return s.repo.ListDestinations(ctx)
}

func (s *Service) GetDestination(ctx context.Context, id int64) (Destination, error) {
	if id <= 0 {
		return Destination{}, ErrInvalidArgument
	}
	return s.repo.GetDestination(ctx, id)
}

func (s *Service) CreateDestination(ctx context.Context, d Destination) (Destination, error) {
	if d.Name == "" || d.Location == "" {
		return Destination{}, ErrInvalidArgument
	}
	d.ID = 0
	return s.repo.CreateDestination(ctx, d)
}

func (s *Service) UpdateDestination(ctx context.Context, d Destination) (Destination, error) {
	if d.ID <= 0 || d.Name == "" || d.Location == "" {
		return Destination{}, ErrInvalidArgument
	}
	return s.repo.UpdateDestination(ctx, d)
}

func (s *Service) DeleteDestination(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArgument
	}
	return s.repo.DeleteDestination(ctx, id)
}

func (s *Service) ListTours(ctx context.Context) ([]Tour, error) {
	return s.repo.ListTours(ctx)
}

func (s *Service) GetTour(ctx context.Context, id int64) (Tour, error) {
	if id <= 0 {
		return Tour{}, ErrInvalidArgument
	}
	return s.repo.GetTour(ctx, id)
}

func (s *Service) CreateTour(ctx context.Context, t Tour) (Tour, error) {
	if t.DestinationID <= 0 || t.Name == "" || t.PricePerPersonMinor < 0 || t.MaxCapacity < 1 {
		return Tour{}, ErrInvalidArgument
	}
	if _, err := s.repo.GetDestination(ctx, t.DestinationID); err != nil {
		return Tour{}, err
	}
	t.ID = 0
	return s.repo.CreateTour(ctx, t)
}

func (s *Service) ListEvents(ctx context.Context) ([]EventNotification, error) {
	return s.repo.ListEvents(ctx)
}

func (s *Service) CreateEvent(ctx context.Context, e EventNotification) (EventNotification, error) {
	if e.Title == "" || e.EntryFeeMinor < 0 {
		return EventNotification{}, ErrInvalidArgument
	}
	if e.EventDate.IsZero() {
		return EventNotification{}, ErrInvalidArgument
	}
	e.ID = 0
	return s.repo.CreateEvent(ctx, e)
}

// CreateTourBooking prices the booking from the tour's per-head rate and
// persists it for userID. New bookings start unconfirmed and unpaid.
func (s *Service) CreateTourBooking(ctx context.Context, userID int64, b TourBooking) (TourBooking, error) {
	if userID <= 0 || b.TourID <= 0 || b.NumberOfPeople < 1 {
		return TourBooking{}, ErrInvalidArgument
	}

	t, err := s.repo.GetTour(ctx, b.TourID)
	if err != nil {
		return TourBooking{}, err
	}
	if b.NumberOfPeople > t.MaxCapacity {
		return TourBooking{}, ErrInvalidArgument
	}

	b.ID = 0
	b.UserID = userID
	b.Currency = t.Currency
	b.TotalPriceMinor = t.PricePerPersonMinor * int64(b.NumberOfPeople)
	b.BookingStatus = false
	b.PaymentStatus = false
	b.CreatedAt = s.clock().UTC()
	return s.repo.CreateTourBooking(ctx, b)
}

// ListTourBookingsFor returns all bookings for staff callers and only the
// caller's own bookings otherwise.
func (s *Service) ListTourBookingsFor(ctx context.Context, userID int64, isStaff bool) ([]TourBooking, error) {
	if isStaff {
		return s.repo.ListTourBookings(ctx)
	}
	if userID <= 0 {
		return nil, ErrInvalidArgument
	}
	return s.repo.ListTourBookingsByUser(ctx, userID)
}
