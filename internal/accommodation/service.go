package accommodation

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidArgument = errors.New("accommodation: invalid argument")

// Service holds the accommodation domain logic: CRUD validation and price
// calculation. It is storage-agnostic; persistence comes via Repository.
type Service struct {
	repo  Repository
	clock func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, clock: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Accommodation, error) {
	return s.repo.ListAccommodations(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Accommodation, error) {
	if id <= 0 {
		return Accommodation{}, ErrInvalidArgument
	}
	return s.repo.GetAccommodation(ctx, id)
}

func (s *Service) Create(ctx context.Context, a Accommodation) (Accommodation, error) {
	if a.Name == "" || a.Location == "" {
		return Accommodation{}, ErrInvalidArgument
	}
	if a.StarRating < 0 || a.StarRating > 5 {
		return Accommodation{}, ErrInvalidArgument
	}
	a.ID = 0
	return s.repo.CreateAccommodation(ctx, a)
}

func (s *Service) Update(ctx context.Context, a Accommodation) (Accommodation, error) {
	if a.ID <= 0 || a.Name == "" || a.Location == "" {
		return Accommodation{}, ErrInvalidArgument
	}
	return s.repo.UpdateAccommodation(ctx, a)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArgument
	}
	return s.repo.DeleteAccommodation(ctx, id)
}

func (s *Service) ListRoomTypes(ctx context.Context, accommodationID int64) ([]RoomType, error) {
	if accommodationID <= 0 {
		return nil, ErrInvalidArgument
	}
	return s.repo.ListRoomTypes(ctx, accommodationID)
}

func (s *Service) CreateRoomType(ctx context.Context, rt RoomType) (RoomType, error) {
	if rt.AccommodationID <= 0 || rt.RoomType == "" || rt.PricePerNightMinor < 0 {
		return RoomType{}, ErrInvalidArgument
	}
	if _, err := s.repo.GetAccommodation(ctx, rt.AccommodationID); err != nil {
		return RoomType{}, err
	}
	rt.ID = 0
	return s.repo.CreateRoomType(ctx, rt)
}

// StayQuote is the result of a stay-price calculation.
type StayQuote struct {
	Accommodation string `json:"accommodation"`
	RoomType      string `json:"room_type"`
	Currency      string `json:"currency"`

	PricePerNightMinor int64 `json:"price_per_night_minor"`
	NumberOfDays       int   `json:"number_of_days"`
	TotalPriceMinor    int64 `json:"total_price_minor"`
}

// CalculateStayPrice computes total = price_per_night × number_of_days for a
// room that must belong to the given accommodation.
func (s *Service) CalculateStayPrice(ctx context.Context, accommodationID, roomTypeID int64, numberOfDays int) (StayQuote, error) {
	if accommodationID <= 0 || roomTypeID <= 0 || numberOfDays < 1 {
		return StayQuote{}, ErrInvalidArgument
	}

	a, err := s.repo.GetAccommodation(ctx, accommodationID)
	if err != nil {
		return StayQuote{}, err
	}
	rt, err := s.repo.GetRoomType(ctx, accommodationID, roomTypeID)
	if err != nil {
		return StayQuote{}, err
	}

	return StayQuote{
		Accommodation:      a.Name,
		RoomType:           rt.RoomType,
		Currency:           rt.Currency,
		PricePerNightMinor: rt.PricePerNightMinor,
		NumberOfDays:       numberOfDays,
		TotalPriceMinor:    rt.PricePerNightMinor * int64(numberOfDays),
	}, nil
}

// CreateBooking validates the stay window, prices it from the room's nightly
// rate and persists the booking for userID.
func (s *Service) CreateBooking(ctx context.Context, userID int64, b RoomBooking) (RoomBooking, error) {
	if userID <= 0 || b.AccommodationID <= 0 || b.RoomTypeID <= 0 {
		return RoomBooking{}, ErrInvalidArgument
	}
	nights := int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
	if nights < 1 {
		return RoomBooking{}, ErrInvalidArgument
	}

	rt, err := s.repo.GetRoomType(ctx, b.AccommodationID, b.RoomTypeID)
	if err != nil {
		return RoomBooking{}, err
	}
	if !rt.Availability {
		return RoomBooking{}, ErrInvalidArgument
	}

	b.ID = 0
	b.UserID = userID
	b.Currency = rt.Currency
	b.TotalPriceMinor = rt.PricePerNightMinor * int64(nights)
	return s.repo.CreateBooking(ctx, b)
}

// ListBookingsFor returns all bookings for staff callers and only the
// caller's own bookings otherwise.
func (s *Service) ListBookingsFor(ctx context.Context, userID int64, isStaff bool) ([]RoomBooking, error) {
	if isStaff {
		return s.repo.ListBookings(ctx)
	}
	if userID <= 0 {
		return nil, ErrInvalidArgument
	}
	return s.repo.ListBookingsByUser(ctx, userID)
}

func (s *Service) ListGuestServices(ctx context.Context, accommodationID int64) ([]GuestService, error) {
	if accommodationID <= 0 {
		return nil, ErrInvalidArgument
	}
	return s.repo.ListGuestServices(ctx, accommodationID)
}

func (s *Service) CreateFeedback(ctx context.Context, userID int64, f FeedbackReview) (FeedbackReview, error) {
	if userID <= 0 || f.AccommodationID <= 0 {
		return FeedbackReview{}, ErrInvalidArgument
	}
	if f.Rating < 1 || f.Rating > 5 {
		return FeedbackReview{}, ErrInvalidArgument
	}
	f.ID = 0
	f.UserID = userID
	if f.Date.IsZero() {
		f.Date = s.clock().UTC()
	}
	return s.repo.CreateFeedback(ctx, f)
}

func (s *Service) ListFeedback(ctx context.Context, accommodationID int64) ([]FeedbackReview, error) {
	if accommodationID <= 0 {
		return nil, ErrInvalidArgument
	}
	return s.repo.ListFeedback(ctx, accommodationID)
}
