package accommodation

import (
	"context"
	"errors"
	"testing"
	"time"
)

func seedHotel(t *testing.T, repo *MemoryRepo) (Accommodation, RoomType) {
	t.Helper()
	svc := NewService(repo)
	a, err := svc.Create(context.Background(), Accommodation{Name: "Grand Hotel", Location: "Vienna", StarRating: 4, TotalRooms: 120})
	if err != nil {
		t.Fatalf("create accommodation: %v", err)
	}
	rt, err := svc.CreateRoomType(context.Background(), RoomType{
		AccommodationID:    a.ID,
		RoomType:           "Double",
		Currency:           "EUR",
		PricePerNightMinor: 10000, // 100.00
		MaxOccupancy:       2,
		Availability:       true,
	})
	if err != nil {
		t.Fatalf("create room type: %v", err)
	}
	return a, rt
}

func TestCalculateStayPrice(t *testing.T) {
	repo := NewMemoryRepo()
	a, rt := seedHotel(t, repo)
	svc := NewService(repo)

	q, err := svc.CalculateStayPrice(context.Background(), a.ID, rt.ID, 3)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if q.TotalPriceMinor != 30000 {
		t.Fatalf("expected 30000 (300.00), got %d", q.TotalPriceMinor)
	}
	if q.Accommodation != "Grand Hotel" || q.RoomType != "Double" || q.NumberOfDays != 3 {
		t.Fatalf("unexpected quote: %+v", q)
	}
}

func TestCalculateStayPrice_UnknownAccommodation(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	if _, err := svc.CalculateStayPrice(context.Background(), 99, 1, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCalculateStayPrice_RoomMustBelongToAccommodation(t *testing.T) {
	repo := NewMemoryRepo()
	a, _ := seedHotel(t, repo)
	b, brt := seedHotel(t, repo)
	_ = b
	svc := NewService(repo)

	if _, err := svc.CalculateStayPrice(context.Background(), a.ID, brt.ID, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign room, got %v", err)
	}
}

func TestCalculateStayPrice_RejectsZeroDays(t *testing.T) {
	repo := NewMemoryRepo()
	a, rt := seedHotel(t, repo)
	svc := NewService(repo)

	if _, err := svc.CalculateStayPrice(context.Background(), a.ID, rt.ID, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestCreateBooking_PricesStay(t *testing.T) {
	repo := NewMemoryRepo()
	a, rt := seedHotel(t, repo)
	svc := NewService(repo)

	in := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	out := in.AddDate(0, 0, 3)
	b, err := svc.CreateBooking(context.Background(), 7, RoomBooking{
		AccommodationID: a.ID,
		RoomTypeID:      rt.ID,
		CheckInDate:     in,
		CheckOutDate:    out,
	})
	if err != nil {
		t.Fatalf("booking: %v", err)
	}
	if b.TotalPriceMinor != 30000 || b.UserID != 7 {
		t.Fatalf("unexpected booking: %+v", b)
	}
}

func TestCreateBooking_RejectsInvertedWindow(t *testing.T) {
	repo := NewMemoryRepo()
	a, rt := seedHotel(t, repo)
	svc := NewService(repo)

	in := time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)
	_, err := svc.CreateBooking(context.Background(), 7, RoomBooking{
		AccommodationID: a.ID,
		RoomTypeID:      rt.ID,
		CheckInDate:     in,
		CheckOutDate:    in.AddDate(0, 0, -1),
	})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestListBookingsFor_ScopesToUserUnlessStaff(t *testing.T) {
	repo := NewMemoryRepo()
	a, rt := seedHotel(t, repo)
	svc := NewService(repo)

	in := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	for _, uid := range []int64{7, 8} {
		if _, err := svc.CreateBooking(context.Background(), uid, RoomBooking{
			AccommodationID: a.ID, RoomTypeID: rt.ID,
			CheckInDate: in, CheckOutDate: in.AddDate(0, 0, 2),
		}); err != nil {
			t.Fatalf("booking for %d: %v", uid, err)
		}
	}

	own, err := svc.ListBookingsFor(context.Background(), 7, false)
	if err != nil || len(own) != 1 {
		t.Fatalf("expected 1 own booking, got %d err=%v", len(own), err)
	}
	all, err := svc.ListBookingsFor(context.Background(), 7, true)
	if err != nil || len(all) != 2 {
		t.Fatalf("expected 2 bookings for staff, got %d err=%v", len(all), err)
	}
}

func TestCreateFeedback_ValidatesRating(t *testing.T) {
	repo := NewMemoryRepo()
	a, _ := seedHotel(t, repo)
	svc := NewService(repo)

	if _, err := svc.CreateFeedback(context.Background(), 7, FeedbackReview{AccommodationID: a.ID, Rating: 6}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}

	f, err := svc.CreateFeedback(context.Background(), 7, FeedbackReview{AccommodationID: a.ID, Rating: 5, Review: "great"})
	if err != nil {
		t.Fatalf("feedback: %v", err)
	}
	if f.UserID != 7 || f.Date.IsZero() {
		t.Fatalf("unexpected feedback: %+v", f)
	}
}
