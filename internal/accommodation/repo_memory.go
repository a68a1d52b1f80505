package accommodation

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repository useful for tests.
type MemoryRepo struct {
	mu sync.Mutex

	nextID         int64
	accommodations map[int64]Accommodation
	roomTypes      map[int64]RoomType
	bookings       map[int64]RoomBooking
	guestServices  map[int64]GuestService
	feedback       map[int64]FeedbackReview
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		nextID:         1,
		accommodations: make(map[int64]Accommodation),
		roomTypes:      make(map[int64]RoomType),
		bookings:       make(map[int64]RoomBooking),
		guestServices:  make(map[int64]GuestService),
		feedback:       make(map[int64]FeedbackReview),
	}
}

func (r *MemoryRepo) id() int64 {
	id := r.nextID
	r.nextID++
	return id
}

func (r *MemoryRepo) ListAccommodations(ctx context.Context) ([]Accommodation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Accommodation, 0, len(r.accommodations))
	for _, a := range r.accommodations {
		out = append(out, a)
	}
	return out, nil
}

func (r *MemoryRepo) GetAccommodation(ctx context.Context, id int64) (Accommodation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accommodations[id]
	if !ok {
		return Accommodation{}, ErrNotFound
	}
	return a, nil
}

func (r *MemoryRepo) CreateAccommodation(ctx context.Context, a Accommodation) (Accommodation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = r.id()
	r.accommodations[a.ID] = a
	return a, nil
}

func (r *MemoryRepo) UpdateAccommodation(ctx context.Context, a Accommodation) (Accommodation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accommodations[a.ID]; !ok {
		return Accommodation{}, ErrNotFound
	}
	r.accommodations[a.ID] = a
	return a, nil
}

func (r *MemoryRepo) DeleteAccommodation(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accommodations[id]; !ok {
		return ErrNotFound
	}
	delete(r.accommodations, id)
	return nil
}

func (r *MemoryRepo) ListRoomTypes(ctx context.Context, accommodationID int64) ([]RoomType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []RoomType
	for _, rt := range r.roomTypes {
		if rt.AccommodationID == accommodationID {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (r *MemoryRepo) GetRoomType(ctx context.Context, accommodationID, roomTypeID int64) (RoomType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rt, ok := r.roomTypes[roomTypeID]
	if !ok || rt.AccommodationID != accommodationID {
		return RoomType{}, ErrNotFound
	}
	return rt, nil
}

func (r *MemoryRepo) CreateRoomType(ctx context.Context, rt RoomType) (RoomType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rt.ID = r.id()
	r.roomTypes[rt.ID] = rt
	return rt, nil
}

func (r *MemoryRepo) CreateBooking(ctx context.Context, b RoomBooking) (RoomBooking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = r.id()
	b.CreatedAt = time.Now().UTC()
	r.bookings[b.ID] = b
	return b, nil
}

func (r *MemoryRepo) ListBookings(ctx context.Context) ([]RoomBooking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RoomBooking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (r *MemoryRepo) ListBookingsByUser(ctx context.Context, userID int64) ([]RoomBooking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []RoomBooking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *MemoryRepo) ListGuestServices(ctx context.Context, accommodationID int64) ([]GuestService, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []GuestService
	for _, g := range r.guestServices {
		if g.AccommodationID == accommodationID {
			out = append(out, g)
		}
	}
	return out, nil
}

// AddGuestService seeds a guest service record. Test helper.
func (r *MemoryRepo) AddGuestService(g GuestService) GuestService {
	r.mu.Lock()
	defer r.mu.Unlock()
	g.ID = r.id()
	r.guestServices[g.ID] = g
	return g
}

func (r *MemoryRepo) CreateFeedback(ctx context.Context, f FeedbackReview) (FeedbackReview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f.ID = r.id()
	r.feedback[f.ID] = f
	return f, nil
}

func (r *MemoryRepo) ListFeedback(ctx context.Context, accommodationID int64) ([]FeedbackReview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []FeedbackReview
	for _, f := range r.feedback {
		if f.AccommodationID == accommodationID {
			out = append(out, f)
		}
	}
	return out, nil
}
