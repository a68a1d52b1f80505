package tourism

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory Repository useful for tests.
type MemoryRepo struct {
	mu sync.Mutex

	nextID       int64
	destinations map[int64]Destination
	tours        map[int64]Tour
	events       map[int64]EventNotification
	bookings     map[int64]TourBooking
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		nextID:       1,
		destinations: make(map[int64]Destination),
		tours:        make(map[int64]Tour),
		events:       make(map[int64]EventNotification),
		bookings:     make(map[int64]TourBooking),
	}
}

func (r *MemoryRepo) id() int64 {
	id := r.nextID
	r.nextID++
	return id
}

func (r *MemoryRepo) ListDestinations(ctx context.Context) ([]Destination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Destination, 0, len(r.destinations))
	for _, d := range r.destinations {
		out = append(out, d)
	}
	return out, nil
}

func (r *MemoryRepo) GetDestination(ctx context.Context, id int64) (Destination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.destinations[id]
	if !ok {
		return Destination{}, ErrNotFound
	}
	return d, nil
}

func (r *MemoryRepo) CreateDestination(ctx context.Context, d Destination) (Destination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d.ID = r.id()
	r.destinations[d.ID] = d
	return d, nil
}

func (r *MemoryRepo) UpdateDestination(ctx context.Context, d Destination) (Destination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.destinations[d.ID]; !ok {
		return Destination{}, ErrNotFound
	}
	r.destinations[d.ID] = d
	return d, nil
}

func (r *MemoryRepo) DeleteDestination(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.destinations[id]; !ok {
		return ErrNotFound
	}
	delete(r.destinations, id)
	return nil
}

func (r *MemoryRepo) ListTours(ctx context.Context) ([]Tour, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Tour, 0, len(r.tours))
	for _, t := range r.tours {
		out = append(out, t)
	}
	return out, nil
}

func (r *MemoryRepo) GetTour(ctx context.Context, id int64) (Tour, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tours[id]
	if !ok {
		return Tour{}, ErrNotFound
	}
	return t, nil
}

func (r *MemoryRepo) CreateTour(ctx context.Context, t Tour) (Tour, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = r.id()
	r.tours[t.ID] = t
	return t, nil
}

func (r *MemoryRepo) ListEvents(ctx context.Context) ([]EventNotification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]EventNotification, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e)
	}
	return out, nil
}

func (r *MemoryRepo) CreateEvent(ctx context.Context, e EventNotification) (EventNotification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = r.id()
	r.events[e.ID] = e
	return e, nil
}

func (r *MemoryRepo) CreateTourBooking(ctx context.Context, b TourBooking) (TourBooking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = r.id()
	r.bookings[b.ID] = b
	return b, nil
}

func (r *MemoryRepo) ListTourBookings(ctx context.Context) ([]TourBooking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]TourBooking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (r *MemoryRepo) ListTourBookingsByUser(ctx context.Context, userID int64) ([]TourBooking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []TourBooking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}
