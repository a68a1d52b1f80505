package activity

import (
	"context"
	"errors"
	"sync"
)

// MemorySink is an in-memory Sink useful for tests.
// It mimics the external store: Create assigns ids, Update overwrites.
type MemorySink struct {
	mu     sync.Mutex
	nextID int64
	events map[int64]Event

	failCreate bool
	failUpdate bool
}

func NewMemorySink() *MemorySink {
	return &MemorySink{nextID: 1, events: make(map[int64]Event)}
}

func (s *MemorySink) FailCreate(v bool) { s.mu.Lock(); s.failCreate = v; s.mu.Unlock() }
func (s *MemorySink) FailUpdate(v bool) { s.mu.Lock(); s.failUpdate = v; s.mu.Unlock() }

func (s *MemorySink) Create(ctx context.Context, ev Event) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failCreate {
		return 0, errors.New("sink: create failed")
	}
	ev.ID = s.nextID
	s.nextID++
	s.events[ev.ID] = ev
	return ev.ID, nil
}

func (s *MemorySink) Update(ctx context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failUpdate {
		return errors.New("sink: update failed")
	}
	if _, ok := s.events[ev.ID]; !ok {
		return errors.New("sink: unknown event id")
	}
	s.events[ev.ID] = ev
	return nil
}

// Events returns a snapshot of stored events keyed by id.
func (s *MemorySink) Events() map[int64]Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int64]Event, len(s.events))
	for k, v := range s.events {
		out[k] = v
	}
	return out
}
