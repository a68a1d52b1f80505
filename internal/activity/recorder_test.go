package activity

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"trip-platform/internal/identity"
)

func TestRecorder_BeginAndComplete(t *testing.T) {
	sink := NewMemorySink()
	rec := NewRecorder(sink)

	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(250 * time.Millisecond)
	times := []time.Time{start, end}
	rec.clock = func() time.Time {
		next := times[0]
		if len(times) > 1 {
			times = times[1:]
		}
		return next
	}

	idrec := identity.Record{ID: 7, Email: "u@example.com"}
	ev := rec.Begin(context.Background(), slog.Default(), "user_7", Route{Resource: "Accommodation", Action: ActionList}, &idrec)
	if ev == nil {
		t.Fatalf("expected event")
	}
	if ev.ID != 1 {
		t.Fatalf("expected assigned id 1, got %d", ev.ID)
	}
	if !ev.StartTime.Equal(start) {
		t.Fatalf("expected start %v, got %v", start, ev.StartTime)
	}
	if ev.EndTime != nil || ev.StatusCode != nil {
		t.Fatalf("expected no completion fields before Complete, got %+v", ev)
	}

	rec.Complete(context.Background(), slog.Default(), ev, 200)

	stored := sink.Events()[1]
	if stored.EndTime == nil || !stored.EndTime.Equal(end) {
		t.Fatalf("expected end %v, got %+v", end, stored.EndTime)
	}
	if stored.StatusCode == nil || *stored.StatusCode != 200 {
		t.Fatalf("expected status 200, got %+v", stored.StatusCode)
	}
}

func TestRecorder_BeginReturnsNilOnSinkFailure(t *testing.T) {
	sink := NewMemorySink()
	sink.FailCreate(true)
	rec := NewRecorder(sink)

	ev := rec.Begin(context.Background(), slog.Default(), "session_x", Route{Resource: "Accommodation", Action: ActionList}, nil)
	if ev != nil {
		t.Fatalf("expected nil event after create failure, got %+v", ev)
	}
}
