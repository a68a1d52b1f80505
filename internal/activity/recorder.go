package activity

import (
	"context"
	"log/slog"
	"time"

	"trip-platform/internal/identity"
)

// Sink is the transport to the external event-log store.
type Sink interface {
	// Create posts a new event and returns the externally assigned record id.
	Create(ctx context.Context, ev Event) (int64, error)
	// Update patches the event at ev.ID with its completion fields.
	Update(ctx context.Context, ev Event) error
}

// Recorder assembles activity events and ships them to the sink.
//
// The whole recorder is best-effort telemetry: every sink failure is logged
// and swallowed; it never blocks or alters the primary request beyond the
// sink call's own (bounded) latency.
type Recorder struct {
	sink  Sink
	clock func() time.Time
}

func NewRecorder(sink Sink) *Recorder {
	return &Recorder{sink: sink, clock: time.Now}
}

// Begin builds the event for a classified request and posts it.
// Returns nil when the post failed; in that case no completion is attempted
// and the event is dropped.
func (r *Recorder) Begin(ctx context.Context, log *slog.Logger, caseID string, route Route, rec *identity.Record) *Event {
	ev := Event{
		CaseID:    caseID,
		Activity:  route.Label(),
		StartTime: r.clock().UTC(),
		UserName:  identity.AnonymousName,
	}
	if rec != nil && rec.ID > 0 {
		id := rec.ID
		ev.UserID = &id
		ev.UserName = rec.Email
	}

	id, err := r.sink.Create(ctx, ev)
	if err != nil {
		log.Error("event log post failed", "activity", ev.Activity, "err", err)
		return nil
	}
	ev.ID = id
	return &ev
}

// Complete patches the event with end time and response status. Safe to call
// only with an event returned by Begin.
func (r *Recorder) Complete(ctx context.Context, log *slog.Logger, ev *Event, statusCode int) {
	end := r.clock().UTC()
	ev.EndTime = &end
	ev.StatusCode = &statusCode

	if err := r.sink.Update(ctx, *ev); err != nil {
		log.Error("event log patch failed", "event_id", ev.ID, "err", err)
	}
}
