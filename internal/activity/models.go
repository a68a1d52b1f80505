package activity

import "time"

// Event is one request's classified business action and its outcome.
//
// Lifecycle:
// - built in memory at request start,
// - posted to the event-log service (which assigns ID),
// - mutated with EndTime/StatusCode after the handler ran and patched back.
//
// If the initial post fails no update is ever attempted; the event is dropped
// after logging the error locally.
type Event struct {
	ID       int64  `json:"id,omitempty"`
	CaseID   string `json:"case_id"`
	Activity string `json:"activity"`

	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`

	UserID   *int64 `json:"user_id"`
	UserName string `json:"user_name"`

	StatusCode *int `json:"status_code,omitempty"`
}
