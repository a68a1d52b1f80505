package identity

import "time"

// Record is a locally cached copy of a remote user's identity attributes.
//
// Invariants:
// - ID is assigned by the user service; this service never mints identity ids.
// - Records are written only by the Resolver (shadow upsert). They are never
//   deleted here.
// - Concurrent upserts for the same id are last-writer-wins. Acceptable for an
//   eventually-consistent shadow cache; the upsert is not atomic across fields
//   of two competing requests.
type Record struct {
	ID       int64  `json:"id" db:"id"`
	Email    string `json:"email" db:"email"`
	Name     string `json:"name" db:"name"`
	IsStaff  bool   `json:"is_staff" db:"is_staff"`
	IsActive bool   `json:"is_active" db:"is_active"`

	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// AnonymousName is the display-name sentinel used when no identity is known.
const AnonymousName = "Anonymous"
