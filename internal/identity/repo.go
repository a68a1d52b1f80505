package identity

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("identity: not found")

// Repository is the persistence contract for shadow identity records.
// Upsert creates the record on first sight of an id and overwrites all
// fields on every subsequent call.
type Repository interface {
	Upsert(ctx context.Context, rec Record) (Record, error)
	Get(ctx context.Context, id int64) (Record, error)
}
