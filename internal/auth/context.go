package auth

import (
	"context"

	"trip-platform/internal/identity"
)

type ctxKey int

const ctxIdentity ctxKey = iota

// WithIdentity stores the resolved identity in context.
func WithIdentity(ctx context.Context, rec identity.Record) context.Context {
	return context.WithValue(ctx, ctxIdentity, rec)
}

// IdentityFrom returns the resolved identity, if any. Absence means the
// request is anonymous.
func IdentityFrom(ctx context.Context) (identity.Record, bool) {
	v := ctx.Value(ctxIdentity)
	if rec, ok := v.(identity.Record); ok && rec.ID > 0 {
		return rec, true
	}
	return identity.Record{}, false
}
