package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"trip-platform/internal/identity"
)

const authorizationHeader = "Authorization"
const bearerPrefix = "Bearer "

// The three failure classes of credential resolution. Callers decide policy:
// the strict middleware turns all of them except ErrNoCredential into 401,
// the optional middleware degrades every one of them to anonymous.
var (
	ErrNoCredential    = errors.New("auth: no credential")
	ErrInvalidToken    = errors.New("auth: invalid token")
	ErrIdentityService = errors.New("auth: identity service failure")
)

// IdentityResolver resolves a verified bearer token into a shadow identity.
type IdentityResolver interface {
	Resolve(ctx context.Context, rawToken string) (identity.Record, error)
}

// Authenticator combines local token verification with remote identity
// resolution. One instance is shared across requests; it holds no per-request
// state.
type Authenticator struct {
	verifier *Verifier
	resolver IdentityResolver
	clock    func() time.Time
}

func NewAuthenticator(v *Verifier, r IdentityResolver) *Authenticator {
	return &Authenticator{verifier: v, resolver: r, clock: time.Now}
}

// Authenticate extracts and verifies the bearer credential from the
// Authorization header value, then resolves the subject's identity.
//
// Errors wrap exactly one of ErrNoCredential, ErrInvalidToken or
// ErrIdentityService so call sites can distinguish absent from invalid from
// service failure.
func (a *Authenticator) Authenticate(ctx context.Context, authorization string) (identity.Record, error) {
	raw := strings.TrimSpace(authorization)
	if raw == "" || !strings.HasPrefix(raw, bearerPrefix) {
		return identity.Record{}, ErrNoCredential
	}
	tok := strings.TrimPrefix(raw, bearerPrefix)

	claims, err := a.verifier.Verify(tok, a.clock())
	if err != nil {
		return identity.Record{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	rec, err := a.resolver.Resolve(ctx, tok)
	if err != nil {
		return identity.Record{}, fmt.Errorf("%w: %v", ErrIdentityService, err)
	}
	if rec.ID != claims.UserID {
		return identity.Record{}, fmt.Errorf("%w: subject mismatch", ErrIdentityService)
	}
	return rec, nil
}
