package auth

import (
	"testing"
	"time"

	"trip-platform/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret string, userID int64, issuedAt, expiresAt time.Time) string {
	t.Helper()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID: userID,
		Email:  "u@example.com",
		Name:   "U",
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return tok
}

func TestVerify_AcceptsValidToken(t *testing.T) {
	v, err := NewVerifier(config.AuthConfig{JWTSecret: "secret"})
	if err != nil {
		t.Fatalf("verifier: %v", err)
	}

	now := time.Unix(1700000000, 0).UTC()
	tok := signToken(t, "secret", 7, now, now.Add(15*time.Minute))

	claims, err := v.Verify(tok, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != 7 {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestVerify_UsesInjectedTime(t *testing.T) {
	v, err := NewVerifier(config.AuthConfig{JWTSecret: "secret"})
	if err != nil {
		t.Fatalf("verifier: %v", err)
	}

	// Window long expired on the wall clock; only the injected time makes it valid.
	issued := time.Unix(1700000000, 0).UTC()
	tok := signToken(t, "secret", 7, issued, issued.Add(15*time.Minute))

	if _, err := v.Verify(tok, issued.Add(time.Minute)); err != nil {
		t.Fatalf("verify at injected time: %v", err)
	}

	// The same token must be rejected when the injected time is current.
	if _, err := v.Verify(tok, time.Now()); err == nil {
		t.Fatalf("expected expiry error at current injected time")
	}
}

func TestVerify_RejectsExpiredToken(t *testing.T) {
	v, _ := NewVerifier(config.AuthConfig{JWTSecret: "secret"})

	now := time.Unix(1700000000, 0).UTC()
	tok := signToken(t, "secret", 7, now.Add(-time.Hour), now.Add(-30*time.Minute))

	if _, err := v.Verify(tok, now); err == nil {
		t.Fatalf("expected expiry error")
	}
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	v, _ := NewVerifier(config.AuthConfig{JWTSecret: "secret"})

	now := time.Unix(1700000000, 0).UTC()
	tok := signToken(t, "other", 7, now, now.Add(time.Hour))

	if _, err := v.Verify(tok, now); err == nil {
		t.Fatalf("expected signature error")
	}
}

func TestVerify_RejectsMissingUserID(t *testing.T) {
	v, _ := NewVerifier(config.AuthConfig{JWTSecret: "secret"})

	now := time.Unix(1700000000, 0).UTC()
	tok := signToken(t, "secret", 0, now, now.Add(time.Hour))

	if _, err := v.Verify(tok, now); err == nil {
		t.Fatalf("expected user_id error")
	}
}

func TestNewVerifier_RequiresSecret(t *testing.T) {
	if _, err := NewVerifier(config.AuthConfig{}); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}
