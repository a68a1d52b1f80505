package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trip-platform/internal/config"
	"trip-platform/internal/identity"

	"github.com/gin-gonic/gin"
)

type stubResolver struct {
	rec identity.Record
	err error
}

func (s stubResolver) Resolve(ctx context.Context, rawToken string) (identity.Record, error) {
	return s.rec, s.err
}

func newTestAuthenticator(t *testing.T, res IdentityResolver) *Authenticator {
	t.Helper()
	v, err := NewVerifier(config.AuthConfig{JWTSecret: "secret"})
	if err != nil {
		t.Fatalf("verifier: %v", err)
	}
	return NewAuthenticator(v, res)
}

func doRequest(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireUser_RejectsMissingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a := newTestAuthenticator(t, stubResolver{})

	r := gin.New()
	r.GET("/probe", RequireUser(a), func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	if w := doRequest(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireUser_RejectsInvalidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a := newTestAuthenticator(t, stubResolver{})

	r := gin.New()
	r.GET("/probe", RequireUser(a), func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	if w := doRequest(r, "Bearer garbage"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireUser_RejectsOnIdentityServiceFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a := newTestAuthenticator(t, stubResolver{err: errors.New("boom")})

	now := time.Now()
	tok := signToken(t, "secret", 7, now, now.Add(time.Hour))

	r := gin.New()
	r.GET("/probe", RequireUser(a), func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	if w := doRequest(r, "Bearer "+tok); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireUser_InjectsIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a := newTestAuthenticator(t, stubResolver{rec: identity.Record{ID: 7, Email: "u@example.com", IsActive: true}})

	now := time.Now()
	tok := signToken(t, "secret", 7, now, now.Add(time.Hour))

	var got identity.Record
	r := gin.New()
	r.GET("/probe", RequireUser(a), func(c *gin.Context) {
		got, _ = IdentityFrom(c.Request.Context())
		c.JSON(200, gin.H{"ok": true})
	})

	if w := doRequest(r, "Bearer "+tok); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got.ID != 7 {
		t.Fatalf("expected identity in context, got %+v", got)
	}
}

func TestRequireUser_RejectsSubjectMismatch(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a := newTestAuthenticator(t, stubResolver{rec: identity.Record{ID: 8}})

	now := time.Now()
	tok := signToken(t, "secret", 7, now, now.Add(time.Hour))

	r := gin.New()
	r.GET("/probe", RequireUser(a), func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	if w := doRequest(r, "Bearer "+tok); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for subject mismatch, got %d", w.Code)
	}
}

func TestOptionalUser_DegradesToAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a := newTestAuthenticator(t, stubResolver{err: errors.New("boom")})

	now := time.Now()
	tok := signToken(t, "secret", 7, now, now.Add(time.Hour))

	var anon bool
	r := gin.New()
	r.GET("/probe", OptionalUser(a), func(c *gin.Context) {
		_, ok := IdentityFrom(c.Request.Context())
		anon = !ok
		c.JSON(200, gin.H{"ok": true})
	})

	if w := doRequest(r, "Bearer "+tok); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !anon {
		t.Fatalf("expected anonymous request")
	}
}

func TestRequireUser_ReusesContextIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	// Resolver that fails: it must not be consulted when the context already
	// carries an identity.
	a := newTestAuthenticator(t, stubResolver{err: errors.New("boom")})

	r := gin.New()
	r.GET("/probe",
		func(c *gin.Context) {
			c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), identity.Record{ID: 7}))
			c.Next()
		},
		RequireUser(a),
		func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) },
	)

	if w := doRequest(r, ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
