package activity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trip-platform/internal/identity"
	"trip-platform/internal/session"

	"github.com/gin-gonic/gin"
)

func caseIDForRequest(t *testing.T, alloc *Allocator, rec *identity.Record, cookie string) (string, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var got string
	r := gin.New()
	r.GET("/probe", func(c *gin.Context) {
		got = alloc.CaseID(c, rec)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "sessionid", Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return got, w
}

func TestCaseID_AuthenticatedIsStable(t *testing.T) {
	alloc := NewAllocator(session.NewMemoryStore(), "sessionid", 0)
	rec := &identity.Record{ID: 7}

	a, _ := caseIDForRequest(t, alloc, rec, "")
	b, _ := caseIDForRequest(t, alloc, rec, "")
	if a != "user_7" || a != b {
		t.Fatalf("expected stable user case id, got %q and %q", a, b)
	}
}

func TestCaseID_AnonymousCreatesSession(t *testing.T) {
	alloc := NewAllocator(session.NewMemoryStore(), "sessionid", 0)

	id, w := caseIDForRequest(t, alloc, nil, "")
	if !strings.HasPrefix(id, "session_") {
		t.Fatalf("expected session_ prefix, got %q", id)
	}
	if len(w.Result().Cookies()) == 0 {
		t.Fatalf("expected session cookie to be set")
	}
}

func TestCaseID_AnonymousReusesExistingSession(t *testing.T) {
	store := session.NewMemoryStore()
	key, err := store.Create(context.Background())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	alloc := NewAllocator(store, "sessionid", 0)

	id, _ := caseIDForRequest(t, alloc, nil, key)
	if id != "session_"+key {
		t.Fatalf("expected reused session key, got %q", id)
	}
}

func TestCaseID_DistinctAnonymousSessionsDiffer(t *testing.T) {
	alloc := NewAllocator(session.NewMemoryStore(), "sessionid", 0)

	a, _ := caseIDForRequest(t, alloc, nil, "")
	b, _ := caseIDForRequest(t, alloc, nil, "")
	if a == b {
		t.Fatalf("expected distinct anonymous case ids, got %q twice", a)
	}
}

func TestCaseID_NeverFails(t *testing.T) {
	store := session.NewMemoryStore()
	store.Fail(errors.New("redis down"))
	alloc := NewAllocator(store, "sessionid", 0)

	id, _ := caseIDForRequest(t, alloc, nil, "")
	if !strings.HasPrefix(id, "session_") {
		t.Fatalf("expected fallback session id, got %q", id)
	}
}
