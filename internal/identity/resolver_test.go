package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestResolver_UpsertsOnSuccess(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/identity/me" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":{"id":7,"email":"u@example.com","name":"U","is_staff":true,"is_active":true}}`))
	}))
	defer srv.Close()

	repo := NewMemoryRepo()
	res := NewResolver(srv.URL, time.Second, repo)

	rec, err := res.Resolve(context.Background(), "tok123")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Fatalf("expected delegated bearer token, got %q", gotAuth)
	}
	if rec.ID != 7 || rec.Email != "u@example.com" || !rec.IsStaff {
		t.Fatalf("unexpected record: %+v", rec)
	}

	stored, err := repo.Get(context.Background(), 7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Name != "U" {
		t.Fatalf("expected shadow record stored, got %+v", stored)
	}
}

func TestResolver_OverwritesAllFieldsOnSecondSight(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
		if calls == 1 {
			_, _ = w.Write([]byte(`{"data":{"id":7,"email":"old@example.com","name":"Old","is_staff":false,"is_active":true}}`))
			return
		}
		_, _ = w.Write([]byte(`{"data":{"id":7,"email":"new@example.com","name":"New","is_staff":true,"is_active":false}}`))
	}))
	defer srv.Close()

	repo := NewMemoryRepo()
	res := NewResolver(srv.URL, time.Second, repo)

	if _, err := res.Resolve(context.Background(), "t"); err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	if _, err := res.Resolve(context.Background(), "t"); err != nil {
		t.Fatalf("second resolve: %v", err)
	}

	rec, err := repo.Get(context.Background(), 7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Email != "new@example.com" || !rec.IsStaff || rec.IsActive {
		t.Fatalf("expected overwritten fields, got %+v", rec)
	}
}

func TestResolver_ErrorsOnNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	res := NewResolver(srv.URL, time.Second, NewMemoryRepo())
	if _, err := res.Resolve(context.Background(), "t"); err == nil {
		t.Fatalf("expected error for 403")
	}
}

func TestResolver_ErrorsOnTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	res := NewResolver(srv.URL, time.Second, NewMemoryRepo())
	if _, err := res.Resolve(context.Background(), "t"); err == nil {
		t.Fatalf("expected transport error")
	}
}
