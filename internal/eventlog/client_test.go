package eventlog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trip-platform/internal/activity"
)

func TestClient_CreatePostsAndCapturesID(t *testing.T) {
	var got activity.Event
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/event-logs/" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":42}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	id, err := c.Create(context.Background(), activity.Event{
		CaseID:    "user_7",
		Activity:  "Accommodation List",
		StartTime: time.Now().UTC(),
		UserName:  "u@example.com",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}
	if got.CaseID != "user_7" || got.Activity != "Accommodation List" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestClient_CreateErrorsOnNon201(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	if _, err := c.Create(context.Background(), activity.Event{}); err == nil {
		t.Fatalf("expected error for 500")
	}
}

func TestClient_UpdatePatchesRecord(t *testing.T) {
	var gotPath, gotMethod string
	var got activity.Event
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	end := time.Now().UTC()
	status := 200
	c := NewClient(srv.URL, time.Second)
	err := c.Update(context.Background(), activity.Event{
		ID:         42,
		CaseID:     "user_7",
		Activity:   "Accommodation List",
		EndTime:    &end,
		StatusCode: &status,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if gotMethod != http.MethodPatch || gotPath != "/event-logs/42/" {
		t.Fatalf("unexpected request %s %s", gotMethod, gotPath)
	}
	if got.StatusCode == nil || *got.StatusCode != 200 || got.EndTime == nil {
		t.Fatalf("expected completion fields, got %+v", got)
	}
}

func TestClient_UpdateRequiresID(t *testing.T) {
	c := NewClient("http://localhost:0", time.Second)
	if err := c.Update(context.Background(), activity.Event{}); err == nil {
		t.Fatalf("expected error for missing id")
	}
}
