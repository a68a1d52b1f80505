package session

import (
	"context"
	"testing"
)

func TestMemoryStore_CreateAndTouch(t *testing.T) {
	s := NewMemoryStore()

	key, err := s.Create(context.Background())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if key == "" {
		t.Fatalf("expected non-empty key")
	}

	ok, err := s.Touch(context.Background(), key)
	if err != nil || !ok {
		t.Fatalf("expected key to exist, ok=%v err=%v", ok, err)
	}

	ok, err = s.Touch(context.Background(), "unknown")
	if err != nil || ok {
		t.Fatalf("expected unknown key to be absent, ok=%v err=%v", ok, err)
	}
}

func TestNewKey_Distinct(t *testing.T) {
	if NewKey() == NewKey() {
		t.Fatalf("expected distinct keys")
	}
}
