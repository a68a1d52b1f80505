package identity

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repository useful for tests.
type MemoryRepo struct {
	mu   sync.Mutex
	recs map[int64]Record
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{recs: make(map[int64]Record)}
}

func (r *MemoryRepo) Upsert(ctx context.Context, rec Record) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec.UpdatedAt = time.Now().UTC()
	r.recs[rec.ID] = rec
	return rec, nil
}

func (r *MemoryRepo) Get(ctx context.Context, id int64) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.recs[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}
