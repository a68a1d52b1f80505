package session

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Store hands out opaque per-actor session keys. Keys group anonymous
// requests from the same browser into one case for activity logging.
type Store interface {
	// Create mints a new opaque key and persists it.
	Create(ctx context.Context) (string, error)
	// Touch refreshes the key's TTL and reports whether it exists.
	Touch(ctx context.Context, key string) (bool, error)
}

// RedisStore keeps session keys in Redis with a sliding TTL.
type RedisStore struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 14 * 24 * time.Hour
	}
	return &RedisStore{rdb: rdb, ttl: ttl, prefix: "session:"}
}

// NewKey returns a fresh opaque session key. Exposed so callers can fall back
// to an ephemeral key when the store is unreachable.
func NewKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func (s *RedisStore) Create(ctx context.Context) (string, error) {
	key := NewKey()
	if err := s.rdb.Set(ctx, s.prefix+key, 1, s.ttl).Err(); err != nil {
		return "", err
	}
	return key, nil
}

func (s *RedisStore) Touch(ctx context.Context, key string) (bool, error) {
	ok, err := s.rdb.Expire(ctx, s.prefix+key, s.ttl).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}
