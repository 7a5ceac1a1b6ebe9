package session

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Store is the injected session backend the auth layer validates tokens
// against. Revoking a session id invalidates the JWT that carries it, so
// logout works across instances.
type Store interface {
	Create(ctx context.Context, userID uint) (string, error)
	Valid(ctx context.Context, sid string) (bool, error)
	Revoke(ctx context.Context, sid string) error
}

// NewStore returns a redis-backed store when a client is configured and an
// in-process fallback otherwise.
func NewStore(rdb *redis.Client, ttl time.Duration) Store {
	if rdb != nil {
		return &RedisStore{rdb: rdb, ttl: ttl}
	}
	return NewMemoryStore(ttl)
}

// -------- Redis --------

type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func sessionKey(sid string) string {
	return "session:" + sid
}

func (s *RedisStore) Create(ctx context.Context, userID uint) (string, error) {
	sid := uuid.NewString()
	err := s.rdb.Set(ctx, sessionKey(sid), strconv.FormatUint(uint64(userID), 10), s.ttl).Err()
	if err != nil {
		return "", err
	}
	return sid, nil
}

func (s *RedisStore) Valid(ctx context.Context, sid string) (bool, error) {
	n, err := s.rdb.Exists(ctx, sessionKey(sid)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisStore) Revoke(ctx context.Context, sid string) error {
	return s.rdb.Del(ctx, sessionKey(sid)).Err()
}

// -------- In-memory fallback --------

type MemoryStore struct {
	mu  sync.RWMutex
	ttl time.Duration

	sessions map[string]memorySession
}

type memorySession struct {
	userID    uint
	expiresAt time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]memorySession),
	}
}

func (s *MemoryStore) Create(_ context.Context, userID uint) (string, error) {
	sid := uuid.NewString()

	s.mu.Lock()
	s.sessions[sid] = memorySession{
		userID:    userID,
		expiresAt: time.Now().Add(s.ttl),
	}
	s.mu.Unlock()

	return sid, nil
}

func (s *MemoryStore) Valid(_ context.Context, sid string) (bool, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sid]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if time.Now().After(sess.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, sid)
		s.mu.Unlock()
		return false, nil
	}

	return true, nil
}

func (s *MemoryStore) Revoke(_ context.Context, sid string) error {
	s.mu.Lock()
	delete(s.sessions, sid)
	s.mu.Unlock()
	return nil
}
