package bot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "roombooking:bot:session:"

// MemoryStore сессии в памяти процесса, теряются при рестарте
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]Session
}

// NewMemoryStore создает пустое хранилище
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[int64]Session)}
}

// Get возвращает копию сессии или новую, если пользователь пишет впервые
func (m *MemoryStore) Get(_ context.Context, userID int64) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[userID]
	if !ok {
		return NewSession(userID), nil
	}
	return &s, nil
}

// Save сохраняет копию сессии
func (m *MemoryStore) Save(_ context.Context, session *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[session.UserID] = *session
	return nil
}

// RedisStore сессии в Redis в виде JSON с TTL.
// TTL продлевается при каждом сохранении.
type RedisStore struct {
	client goredis.UniversalClient
	ttl    time.Duration
}

// NewRedisStore ttl <= 0 означает хранение без срока
func NewRedisStore(client goredis.UniversalClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(userID int64) string {
	return sessionKeyPrefix + strconv.FormatInt(userID, 10)
}

// Get читает сессию, отсутствие ключа дает новую сессию
func (r *RedisStore) Get(ctx context.Context, userID int64) (*Session, error) {
	raw, err := r.client.Get(ctx, sessionKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return NewSession(userID), nil
		}
		return nil, fmt.Errorf("%w: get user=%d: %v", ErrSessionStore, userID, err)
	}

	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: decode user=%d: %v", ErrSessionStore, userID, err)
	}
	s.UserID = userID
	return &s, nil
}

// Save записывает сессию целиком
func (r *RedisStore) Save(ctx context.Context, session *Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: encode user=%d: %v", ErrSessionStore, session.UserID, err)
	}

	if err := r.client.Set(ctx, sessionKey(session.UserID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set user=%d: %v", ErrSessionStore, session.UserID, err)
	}
	return nil
}
