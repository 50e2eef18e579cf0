package bot

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStores(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	stores := map[string]SessionStore{
		"memory": NewMemoryStore(),
		"redis":  NewRedisStore(client, time.Hour),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			s, err := store.Get(ctx, 42)
			require.NoError(t, err)
			assert.Equal(t, StateAwaitingName, s.State)
			assert.False(t, s.HasProfile())

			s.Name, s.Org, s.State = "Анна", "Kaspi", StateSelectHour
			s.RoomID, s.Date = 2, "2025-01-16"
			require.NoError(t, store.Save(ctx, s))

			// изменения после Save не должны протекать в хранилище
			s.Name = "changed"

			got, err := store.Get(ctx, 42)
			require.NoError(t, err)
			assert.Equal(t, "Анна", got.Name)
			assert.Equal(t, StateSelectHour, got.State)
			assert.Equal(t, int64(2), got.RoomID)
			assert.True(t, got.HasProfile())
		})
	}
}

func TestRedisStore_TTLAndFailures(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &Session{UserID: 7, State: StateMainMenu, Name: "Ержан", Org: "Halyk"}))
	assert.Equal(t, time.Hour, mr.TTL(sessionKey(7)))

	mr.FastForward(2 * time.Hour)
	s, err := store.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, StateAwaitingName, s.State)

	require.NoError(t, mr.Set(sessionKey(8), "{broken"))
	_, err = store.Get(ctx, 8)
	assert.ErrorIs(t, err, ErrSessionStore)

	mr.Close()
	_, err = store.Get(ctx, 7)
	assert.ErrorIs(t, err, ErrSessionStore)
}

func TestSession_ResetDraft(t *testing.T) {
	s := &Session{UserID: 1, Name: "Анна", Org: "Kaspi", State: StateSelectMinute, RoomID: 3, Date: "2025-01-16", Hour: 10, Minute: 20}
	s.ResetDraft()

	assert.Equal(t, StateMainMenu, s.State)
	assert.Zero(t, s.RoomID)
	assert.Empty(t, s.Date)
	assert.Equal(t, "Анна", s.Name)
}
