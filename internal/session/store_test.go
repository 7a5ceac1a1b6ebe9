package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	sid, err := store.Create(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, sid)

	live, err := store.Valid(ctx, sid)
	require.NoError(t, err)
	assert.True(t, live)

	require.NoError(t, store.Revoke(ctx, sid))

	live, err = store.Valid(ctx, sid)
	require.NoError(t, err)
	assert.False(t, live)
}

func TestMemoryStore_UnknownSession(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	live, err := store.Valid(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, live)
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore(-time.Second)
	ctx := context.Background()

	sid, err := store.Create(ctx, 42)
	require.NoError(t, err)

	live, err := store.Valid(ctx, sid)
	require.NoError(t, err)
	assert.False(t, live)
}

func TestNewStore_FallsBackToMemory(t *testing.T) {
	store := NewStore(nil, time.Minute)
	_, ok := store.(*MemoryStore)
	assert.True(t, ok)
}

func TestSessionsAreUnique(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	a, err := store.Create(ctx, 1)
	require.NoError(t, err)
	b, err := store.Create(ctx, 1)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
