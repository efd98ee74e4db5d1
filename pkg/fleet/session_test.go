package fleet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/EagleFox31/YaroFleet/pkg/testing"
)

func TestSessionCreateGetDelete(t *testing.T) {
	store := NewSessionStore(DefaultSessionTTL)

	token := store.Create(42)
	require.NotEmpty(t, token)

	userID, ok := store.Get(token)
	assert.True(t, ok)
	assert.Equal(t, uint(42), userID)

	store.Delete(token)
	_, ok = store.Get(token)
	assert.False(t, ok)
}

func TestSessionUnknownToken(t *testing.T) {
	store := NewSessionStore(DefaultSessionTTL)

	_, ok := store.Get("nope")
	assert.False(t, ok)
}

func TestSessionExpiry(t *testing.T) {
	store := NewSessionStore(10 * time.Millisecond)

	token := store.Create(7)
	_, ok := store.Get(token)
	require.True(t, ok)

	time.Sleep(20 * time.Millisecond)

	_, ok = store.Get(token)
	assert.False(t, ok)
}

func TestSessionSweep(t *testing.T) {
	store := NewSessionStore(10 * time.Millisecond)

	store.Create(1)
	store.Create(2)

	time.Sleep(20 * time.Millisecond)
	store.Sweep()

	store.mu.Lock()
	remaining := len(store.sessions)
	store.mu.Unlock()
	assert.Zero(t, remaining)
}
