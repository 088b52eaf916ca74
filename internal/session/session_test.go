package session

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionState_StartsLocked(t *testing.T) {
	state := New()

	assert.Equal(t, Locked, state.CurrentPhase())
	assert.False(t, state.IsUnlocked())
	assert.Empty(t, state.Token())

	_, err := state.Key()
	assert.ErrorIs(t, err, ErrNotUnlocked)
}

func TestSessionState_UnlockLifecycle(t *testing.T) {
	state := New()
	key := []byte("vault-key")

	token, err := state.BeginUnlock()
	require.NoError(t, err)
	assert.Equal(t, Unlocking, state.CurrentPhase())
	assert.Equal(t, token, state.Token())
	assert.False(t, state.IsUnlocked(), "no key is held while verification runs")

	state.CompleteUnlock(key)
	assert.Equal(t, Unlocked, state.CurrentPhase())
	assert.True(t, state.IsUnlocked())

	got, err := state.Key()
	require.NoError(t, err)
	assert.Equal(t, key, got)
}

// TestSessionState_TokenEntropy verifies that tokens are 32 random bytes in
// standard base64 and that consecutive attempts never repeat.
func TestSessionState_TokenEntropy(t *testing.T) {
	state := New()

	first, err := state.BeginUnlock()
	require.NoError(t, err)
	state.AbortUnlock()

	second, err := state.BeginUnlock()
	require.NoError(t, err)
	state.AbortUnlock()

	assert.NotEqual(t, first, second)

	raw, err := base64.StdEncoding.DecodeString(first)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
}

// TestSessionState_FailedAttemptRotatesToken verifies that an aborted unlock
// leaves the fresh token published: the previous session is gone either way.
func TestSessionState_FailedAttemptRotatesToken(t *testing.T) {
	state := New()

	first, err := state.BeginUnlock()
	require.NoError(t, err)
	state.CompleteUnlock([]byte("vault-key"))

	second, err := state.BeginUnlock()
	require.NoError(t, err)
	require.NotEqual(t, first, second)
	state.AbortUnlock()

	assert.Equal(t, Locked, state.CurrentPhase())
	assert.Equal(t, second, state.Token(), "the failed attempt's token stays published")
	assert.False(t, state.IsUnlocked())
}

// TestSessionState_LockKeepsToken verifies that locking clears the key but
// does not rotate the token value.
func TestSessionState_LockKeepsToken(t *testing.T) {
	state := New()

	token, err := state.BeginUnlock()
	require.NoError(t, err)
	state.CompleteUnlock([]byte("vault-key"))

	state.Lock()

	assert.Equal(t, Locked, state.CurrentPhase())
	assert.Equal(t, token, state.Token())

	_, err = state.Key()
	assert.ErrorIs(t, err, ErrNotUnlocked)
}

// TestSessionState_AdoptToken verifies that the key is only served while the
// adopted token matches the issued one: a stale token from before a
// re-unlock locks the caller out, and re-adopting the current token restores
// access.
func TestSessionState_AdoptToken(t *testing.T) {
	state := New()

	_, err := state.BeginUnlock()
	require.NoError(t, err)
	state.CompleteUnlock([]byte("vault-key"))

	state.AdoptToken("stale-token-from-previous-unlock")
	_, err = state.Key()
	assert.ErrorIs(t, err, ErrNotUnlocked)

	state.AdoptToken(state.Token())
	_, err = state.Key()
	assert.NoError(t, err)
}

// TestSessionState_ConcurrentUnlocksSerialized verifies that a second unlock
// attempt blocks until the first one completes, so its token is the one that
// ends up published.
func TestSessionState_ConcurrentUnlocksSerialized(t *testing.T) {
	state := New()

	first, err := state.BeginUnlock()
	require.NoError(t, err)

	done := make(chan string)
	go func() {
		second, err := state.BeginUnlock()
		if err != nil {
			done <- ""
			return
		}
		state.CompleteUnlock([]byte("second-key"))
		done <- second
	}()

	// The goroutine is parked in BeginUnlock until the first attempt
	// finishes.
	state.CompleteUnlock([]byte("first-key"))

	second := <-done
	require.NotEmpty(t, second)
	assert.NotEqual(t, first, second)
	assert.Equal(t, second, state.Token())

	key, err := state.Key()
	require.NoError(t, err)
	assert.Equal(t, []byte("second-key"), key)
}
