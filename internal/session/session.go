// Package session owns the process-wide unlocked-session state of the
// vault-serve daemon: the random session token, the in-memory vault key,
// and the Locked → Unlocking → Unlocked state machine.
//
// The daemon serves a single local user, so there is exactly one
// SessionState per process, created by the composition root and handed to
// every component that needs it. Token adoption from inbound requests is
// deliberately global, not per-connection; see [SessionState.AdoptToken].
package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
)

// ErrNotUnlocked is returned by [SessionState.Key] when no verified vault
// key is held, or when the adopted session token does not match the one
// issued at unlock.
var ErrNotUnlocked = errors.New("vault is locked")

// Phase is the lifecycle phase of the session state machine.
type Phase int

const (
	// Locked means no vault key is held.
	Locked Phase = iota
	// Unlocking means an unlock attempt is in flight: a fresh token has
	// been published but the password has not been verified yet.
	Unlocking
	// Unlocked means a verified vault key is held in memory.
	Unlocked
)

// tokenBytes is the entropy of a session token: 32 bytes, 256 bits.
const tokenBytes = 32

// SessionState is the process-wide mutable session singleton.
//
// Unlock attempts are serialized: BeginUnlock acquires an internal mutex
// that is held until the matching CompleteUnlock or AbortUnlock call, so a
// second unlock request cannot publish a new token while the first one is
// still verifying. All other accessors only take a short-lived read or
// write lock on the field mutex and never block behind an in-flight unlock.
type SessionState struct {
	// unlockMu serializes BeginUnlock/CompleteUnlock pairs.
	unlockMu sync.Mutex

	mu      sync.RWMutex
	phase   Phase
	token   string
	adopted string
	key     []byte
}

// New returns an empty, locked SessionState.
func New() *SessionState {
	return &SessionState{phase: Locked}
}

// BeginUnlock starts an unlock attempt. It unconditionally generates and
// publishes a fresh random session token before any password verification
// runs, so that every unlock attempt — including one that subsequently
// fails — invalidates a previously issued token. Any held vault key is
// dropped at the same time.
//
// BeginUnlock acquires the unlock mutex; the caller must follow up with
// exactly one CompleteUnlock or AbortUnlock to release it.
func (s *SessionState) BeginUnlock() (string, error) {
	s.unlockMu.Lock()

	token, err := newToken()
	if err != nil {
		s.unlockMu.Unlock()
		return "", fmt.Errorf("generate session token: %w", err)
	}

	s.mu.Lock()
	s.phase = Unlocking
	s.token = token
	s.adopted = ""
	s.key = nil
	s.mu.Unlock()

	return token, nil
}

// CompleteUnlock stores the verified vault key and moves the session to
// Unlocked. The connection that completed the unlock becomes the active
// session, so the freshly issued token is adopted as well. Releases the
// unlock mutex taken by BeginUnlock.
func (s *SessionState) CompleteUnlock(key []byte) {
	s.mu.Lock()
	s.phase = Unlocked
	s.key = key
	s.adopted = s.token
	s.mu.Unlock()

	s.unlockMu.Unlock()
}

// AbortUnlock moves the session back to Locked after a failed verification.
// The token issued by BeginUnlock stays published: the attempt already
// invalidated its predecessor, and no key is attached to it. Releases the
// unlock mutex taken by BeginUnlock.
func (s *SessionState) AbortUnlock() {
	s.mu.Lock()
	s.phase = Locked
	s.key = nil
	s.mu.Unlock()

	s.unlockMu.Unlock()
}

// Lock clears the vault key. The issued session token value is left as-is;
// locking does not require a new token.
func (s *SessionState) Lock() {
	s.mu.Lock()
	s.phase = Locked
	s.key = nil
	s.mu.Unlock()
}

// AdoptToken installs the session token carried by an inbound request as
// the active token for the whole process. This affects every concurrently
// in-flight request on other connections — a deliberate simplification for
// a single-user local server, not a multi-tenant guarantee.
func (s *SessionState) AdoptToken(token string) {
	s.mu.Lock()
	s.adopted = token
	s.mu.Unlock()
}

// IsUnlocked reports whether a verified vault key is currently held.
func (s *SessionState) IsUnlocked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key != nil
}

// Token returns the most recently issued session token, which may belong to
// a failed unlock attempt.
func (s *SessionState) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// CurrentPhase returns the lifecycle phase of the session.
func (s *SessionState) CurrentPhase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// Key returns the unlocked vault key. It fails with [ErrNotUnlocked] when
// the vault is locked or when the adopted token does not match the token
// issued at unlock (e.g. a stale token from before a re-unlock).
func (s *SessionState) Key() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.key == nil || s.adopted != s.token {
		return nil, ErrNotUnlocked
	}

	return s.key, nil
}

func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}
