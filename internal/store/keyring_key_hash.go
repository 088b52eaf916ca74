package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// keyringService is the service name under which vault-serve stores its
// secrets in the OS keyring.
const keyringService = "vault-serve"

// keyringKeyHashStore keeps the local key hash in the operating system's
// keyring (Secret Service on Linux, Keychain on macOS, Credential Manager
// on Windows). The hash is not key material, but keeping it out of plain
// files avoids offering an offline target for password guessing.
type keyringKeyHashStore struct {
	// user scopes the keyring entry, normally the account email.
	user string
}

// NewKeyringKeyHashStore constructs a [KeyHashStore] backed by the OS
// keyring, scoped to the given account identifier.
func NewKeyringKeyHashStore(user string) KeyHashStore {
	return &keyringKeyHashStore{user: user}
}

// Get implements [KeyHashStore]. A missing entry maps to [ErrNoKeyHash] so
// the verifier can fall through to remote verification.
func (s *keyringKeyHashStore) Get(_ context.Context) (string, error) {
	hash, err := keyring.Get(keyringService, s.user)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNoKeyHash
		}
		return "", fmt.Errorf("read key hash from keyring: %w", err)
	}

	return hash, nil
}

// Set implements [KeyHashStore].
func (s *keyringKeyHashStore) Set(_ context.Context, hash string) error {
	if err := keyring.Set(keyringService, s.user, hash); err != nil {
		return fmt.Errorf("write key hash to keyring: %w", err)
	}

	return nil
}
