package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ashmarin/vault-serve/models"
)

// fileAccountStore persists the account profile as a JSON file next to the
// cache database. The profile holds no plaintext secrets: the user key and
// org keys inside it are wrapped, and the KDF salt is public material.
type fileAccountStore struct {
	path string

	mu sync.RWMutex
}

// NewFileAccountStore constructs an [AccountStore] backed by the JSON file
// at path.
func NewFileAccountStore(path string) AccountStore {
	return &fileAccountStore{path: path}
}

// Load implements [AccountStore]. A missing file maps to
// [ErrAccountNotFound]: the daemon is running without a signed-in account.
func (s *fileAccountStore) Load(_ context.Context) (models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Account{}, ErrAccountNotFound
		}
		return models.Account{}, fmt.Errorf("read account file: %w", err)
	}

	var account models.Account
	if err = json.Unmarshal(data, &account); err != nil {
		return models.Account{}, fmt.Errorf("decode account file: %w", err)
	}

	return account, nil
}

// Save implements [AccountStore]. The file is written with owner-only
// permissions; parent directories are created as needed.
func (s *fileAccountStore) Save(_ context.Context, account models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create account dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(account, "", "  ")
	if err != nil {
		return fmt.Errorf("encode account: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write account file: %w", err)
	}

	return nil
}
