package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ashmarin/vault-serve/internal/crypto"
	"github.com/ashmarin/vault-serve/internal/session"
	"github.com/ashmarin/vault-serve/internal/store"
)

// ErrNoOrgKey is returned when the account profile has no wrapped key for
// the requested organization.
var ErrNoOrgKey = errors.New("no key for organization")

// keyProvider implements [KeyProvider] over the session state and the
// cached account profile. Organization keys are unwrapped on demand with
// the session's user key; nothing is cached beyond the profile itself, so
// locking the vault immediately cuts off org-key access too.
type keyProvider struct {
	state    *session.SessionState
	accounts store.AccountStore
	keychain crypto.KeyChainService
}

// NewKeyProvider constructs a [KeyProvider].
func NewKeyProvider(state *session.SessionState, accounts store.AccountStore, keychain crypto.KeyChainService) KeyProvider {
	return &keyProvider{state: state, accounts: accounts, keychain: keychain}
}

// SymmetricKey implements [KeyProvider]. An empty organizationID selects
// the session's user key.
func (p *keyProvider) SymmetricKey(ctx context.Context, organizationID string) ([]byte, error) {
	userKey, err := p.state.Key()
	if err != nil {
		return nil, err
	}

	if organizationID == "" {
		return userKey, nil
	}

	account, err := p.accounts.Load(ctx)
	if err != nil {
		return nil, err
	}

	wrapped, ok := account.OrganizationKeys[organizationID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoOrgKey, organizationID)
	}

	orgKey, err := p.keychain.UnwrapKey(wrapped, userKey)
	if err != nil {
		return nil, ErrCrypto
	}

	return orgKey, nil
}
