package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ashmarin/vault-serve/internal/adapter"
	"github.com/ashmarin/vault-serve/internal/crypto"
	"github.com/ashmarin/vault-serve/internal/logger"
	"github.com/ashmarin/vault-serve/internal/store"
)

// credentialVerifier is the default implementation of [CredentialVerifier].
//
// The fast path compares the derived key's local hash against the hash
// cached in the key-hash store and never touches the network. When the
// cached hash is absent or stale, the server key hash is submitted to the
// remote verification endpoint exactly once; a success refreshes the local
// cache so the next unlock stays offline. Transport failures are not
// retried here.
type credentialVerifier struct {
	accounts  store.AccountStore
	keyHashes store.KeyHashStore
	gateway   adapter.Gateway
	keychain  crypto.KeyChainService
}

// NewCredentialVerifier constructs a [CredentialVerifier] from its
// collaborators.
func NewCredentialVerifier(accounts store.AccountStore, keyHashes store.KeyHashStore, gateway adapter.Gateway, keychain crypto.KeyChainService) CredentialVerifier {
	return &credentialVerifier{
		accounts:  accounts,
		keyHashes: keyHashes,
		gateway:   gateway,
		keychain:  keychain,
	}
}

// Verify implements [CredentialVerifier].
func (v *credentialVerifier) Verify(ctx context.Context, masterPassword string) ([]byte, error) {
	log := logger.FromContext(ctx)

	if masterPassword == "" {
		return nil, fmt.Errorf("%w: master password is required", ErrValidation)
	}

	account, err := v.accounts.Load(ctx)
	if err != nil {
		log.Err(err).Msg("no account context for key derivation")
		return nil, ErrInvalidCredentials
	}

	masterKey, err := v.keychain.DeriveMasterKey(masterPassword, account.KDF)
	if err != nil {
		log.Err(err).Msg("key derivation failed")
		return nil, ErrInvalidCredentials
	}

	localHash := v.keychain.LocalKeyHash(masterKey)

	storedHash, err := v.keyHashes.Get(ctx)
	if err != nil && !errors.Is(err, store.ErrNoKeyHash) {
		// An unreadable keyring entry is treated the same as an absent
		// one: fall through to remote verification.
		log.Warn().Err(err).Msg("could not read cached key hash")
	}

	if storedHash == "" || storedHash != localHash {
		serverHash := v.keychain.ServerKeyHash(masterKey)
		if err := v.gateway.VerifyPassword(ctx, account.Email, serverHash); err != nil {
			log.Err(err).Msg("remote password verification failed")
			return nil, ErrInvalidCredentials
		}

		if err := v.keyHashes.Set(ctx, localHash); err != nil {
			// The unlock itself succeeded; a failed cache refresh only
			// costs a remote round trip on the next attempt.
			log.Warn().Err(err).Msg("could not persist refreshed key hash")
		}
	}

	vaultKey, err := v.keychain.UnwrapKey(account.EncryptedUserKey, masterKey)
	if err != nil {
		log.Err(err).Msg("could not unwrap user key with verified master key")
		return nil, ErrCrypto
	}

	return vaultKey, nil
}
