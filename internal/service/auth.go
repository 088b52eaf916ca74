package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ashmarin/vault-serve/internal/logger"
	"github.com/ashmarin/vault-serve/internal/session"
	"github.com/ashmarin/vault-serve/internal/store"
	"github.com/ashmarin/vault-serve/models"
)

// authService implements [AuthService] on top of the session state and the
// credential verifier.
type authService struct {
	state    *session.SessionState
	verifier CredentialVerifier
	accounts store.AccountStore
}

// NewAuthService constructs an [AuthService].
func NewAuthService(state *session.SessionState, verifier CredentialVerifier, accounts store.AccountStore) AuthService {
	return &authService{state: state, verifier: verifier, accounts: accounts}
}

// Unlock implements [AuthService].
//
// A blank password is rejected before any session mutation: it is a
// validation failure, not an unlock attempt. Every real attempt first
// publishes a fresh session token via BeginUnlock — invalidating the
// previous one even if verification then fails — and only a successful
// verification attaches the vault key to it. BeginUnlock/CompleteUnlock
// pairs are serialized inside the session state, so concurrent unlock
// requests cannot interleave token and key material.
func (a *authService) Unlock(ctx context.Context, masterPassword string) (string, error) {
	log := logger.FromContext(ctx)

	if masterPassword == "" {
		return "", fmt.Errorf("%w: master password is required", ErrValidation)
	}

	token, err := a.state.BeginUnlock()
	if err != nil {
		return "", err
	}

	vaultKey, err := a.verifier.Verify(ctx, masterPassword)
	if err != nil {
		a.state.AbortUnlock()
		log.Debug().Msg("unlock attempt failed verification")
		return "", err
	}

	a.state.CompleteUnlock(vaultKey)
	log.Info().Msg("vault unlocked")

	return token, nil
}

// Lock implements [AuthService]. The issued token value is left intact;
// only the key is cleared.
func (a *authService) Lock(ctx context.Context) {
	a.state.Lock()
	logger.FromContext(ctx).Info().Msg("vault locked")
}

// Status implements [AuthService].
func (a *authService) Status(ctx context.Context) (models.StatusResponse, error) {
	status := models.StatusResponse{Status: "locked"}
	if a.state.IsUnlocked() {
		status.Status = "unlocked"
	}

	account, err := a.accounts.Load(ctx)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return status, nil
		}
		return models.StatusResponse{}, err
	}

	status.ServerURL = account.ServerURL
	status.UserEmail = account.Email
	if !account.LastSync.IsZero() {
		status.LastSync = account.LastSync.UTC().Format("2006-01-02T15:04:05.000Z")
	}

	return status, nil
}
