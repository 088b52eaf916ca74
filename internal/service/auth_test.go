package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ashmarin/vault-serve/internal/mock"
	"github.com/ashmarin/vault-serve/internal/session"
	"github.com/ashmarin/vault-serve/internal/store"
	"github.com/ashmarin/vault-serve/models"
)

// newTestAuthSvc builds an authService around a real session state, a mocked
// verifier and a mocked account store. The session state is returned so
// tests can observe token and key transitions directly.
func newTestAuthSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	AuthService,
	*session.SessionState,
	*mock.MockCredentialVerifier,
	*mock.MockAccountStore,
) {
	t.Helper()
	state := session.New()
	verifier := mock.NewMockCredentialVerifier(ctrl)
	accounts := mock.NewMockAccountStore(ctrl)

	return NewAuthService(state, verifier, accounts), state, verifier, accounts
}

// ── Unlock ───────────────────────────────────────────────────────────────────

func TestAuth_Unlock_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, state, verifier, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	vaultKey := []byte("unwrapped-vault-key-32-bytes-ok!")
	verifier.EXPECT().Verify(ctx, "correct horse").Return(vaultKey, nil)

	token, err := svc.Unlock(ctx, "correct horse")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, token, state.Token())
	assert.True(t, state.IsUnlocked())

	key, err := state.Key()
	require.NoError(t, err)
	assert.Equal(t, vaultKey, key)
}

// TestAuth_Unlock_FailureInvalidatesPreviousToken verifies that a failed
// unlock attempt still rotates the session token: the token issued by the
// earlier successful unlock stops working.
func TestAuth_Unlock_FailureInvalidatesPreviousToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, state, verifier, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		verifier.EXPECT().Verify(ctx, "correct horse").Return([]byte("vault-key"), nil),
		verifier.EXPECT().Verify(ctx, "wrong password").Return(nil, ErrInvalidCredentials),
	)

	firstToken, err := svc.Unlock(ctx, "correct horse")
	require.NoError(t, err)
	require.True(t, state.IsUnlocked())

	_, err = svc.Unlock(ctx, "wrong password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	assert.NotEqual(t, firstToken, state.Token(), "failed attempt must rotate the token")
	assert.False(t, state.IsUnlocked(), "failed attempt must drop the held key")

	_, err = state.Key()
	assert.ErrorIs(t, err, session.ErrNotUnlocked)
}

// TestAuth_Unlock_BlankPassword verifies that a blank password is rejected
// as validation before any session mutation: the issued token is unchanged.
func TestAuth_Unlock_BlankPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, state, verifier, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	verifier.EXPECT().Verify(ctx, "correct horse").Return([]byte("vault-key"), nil)

	token, err := svc.Unlock(ctx, "correct horse")
	require.NoError(t, err)

	_, err = svc.Unlock(ctx, "")
	require.ErrorIs(t, err, ErrValidation)

	assert.Equal(t, token, state.Token(), "validation failures must not touch the session")
	assert.True(t, state.IsUnlocked())
}

func TestAuth_Unlock_VerifierErrorPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, verifier, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	verifier.EXPECT().Verify(ctx, "pw").Return(nil, ErrCrypto)

	_, err := svc.Unlock(ctx, "pw")
	require.ErrorIs(t, err, ErrCrypto)
}

// ── Lock ─────────────────────────────────────────────────────────────────────

// TestAuth_Lock_KeepsToken verifies that locking clears the key but leaves
// the issued token value intact.
func TestAuth_Lock_KeepsToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, state, verifier, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	verifier.EXPECT().Verify(ctx, "correct horse").Return([]byte("vault-key"), nil)

	token, err := svc.Unlock(ctx, "correct horse")
	require.NoError(t, err)

	svc.Lock(ctx)

	assert.Equal(t, token, state.Token())
	assert.False(t, state.IsUnlocked())
}

// ── Status ───────────────────────────────────────────────────────────────────

func TestAuth_Status_Locked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, accounts := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	lastSync := time.Date(2026, time.August, 14, 9, 30, 0, 0, time.UTC)
	accounts.EXPECT().Load(ctx).Return(models.Account{
		Email:     "alice@example.com",
		ServerURL: "https://vault.example.com",
		LastSync:  lastSync,
	}, nil)

	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, "locked", status.Status)
	assert.Equal(t, "alice@example.com", status.UserEmail)
	assert.Equal(t, "https://vault.example.com", status.ServerURL)
	assert.Equal(t, "2026-08-14T09:30:00.000Z", status.LastSync)
}

func TestAuth_Status_Unlocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, verifier, accounts := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	verifier.EXPECT().Verify(ctx, "pw").Return([]byte("vault-key"), nil)
	accounts.EXPECT().Load(ctx).Return(models.Account{Email: "alice@example.com"}, nil)

	_, err := svc.Unlock(ctx, "pw")
	require.NoError(t, err)

	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, "unlocked", status.Status)
}

// TestAuth_Status_NoAccount verifies that a missing account profile still
// yields a well-formed locked status instead of an error.
func TestAuth_Status_NoAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, accounts := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	accounts.EXPECT().Load(ctx).Return(models.Account{}, store.ErrAccountNotFound)

	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, "locked", status.Status)
	assert.Empty(t, status.UserEmail)
}

func TestAuth_Status_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, accounts := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	accounts.EXPECT().Load(ctx).Return(models.Account{}, errors.New("disk read error"))

	_, err := svc.Status(ctx)
	require.Error(t, err)
}
