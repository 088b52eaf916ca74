package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ashmarin/vault-serve/internal/logger"
	"github.com/ashmarin/vault-serve/internal/mock"
	"github.com/ashmarin/vault-serve/internal/store"
	"github.com/ashmarin/vault-serve/models"
)

// newTestVaultSvc builds a vaultService with a mocked cipher store, key
// provider and keychain.
func newTestVaultSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	VaultService,
	*mock.MockVaultStore,
	*mock.MockKeyProvider,
	*mock.MockKeyChainService,
) {
	t.Helper()
	vaultStore := mock.NewMockVaultStore(ctrl)
	keys := mock.NewMockKeyProvider(ctrl)
	keychain := mock.NewMockKeyChainService(ctrl)

	return NewVaultService(vaultStore, keys, keychain, logger.Nop()), vaultStore, keys, keychain
}

var userKey = []byte("user-vault-key-32-bytes-long!!!!")

// decryptInto returns a DoAndReturn body for DecryptData that writes value
// into the decryption target.
func decryptInto[T any](value T) func(string, []byte, any) error {
	return func(_ string, _ []byte, target any) error {
		*(target.(*T)) = value
		return nil
	}
}

// ── GetObject ────────────────────────────────────────────────────────────────

func TestVault_GetObject_ByCanonicalID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, vaultStore, keys, keychain := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	record := models.CipherRecord{ID: canonicalID, Kind: models.KindItem, Data: "blob"}
	item := models.VaultItem{ID: canonicalID, Name: "GitHub"}

	gomock.InOrder(
		vaultStore.EXPECT().Get(ctx, models.KindItem, canonicalID).Return(record, nil),
		keys.EXPECT().SymmetricKey(ctx, "").Return(userKey, nil),
		keychain.EXPECT().DecryptData("blob", userKey, gomock.Any()).DoAndReturn(decryptInto(item)),
	)

	got, err := svc.GetObject(ctx, models.KindItem, canonicalID)
	require.NoError(t, err)
	assert.Equal(t, item, got)
}

// TestVault_GetObject_ByName_Ambiguous verifies that a name fragment hitting
// two items fails with an AmbiguousError listing both ids in storage order.
func TestVault_GetObject_ByName_Ambiguous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, vaultStore, keys, keychain := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	records := []models.CipherRecord{
		{ID: "id-1", Kind: models.KindItem, Data: "blob-1"},
		{ID: "id-2", Kind: models.KindItem, Data: "blob-2"},
	}

	vaultStore.EXPECT().List(ctx, models.KindItem).Return(records, nil)
	keys.EXPECT().SymmetricKey(ctx, "").Return(userKey, nil).Times(2)
	keychain.EXPECT().DecryptData("blob-1", userKey, gomock.Any()).
		DoAndReturn(decryptInto(models.VaultItem{ID: "id-1", Name: "GitHub"}))
	keychain.EXPECT().DecryptData("blob-2", userKey, gomock.Any()).
		DoAndReturn(decryptInto(models.VaultItem{ID: "id-2", Name: "GitLab"}))

	_, err := svc.GetObject(ctx, models.KindItem, "git")

	var ambiguous *AmbiguousError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, []string{"id-1", "id-2"}, ambiguous.CandidateIDs)
}

func TestVault_GetObject_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, vaultStore, _, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	vaultStore.EXPECT().List(ctx, models.KindFolder).Return(nil, nil)

	_, err := svc.GetObject(ctx, models.KindFolder, "no such folder")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestVault_GetObject_UnknownKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestVaultSvc(t, ctrl)

	_, err := svc.GetObject(context.Background(), models.ObjectKind("gadget"), "x")
	require.ErrorIs(t, err, ErrValidation)
}

// TestVault_GetObject_DecryptFailureIsOpaque verifies that a failed record
// decryption maps to the opaque crypto error with no cipher detail attached.
func TestVault_GetObject_DecryptFailureIsOpaque(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, vaultStore, keys, keychain := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	record := models.CipherRecord{ID: canonicalID, Kind: models.KindItem, Data: "blob"}

	gomock.InOrder(
		vaultStore.EXPECT().Get(ctx, models.KindItem, canonicalID).Return(record, nil),
		keys.EXPECT().SymmetricKey(ctx, "").Return(userKey, nil),
		keychain.EXPECT().DecryptData("blob", userKey, gomock.Any()).
			Return(errors.New("cipher: message authentication failed")),
	)

	_, err := svc.GetObject(ctx, models.KindItem, canonicalID)
	require.ErrorIs(t, err, ErrCrypto)
	assert.NotContains(t, err.Error(), "authentication")
}

// ── ListObjects ──────────────────────────────────────────────────────────────

func TestVault_ListObjects_FiltersBySearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, vaultStore, keys, keychain := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	records := []models.CipherRecord{
		{ID: "id-1", Kind: models.KindItem, Data: "blob-1"},
		{ID: "id-2", Kind: models.KindItem, Data: "blob-2"},
	}

	vaultStore.EXPECT().List(ctx, models.KindItem).Return(records, nil)
	keys.EXPECT().SymmetricKey(ctx, "").Return(userKey, nil).Times(2)
	keychain.EXPECT().DecryptData("blob-1", userKey, gomock.Any()).
		DoAndReturn(decryptInto(models.VaultItem{ID: "id-1", Name: "GitHub"}))
	keychain.EXPECT().DecryptData("blob-2", userKey, gomock.Any()).
		DoAndReturn(decryptInto(models.VaultItem{ID: "id-2", Name: "Bank"}))

	data, length, err := svc.ListObjects(ctx, models.KindItem, "hub")
	require.NoError(t, err)
	assert.Equal(t, 1, length)

	items, ok := data.([]models.VaultItem)
	require.True(t, ok)
	assert.Equal(t, "id-1", items[0].ID)
}

// ── CreateObject / EditObject ────────────────────────────────────────────────

// TestVault_CreateObject_AssignsID verifies that a body without an id gets a
// freshly generated canonical one before the record is encrypted and stored.
func TestVault_CreateObject_AssignsID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, vaultStore, keys, keychain := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	var storedID string

	keys.EXPECT().SymmetricKey(ctx, "").Return(userKey, nil)
	keychain.EXPECT().EncryptData(gomock.Any(), userKey).Return("encrypted-blob", nil)
	vaultStore.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, record models.CipherRecord) error {
			storedID = record.ID
			assert.Equal(t, models.KindItem, record.Kind)
			assert.Equal(t, "encrypted-blob", record.Data)
			return nil
		},
	)

	got, err := svc.CreateObject(ctx, models.KindItem, []byte(`{"name":"New Login","type":1}`))
	require.NoError(t, err)

	item, ok := got.(models.VaultItem)
	require.True(t, ok)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, item.ID, storedID)
	assert.Equal(t, "New Login", item.Name)
}

func TestVault_CreateObject_EmptyBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestVaultSvc(t, ctrl)

	_, err := svc.CreateObject(context.Background(), models.KindItem, nil)
	require.ErrorIs(t, err, ErrValidation)
}

// TestVault_EditObject_PreservesIdentity verifies that the replacement body
// cannot change the id or the organization ownership of the stored object.
func TestVault_EditObject_PreservesIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, vaultStore, keys, keychain := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	const orgID = "7f1a2b3c-4d5e-4f60-8a9b-0c1d2e3f4a5b"
	record := models.CipherRecord{ID: canonicalID, Kind: models.KindItem, OrganizationID: orgID, Data: "blob"}
	existing := models.VaultItem{ID: canonicalID, Name: "GitHub", OrganizationID: orgID}

	gomock.InOrder(
		vaultStore.EXPECT().Get(ctx, models.KindItem, canonicalID).Return(record, nil),
		keys.EXPECT().SymmetricKey(ctx, orgID).Return([]byte("org-key"), nil),
		keychain.EXPECT().DecryptData("blob", []byte("org-key"), gomock.Any()).DoAndReturn(decryptInto(existing)),
		keys.EXPECT().SymmetricKey(ctx, orgID).Return([]byte("org-key"), nil),
		keychain.EXPECT().EncryptData(gomock.Any(), []byte("org-key")).Return("new-blob", nil),
		vaultStore.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, record models.CipherRecord) error {
				assert.Equal(t, canonicalID, record.ID)
				assert.Equal(t, orgID, record.OrganizationID)
				return nil
			},
		),
	)

	body := []byte(`{"id":"attacker-chosen","name":"GitHub (renamed)","organizationId":""}`)
	got, err := svc.EditObject(ctx, models.KindItem, canonicalID, body)
	require.NoError(t, err)

	item, ok := got.(models.VaultItem)
	require.True(t, ok)
	assert.Equal(t, canonicalID, item.ID)
	assert.Equal(t, orgID, item.OrganizationID)
	assert.Equal(t, "GitHub (renamed)", item.Name)
}

// ── DeleteObject / RestoreItem ───────────────────────────────────────────────

func TestVault_DeleteObject_SoftDeletes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, vaultStore, keys, keychain := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	record := models.CipherRecord{ID: canonicalID, Kind: models.KindItem, Data: "blob"}

	gomock.InOrder(
		vaultStore.EXPECT().Get(ctx, models.KindItem, canonicalID).Return(record, nil),
		keys.EXPECT().SymmetricKey(ctx, "").Return(userKey, nil),
		keychain.EXPECT().DecryptData("blob", userKey, gomock.Any()).
			DoAndReturn(decryptInto(models.VaultItem{ID: canonicalID, Name: "GitHub"})),
		vaultStore.EXPECT().SetDeleted(ctx, models.KindItem, canonicalID, true).Return(nil),
	)

	require.NoError(t, svc.DeleteObject(ctx, models.KindItem, canonicalID))
}

// TestVault_RestoreItem_RequiresCanonicalID verifies that restore refuses
// name fragments: trashed items are not name-resolvable.
func TestVault_RestoreItem_RequiresCanonicalID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestVaultSvc(t, ctrl)

	err := svc.RestoreItem(context.Background(), "github")
	require.ErrorIs(t, err, ErrValidation)
}

func TestVault_RestoreItem_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, vaultStore, _, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	vaultStore.EXPECT().SetDeleted(ctx, models.KindItem, canonicalID, false).Return(nil)

	require.NoError(t, svc.RestoreItem(ctx, canonicalID))
}

func TestVault_RestoreItem_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, vaultStore, _, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	vaultStore.EXPECT().SetDeleted(ctx, models.KindItem, canonicalID, false).Return(store.ErrObjectNotFound)

	err := svc.RestoreItem(ctx, canonicalID)
	require.ErrorIs(t, err, ErrNotFound)
}

// ── MoveItem ─────────────────────────────────────────────────────────────────

// TestVault_MoveItem_ReencryptsWithOrgKey verifies that moving an item into
// an organization re-encrypts its payload with the organization key and
// rewrites the ownership column.
func TestVault_MoveItem_ReencryptsWithOrgKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, vaultStore, keys, keychain := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	const orgID = "7f1a2b3c-4d5e-4f60-8a9b-0c1d2e3f4a5b"
	orgKey := []byte("org-key-32-bytes-long-exactly!!!")
	record := models.CipherRecord{ID: canonicalID, Kind: models.KindItem, Data: "blob"}

	gomock.InOrder(
		vaultStore.EXPECT().Get(ctx, models.KindItem, canonicalID).Return(record, nil),
		keys.EXPECT().SymmetricKey(ctx, "").Return(userKey, nil),
		keychain.EXPECT().DecryptData("blob", userKey, gomock.Any()).
			DoAndReturn(decryptInto(models.VaultItem{ID: canonicalID, Name: "GitHub"})),
		keys.EXPECT().SymmetricKey(ctx, orgID).Return(orgKey, nil),
		keychain.EXPECT().EncryptData(gomock.Any(), orgKey).Return("org-blob", nil),
		vaultStore.EXPECT().SetOrganization(ctx, canonicalID, orgID, "org-blob").Return(nil),
	)

	moved, err := svc.MoveItem(ctx, canonicalID, orgID)
	require.NoError(t, err)
	assert.Equal(t, orgID, moved.OrganizationID)
}

func TestVault_MoveItem_MissingOrg(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestVaultSvc(t, ctrl)

	_, err := svc.MoveItem(context.Background(), canonicalID, "")
	require.ErrorIs(t, err, ErrValidation)
}
