package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashmarin/vault-serve/internal/logger"
	"github.com/ashmarin/vault-serve/internal/service"
	"github.com/ashmarin/vault-serve/internal/session"
	"github.com/ashmarin/vault-serve/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests. Each method
// field can be overridden per test case.
type mockAuthService struct {
	unlockFn func(ctx context.Context, masterPassword string) (string, error)
	lockFn   func(ctx context.Context)
	statusFn func(ctx context.Context) (models.StatusResponse, error)
}

func (m *mockAuthService) Unlock(ctx context.Context, masterPassword string) (string, error) {
	return m.unlockFn(ctx, masterPassword)
}

func (m *mockAuthService) Lock(ctx context.Context) {
	if m.lockFn != nil {
		m.lockFn(ctx)
	}
}

func (m *mockAuthService) Status(ctx context.Context) (models.StatusResponse, error) {
	return m.statusFn(ctx)
}

// mockVaultService implements service.VaultService for unit tests.
type mockVaultService struct {
	getObjectFn    func(ctx context.Context, kind models.ObjectKind, identifier string) (any, error)
	listObjectsFn  func(ctx context.Context, kind models.ObjectKind, search string) (any, int, error)
	createObjectFn func(ctx context.Context, kind models.ObjectKind, body []byte) (any, error)
	editObjectFn   func(ctx context.Context, kind models.ObjectKind, identifier string, body []byte) (any, error)
	deleteObjectFn func(ctx context.Context, kind models.ObjectKind, identifier string) error
	getItemFn      func(ctx context.Context, identifier string) (models.VaultItem, error)
	saveItemFn     func(ctx context.Context, item models.VaultItem) error
	restoreItemFn  func(ctx context.Context, id string) error
	moveItemFn     func(ctx context.Context, itemIdentifier, organizationID string) (models.VaultItem, error)
}

func (m *mockVaultService) GetObject(ctx context.Context, kind models.ObjectKind, identifier string) (any, error) {
	return m.getObjectFn(ctx, kind, identifier)
}

func (m *mockVaultService) ListObjects(ctx context.Context, kind models.ObjectKind, search string) (any, int, error) {
	return m.listObjectsFn(ctx, kind, search)
}

func (m *mockVaultService) CreateObject(ctx context.Context, kind models.ObjectKind, body []byte) (any, error) {
	return m.createObjectFn(ctx, kind, body)
}

func (m *mockVaultService) EditObject(ctx context.Context, kind models.ObjectKind, identifier string, body []byte) (any, error) {
	return m.editObjectFn(ctx, kind, identifier, body)
}

func (m *mockVaultService) DeleteObject(ctx context.Context, kind models.ObjectKind, identifier string) error {
	return m.deleteObjectFn(ctx, kind, identifier)
}

func (m *mockVaultService) GetItem(ctx context.Context, identifier string) (models.VaultItem, error) {
	return m.getItemFn(ctx, identifier)
}

func (m *mockVaultService) SaveItem(ctx context.Context, item models.VaultItem) error {
	return m.saveItemFn(ctx, item)
}

func (m *mockVaultService) RestoreItem(ctx context.Context, id string) error {
	return m.restoreItemFn(ctx, id)
}

func (m *mockVaultService) MoveItem(ctx context.Context, itemIdentifier, organizationID string) (models.VaultItem, error) {
	return m.moveItemFn(ctx, itemIdentifier, organizationID)
}

// mockAttachmentService implements service.AttachmentService for unit tests.
type mockAttachmentService struct {
	retrieveFn       func(ctx context.Context, itemIdentifier, attachmentSelector string) (models.AttachmentMeta, []byte, error)
	retrieveToFileFn func(ctx context.Context, itemIdentifier, attachmentSelector, output string) (models.SavedFileResponse, error)
	uploadFn         func(ctx context.Context, itemIdentifier, fileName string, content []byte) (models.VaultItem, error)
}

func (m *mockAttachmentService) Retrieve(ctx context.Context, itemIdentifier, attachmentSelector string) (models.AttachmentMeta, []byte, error) {
	return m.retrieveFn(ctx, itemIdentifier, attachmentSelector)
}

func (m *mockAttachmentService) RetrieveToFile(ctx context.Context, itemIdentifier, attachmentSelector, output string) (models.SavedFileResponse, error) {
	return m.retrieveToFileFn(ctx, itemIdentifier, attachmentSelector, output)
}

func (m *mockAttachmentService) Upload(ctx context.Context, itemIdentifier, fileName string, content []byte) (models.VaultItem, error) {
	return m.uploadFn(ctx, itemIdentifier, fileName, content)
}

// mockOrgService implements service.OrgService for unit tests.
type mockOrgService struct {
	confirmMemberFn func(ctx context.Context, organizationIdentifier, memberID string) error
}

func (m *mockOrgService) ConfirmMember(ctx context.Context, organizationIdentifier, memberID string) error {
	return m.confirmMemberFn(ctx, organizationIdentifier, memberID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler around the given services with a fresh
// session state and a no-op logger. Nil service fields are fine as long as
// the exercised route never touches them.
func newTestHandler(t *testing.T, svcs *service.Services) (*Handler, *session.SessionState) {
	t.Helper()
	state := session.New()
	return NewHandler(svcs, state, logger.Nop()), state
}

// decodeEnvelope parses the uniform response envelope from a recorder.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.Response {
	t.Helper()
	var envelope models.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

// envelopeMessage returns the failure message of an envelope, or "".
func envelopeMessage(envelope models.Response) string {
	if envelope.Message == nil {
		return ""
	}
	return *envelope.Message
}
