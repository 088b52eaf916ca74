package service

import (
	"context"

	"github.com/ashmarin/vault-serve/models"
)

// CredentialVerifier turns a master password into the verified vault key,
// using the local key-hash fast path and falling back to remote
// verification.
type CredentialVerifier interface {
	// Verify derives a candidate key from the password and checks it
	// against the account's stored key material. On success it returns the
	// unwrapped vault (user) key; on failure, [ErrInvalidCredentials].
	Verify(ctx context.Context, masterPassword string) ([]byte, error)
}

// AuthService drives the session lifecycle: unlock, lock, and status.
type AuthService interface {
	// Unlock runs the unlock protocol and returns the fresh session token.
	// The token is regenerated on every attempt, even a failing one.
	Unlock(ctx context.Context, masterPassword string) (string, error)

	// Lock clears the unlocked vault key.
	Lock(ctx context.Context)

	// Status summarizes the account and session for GET /status.
	Status(ctx context.Context) (models.StatusResponse, error)
}

// KeyProvider resolves the symmetric key protecting a vault object: the
// session's user key for personal objects, or the unwrapped organization
// key for org-owned ones.
type KeyProvider interface {
	SymmetricKey(ctx context.Context, organizationID string) ([]byte, error)
}

// VaultService exposes decrypted vault objects to the command facade. All
// identifier parameters go through the shared resolution policy, so they
// accept either a canonical id or a name fragment.
type VaultService interface {
	GetObject(ctx context.Context, kind models.ObjectKind, identifier string) (any, error)
	ListObjects(ctx context.Context, kind models.ObjectKind, search string) (any, int, error)
	CreateObject(ctx context.Context, kind models.ObjectKind, body []byte) (any, error)
	EditObject(ctx context.Context, kind models.ObjectKind, identifier string, body []byte) (any, error)
	DeleteObject(ctx context.Context, kind models.ObjectKind, identifier string) error

	// GetItem is the typed item lookup the attachment pipeline builds on.
	GetItem(ctx context.Context, identifier string) (models.VaultItem, error)

	// SaveItem re-encrypts and persists an already-resolved item, e.g.
	// after its attachment list changed.
	SaveItem(ctx context.Context, item models.VaultItem) error

	// RestoreItem clears the soft-delete flag. It requires the exact item
	// id; name resolution does not cover trashed items.
	RestoreItem(ctx context.Context, id string) error

	// MoveItem transfers an item to an organization, re-encrypting its
	// payload with that organization's key.
	MoveItem(ctx context.Context, itemIdentifier, organizationID string) (models.VaultItem, error)
}

// AttachmentService is the secure attachment pipeline: locate, authorize,
// fetch, decrypt, and optionally persist.
type AttachmentService interface {
	// Retrieve returns the decrypted attachment content and its metadata.
	Retrieve(ctx context.Context, itemIdentifier, attachmentSelector string) (models.AttachmentMeta, []byte, error)

	// RetrieveToFile runs Retrieve and persists the plaintext to disk
	// following the output-path rules, returning the resolved path.
	RetrieveToFile(ctx context.Context, itemIdentifier, attachmentSelector, output string) (models.SavedFileResponse, error)

	// Upload encrypts content and pushes it to the remote server as a new
	// attachment of the resolved item, returning the updated item.
	Upload(ctx context.Context, itemIdentifier, fileName string, content []byte) (models.VaultItem, error)
}

// OrgService covers organization membership actions.
type OrgService interface {
	ConfirmMember(ctx context.Context, organizationIdentifier, memberID string) error
}
