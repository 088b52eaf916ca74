package store

import (
	"context"

	"github.com/ashmarin/vault-serve/models"
)

// VaultStore is the encrypted local cache of vault objects. Rows are stored
// ciphered; only the discriminator and ownership columns are readable while
// the vault is locked. Decryption happens one layer up, in the vault
// service, which owns the keys.
type VaultStore interface {
	// Get returns the cipher record with the given kind and id, or
	// [ErrObjectNotFound].
	Get(ctx context.Context, kind models.ObjectKind, id string) (models.CipherRecord, error)

	// List returns every non-deleted cipher record of the given kind, in
	// insertion order.
	List(ctx context.Context, kind models.ObjectKind) ([]models.CipherRecord, error)

	// Upsert inserts the record or replaces an existing row with the same id.
	Upsert(ctx context.Context, record models.CipherRecord) error

	// SetDeleted flips the soft-delete flag of an existing record. Returns
	// [ErrObjectNotFound] when no row matches.
	SetDeleted(ctx context.Context, kind models.ObjectKind, id string, deleted bool) error

	// SetOrganization rewrites the ownership column and the re-encrypted
	// data blob of an item moved into an organization.
	SetOrganization(ctx context.Context, id, organizationID, data string) error
}

// KeyHashStore persists the local key hash that backs the unlock fast path.
// The production implementation keeps it in the OS keyring.
type KeyHashStore interface {
	Get(ctx context.Context) (string, error) // ErrNoKeyHash when absent
	Set(ctx context.Context, hash string) error
}

// AccountStore loads and saves the locally cached account profile.
type AccountStore interface {
	Load(ctx context.Context) (models.Account, error)
	Save(ctx context.Context, account models.Account) error
}
