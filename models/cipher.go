package models

import "time"

// CipherRecord is one encrypted row of the local vault cache. The Data blob
// is the AES-GCM-sealed JSON of the decrypted object (VaultItem, FolderRef,
// …), encrypted with the user key or, when OrganizationID is set, with that
// organization's key. Only the discriminator and ownership columns are
// stored in the clear so the cache can be queried while locked.
type CipherRecord struct {
	ID             string     `json:"id"`
	Kind           ObjectKind `json:"kind"`
	OrganizationID string     `json:"organizationId,omitempty"`

	// Data is the base64 nonce‖ciphertext blob of the object JSON.
	Data string `json:"data"`

	Deleted   bool      `json:"deleted"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
