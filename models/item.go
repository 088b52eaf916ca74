package models

import "time"

// VaultItem is the decrypted view of a stored secret. Only the fields the
// serve layer needs for resolution and attachment handling are modelled
// explicitly; type-specific payloads (login credentials, card numbers, …)
// travel in the type-specific sub-structs and are treated as opaque here.
type VaultItem struct {
	// ID is the globally unique, stable identifier of the item
	// (canonical 8-4-4-4-12 form).
	ID string `json:"id"`

	// Name is the display string used by substring resolution.
	Name string `json:"name"`

	// Type is the semantic type of the item (login, card, identity, note).
	Type ItemType `json:"type"`

	// OrganizationID marks organization ownership. Empty for personal items.
	OrganizationID string `json:"organizationId,omitempty"`

	// FolderID is the owning folder, if any.
	FolderID string `json:"folderId,omitempty"`

	// Attachments lists binary files stored alongside the item, in the
	// order the server reported them.
	Attachments []AttachmentMeta `json:"attachments,omitempty"`

	// Notes is the free-form secure note text.
	Notes string `json:"notes,omitempty"`

	// Login holds the credential payload for ItemTypeLogin items.
	Login *LoginData `json:"login,omitempty"`

	// Card holds the payment-card payload for ItemTypeCard items.
	Card *CardData `json:"card,omitempty"`

	// Deleted marks a soft-deleted item awaiting restore or purge.
	Deleted bool `json:"deleted,omitempty"`

	RevisionDate time.Time `json:"revisionDate,omitzero"`
}

// GetID implements the resolvable-object capability.
func (i VaultItem) GetID() string { return i.ID }

// GetName implements the resolvable-object capability.
func (i VaultItem) GetName() string { return i.Name }

// AttachmentMeta describes one binary attachment of a vault item. It is
// immutable once listed; the ciphertext itself lives behind DownloadURL.
type AttachmentMeta struct {
	ID          string `json:"id"`
	FileName    string `json:"fileName"`
	Size        int64  `json:"size,omitempty"`
	DownloadURL string `json:"url"`
}

// LoginData is the credential payload of a login item.
type LoginData struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	URI      string `json:"uri,omitempty"`
}

// CardData is the payment-card payload of a card item.
type CardData struct {
	CardholderName string `json:"cardholderName,omitempty"`
	Number         string `json:"number,omitempty"`
	ExpMonth       string `json:"expMonth,omitempty"`
	ExpYear        string `json:"expYear,omitempty"`
	Code           string `json:"code,omitempty"`
}
