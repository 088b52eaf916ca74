package models

import "time"

// Account is the locally cached profile of the single signed-in user. It
// carries everything the unlock protocol and the key provider need: the KDF
// parameters the server registered the master password with, the user's
// encrypted symmetric key, and the org keys wrapped with it.
type Account struct {
	// Email is the account login, shown by /status.
	Email string `json:"email"`

	// ServerURL is the base URL of the remote vault server.
	ServerURL string `json:"serverUrl"`

	// KDF holds the key-derivation parameters negotiated at registration.
	KDF KDFParams `json:"kdf"`

	// EncryptedUserKey is the user's symmetric vault key, wrapped with the
	// master-password-derived key. Base64 blob: nonce ‖ ciphertext.
	EncryptedUserKey string `json:"encryptedUserKey"`

	// OrganizationKeys maps organization id to that org's symmetric key,
	// wrapped with the user key. Base64 blobs, same framing.
	OrganizationKeys map[string]string `json:"organizationKeys,omitempty"`

	// Premium reports whether the account carries a premium entitlement.
	// Attachment downloads on personal items require it.
	Premium bool `json:"premium"`

	// AccessToken is the bearer token for the remote API. Its expiry is
	// inspected client-side before authenticated calls.
	AccessToken string `json:"accessToken,omitempty"`

	// LastSync is the time of the most recent successful vault sync.
	LastSync time.Time `json:"lastSync,omitzero"`
}

// KDFParams are the Argon2id tuning parameters for deriving the master key
// from the master password.
type KDFParams struct {
	Iterations  uint32 `json:"iterations"`
	MemoryKiB   uint32 `json:"memory"`
	Parallelism uint8  `json:"parallelism"`
	// Salt is the per-account KDF salt, base64-encoded.
	Salt string `json:"salt"`
}
