package crypto

import "github.com/ashmarin/vault-serve/models"

// KeyChainService groups every cryptographic primitive the serve layer
// consumes. The rest of the application depends on this interface only, so
// tests can substitute deterministic fakes for the real Argon2id/AES-GCM
// implementation.
type KeyChainService interface {
	// DeriveMasterKey derives the 256-bit master key from the master
	// password using the account's Argon2id parameters.
	DeriveMasterKey(masterPassword string, params models.KDFParams) ([]byte, error)

	// LocalKeyHash computes the hash of the master key used for the local
	// (offline) unlock fast path.
	LocalKeyHash(masterKey []byte) string

	// ServerKeyHash computes the hash of the master key sent to the remote
	// verification endpoint. Domain-separated from LocalKeyHash so neither
	// value can stand in for the other.
	ServerKeyHash(masterKey []byte) string

	// UnwrapKey decrypts a wrapped symmetric key (base64 nonce‖ciphertext
	// blob) with the given key-encryption key.
	UnwrapKey(wrappedB64 string, kek []byte) ([]byte, error)

	// EncryptData seals the JSON form of data with key and returns a base64
	// nonce‖ciphertext blob.
	EncryptData(data any, key []byte) (string, error)

	// DecryptData opens a blob produced by EncryptData and unmarshals the
	// plaintext JSON into target, which must be a non-nil pointer.
	DecryptData(blobB64 string, key []byte, target any) error

	// EncryptBytes seals a raw byte payload (attachment content) with key.
	EncryptBytes(plaintext, key []byte) ([]byte, error)

	// DecryptBytes opens a raw nonce‖ciphertext payload produced by
	// EncryptBytes (or by the server-side equivalent).
	DecryptBytes(ciphertext, key []byte) ([]byte, error)
}
