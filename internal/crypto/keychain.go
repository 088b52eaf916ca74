// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artyom Shmarin

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"

	"github.com/ashmarin/vault-serve/models"
)

// Fixed salts that domain-separate the two key hashes from each other and
// from the master key itself.
const (
	localHashSalt  = "vault-serve/local-auth"
	serverHashSalt = "vault-serve/server-auth"
)

// ErrEmptyKDFSalt is returned when the account profile carries no KDF salt,
// which makes key derivation impossible.
var ErrEmptyKDFSalt = errors.New("empty kdf salt")

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct{}

// NewKeyChainService constructs the production [KeyChainService] backed by
// Argon2id key derivation and AES-256-GCM authenticated encryption. The
// Argon2id cost parameters come from the account profile at call time, not
// from the constructor, because they are negotiated with the server at
// registration.
func NewKeyChainService() KeyChainService {
	return &keyChainService{}
}

// DeriveMasterKey implements [KeyChainService]. It decodes the account's
// base64 KDF salt and runs Argon2id with the account's cost parameters to
// produce a 256-bit master key. The key exists only in process memory.
func (k *keyChainService) DeriveMasterKey(masterPassword string, params models.KDFParams) ([]byte, error) {
	if params.Salt == "" {
		return nil, ErrEmptyKDFSalt
	}

	salt, err := base64.StdEncoding.DecodeString(params.Salt)
	if err != nil {
		return nil, fmt.Errorf("decode kdf salt: %w", err)
	}

	iterations := params.Iterations
	if iterations == 0 {
		iterations = 1
	}
	memory := params.MemoryKiB
	if memory == 0 {
		memory = 64 * 1024 // 64 MiB
	}
	parallelism := params.Parallelism
	if parallelism == 0 {
		parallelism = 4
	}

	return argon2.IDKey([]byte(masterPassword), salt, iterations, memory, parallelism, 32), nil
}

// LocalKeyHash implements [KeyChainService]. It computes
// SHA-256(masterKey ‖ localHashSalt) and returns the digest base64-encoded.
func (k *keyChainService) LocalKeyHash(masterKey []byte) string {
	return hashWithSalt(masterKey, localHashSalt)
}

// ServerKeyHash implements [KeyChainService]. It computes
// SHA-256(masterKey ‖ serverHashSalt) and returns the digest base64-encoded.
// The salt differs from the local one so a captured server hash cannot be
// replayed against the local fast path, and vice versa.
func (k *keyChainService) ServerKeyHash(masterKey []byte) string {
	return hashWithSalt(masterKey, serverHashSalt)
}

func hashWithSalt(key []byte, salt string) string {
	h := sha256.New()
	h.Write(key)
	h.Write([]byte(salt))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// UnwrapKey implements [KeyChainService]. It base64-decodes the wrapped key
// blob and opens it with kek via AES-256-GCM. An authentication-tag mismatch
// here almost always means the wrong master password produced a wrong KEK.
func (k *keyChainService) UnwrapKey(wrappedB64 string, kek []byte) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(wrappedB64)
	if err != nil {
		return nil, fmt.Errorf("decode wrapped key: %w", err)
	}

	key, err := k.DecryptBytes(blob, kek)
	if err != nil {
		return nil, fmt.Errorf("unwrap key: %w", err)
	}

	return key, nil
}

// EncryptData implements [KeyChainService]. It marshals data to JSON, then
// seals it with key using AES-256-GCM. The output is a Base64 (standard
// encoding) string of the blob: nonce (12 bytes) ‖ ciphertext.
func (k *keyChainService) EncryptData(data any, key []byte) (string, error) {
	plaintext, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("marshal data: %w", err)
	}

	blob, err := k.EncryptBytes(plaintext, key)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptData implements [KeyChainService]. It Base64-decodes blobB64, opens
// the ciphertext with key, and unmarshals the resulting JSON into target.
// target must be a non-nil pointer, identical to the requirement of
// [encoding/json.Unmarshal].
func (k *keyChainService) DecryptData(blobB64 string, key []byte, target any) error {
	blob, err := base64.StdEncoding.DecodeString(blobB64)
	if err != nil {
		return fmt.Errorf("decode base64: %w", err)
	}

	plaintext, err := k.DecryptBytes(blob, key)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}

	return nil
}

// EncryptBytes implements [KeyChainService]. It seals plaintext with key
// using AES-256-GCM. A random 12-byte nonce is prepended to the ciphertext
// so that the decryption side can locate it: blob = nonce ‖ ciphertext.
func (k *keyChainService) EncryptBytes(plaintext, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// DecryptBytes implements [KeyChainService]. It opens a nonce‖ciphertext
// blob produced by [keyChainService.EncryptBytes]. The blob must be at least
// as long as the GCM nonce (12 bytes). Returns an error if the blob is too
// short, the key is wrong, or the ciphertext is corrupted.
func (k *keyChainService) DecryptBytes(ciphertext, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}

	// Split the blob into nonce and actual ciphertext.
	nonce, sealed := ciphertext[:nonceSize], ciphertext[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
