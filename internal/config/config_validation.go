package config

import (
	"errors"
	"time"
)

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates an unusable listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates missing cache or account paths.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)

// applyDefaults fills every field no source provided.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.Address == "" {
		cfg.Server.Address = "127.0.0.1:8087"
	}
	if cfg.Storage.CachePath == "" {
		cfg.Storage.CachePath = "vault-cache.db"
	}
	if cfg.Storage.AccountPath == "" {
		cfg.Storage.AccountPath = "account.json"
	}
	if cfg.Remote.RequestTimeout == 0 {
		cfg.Remote.RequestTimeout = 15 * time.Second
	}
}

// validate checks that the final merged [StructuredConfig] satisfies the
// daemon's startup invariants.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Address == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.CachePath == "" || cfg.Storage.AccountPath == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
