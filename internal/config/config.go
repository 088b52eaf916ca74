// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artyom Shmarin

// Package config loads the daemon configuration from environment
// variables, command-line flags, and an optional JSON file, merged in that
// order with later sources filling gaps left by earlier ones.
package config

import "time"

// StructuredConfig is the top-level configuration container for the
// vault-serve daemon. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds the listen address of the local HTTP facade.
	Server Server `envPrefix:"SERVER_" json:"server,omitempty"`

	// Storage holds the file locations of the local cache and account
	// profile.
	Storage Storage `envPrefix:"STORAGE_" json:"storage,omitempty"`

	// Remote holds the remote vault server connection settings.
	Remote Remote `envPrefix:"REMOTE_" json:"remote,omitempty"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// Server holds network settings for the inbound HTTP facade.
type Server struct {
	// Address is the TCP address the local API listens on, in "host:port"
	// format. The daemon serves one local user; binding beyond loopback is
	// the operator's own risk.
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS" json:"address"`
}

// Storage holds local file locations.
type Storage struct {
	// CachePath is the sqlite database file of the encrypted vault cache.
	// Env: STORAGE_CACHE_PATH
	CachePath string `env:"CACHE_PATH" json:"cache_path"`

	// AccountPath is the JSON file holding the cached account profile.
	// Env: STORAGE_ACCOUNT_PATH
	AccountPath string `env:"ACCOUNT_PATH" json:"account_path"`
}

// Remote holds connection settings for the remote vault server.
type Remote struct {
	// BaseURL is the remote server base URL.
	// Env: REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL" json:"base_url"`

	// RequestTimeout bounds every remote call (e.g. "15s").
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`
}

// GetStructuredConfig builds the final configuration from all sources.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
