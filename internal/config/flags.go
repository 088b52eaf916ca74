package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-cache local cache database path
//	-account account profile path
//	-server remote server base URL
//	-request-timeout remote request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var cachePath string
	var accountPath string
	var remoteBaseURL string
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&cachePath, "cache", "", "Local cache database path")
	flag.StringVar(&accountPath, "account", "", "Account profile path")
	flag.StringVar(&remoteBaseURL, "server", "", "Remote server base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Server: Server{
			Address: serverAddress,
		},
		Storage: Storage{
			CachePath:   cachePath,
			AccountPath: accountPath,
		},
		Remote: Remote{
			BaseURL:        remoteBaseURL,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
