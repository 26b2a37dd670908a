// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tobel

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// wave client and the wave feed server. It is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the wallet provider endpoint and the contract binding
	// settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds the listen address of the wave feed.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string reported by /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds the settings of the wallet provider and contract boundary.
type Adapter struct {
	// ProviderURL is the JSON-RPC endpoint of the wallet provider
	// (e.g. "http://127.0.0.1:8550" for a local signer).
	// An empty value means that no provider is present.
	// Env: ADAPTER_PROVIDER_URL
	ProviderURL string `env:"PROVIDER_URL"`

	// ContractAddress is the address of the deployed WavePortal contract.
	// Env: ADAPTER_CONTRACT_ADDRESS
	ContractAddress string `env:"CONTRACT_ADDRESS"`

	// ABIPath optionally points to a Hardhat artifact or raw ABI file that
	// replaces the bundled WavePortal artifact.
	// Env: ADAPTER_ABI_PATH
	ABIPath string `env:"ABI_PATH"`

	// RequestTimeout bounds a single JSON-RPC round trip (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ReceiptPollInterval is the delay between receipt lookups while a wave
	// transaction is being mined.
	// Env: ADAPTER_RECEIPT_POLL_INTERVAL
	ReceiptPollInterval time.Duration `env:"RECEIPT_POLL_INTERVAL"`
}

// Server holds network settings of the wave feed.
type Server struct {
	// HTTPAddress is the TCP address the feed listens on, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval is how often the feed server re-reads the wave list.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
