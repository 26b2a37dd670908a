package config

import (
	"fmt"
	"time"
)

// Defaults applied to the derived client and server views when no source set
// a value.
const (
	DefaultContractAddress     = "0xE6927e0B0F25Fb2D839359715Cf4170D9B80D718"
	DefaultRequestTimeout      = 30 * time.Second
	DefaultReceiptPollInterval = 2 * time.Second
	DefaultRefreshInterval     = 30 * time.Second
)

// ClientAdapter holds the provider and contract settings used by the client
// transport layer.
type ClientAdapter struct {
	// ProviderURL is the wallet provider endpoint. Empty means that no
	// provider is present; the client still starts and reports it.
	ProviderURL string
	// ContractAddress is the WavePortal contract address.
	ContractAddress string
	// ABIPath optionally overrides the bundled ABI artifact.
	ABIPath string
	// RequestTimeout is the timeout for one JSON-RPC round trip.
	RequestTimeout time.Duration
	// ReceiptPollInterval is the delay between receipt lookups.
	ReceiptPollInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains provider and contract settings.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates the client view of the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: newClientAdapter(cfg.Adapter),
	}
}

func newClientAdapter(a Adapter) ClientAdapter {
	adapterCfg := ClientAdapter{
		ProviderURL:         a.ProviderURL,
		ContractAddress:     a.ContractAddress,
		ABIPath:             a.ABIPath,
		RequestTimeout:      a.RequestTimeout,
		ReceiptPollInterval: a.ReceiptPollInterval,
	}

	if adapterCfg.ContractAddress == "" {
		adapterCfg.ContractAddress = DefaultContractAddress
	}
	if adapterCfg.RequestTimeout <= 0 {
		adapterCfg.RequestTimeout = DefaultRequestTimeout
	}
	if adapterCfg.ReceiptPollInterval <= 0 {
		adapterCfg.ReceiptPollInterval = DefaultReceiptPollInterval
	}

	return adapterCfg
}
