// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tobel

package config

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// validate checks source-independent invariants of the merged config. Only
// fields that are set are checked; required-ness is decided by the derived
// client and server views.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.ContractAddress != "" && !common.IsHexAddress(cfg.Adapter.ContractAddress) {
		return fmt.Errorf("%w: contract address %q", ErrInvalidAdapterConfigs, cfg.Adapter.ContractAddress)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	return cfg.Adapter.validate()
}

func (a ClientAdapter) validate() error {
	if !common.IsHexAddress(a.ContractAddress) {
		return fmt.Errorf("%w: contract address %q", ErrInvalidAdapterConfigs, a.ContractAddress)
	}
	if a.RequestTimeout <= 0 || a.ReceiptPollInterval <= 0 {
		return ErrInvalidAdapterConfigs
	}
	return nil
}

func (cfg *ServerConfig) validate() error {
	if err := cfg.Adapter.validate(); err != nil {
		return err
	}

	// the feed reads the contract itself, so it cannot run without a node
	if cfg.Adapter.ProviderURL == "" {
		return fmt.Errorf("%w: provider url is required by the feed", ErrInvalidAdapterConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.Version == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
