// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tobel

// Package adapter provides the boundaries to the two external collaborators
// of the wave client: the wallet provider and the WavePortal contract.
//
// [WalletProvider] is the injected provider capability. The shipped
// implementation ([NewHTTPWalletProvider]) speaks Ethereum JSON-RPC over HTTP,
// which is what an EIP-1193 request({method, params}) call resolves to.
// [WaveContract] binds the WavePortal ABI on top of a provider.
//
// Transport and JSON-RPC failures are mapped to the sentinel values in
// errors.go so callers can use [errors.Is] (e.g. [ErrUserRejected] for a
// declined signature, [ErrReceiptNotFound] for a pending transaction).
package adapter

import (
	"context"

	"github.com/Tobel158/waveportal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CallMsg describes a contract invocation. From may be empty for read-only
// calls.
type CallMsg struct {
	From string
	To   string
	Data []byte
}

// WalletProvider is the wallet capability consumed by the wave client.
type WalletProvider interface {
	// Accounts returns the accounts the wallet has already authorized
	// (eth_accounts). It never prompts the user. An empty result means no
	// authorization was cached.
	Accounts(ctx context.Context) ([]string, error)

	// RequestAccounts asks the wallet for explicit authorization
	// (eth_requestAccounts). The wallet may prompt the user; a refusal is
	// reported as [ErrUserRejected].
	RequestAccounts(ctx context.Context) ([]string, error)

	// Call executes a read-only contract call against the latest block
	// (eth_call) and returns the raw ABI-encoded result.
	Call(ctx context.Context, msg CallMsg) ([]byte, error)

	// SendTransaction asks the wallet to sign and broadcast a
	// state-changing transaction (eth_sendTransaction) and returns its hash.
	SendTransaction(ctx context.Context, msg CallMsg) (string, error)

	// TransactionReceipt returns the receipt of a mined transaction
	// (eth_getTransactionReceipt). A transaction that is not yet mined is
	// reported as [ErrReceiptNotFound].
	TransactionReceipt(ctx context.Context, txHash string) (models.Receipt, error)
}

// WaveContract is the WavePortal contract as seen by the wave client.
type WaveContract interface {
	// Address returns the checksummed contract address.
	Address() string

	// GetTotalWaves reads the number of waves stored by the contract.
	GetTotalWaves(ctx context.Context) (uint64, error)

	// Wave submits a wave carrying message, signed by from. It returns as
	// soon as the wallet accepted the transaction; use WaitMined to block
	// until it is part of contract state.
	Wave(ctx context.Context, from string, message string) (models.Transaction, error)

	// WaitMined polls for the receipt of tx until it is mined or ctx is done.
	// A mined but reverted transaction returns its receipt together with
	// [ErrTransactionReverted].
	WaitMined(ctx context.Context, tx models.Transaction) (models.Receipt, error)

	// GetAllWaves returns the full wave history, oldest first.
	GetAllWaves(ctx context.Context) ([]models.Wave, error)
}
