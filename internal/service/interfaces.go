package service

import (
	"context"

	"github.com/Tobel158/waveportal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// WaveClient owns the view state of the wave portal (the connected account
// and the last fetched wave list) and coordinates the wallet provider with
// the WavePortal contract.
//
// Every operation is a sequential round trip to the provider. Callers may run
// operations concurrently; the client only guarantees memory safety of its
// view state, not ordering between independent calls.
type WaveClient interface {
	// CheckWalletConnection silently looks for an already authorized
	// account. On success the account becomes Connected and the wave list
	// is refreshed.
	CheckWalletConnection(ctx context.Context) error

	// ConnectWallet explicitly asks the provider for an account.
	ConnectWallet(ctx context.Context) error

	// SubmitWave sends message as a wave and blocks until the transaction
	// is mined. A nil error means the wave is part of contract state.
	SubmitWave(ctx context.Context, message string) (models.Receipt, error)

	// RefreshWaveList re-reads all waves from the contract and replaces the
	// list wholesale. On error the previous list is kept.
	RefreshWaveList(ctx context.Context) error

	// Account returns the current account.
	Account() models.Account

	// Waves returns a copy of the last successfully fetched wave list.
	Waves() []models.Wave
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
