package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/Tobel158/waveportal/internal/adapter"
	"github.com/Tobel158/waveportal/internal/logger"
	"github.com/Tobel158/waveportal/models"
)

type waveClient struct {
	provider adapter.WalletProvider
	contract adapter.WaveContract

	mu      sync.RWMutex
	account models.Account
	waves   []models.Wave

	logger *logger.Logger
}

// NewWaveClient creates a WaveClient. A nil provider or contract means that
// no wallet provider is present: every operation then fails with
// ErrProviderNotFound and the account stays Disconnected.
func NewWaveClient(provider adapter.WalletProvider, contract adapter.WaveContract, logger *logger.Logger) WaveClient {
	return &waveClient{
		provider: provider,
		contract: contract,
		account:  models.DisconnectedAccount(),
		waves:    []models.Wave{},
		logger:   logger.WithComponent("wave-client"),
	}
}

func (c *waveClient) CheckWalletConnection(ctx context.Context) error {
	if !c.hasProvider() {
		c.logger.Warn().Msg("make sure you have a wallet provider")
		return ErrProviderNotFound
	}
	c.logger.Debug().Msg("wallet provider is present")

	accounts, err := c.provider.Accounts(ctx)
	if err != nil {
		c.logger.Err(err).Msg("failed to list authorized accounts")
		return fmt.Errorf("check wallet connection: %w", err)
	}

	if len(accounts) == 0 {
		c.logger.Info().Msg("no authorized account found")
		return nil
	}

	c.setAccount(accounts[0])
	c.logger.Info().Str("account", accounts[0]).Msg("found an authorized account")

	if err = c.RefreshWaveList(ctx); err != nil {
		c.logger.Err(err).Msg("failed to load waves after wallet check")
	}

	return nil
}

func (c *waveClient) ConnectWallet(ctx context.Context) error {
	if !c.hasProvider() {
		c.logger.Warn().Msg("get a wallet provider to connect")
		return ErrProviderNotFound
	}

	accounts, err := c.provider.RequestAccounts(ctx)
	if err != nil {
		c.logger.Err(err).Msg("account request failed")
		return fmt.Errorf("connect wallet: %w", err)
	}

	if len(accounts) == 0 || accounts[0] == "" {
		c.logger.Warn().Msg("wallet granted no usable account")
		return ErrNoAccounts
	}

	c.setAccount(accounts[0])
	c.logger.Info().Str("account", accounts[0]).Msg("connected")

	return nil
}

func (c *waveClient) SubmitWave(ctx context.Context, message string) (models.Receipt, error) {
	if !c.hasProvider() {
		c.logger.Warn().Msg("wallet provider does not exist")
		return models.Receipt{}, ErrProviderNotFound
	}

	signer, err := c.signer(ctx)
	if err != nil {
		c.logger.Err(err).Msg("failed to obtain signer")
		return models.Receipt{}, err
	}

	count, err := c.contract.GetTotalWaves(ctx)
	if err != nil {
		c.logger.Err(err).Msg("failed to read total wave count")
		return models.Receipt{}, fmt.Errorf("read total waves: %w", err)
	}
	c.logger.Info().Uint64("count", count).Msg("retrieved total wave count")

	tx, err := c.contract.Wave(ctx, signer, message)
	if err != nil {
		c.logger.Err(err).Msg("wave transaction was not sent")
		return models.Receipt{}, fmt.Errorf("send wave: %w", err)
	}
	c.logger.Info().Str("tx", tx.Hash).Msg("mining")

	receipt, err := c.contract.WaitMined(ctx, tx)
	if err != nil {
		c.logger.Err(err).Str("tx", tx.Hash).Msg("wave transaction was not mined")
		return receipt, fmt.Errorf("wait for wave %s: %w", tx.Hash, err)
	}
	c.logger.Info().Str("tx", tx.Hash).Uint64("block", receipt.BlockNumber).Msg("mined")

	// The wave is on chain from here on, so later failures are only logged.
	if err = c.RefreshWaveList(ctx); err != nil {
		c.logger.Err(err).Msg("failed to refresh waves after mining")
	}

	count, err = c.contract.GetTotalWaves(ctx)
	if err != nil {
		c.logger.Err(err).Msg("failed to read total wave count after mining")
		return receipt, nil
	}
	c.logger.Info().Uint64("count", count).Msg("retrieved total wave count")

	return receipt, nil
}

func (c *waveClient) RefreshWaveList(ctx context.Context) error {
	if !c.hasProvider() {
		c.logger.Warn().Msg("wallet provider does not exist")
		return ErrProviderNotFound
	}

	waves, err := c.contract.GetAllWaves(ctx)
	if err != nil {
		c.logger.Err(err).Msg("failed to fetch waves")
		return fmt.Errorf("refresh wave list: %w", err)
	}

	cleaned := models.CopyWaves(waves)

	c.mu.Lock()
	c.waves = cleaned
	c.mu.Unlock()

	c.logger.Debug().Int("count", len(cleaned)).Msg("wave list refreshed")

	return nil
}

func (c *waveClient) Account() models.Account {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.account
}

func (c *waveClient) Waves() []models.Wave {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return models.CopyWaves(c.waves)
}

func (c *waveClient) hasProvider() bool {
	return c.provider != nil && c.contract != nil
}

func (c *waveClient) setAccount(address string) {
	c.mu.Lock()
	c.account = models.ConnectedAccount(address)
	c.mu.Unlock()
}

// signer returns the first authorized account of the provider.
func (c *waveClient) signer(ctx context.Context) (string, error) {
	accounts, err := c.provider.Accounts(ctx)
	if err != nil {
		return "", fmt.Errorf("get signer: %w", err)
	}
	if len(accounts) == 0 || accounts[0] == "" {
		return "", ErrNoSigner
	}

	return accounts[0], nil
}
