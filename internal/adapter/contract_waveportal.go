package adapter

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/Tobel158/waveportal/internal/config"
	"github.com/Tobel158/waveportal/internal/logger"
	"github.com/Tobel158/waveportal/models"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// waveRecord mirrors the WavePortal.Wave struct returned by getAllWaves.
// Field order and names must match the ABI tuple components.
type waveRecord struct {
	Waver     common.Address
	Message   string
	Timestamp *big.Int
}

// WavePortalContract implements [WaveContract] on top of a [WalletProvider].
type WavePortalContract struct {
	provider     WalletProvider
	abi          abi.ABI
	address      common.Address
	pollInterval time.Duration
	logger       *logger.Logger
}

// NewWaveContract binds the WavePortal ABI to cfg.ContractAddress. The ABI is
// the bundled artifact unless cfg.ABIPath points to another one.
func NewWaveContract(provider WalletProvider, cfg config.ClientAdapter, log *logger.Logger) (*WavePortalContract, error) {
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("%w: contract %q", ErrInvalidAddress, cfg.ContractAddress)
	}

	parsed, err := loadWavePortalABI(cfg.ABIPath)
	if err != nil {
		return nil, err
	}

	pollInterval := cfg.ReceiptPollInterval
	if pollInterval <= 0 {
		pollInterval = config.DefaultReceiptPollInterval
	}

	return &WavePortalContract{
		provider:     provider,
		abi:          parsed,
		address:      common.HexToAddress(cfg.ContractAddress),
		pollInterval: pollInterval,
		logger:       log.WithComponent("wave-contract"),
	}, nil
}

func (c *WavePortalContract) Address() string {
	return c.address.Hex()
}

func (c *WavePortalContract) GetTotalWaves(ctx context.Context) (uint64, error) {
	out, err := c.call(ctx, methodGetTotalWaves)
	if err != nil {
		return 0, err
	}

	total, ok := out[0].(*big.Int)
	if !ok || total == nil {
		return 0, fmt.Errorf("%w: unexpected %s output %T", ErrInvalidABI, methodGetTotalWaves, out[0])
	}
	if !total.IsUint64() {
		return 0, fmt.Errorf("%s: total %s overflows uint64", methodGetTotalWaves, total)
	}

	return total.Uint64(), nil
}

func (c *WavePortalContract) GetAllWaves(ctx context.Context) ([]models.Wave, error) {
	out, err := c.call(ctx, methodGetAllWaves)
	if err != nil {
		return nil, err
	}

	records := *abi.ConvertType(out[0], new([]waveRecord)).(*[]waveRecord)

	waves := make([]models.Wave, 0, len(records))
	for _, r := range records {
		var seconds int64
		if r.Timestamp != nil {
			if !r.Timestamp.IsInt64() || r.Timestamp.Int64() > models.MaxWaveTimestamp {
				return nil, fmt.Errorf("%w: wave timestamp %s is out of range", ErrInvalidABI, r.Timestamp)
			}
			seconds = r.Timestamp.Int64()
		}
		waves = append(waves, models.NewWave(r.Waver.Hex(), seconds, r.Message))
	}

	return waves, nil
}

func (c *WavePortalContract) Wave(ctx context.Context, from string, message string) (models.Transaction, error) {
	if !common.IsHexAddress(from) {
		return models.Transaction{}, fmt.Errorf("%w: signer %q", ErrInvalidAddress, from)
	}

	input, err := c.abi.Pack(methodWave, message)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("pack %s: %w", methodWave, err)
	}

	sender := common.HexToAddress(from).Hex()
	hash, err := c.provider.SendTransaction(ctx, CallMsg{
		From: sender,
		To:   c.address.Hex(),
		Data: input,
	})
	if err != nil {
		return models.Transaction{}, fmt.Errorf("send %s transaction: %w", methodWave, err)
	}

	return models.Transaction{
		Hash: hash,
		From: sender,
		To:   c.address.Hex(),
	}, nil
}

func (c *WavePortalContract) WaitMined(ctx context.Context, tx models.Transaction) (models.Receipt, error) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.provider.TransactionReceipt(ctx, tx.Hash)
		if err == nil {
			if !receipt.Succeeded() {
				return receipt, fmt.Errorf("%w: %s", ErrTransactionReverted, tx.Hash)
			}
			return receipt, nil
		}
		if !errors.Is(err, ErrReceiptNotFound) {
			return models.Receipt{}, fmt.Errorf("wait mined %s: %w", tx.Hash, err)
		}

		c.logger.Trace().Str("tx", tx.Hash).Msg("transaction not yet mined")

		select {
		case <-ctx.Done():
			return models.Receipt{}, ctx.Err()
		case <-ticker.C:
		}
	}
}

// call packs a read-only invocation of method and unpacks its outputs.
func (c *WavePortalContract) call(ctx context.Context, method string, args ...any) ([]any, error) {
	input, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	output, err := c.provider.Call(ctx, CallMsg{To: c.address.Hex(), Data: input})
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	if len(output) == 0 {
		return nil, fmt.Errorf("call %s: %w", method, ErrNoContractCode)
	}

	out, err := c.abi.Unpack(method, output)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s has no outputs", ErrInvalidABI, method)
	}

	return out, nil
}

var (
	_ WalletProvider = (*HTTPWalletProvider)(nil)
	_ WaveContract   = (*WavePortalContract)(nil)
)
