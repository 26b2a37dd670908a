package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/Tobel158/waveportal/internal/config"
	"github.com/Tobel158/waveportal/internal/logger"
	"github.com/Tobel158/waveportal/internal/utils"
	"github.com/Tobel158/waveportal/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// HTTPWalletProvider implements [WalletProvider] by sending Ethereum JSON-RPC
// requests to a single HTTP endpoint.
type HTTPWalletProvider struct {
	client *utils.HTTPClient
	nextID atomic.Uint64
	logger *logger.Logger
}

// NewHTTPWalletProvider creates a provider for cfg.ProviderURL. The URL must
// carry an http or https scheme.
func NewHTTPWalletProvider(cfg config.ClientAdapter, log *logger.Logger) (*HTTPWalletProvider, error) {
	endpoint := strings.TrimRight(strings.TrimSpace(cfg.ProviderURL), "/")
	if endpoint == "" {
		return nil, fmt.Errorf("%w: empty provider url", ErrBadRequest)
	}
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		return nil, fmt.Errorf("%w: provider url %q must use http or https", ErrBadRequest, endpoint)
	}

	return &HTTPWalletProvider{
		client: utils.NewHTTPClient(endpoint, cfg.RequestTimeout),
		logger: log.WithComponent("wallet-provider"),
	}, nil
}

func (p *HTTPWalletProvider) Accounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if err := p.call(ctx, &accounts, rpcAccounts); err != nil {
		return nil, err
	}

	return accounts, nil
}

func (p *HTTPWalletProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if err := p.call(ctx, &accounts, rpcRequestAccounts); err != nil {
		return nil, err
	}

	return accounts, nil
}

func (p *HTTPWalletProvider) Call(ctx context.Context, msg CallMsg) ([]byte, error) {
	var out hexutil.Bytes
	args := rpcTxArgs{From: msg.From, To: msg.To, Data: msg.Data}
	if err := p.call(ctx, &out, rpcCall, args, blockLatest); err != nil {
		return nil, err
	}

	return out, nil
}

func (p *HTTPWalletProvider) SendTransaction(ctx context.Context, msg CallMsg) (string, error) {
	if !common.IsHexAddress(msg.From) {
		return "", fmt.Errorf("%w: sender %q", ErrInvalidAddress, msg.From)
	}

	var hash string
	args := rpcTxArgs{From: msg.From, To: msg.To, Data: msg.Data}
	if err := p.call(ctx, &hash, rpcSendTransaction, args); err != nil {
		return "", err
	}

	return hash, nil
}

func (p *HTTPWalletProvider) TransactionReceipt(ctx context.Context, txHash string) (models.Receipt, error) {
	var receipt *rpcReceipt
	if err := p.call(ctx, &receipt, rpcTransactionReceipt, txHash); err != nil {
		return models.Receipt{}, err
	}
	if receipt == nil {
		return models.Receipt{}, fmt.Errorf("%w: %s", ErrReceiptNotFound, txHash)
	}

	status := uint64(models.ReceiptStatusSuccessful)
	if receipt.Status != nil {
		status = uint64(*receipt.Status)
	}

	txHashOut := receipt.TransactionHash
	if txHashOut == "" {
		txHashOut = txHash
	}

	return models.Receipt{
		TxHash:      txHashOut,
		BlockNumber: uint64(receipt.BlockNumber),
		Status:      status,
		GasUsed:     uint64(receipt.GasUsed),
	}, nil
}

// call performs one JSON-RPC round trip and decodes the result into result.
func (p *HTTPWalletProvider) call(ctx context.Context, result any, method string, params ...any) error {
	if params == nil {
		params = []any{}
	}

	req := rpcRequest{
		JSONRPC: jsonRPCVersion,
		ID:      p.nextID.Add(1),
		Method:  method,
		Params:  params,
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("")
	if err != nil {
		p.logger.Err(err).Str("method", method).Msg("provider request failed")
		return fmt.Errorf("%s request: %w", method, err)
	}

	if err = mapHTTPError(resp); err != nil {
		p.logger.Err(err).Str("method", method).Int("status", resp.StatusCode()).Msg("provider returned http error")
		return fmt.Errorf("%s: %w", method, err)
	}

	var rpcResp rpcResponse
	if err = json.Unmarshal(resp.Body(), &rpcResp); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}

	if rpcResp.Error != nil {
		mapped := mapRPCError(rpcResp.Error)
		p.logger.Debug().Err(mapped).Str("method", method).Msg("provider returned rpc error")
		return fmt.Errorf("%s: %w", method, mapped)
	}

	if len(rpcResp.Result) == 0 || bytes.Equal(rpcResp.Result, []byte("null")) {
		// Leave result at its zero value; callers decide what null means.
		return nil
	}

	if err = json.Unmarshal(rpcResp.Result, result); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}

	return nil
}
