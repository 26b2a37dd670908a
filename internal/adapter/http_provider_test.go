package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Tobel158/waveportal/internal/config"
	"github.com/Tobel158/waveportal/internal/logger"
	"github.com/Tobel158/waveportal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccount = "0x5B38Da6a701c568545dCfcB03FcB875f56beddC4"
	testTxHash  = "0x8f2a55949038a9610f50fb23b5883af3b4ecb3c3bb792cbcefbd1542c692be63"
)

// rpcHandlerFunc answers one decoded JSON-RPC request with either a result
// or an error object.
type rpcHandlerFunc func(t *testing.T, req rpcRequest) (any, *rpcError)

func newRPCServer(t *testing.T, handle rpcHandlerFunc) (*httptest.Server, *[]rpcRequest) {
	t.Helper()

	var seen []rpcRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		seen = append(seen, req)

		result, rpcErr := handle(t, req)

		resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
		if rpcErr != nil {
			resp["error"] = rpcErr
		} else {
			resp["result"] = result
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)

	return srv, &seen
}

func newTestProvider(t *testing.T, url string) *HTTPWalletProvider {
	t.Helper()

	p, err := NewHTTPWalletProvider(config.ClientAdapter{
		ProviderURL:    url,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return p
}

func TestNewHTTPWalletProvider_InvalidURL(t *testing.T) {
	for _, url := range []string{"", "   ", "localhost:8545", "ws://localhost:8546"} {
		_, err := NewHTTPWalletProvider(config.ClientAdapter{ProviderURL: url}, logger.Nop())
		assert.ErrorIs(t, err, ErrBadRequest, url)
	}
}

func TestHTTPWalletProvider_Accounts(t *testing.T) {
	srv, seen := newRPCServer(t, func(t *testing.T, req rpcRequest) (any, *rpcError) {
		return []string{testAccount}, nil
	})
	p := newTestProvider(t, srv.URL)

	accounts, err := p.Accounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{testAccount}, accounts)

	require.Len(t, *seen, 1)
	assert.Equal(t, rpcAccounts, (*seen)[0].Method)
	assert.Equal(t, jsonRPCVersion, (*seen)[0].JSONRPC)
	assert.Empty(t, (*seen)[0].Params)
}

func TestHTTPWalletProvider_AccountsEmpty(t *testing.T) {
	srv, _ := newRPCServer(t, func(t *testing.T, req rpcRequest) (any, *rpcError) {
		return []string{}, nil
	})
	p := newTestProvider(t, srv.URL)

	accounts, err := p.Accounts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestHTTPWalletProvider_RequestAccountsRejected(t *testing.T) {
	srv, seen := newRPCServer(t, func(t *testing.T, req rpcRequest) (any, *rpcError) {
		return nil, &rpcError{Code: 4001, Message: "User rejected the request."}
	})
	p := newTestProvider(t, srv.URL)

	accounts, err := p.RequestAccounts(context.Background())
	assert.ErrorIs(t, err, ErrUserRejected)
	assert.Nil(t, accounts)
	assert.Equal(t, rpcRequestAccounts, (*seen)[0].Method)
}

func TestHTTPWalletProvider_Call(t *testing.T) {
	srv, seen := newRPCServer(t, func(t *testing.T, req rpcRequest) (any, *rpcError) {
		return "0x000000000000000000000000000000000000000000000000000000000000002a", nil
	})
	p := newTestProvider(t, srv.URL)

	out, err := p.Call(context.Background(), CallMsg{
		To:   config.DefaultContractAddress,
		Data: []byte{0x9a, 0x8a, 0x05, 0x92},
	})
	require.NoError(t, err)
	require.Len(t, out, 32)
	assert.Equal(t, byte(42), out[31])

	req := (*seen)[0]
	assert.Equal(t, rpcCall, req.Method)
	require.Len(t, req.Params, 2)
	assert.Equal(t, blockLatest, req.Params[1])

	tx, ok := req.Params[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "0x9a8a0592", tx["data"])
	assert.Equal(t, config.DefaultContractAddress, tx["to"])
	assert.NotContains(t, tx, "from")
}

func TestHTTPWalletProvider_SendTransaction(t *testing.T) {
	srv, seen := newRPCServer(t, func(t *testing.T, req rpcRequest) (any, *rpcError) {
		return testTxHash, nil
	})
	p := newTestProvider(t, srv.URL)

	hash, err := p.SendTransaction(context.Background(), CallMsg{
		From: testAccount,
		To:   config.DefaultContractAddress,
		Data: []byte{0x01},
	})
	require.NoError(t, err)
	assert.Equal(t, testTxHash, hash)

	req := (*seen)[0]
	assert.Equal(t, rpcSendTransaction, req.Method)
	require.Len(t, req.Params, 1)
	tx := req.Params[0].(map[string]any)
	assert.Equal(t, testAccount, tx["from"])
}

func TestHTTPWalletProvider_SendTransactionInvalidSender(t *testing.T) {
	p := newTestProvider(t, "http://127.0.0.1:1")

	_, err := p.SendTransaction(context.Background(), CallMsg{From: "nobody"})
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestHTTPWalletProvider_TransactionReceipt(t *testing.T) {
	srv, seen := newRPCServer(t, func(t *testing.T, req rpcRequest) (any, *rpcError) {
		return map[string]any{
			"transactionHash": testTxHash,
			"blockNumber":     "0x10",
			"status":          "0x1",
			"gasUsed":         "0x5208",
		}, nil
	})
	p := newTestProvider(t, srv.URL)

	receipt, err := p.TransactionReceipt(context.Background(), testTxHash)
	require.NoError(t, err)
	assert.Equal(t, models.Receipt{
		TxHash:      testTxHash,
		BlockNumber: 16,
		Status:      models.ReceiptStatusSuccessful,
		GasUsed:     21000,
	}, receipt)
	assert.Equal(t, []any{testTxHash}, (*seen)[0].Params)
}

func TestHTTPWalletProvider_TransactionReceiptReverted(t *testing.T) {
	srv, _ := newRPCServer(t, func(t *testing.T, req rpcRequest) (any, *rpcError) {
		return map[string]any{
			"transactionHash": testTxHash,
			"blockNumber":     "0x11",
			"status":          "0x0",
			"gasUsed":         "0x5208",
		}, nil
	})
	p := newTestProvider(t, srv.URL)

	receipt, err := p.TransactionReceipt(context.Background(), testTxHash)
	require.NoError(t, err)
	assert.False(t, receipt.Succeeded())
}

func TestHTTPWalletProvider_TransactionReceiptPending(t *testing.T) {
	srv, _ := newRPCServer(t, func(t *testing.T, req rpcRequest) (any, *rpcError) {
		return nil, nil
	})
	p := newTestProvider(t, srv.URL)

	_, err := p.TransactionReceipt(context.Background(), testTxHash)
	assert.ErrorIs(t, err, ErrReceiptNotFound)
}

func TestHTTPWalletProvider_HTTPErrors(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusBadRequest, want: ErrBadRequest},
		{status: http.StatusUnauthorized, want: ErrUnauthorized},
		{status: http.StatusForbidden, want: ErrForbidden},
		{status: http.StatusNotFound, want: ErrNotFound},
		{status: http.StatusBadGateway, want: ErrBadGateway},
		{status: http.StatusServiceUnavailable, want: ErrBadGateway},
		{status: http.StatusInternalServerError, want: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "upstream says no", tt.status)
			}))
			defer srv.Close()

			p := newTestProvider(t, srv.URL)
			_, err := p.Accounts(context.Background())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestHTTPWalletProvider_ContextCanceled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	p := newTestProvider(t, srv.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := p.Accounts(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
