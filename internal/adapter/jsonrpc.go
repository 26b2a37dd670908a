package adapter

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const jsonRPCVersion = "2.0"

// Ethereum JSON-RPC methods behind the EIP-1193 request interface.
const (
	rpcAccounts           = "eth_accounts"
	rpcRequestAccounts    = "eth_requestAccounts"
	rpcCall               = "eth_call"
	rpcSendTransaction    = "eth_sendTransaction"
	rpcTransactionReceipt = "eth_getTransactionReceipt"
)

const blockLatest = "latest"

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error,omitempty"`
}

// rpcTxArgs is the transaction object of eth_call and eth_sendTransaction.
type rpcTxArgs struct {
	From string        `json:"from,omitempty"`
	To   string        `json:"to"`
	Data hexutil.Bytes `json:"data"`
}

// rpcReceipt holds the receipt fields the client reads. Status is absent on
// pre-Byzantium receipts.
type rpcReceipt struct {
	TransactionHash string          `json:"transactionHash"`
	BlockNumber     hexutil.Uint64  `json:"blockNumber"`
	Status          *hexutil.Uint64 `json:"status"`
	GasUsed         hexutil.Uint64  `json:"gasUsed"`
}
