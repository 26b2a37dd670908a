package adapter

import "errors"

// Transport errors mapped from the HTTP status of the provider endpoint.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

// Provider errors mapped from JSON-RPC error objects.
var (
	// ErrUserRejected is EIP-1193 code 4001: the user declined the request.
	ErrUserRejected = errors.New("user rejected the request")
	// ErrUnsupportedMethod is EIP-1193 code 4200 or JSON-RPC -32601.
	ErrUnsupportedMethod = errors.New("unsupported method")
	// ErrProviderDisconnected is EIP-1193 code 4900/4901.
	ErrProviderDisconnected = errors.New("provider disconnected")
	// ErrExecutionReverted is reported by nodes when eth_call or gas
	// estimation reverts.
	ErrExecutionReverted = errors.New("execution reverted")
	// ErrRPC wraps any other JSON-RPC error.
	ErrRPC = errors.New("json-rpc error")
)

// Contract binding errors.
var (
	ErrReceiptNotFound     = errors.New("transaction receipt not found")
	ErrTransactionReverted = errors.New("transaction reverted")
	ErrNoContractCode      = errors.New("no contract code at given address")
	ErrInvalidABI          = errors.New("invalid contract ABI")
	ErrInvalidAddress      = errors.New("invalid address")
)
