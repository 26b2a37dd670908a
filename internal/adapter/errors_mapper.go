package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// EIP-1193 provider error codes and the JSON-RPC codes used by nodes.
const (
	codeUserRejected        = 4001
	codeUnauthorized        = 4100
	codeUnsupportedMethod   = 4200
	codeDisconnected        = 4900
	codeChainDisconnected   = 4901
	codeExecutionReverted   = 3
	codeMethodNotFound      = -32601
	codeInvalidParams       = -32602
	codeInternalServerError = -32603
)

// rpcError is a JSON-RPC 2.0 error object.
type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("code %d: %s", e.Code, e.Message)
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

func mapRPCError(e *rpcError) error {
	if e == nil {
		return nil
	}

	switch e.Code {
	case codeUserRejected:
		return fmt.Errorf("%w: %s", ErrUserRejected, e.Message)
	case codeUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, e.Message)
	case codeUnsupportedMethod, codeMethodNotFound:
		return fmt.Errorf("%w: %s", ErrUnsupportedMethod, e.Message)
	case codeDisconnected, codeChainDisconnected:
		return fmt.Errorf("%w: %s", ErrProviderDisconnected, e.Message)
	case codeExecutionReverted:
		return fmt.Errorf("%w: %s", ErrExecutionReverted, e.Message)
	}

	if strings.Contains(strings.ToLower(e.Message), "execution reverted") {
		return fmt.Errorf("%w: %s", ErrExecutionReverted, e.Message)
	}

	return fmt.Errorf("%w: %w", ErrRPC, e)
}
