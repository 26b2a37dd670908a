// Package server runs the wave feed's HTTP transport.
//
// It owns the listener lifecycle: startup, shutdown on context cancellation
// (typically bound to SIGINT/SIGTERM/SIGQUIT by the caller) and a bounded
// graceful drain of in-flight requests.
package server
