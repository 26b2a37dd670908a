// Package workers runs background jobs of the wave feed.
//
// A [Worker] starts its own goroutine in Run and stops when the context is
// done. [Workers] starts a set of them and waits for all to stop.
package workers

import "context"

// Worker is a background job bound to a context.
type Worker interface {
	// Run starts the worker and returns immediately.
	Run(ctx context.Context)
	// Done is closed once the worker has stopped.
	Done() <-chan struct{}
}
