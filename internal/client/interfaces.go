// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tobel

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive surface driven by the client.
type UI interface {
	Run(ctx context.Context) error
}
