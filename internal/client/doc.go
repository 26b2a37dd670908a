// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tobel

// Package client implements the interactive wave client runtime.
//
// It binds the terminal UI to the wave client service and runs them as a
// single process lifecycle.
package client
