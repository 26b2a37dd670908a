// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tobel

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when no listen address
// is configured. The feed treats it as a fatal misconfiguration.
var errNoHandlersAreCreated = errors.New("no handlers are created")
