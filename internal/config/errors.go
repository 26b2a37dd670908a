package config

import "errors"

// Validation errors returned when the derived client or server configuration
// is incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid provider or contract settings
	// (for example, a malformed contract address or a missing provider URL
	// where one is required).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidServerConfigs indicates a missing feed listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing version for the feed).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
