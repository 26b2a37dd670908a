package service

import "errors"

var (
	// ErrProviderNotFound means that no wallet provider is configured.
	ErrProviderNotFound = errors.New("wallet provider not found")
	// ErrNoAccounts means that the provider granted an empty account list.
	ErrNoAccounts = errors.New("wallet granted no accounts")
	// ErrNoSigner means that no authorized account can sign a wave.
	ErrNoSigner = errors.New("no signer account available")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
