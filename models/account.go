// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tobel

// Package models holds the value types shared by the wave client, the
// terminal UI and the HTTP wave feed.
package models

// ConnectionStatus tells whether a wallet account has been granted to the
// client.
type ConnectionStatus int

const (
	// Disconnected is the initial status. No account has been granted yet.
	Disconnected ConnectionStatus = iota
	// Connected means the wallet granted at least one account.
	Connected
)

// String returns a lowercase label for the status.
func (s ConnectionStatus) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connected:
		return "connected"
	default:
		return "unknown"
	}
}

// Account is the wallet account the client acts for.
//
// It is a tagged variant: a Disconnected account carries no address, a
// Connected account always carries a non-empty one. The zero value is
// Disconnected. There is no transition back to Disconnected while the
// process is running.
type Account struct {
	status  ConnectionStatus
	address string
}

// DisconnectedAccount returns an account without an address.
func DisconnectedAccount() Account {
	return Account{status: Disconnected}
}

// ConnectedAccount returns a Connected account for address. An empty address
// yields a Disconnected account.
func ConnectedAccount(address string) Account {
	if address == "" {
		return DisconnectedAccount()
	}
	return Account{status: Connected, address: address}
}

// Status returns the variant tag.
func (a Account) Status() ConnectionStatus {
	return a.status
}

// Address returns the account address and true for a Connected account, or an
// empty string and false otherwise.
func (a Account) Address() (string, bool) {
	if a.status != Connected {
		return "", false
	}
	return a.address, true
}

// IsConnected reports whether the account is Connected.
func (a Account) IsConnected() bool {
	return a.status == Connected
}
