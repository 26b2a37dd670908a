package tui

import "github.com/Tobel158/waveportal/models"

type walletCheckedMsg struct {
	err error
}

type walletConnectedMsg struct {
	err error
}

type waveSubmittedMsg struct {
	id      int
	receipt models.Receipt
	err     error
}

type wavesRefreshedMsg struct {
	err error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
