// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tobel

// Package tui renders the wave portal in the terminal with bubbletea.
//
// A single screen carries the header, the wave count, the message input and
// the wave list. Wallet and contract calls run as tea.Cmd values so the
// render loop never blocks; every completion message re-reads the view state
// from the [service.WaveClient].
package tui

import (
	"context"
	"errors"

	"github.com/Tobel158/waveportal/internal/logger"
	"github.com/Tobel158/waveportal/internal/service"
	"github.com/Tobel158/waveportal/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNoWaveClient = errors.New("wave client is not provided")

type TUI struct {
	client    service.WaveClient
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(client service.WaveClient, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if client == nil {
		return nil, ErrNoWaveClient
	}

	return &TUI{
		client:    client,
		buildInfo: buildInfo,
		logger:    log.WithComponent("tui"),
	}, nil
}

// Run shows the wave screen until the user quits or ctx is done. In-flight
// submissions are canceled on exit.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.client, t.buildInfo, t.logger)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if result, ok := finalModel.(appModel); ok {
		result.cancelSubmissions()
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	return nil
}
