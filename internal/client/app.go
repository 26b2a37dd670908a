package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tobel158/waveportal/internal/logger"
)

var ErrNoUI = errors.New("ui is not provided")

type App struct {
	ui     UI
	logger *logger.Logger
}

func NewApp(ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNoUI
	}

	return &App{ui: ui, logger: logger}, nil
}

// Run blocks until the UI exits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Msg("wave client started")

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	a.logger.Info().Msg("wave client stopped")
	return nil
}

var _ Client = (*App)(nil)
