package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/Tobel158/waveportal/internal/adapter"
	"github.com/Tobel158/waveportal/internal/client"
	"github.com/Tobel158/waveportal/internal/config"
	"github.com/Tobel158/waveportal/internal/logger"
	"github.com/Tobel158/waveportal/internal/service"
	"github.com/Tobel158/waveportal/internal/tui"
	"github.com/Tobel158/waveportal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewClientLogger("wave-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	provider, contract, err := newWalletBoundary(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create wallet provider")
	}

	waveClient := service.NewWaveClient(provider, contract, log)

	ui, err := tui.New(waveClient, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	// ctrl+c is a key event for the UI, so SIGINT is left to bubbletea.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	err = app.Run(ctx)
	stop()
	if err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

// newWalletBoundary returns nil values when no provider URL is configured,
// which the wave client treats as a missing wallet.
func newWalletBoundary(cfg config.ClientAdapter, log *logger.Logger) (adapter.WalletProvider, adapter.WaveContract, error) {
	if cfg.ProviderURL == "" {
		log.Warn().Msg("no wallet provider configured")
		return nil, nil, nil
	}

	provider, err := adapter.NewHTTPWalletProvider(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	contract, err := adapter.NewWaveContract(provider, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	return provider, contract, nil
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version())
	fmt.Printf("Build date: %s\n", info.Date())
	fmt.Printf("Build commit: %s\n", info.Commit())
}
