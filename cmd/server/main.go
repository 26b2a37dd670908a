package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/Tobel158/waveportal/internal/adapter"
	"github.com/Tobel158/waveportal/internal/config"
	"github.com/Tobel158/waveportal/internal/handler"
	"github.com/Tobel158/waveportal/internal/logger"
	"github.com/Tobel158/waveportal/internal/server"
	"github.com/Tobel158/waveportal/internal/service"
	"github.com/Tobel158/waveportal/internal/workers"
	"github.com/Tobel158/waveportal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("wave-feed")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	provider, err := adapter.NewHTTPWalletProvider(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating wallet provider")
	}

	contract, err := adapter.NewWaveContract(provider, cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error binding wave contract")
	}

	services, err := service.NewServices(provider, contract, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	bgWorkers := workers.NewWorkers(services, cfg.Workers, log)
	bgWorkers.Run(ctx)

	err = srv.RunServer(ctx)
	stop()
	bgWorkers.Wait()

	if err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version())
	fmt.Printf("Build date: %s\n", info.Date())
	fmt.Printf("Build commit: %s\n", info.Commit())
}
