package service

import (
	"fmt"

	"github.com/Tobel158/waveportal/internal/adapter"
	"github.com/Tobel158/waveportal/internal/config"
	"github.com/Tobel158/waveportal/internal/logger"
)

// Services bundles the services used by the wave feed server.
type Services struct {
	WaveClient     WaveClient
	AppInfoService AppInfoService
}

func NewServices(provider adapter.WalletProvider, contract adapter.WaveContract, cfg config.ServerApp, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create app info service: %w", err)
	}

	return &Services{
		WaveClient:     NewWaveClient(provider, contract, logger),
		AppInfoService: appInfo,
	}, nil
}
