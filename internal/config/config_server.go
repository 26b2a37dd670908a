package config

import (
	"fmt"
	"time"
)

// ServerApp holds application-level settings of the feed.
type ServerApp struct {
	// Version is reported by /api/version/.
	Version string
}

// ServerHTTP holds the feed listener settings.
type ServerHTTP struct {
	// HTTPAddress is the "host:port" the feed listens on.
	HTTPAddress string
	// RequestTimeout bounds one inbound request.
	RequestTimeout time.Duration
}

// ServerWorkers holds the feed's background worker settings.
type ServerWorkers struct {
	// RefreshInterval is how often the wave list is re-read.
	RefreshInterval time.Duration
}

// ServerConfig is the feed server view of [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Adapter ClientAdapter
	Server  ServerHTTP
	Workers ServerWorkers
}

// GetServerConfig builds and validates the feed server view of the merged
// structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		App:     ServerApp{Version: cfg.App.Version},
		Adapter: newClientAdapter(cfg.Adapter),
		Server: ServerHTTP{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Workers: ServerWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}

	if serverCfg.Server.RequestTimeout <= 0 {
		serverCfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if serverCfg.Workers.RefreshInterval <= 0 {
		serverCfg.Workers.RefreshInterval = DefaultRefreshInterval
	}

	return serverCfg
}
