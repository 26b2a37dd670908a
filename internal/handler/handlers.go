package handler

import (
	"github.com/Tobel158/waveportal/internal/config"
	"github.com/Tobel158/waveportal/internal/handler/http"
	"github.com/Tobel158/waveportal/internal/logger"
	"github.com/Tobel158/waveportal/internal/service"
)

// Handlers groups the transport handlers of the wave feed.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.ServerHTTP, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
