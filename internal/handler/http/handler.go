package http

import (
	"time"

	"github.com/Tobel158/waveportal/internal/config"
	"github.com/Tobel158/waveportal/internal/logger"
	"github.com/Tobel158/waveportal/internal/service"
)

type Handler struct {
	services       *service.Services
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.ServerHTTP, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
