package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Tobel158/waveportal/internal/config"
	"github.com/Tobel158/waveportal/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(config.ServerApp{Version: "1.0.0"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.ServerApp{Version: ""}, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.ServerApp{Version: "v1.2.3-beta+build.42"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "v1.2.3-beta+build.42", svc.GetAppVersion(ctx))
}

func TestNewServices(t *testing.T) {
	services, err := NewServices(nil, nil, config.ServerApp{Version: "1.0.0"}, logger.Nop())
	require.NoError(t, err)

	assert.NotNil(t, services.WaveClient)
	assert.Equal(t, "1.0.0", services.AppInfoService.GetAppVersion(context.Background()))
	assert.ErrorIs(t, services.WaveClient.RefreshWaveList(context.Background()), ErrProviderNotFound)
}

func TestNewServices_NoVersion(t *testing.T) {
	_, err := NewServices(nil, nil, config.ServerApp{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
