package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Tobel158/waveportal/internal/config"
	"github.com/Tobel158/waveportal/internal/logger"
	"github.com/Tobel158/waveportal/internal/mock"
	"github.com/Tobel158/waveportal/internal/service"
	"github.com/Tobel158/waveportal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHandler(t *testing.T, waves []models.Wave, version string) *Handler {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mock.NewMockWaveClient(ctrl)
	client.EXPECT().Waves().Return(models.CopyWaves(waves)).AnyTimes()
	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(version).AnyTimes()

	return NewHandler(
		&service.Services{WaveClient: client, AppInfoService: appInfo},
		config.ServerHTTP{HTTPAddress: ":8080", RequestTimeout: time.Second},
		logger.Nop(),
	)
}

func serve(t *testing.T, h *Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	return rec
}

func sampleWaves() []models.Wave {
	return []models.Wave{
		models.NewWave("0x1111111111111111111111111111111111111111", 1700000000, "gm"),
		models.NewWave("0x2222222222222222222222222222222222222222", 1700000060, "hello"),
		models.NewWave("0x1111111111111111111111111111111111111111", 1700000120, ""),
	}
}

// ─────────────────────────────────────────────
// GET /api/waves
// ─────────────────────────────────────────────

func TestGetWaves(t *testing.T) {
	h := newTestHandler(t, sampleWaves(), "1.0.0")

	rec := serve(t, h, http.MethodGet, "/api/waves")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp models.WavesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 3, resp.Count)
	assert.Equal(t, len(resp.Waves), resp.Count)
	assert.Equal(t, "hello", resp.Waves[1].Message)
	assert.Equal(t, int64(1700000060000), resp.Waves[1].Timestamp.UnixMilli())
}

func TestGetWaves_Empty(t *testing.T) {
	h := newTestHandler(t, nil, "1.0.0")

	rec := serve(t, h, http.MethodGet, "/api/waves")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":0,"waves":[]}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// GET /api/waves/count
// ─────────────────────────────────────────────

func TestGetWaveCount(t *testing.T) {
	h := newTestHandler(t, sampleWaves(), "1.0.0")

	rec := serve(t, h, http.MethodGet, "/api/waves/count")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":3}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// GET /api/version/
// ─────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	h := newTestHandler(t, nil, "v2.0.0-beta+build.42")

	rec := serve(t, h, http.MethodGet, "/api/version/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "v2.0.0-beta+build.42", rec.Body.String())
}

// ─────────────────────────────────────────────
// Routing
// ─────────────────────────────────────────────

func TestRoutes_UnknownMethodIsNotFound(t *testing.T) {
	h := newTestHandler(t, sampleWaves(), "1.0.0")

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		rec := serve(t, h, method, "/api/waves")
		assert.Equal(t, http.StatusNotFound, rec.Code, method)
	}
}

func TestRoutes_UnknownPath(t *testing.T) {
	h := newTestHandler(t, nil, "1.0.0")

	rec := serve(t, h, http.MethodGet, "/api/user/login")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_SetTraceID(t *testing.T) {
	h := newTestHandler(t, nil, "1.0.0")

	rec := serve(t, h, http.MethodGet, "/api/waves/count")
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestRoutes_RecoversFromPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockWaveClient(ctrl)
	client.EXPECT().Waves().DoAndReturn(func() []models.Wave { panic("boom") })

	h := NewHandler(&service.Services{WaveClient: client}, config.ServerHTTP{}, logger.Nop())

	rec := serve(t, h, http.MethodGet, "/api/waves")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestNewHandler_KeepsTimeout(t *testing.T) {
	h := NewHandler(&service.Services{}, config.ServerHTTP{RequestTimeout: 3 * time.Second}, logger.Nop())
	assert.Equal(t, 3*time.Second, h.requestTimeout)

}
