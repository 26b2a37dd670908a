package http

import (
	"net/http"

	"github.com/Tobel158/waveportal/internal/logger"
	"github.com/Tobel158/waveportal/internal/utils"
	"github.com/Tobel158/waveportal/models"
)

// getWaves serves the last fetched wave list together with its length.
func (h *Handler) getWaves(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	waves := h.services.WaveClient.Waves()
	if _, err := utils.WriteJSON(w, models.NewWavesResponse(waves), http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write waves response")
	}
}

func (h *Handler) getWaveCount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	count := len(h.services.WaveClient.Waves())
	if _, err := utils.WriteJSON(w, models.WaveCountResponse{Count: count}, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write wave count response")
	}
}
