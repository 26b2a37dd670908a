package workers

import (
	"context"
	"time"

	"github.com/Tobel158/waveportal/internal/config"
	"github.com/Tobel158/waveportal/internal/logger"
	"github.com/Tobel158/waveportal/internal/service"
)

// RefreshWorker re-reads the wave list on a fixed interval. A failed refresh
// is logged and the last good list stays in place.
type RefreshWorker struct {
	client   service.WaveClient
	interval time.Duration
	done     chan struct{}

	logger *logger.Logger
}

func NewRefreshWorker(client service.WaveClient, interval time.Duration, logger *logger.Logger) *RefreshWorker {
	if interval <= 0 {
		interval = config.DefaultRefreshInterval
	}

	return &RefreshWorker{
		client:   client,
		interval: interval,
		done:     make(chan struct{}),
		logger:   logger.WithComponent("refresh-worker"),
	}
}

// Run refreshes once right away, then on every tick until ctx is done.
func (w *RefreshWorker) Run(ctx context.Context) {
	go func() {
		defer close(w.done)

		w.refresh(ctx)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				w.logger.Info().Msg("refresh worker stopped")
				return
			case <-ticker.C:
				w.refresh(ctx)
			}
		}
	}()
}

func (w *RefreshWorker) Done() <-chan struct{} {
	return w.done
}

func (w *RefreshWorker) refresh(ctx context.Context) {
	if err := w.client.RefreshWaveList(ctx); err != nil {
		w.logger.Err(err).Msg("wave list refresh failed")
		return
	}
	w.logger.Debug().Msg("wave list refreshed")
}
