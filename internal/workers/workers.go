package workers

import (
	"context"

	"github.com/Tobel158/waveportal/internal/config"
	"github.com/Tobel158/waveportal/internal/logger"
	"github.com/Tobel158/waveportal/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers creates the feed's workers: a periodic wave list refresh.
func NewWorkers(services *service.Services, cfg config.ServerWorkers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewRefreshWorker(services.WaveClient, cfg.RefreshInterval, logger),
		},
	}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Wait blocks until every worker has stopped.
func (w *Workers) Wait() {
	for _, worker := range w.workers {
		<-worker.Done()
	}
}
