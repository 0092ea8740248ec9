package workers

import (
	"context"

	"github.com/langlens/account-service/internal/config"
	"github.com/langlens/account-service/internal/logger"
	"github.com/langlens/account-service/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the application's background workers.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newOTPCleanupWorker(storages.UserRepository, cfg.OTPCleanupInterval, logger),
		},
	}
}

// Run starts every worker in its own goroutine. It returns immediately;
// workers stop when ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		go worker.Run(ctx)
	}
}
