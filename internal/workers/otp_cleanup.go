package workers

import (
	"context"
	"time"

	"github.com/langlens/account-service/internal/logger"
	"github.com/langlens/account-service/internal/store"
)

// otpCleanupWorker periodically clears expired password-reset codes so stale
// rows do not accumulate. Expired codes are already rejected at verification
// time; this worker only reclaims storage.
type otpCleanupWorker struct {
	userRepository store.UserRepository
	interval       time.Duration
	logger         *logger.Logger

	now func() time.Time
}

func newOTPCleanupWorker(userRepository store.UserRepository, interval time.Duration, logger *logger.Logger) *otpCleanupWorker {
	return &otpCleanupWorker{
		userRepository: userRepository,
		interval:       interval,
		logger:         logger,
		now:            time.Now,
	}
}

func (w *otpCleanupWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("otp cleanup worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("otp cleanup worker stopped")
			return
		case <-ticker.C:
			w.clean(ctx)
		}
	}
}

func (w *otpCleanupWorker) clean(ctx context.Context) {
	cleared, err := w.userRepository.ClearExpiredOTPs(ctx, w.now())
	if err != nil {
		w.logger.Err(err).Msg("clearing expired otps failed")
		return
	}

	if cleared > 0 {
		w.logger.Info().Int64("cleared", cleared).Msg("expired otps cleared")
	}
}
