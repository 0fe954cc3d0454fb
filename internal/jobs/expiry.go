package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	service "github.com/rideon-labs/motorcycle-rental-platform/internal/services"
)

const expirySweepSchedule = "5 0 * * *"

// ExpirySweeper deactivates promo codes whose expiry date has passed. Expired
// coupons are already rejected at read time; the sweep keeps the stored
// active flag honest for listings and reporting.
type ExpirySweeper struct {
	promoCodes service.PromoCodeService
	cron       *cron.Cron
	logger     *slog.Logger
}

func NewExpirySweeper(promoCodes service.PromoCodeService, logger *slog.Logger) *ExpirySweeper {
	return &ExpirySweeper{
		promoCodes: promoCodes,
		cron:       cron.New(),
		logger:     logger,
	}
}

// Start registers the nightly sweep and launches the scheduler. It runs one
// sweep immediately so a restart never leaves stale flags until midnight.
func (s *ExpirySweeper) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(expirySweepSchedule, func() {
		s.Sweep(ctx)
	}); err != nil {
		return err
	}

	s.cron.Start()
	go s.Sweep(ctx)

	return nil
}

// Stop halts the scheduler and waits for an in-flight sweep to finish.
func (s *ExpirySweeper) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
}

func (s *ExpirySweeper) Sweep(ctx context.Context) {
	deactivated, err := s.promoCodes.DeactivateExpired(ctx, time.Now())
	if err != nil {
		s.logger.Error("Promo code expiry sweep failed", slog.Any("error", err.Error()))

		return
	}

	if deactivated > 0 {
		s.logger.Info("Deactivated expired promo codes", slog.Int64("count", deactivated))
	}
}
