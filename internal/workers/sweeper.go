package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
)

type ExpirySweeper interface {
	SweepExpired(ctx context.Context) (int64, error)
}

// Sweeper drives the periodic expiry sweep. One sweep runs immediately on
// start so a restart does not leave stale entities up for a full interval.
type Sweeper struct {
	sweep    ExpirySweeper
	logger   *slog.Logger
	clock    clockwork.Clock
	interval time.Duration
}

func NewSweeper(sweep ExpirySweeper, logger *slog.Logger, clock clockwork.Clock, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = 2 * time.Minute
	}
	return &Sweeper{
		sweep:    sweep,
		logger:   logger,
		clock:    clock,
		interval: interval,
	}
}

func (w *Sweeper) Run(ctx context.Context) {
	w.logger.Info("sweeper STARTED", slog.Duration("interval", w.interval))

	w.runOnce(ctx)

	ticker := w.clock.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("sweeper STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		case <-ticker.Chan():
			w.runOnce(ctx)
		}
	}
}

func (w *Sweeper) runOnce(ctx context.Context) {
	n, err := w.sweep.SweepExpired(ctx)
	if err != nil {
		w.logger.Error("sweep failed", slog.Any("error", err))
		return
	}
	if n > 0 {
		w.logger.Info("sweep done", slog.Int64("closed", n))
	}
}
