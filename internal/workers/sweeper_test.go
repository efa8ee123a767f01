package workers

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

type countingSweep struct {
	calls atomic.Int32
}

func (c *countingSweep) SweepExpired(ctx context.Context) (int64, error) {
	c.calls.Add(1)
	return 1, nil
}

func TestSweeper_RunsImmediatelyAndOnTick(t *testing.T) {
	t.Parallel()

	sweep := &countingSweep{}
	clock := clockwork.NewFakeClock()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		NewSweeper(sweep, logger, clock, 2*time.Minute).Run(ctx)
	}()

	// first sweep fires before any tick
	assert.Eventually(t, func() bool { return sweep.calls.Load() == 1 },
		time.Second, 5*time.Millisecond)

	clock.BlockUntil(1) // ticker registered
	clock.Advance(2 * time.Minute)
	assert.Eventually(t, func() bool { return sweep.calls.Load() == 2 },
		time.Second, 5*time.Millisecond)

	cancel()
	<-done
}

func TestNewSweeper_DefaultsInterval(t *testing.T) {
	t.Parallel()
	w := NewSweeper(&countingSweep{}, slog.New(slog.NewTextHandler(io.Discard, nil)), clockwork.NewFakeClock(), 0)
	assert.Equal(t, 2*time.Minute, w.interval)
}
