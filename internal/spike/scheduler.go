package spike

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	pkgLog "smap-engine/pkg/log"
)

// DefaultInterval is how often the sweep runs when not configured.
const DefaultInterval = 5 * time.Minute

// Scheduler drives the spike sweep on a fixed interval. A tick that fires
// while the previous sweep is still running is skipped entirely; there is no
// queueing and no overlap.
type Scheduler struct {
	l        pkgLog.Logger
	uc       UseCase
	interval time.Duration

	busy     atomic.Bool
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func NewScheduler(l pkgLog.Logger, uc UseCase, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		l:        l,
		uc:       uc,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the ticker loop. It returns immediately.
func (s *Scheduler) Start() {
	go s.run()
}

// Stop halts future ticks. An in-flight sweep is left to finish on its own.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
	<-s.done
}

func (s *Scheduler) run() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

func (s *Scheduler) tick() {
	ctx := context.Background()

	if !s.busy.CompareAndSwap(false, true) {
		s.l.Warnf(ctx, "internal.spike.Scheduler.tick: previous sweep still running, skipping")
		return
	}

	go func() {
		defer s.busy.Store(false)
		if err := s.uc.CheckVolumeSpikes(ctx); err != nil {
			s.l.Errorf(ctx, "internal.spike.Scheduler.tick.CheckVolumeSpikes: %v", err)
		}
	}()
}
