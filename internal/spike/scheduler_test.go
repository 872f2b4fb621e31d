package spike

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"smap-engine/pkg/log"
)

// blockingUseCase holds every sweep until release is closed.
type blockingUseCase struct {
	started chan struct{}
	release chan struct{}
	sweeps  atomic.Int32
}

func newBlockingUseCase() *blockingUseCase {
	return &blockingUseCase{
		started: make(chan struct{}, 16),
		release: make(chan struct{}),
	}
}

func (b *blockingUseCase) CheckVolumeSpikes(ctx context.Context) error {
	b.sweeps.Add(1)
	b.started <- struct{}{}
	<-b.release
	return nil
}

func schedulerLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: "error", Mode: "development", Encoding: "console"})
}

func TestScheduler_OverlappingTickIsSkipped(t *testing.T) {
	uc := newBlockingUseCase()
	s := NewScheduler(schedulerLogger(), uc, time.Hour)

	s.tick()
	select {
	case <-uc.started:
	case <-time.After(time.Second):
		t.Fatal("first sweep never started")
	}

	// The first sweep is still blocked, so this tick must be dropped.
	s.tick()
	assert.Equal(t, int32(1), uc.sweeps.Load())

	close(uc.release)

	// The busy flag clears once the sweep finishes, so a later tick runs.
	assert.Eventually(t, func() bool {
		s.tick()
		return uc.sweeps.Load() >= 2
	}, time.Second, 10*time.Millisecond)
}

func TestScheduler_StopIsIdempotent(t *testing.T) {
	uc := newBlockingUseCase()
	close(uc.release)

	s := NewScheduler(schedulerLogger(), uc, time.Hour)
	s.Start()

	done := make(chan struct{})
	go func() {
		s.Stop()
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestNewScheduler_DefaultsInterval(t *testing.T) {
	s := NewScheduler(schedulerLogger(), newBlockingUseCase(), 0)
	assert.Equal(t, DefaultInterval, s.interval)
}
