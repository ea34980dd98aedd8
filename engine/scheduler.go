package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/paddle-rush/physics"
)

// StepScheduler drives the physics world on a fixed tick from its own goroutine
// Contact classification runs inside Step on this schedule, consequences cross
// to the UI schedule through the event queue only
type StepScheduler struct {
	world *physics.World

	tickInterval     time.Duration
	nextTickDeadline time.Time // Next tick deadline for drift correction

	tickCount atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

func NewStepScheduler(world *physics.World, tickInterval time.Duration) *StepScheduler {
	return &StepScheduler{
		world:        world,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
	}
}

// Start launches the stepping goroutine, repeated calls are no-ops
// Start and Stop must be called from the same owning goroutine
func (s *StepScheduler) Start() {
	if !s.running.CompareAndSwap(false, true) {
		return
	}
	s.stopChan = make(chan struct{})
	s.stopOnce = sync.Once{}
	s.nextTickDeadline = time.Now().Add(s.tickInterval)
	s.wg.Add(1)
	go s.run()
}

// Stop terminates the stepping goroutine and waits for it to exit
func (s *StepScheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
	s.wg.Wait()
	s.running.Store(false)
}

// TickCount returns the number of completed physics steps
func (s *StepScheduler) TickCount() uint64 {
	return s.tickCount.Load()
}

// Running reports whether the stepping goroutine is active
func (s *StepScheduler) Running() bool {
	return s.running.Load()
}

func (s *StepScheduler) run() {
	defer s.wg.Done()

	timer := time.NewTimer(time.Until(s.nextTickDeadline))
	defer timer.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-timer.C:
			s.world.Step(s.tickInterval)
			s.tickCount.Add(1)

			// Drift correction: hold the cadence when a step overruns slightly,
			// re-anchor when it falls a full tick behind
			s.nextTickDeadline = s.nextTickDeadline.Add(s.tickInterval)
			wait := time.Until(s.nextTickDeadline)
			if wait < -s.tickInterval {
				s.nextTickDeadline = time.Now().Add(s.tickInterval)
				wait = s.tickInterval
			} else if wait < 0 {
				wait = 0
			}
			timer.Reset(wait)
		}
	}
}
