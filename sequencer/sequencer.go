// Package sequencer drives a fixed list of status labels forward on a timer
// and signals completion once after a settle delay.
package sequencer

import (
	"sync"
	"time"

	"launchpad/logger"

	"k8s.io/utils/clock"
)

const (
	DefaultTickInterval = 200 * time.Millisecond
	DefaultSettleDelay  = 800 * time.Millisecond
)

type Config struct {
	Steps        []string
	TickInterval time.Duration
	SettleDelay  time.Duration
	// OnComplete is called at most once, from a timer goroutine.
	OnComplete func()
	// Clock defaults to the real clock.
	Clock clock.WithDelayedExecution
}

type subscriber struct {
	id int
	fn func(State)
}

// Sequencer advances through Steps and fires OnComplete after the last one
// has been shown for SettleDelay. The zero value is not usable; use New.
type Sequencer struct {
	steps      []string
	interval   time.Duration
	settle     time.Duration
	onComplete func()
	clock      clock.WithDelayedExecution

	mu    sync.Mutex
	step  int
	phase Phase
	timer clock.Timer
	gen   uint64

	subs   []subscriber
	nextID int

	// pending holds states not yet delivered; whoever finds delivering
	// unset drains it, so subscribers see changes in mutation order.
	pending    []State
	delivering bool
}

func New(cfg Config) *Sequencer {
	s := &Sequencer{
		steps:      append([]string(nil), cfg.Steps...),
		interval:   cfg.TickInterval,
		settle:     cfg.SettleDelay,
		onComplete: cfg.OnComplete,
		clock:      cfg.Clock,
	}
	if s.interval <= 0 {
		s.interval = DefaultTickInterval
	}
	if s.settle <= 0 {
		s.settle = DefaultSettleDelay
	}
	if s.clock == nil {
		s.clock = clock.RealClock{}
	}
	return s
}

// Start begins ticking. It has no effect unless the sequencer is Idle.
func (s *Sequencer) Start() {
	s.mu.Lock()
	if s.phase != Idle {
		s.mu.Unlock()
		return
	}

	switch len(s.steps) {
	case 0:
		// Nothing to show: complete on the spot.
		s.phase = Completed
		logger.Warn("sequencer", "started with no steps, completing immediately")
		s.publishAndUnlock()
		s.complete()
		return
	case 1:
		s.phase = Settling
		s.schedule(s.settle, s.settled)
	default:
		s.phase = Advancing
		s.schedule(s.interval, s.tick)
	}
	logger.Debug("sequencer", "started: %d steps, tick %s, settle %s", len(s.steps), s.interval, s.settle)
	s.publishAndUnlock()
}

// Stop cancels any pending timer. Once Stop returns OnComplete will not be
// called unless the sequencer had already reached Completed. Safe to call
// more than once.
func (s *Sequencer) Stop() {
	s.mu.Lock()
	if s.phase.Terminal() {
		s.mu.Unlock()
		return
	}
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.phase = Stopped
	logger.Debug("sequencer", "stopped at step %d/%d", s.step+1, len(s.steps))
	s.publishAndUnlock()
}

// Subscribe registers fn to receive every state change, in order. fn may be
// called from a timer goroutine and should not block. The returned func
// removes the subscription.
func (s *Sequencer) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *Sequencer) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Sequencer) Step() int { return s.Snapshot().Step }
func (s *Sequencer) Label() string { return s.Snapshot().Label }
func (s *Sequencer) Progress() float64 { return s.Snapshot().Progress }
func (s *Sequencer) Active() bool { return s.Snapshot().Active }
func (s *Sequencer) Phase() Phase { return s.Snapshot().Phase }
func (s *Sequencer) Steps() []string { return append([]string(nil), s.steps...) }
func (s *Sequencer) Len() int { return len(s.steps) }

// schedule must be called with mu held. The callback always runs on its own
// goroutine: some clocks (the fake one included) fire AfterFunc callbacks
// while holding their own lock, and fn re-arms the timer.
func (s *Sequencer) schedule(d time.Duration, fn func(gen uint64)) {
	s.gen++
	gen := s.gen
	s.timer = s.clock.AfterFunc(d, func() { go fn(gen) })
}

func (s *Sequencer) tick(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || s.phase != Advancing {
		s.mu.Unlock()
		return
	}

	if s.step < len(s.steps)-1 {
		s.step++
	}
	if s.step == len(s.steps)-1 {
		s.phase = Settling
		s.schedule(s.settle, s.settled)
		logger.Debug("sequencer", "last step reached, settling for %s", s.settle)
	} else {
		s.schedule(s.interval, s.tick)
	}
	s.publishAndUnlock()
}

func (s *Sequencer) settled(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || s.phase != Settling {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.phase = Completed
	s.publishAndUnlock()
	s.complete()
}

func (s *Sequencer) complete() {
	logger.Debug("sequencer", "complete")
	if s.onComplete != nil {
		s.onComplete()
	}
}

// publishAndUnlock queues the current state for subscribers and releases mu.
// Subscribers are called without mu held. It must be called with mu held.
func (s *Sequencer) publishAndUnlock() {
	s.pending = append(s.pending, s.snapshotLocked())
	if s.delivering {
		s.mu.Unlock()
		return
	}

	s.delivering = true
	for len(s.pending) > 0 {
		state := s.pending[0]
		s.pending = s.pending[1:]
		subs := append([]subscriber(nil), s.subs...)
		s.mu.Unlock()

		for _, sub := range subs {
			sub.fn(state)
		}
		s.mu.Lock()
	}
	s.delivering = false
	s.mu.Unlock()
}

func (s *Sequencer) snapshotLocked() State {
	st := State{
		Step:   s.step,
		Total:  len(s.steps),
		Phase:  s.phase,
		Active: !s.phase.Terminal(),
	}
	if st.Total == 0 {
		st.Progress = 1
		return st
	}
	st.Label = s.steps[s.step]
	st.Progress = float64(s.step+1) / float64(st.Total)
	return st
}
