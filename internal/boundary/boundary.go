// Package boundary tracks the rendered width of a host container and
// reports changes to a single subscriber.
//
// A Subscription is a scoped resource: Watch measures and reports the
// current width immediately, later reports are coalesced to at most one
// callback per frame interval (latest width wins), and Stop releases
// the watcher and drops anything still pending.
package boundary

import (
	"sync"
	"time"
)

// DefaultFrameInterval caps delivery at roughly one report per
// animation frame. Bursts of resize events inside one frame collapse
// into a single callback carrying the newest width.
const DefaultFrameInterval = 16 * time.Millisecond

// Measurer reports the current width of a host container.
type Measurer interface {
	MeasureWidth() (float64, error)
}

// StaticMeasurer is a fixed-width Measurer for tests and non-terminal
// environments.
type StaticMeasurer float64

// MeasureWidth implements Measurer.
func (m StaticMeasurer) MeasureWidth() (float64, error) {
	return float64(m), nil
}

// Option configures a Subscription.
type Option func(*Subscription)

// WithFrameInterval overrides the coalescing interval.
func WithFrameInterval(d time.Duration) Option {
	return func(s *Subscription) {
		if d > 0 {
			s.frame = d
		}
	}
}

// Subscription delivers coalesced width reports to one callback until
// stopped.
type Subscription struct {
	fn    func(width float64)
	frame time.Duration

	mu          sync.Mutex
	pending     float64
	havePending bool
	stopped     bool

	kick     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// Watch measures m once, reports the result synchronously, then starts
// delivering coalesced Report values to fn. A failed initial
// measurement degrades to a zero width rather than an error; a zero
// measurement during mount is expected, not exceptional.
func Watch(m Measurer, fn func(width float64), opts ...Option) *Subscription {
	s := &Subscription{
		fn:    fn,
		frame: DefaultFrameInterval,
		kick:  make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	width := 0.0
	if m != nil {
		if w, err := m.MeasureWidth(); err == nil {
			width = w
		}
	}
	s.fn(width)

	go s.loop()
	return s
}

// Report feeds a new width measurement. Non-blocking; reports after
// Stop are dropped.
func (s *Subscription) Report(width float64) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.pending = width
	s.havePending = true
	s.mu.Unlock()

	select {
	case s.kick <- struct{}{}:
	default:
	}
}

// Stop releases the subscription. No callback starts after Stop
// returns; pending coalesced reports are dropped. Safe to call more
// than once.
func (s *Subscription) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		s.stopped = true
		s.havePending = false
		s.mu.Unlock()
		close(s.done)
	})
}

func (s *Subscription) loop() {
	for {
		select {
		case <-s.done:
			return
		case <-s.kick:
		}

		// Hold one frame so a burst of reports collapses into a
		// single delivery of the newest width.
		timer := time.NewTimer(s.frame)
		select {
		case <-s.done:
			timer.Stop()
			return
		case <-timer.C:
		}

		s.mu.Lock()
		if s.stopped {
			s.mu.Unlock()
			return
		}
		width, ok := s.pending, s.havePending
		s.havePending = false
		s.mu.Unlock()

		if ok {
			s.fn(width)
		}
	}
}
