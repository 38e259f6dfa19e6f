package binsem

import (
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/xmidt-org/syncaux/clock"
	"github.com/xmidt-org/syncaux/xmetrics"
)

// Option is a configurable option applied to a semaphore's shared state by New.
// Because options live on the shared state, every handle cloned from the same
// New call reports through the same collaborators.
type Option func(*core)

// WithTracer establishes the tracing collaborator for the semaphore.
// A nil tracer discards all events.
func WithTracer(t Tracer) Option {
	return func(c *core) {
		if t != nil {
			c.tracer = t
		} else {
			c.tracer = NopTracer()
		}
	}
}

// WithSignals establishes a metric that counts Signal and SignalIfNeeded calls.
// If a nil counter is supplied, signal counts are discarded.
func WithSignals(a xmetrics.Adder) Option {
	return func(c *core) {
		if a != nil {
			c.signals = a
		} else {
			c.signals = discard.NewCounter()
		}
	}
}

// WithWaits establishes a metric that counts completed Wait calls.
// If a nil counter is supplied, wait counts are discarded.
func WithWaits(a xmetrics.Adder) Option {
	return func(c *core) {
		if a != nil {
			c.waits = a
		} else {
			c.waits = discard.NewCounter()
		}
	}
}

// WithWaitDurations establishes a metric that observes the duration of each
// operation's critical section, including any time spent blocked in Wait.
// If a nil observer is supplied, durations are discarded.
func WithWaitDurations(o xmetrics.Observer) Option {
	return func(c *core) {
		if o != nil {
			c.perf.durations = o
		} else {
			c.perf.durations = discard.NewHistogram()
		}
	}
}

// WithPerfWarnings enables the coarse-lock advisory, emitted at warn level to
// the given logger the first time any operation runs.  A nil logger disables
// the advisory, which is the default.
func WithPerfWarnings(l log.Logger) Option {
	return func(c *core) {
		c.perf.warnings = l
	}
}

// WithClock establishes the clock used for duration measurement.  A nil clock
// restores the system clock.  Intended for tests.
func WithClock(clk clock.Interface) Option {
	return func(c *core) {
		if clk != nil {
			c.perf.clk = clk
		} else {
			c.perf.clk = clock.System()
		}
	}
}
