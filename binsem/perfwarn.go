package binsem

import (
	"sync"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/xmidt-org/syncaux/clock"
	"github.com/xmidt-org/syncaux/logging"
	"github.com/xmidt-org/syncaux/xmetrics"
)

// CoarseLockMessage is the advisory emitted, once per semaphore, when
// performance warnings are enabled.  Every operation on the semaphore
// serializes through a single mutex, which is a coarser strategy than a
// lock-free or channel-based handoff.
const CoarseLockMessage = "binary semaphore serializes all operations through a single mutex"

// perfWarn wraps each blocking critical section: it times the section and, when
// a warning logger is configured, emits the coarse-lock advisory the first time
// any operation runs.  It has no effect on semaphore correctness.
type perfWarn struct {
	warnings  log.Logger
	durations xmetrics.Observer
	clk       clock.Interface
	once      sync.Once
}

func newPerfWarn() *perfWarn {
	return &perfWarn{
		durations: discard.NewHistogram(),
		clk:       clock.System(),
	}
}

// begin marks the start of an operation's critical section.  The returned
// function completes the measurement and must be called exactly once, after the
// internal lock has been released.
func (pw *perfWarn) begin(op string) func() {
	if pw.warnings != nil {
		pw.once.Do(func() {
			logging.Warn(pw.warnings, "op", op).Log(logging.MessageKey, CoarseLockMessage)
		})
	}

	start := pw.clk.Now()
	return func() {
		pw.durations.Observe(pw.clk.Now().Sub(start).Seconds())
	}
}
