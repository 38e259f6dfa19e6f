package binsem

import (
	"fmt"
	"sync"

	"github.com/go-kit/kit/metrics/discard"
	"github.com/xmidt-org/syncaux/xmetrics"
)

// core is the shared state referenced by every handle cloned from the same New call.
// The signaled flag is only read or written while holding lock.
type core struct {
	lock     sync.Mutex
	ready    *sync.Cond
	signaled bool

	tracer  Tracer
	signals xmetrics.Adder
	waits   xmetrics.Adder
	perf    *perfWarn
}

// Semaphore is a handle to a binary semaphore.  The zero value is not usable;
// construct instances with New or Default.
//
// Semaphore is comparable.  Two handles are == exactly when they were cloned from
// the same New call, independent of current state, and map keys hash consistently
// with that identity.  A handle from a separate New call is never equal, even if
// its state coincidentally matches.
type Semaphore struct {
	shared *core
}

// New creates a binary semaphore, specifying whether it is initially signaled.
// Options attach observability collaborators to the shared state; they never
// affect semaphore correctness.
func New(initiallySignaled bool, options ...Option) Semaphore {
	c := &core{
		signaled: initiallySignaled,
		tracer:   NopTracer(),
		signals:  discard.NewCounter(),
		waits:    discard.NewCounter(),
		perf:     newPerfWarn(),
	}

	c.ready = sync.NewCond(&c.lock)
	for _, o := range options {
		o(c)
	}

	return Semaphore{shared: c}
}

// Default returns an unsignaled semaphore, equivalent to New(false).
func Default() Semaphore {
	return New(false)
}

// Signal signals the semaphore, waking at most one blocked waiter.
//
// It is a programmer error to signal a semaphore that is already signaled:
// doing so panics rather than silently accepting the extra permit.  Callers
// that cannot guarantee the current state should use SignalIfNeeded.
func (s Semaphore) Signal() {
	c := s.shared
	c.tracer.Trace(OpSignal, MilestoneEnter)
	done := c.perf.begin(OpSignal)

	c.tracer.Trace(OpSignal, MilestoneLockWait)
	c.lock.Lock()
	c.tracer.Trace(OpSignal, MilestoneLockAcquired)

	if c.signaled {
		c.lock.Unlock()
		panic("binsem: Signal called on an already-signaled semaphore")
	}

	c.signaled = true
	c.ready.Signal()
	c.lock.Unlock()

	done()
	c.signals.Add(1.0)
	c.tracer.Trace(OpSignal, MilestoneExit)
}

// SignalIfNeeded signals the semaphore if it is not already signaled.
//
// Like Signal, but idempotent: an already-signaled semaphore stays signaled and
// no panic occurs.  A waiter is notified on every call, regardless of the prior
// state, so correctness never depends on whether an earlier transition already
// triggered a wakeup.
func (s Semaphore) SignalIfNeeded() {
	c := s.shared
	c.tracer.Trace(OpSignalIfNeeded, MilestoneEnter)
	done := c.perf.begin(OpSignalIfNeeded)

	c.tracer.Trace(OpSignalIfNeeded, MilestoneLockWait)
	c.lock.Lock()
	c.tracer.Trace(OpSignalIfNeeded, MilestoneLockAcquired)

	c.signaled = true
	c.ready.Signal()
	c.lock.Unlock()

	done()
	c.signals.Add(1.0)
	c.tracer.Trace(OpSignalIfNeeded, MilestoneExit)
}

// Wait blocks the calling goroutine until the semaphore is signaled, then
// consumes the permit, leaving the semaphore unsignaled.
//
// A signal that completes before Wait begins is observed immediately; Wait does
// not block in that case.  At most one Wait returns per Signal.  There is no
// timeout and no context variant: a surrounding system that needs cancellation
// should race this wait against another condition.
func (s Semaphore) Wait() {
	c := s.shared
	c.tracer.Trace(OpWait, MilestoneEnter)
	done := c.perf.begin(OpWait)

	c.tracer.Trace(OpWait, MilestoneLockWait)
	c.lock.Lock()
	c.tracer.Trace(OpWait, MilestoneLockAcquired)

	// re-check on every wake: condition variables can wake spuriously
	for !c.signaled {
		c.tracer.Trace(OpWait, MilestoneBlocking)
		c.ready.Wait()
		c.tracer.Trace(OpWait, MilestoneWoke)
	}

	c.signaled = false
	c.lock.Unlock()

	done()
	c.waits.Add(1.0)
	c.tracer.Trace(OpWait, MilestoneExit)
}

// Signaled reports whether the semaphore is currently signaled.  The result is
// advisory: another goroutine may change the state before the caller acts on it.
func (s Semaphore) Signaled() bool {
	s.shared.lock.Lock()
	defer s.shared.lock.Unlock()
	return s.shared.signaled
}

// String returns a diagnostic rendering of this handle, including the identity
// of the shared state so that clones can be recognized in output.
func (s Semaphore) String() string {
	if s.shared == nil {
		return "Semaphore(nil)"
	}

	state := "unsignaled"
	if s.Signaled() {
		state = "signaled"
	}

	return fmt.Sprintf("Semaphore(%p %s)", s.shared, state)
}
