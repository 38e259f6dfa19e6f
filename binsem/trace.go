package binsem

import (
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

// Operation names passed to Tracer.Trace
const (
	OpSignal         = "signal"
	OpSignalIfNeeded = "signalIfNeeded"
	OpWait           = "wait"
)

// Milestones passed to Tracer.Trace.  Each operation emits MilestoneEnter and
// MilestoneExit; lock-acquisition milestones appear between them.  Wait
// additionally emits MilestoneBlocking before suspending and MilestoneWoke on
// each wakeup, spurious or not.
const (
	MilestoneEnter        = "enter"
	MilestoneLockWait     = "waiting for lock"
	MilestoneLockAcquired = "lock acquired"
	MilestoneBlocking     = "blocking"
	MilestoneWoke         = "woke"
	MilestoneExit         = "exit"
)

// Tracer receives fire-and-forget trace events from semaphore operations.
// Implementations must be safe for concurrent use and must not call back into
// the semaphore: several milestones are emitted while the internal lock is held.
type Tracer interface {
	Trace(op, milestone string)
}

type nopTracer struct{}

func (nopTracer) Trace(string, string) {}

// NopTracer returns a Tracer that discards all events.  This is the default
// for semaphores constructed without WithTracer.
func NopTracer() Tracer {
	return nopTracer{}
}

type loggerTracer struct {
	next log.Logger
}

func (lt loggerTracer) Trace(op, milestone string) {
	lt.next.Log("op", op, "milestone", milestone)
}

// NewLoggerTracer adapts a go-kit logger into a Tracer.  Events are logged at
// debug level.  A nil logger yields NopTracer().
func NewLoggerTracer(next log.Logger) Tracer {
	if next == nil {
		return NopTracer()
	}

	return loggerTracer{
		next: log.WithPrefix(next, level.Key(), level.DebugValue()),
	}
}
