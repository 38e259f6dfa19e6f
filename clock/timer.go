package clock

import "time"

// Timer is a single-shot event source, the analog of *time.Timer.  Since
// time.Timer exposes its channel as a struct field, an interface method C()
// stands in for it here.
type Timer interface {
	// C returns the channel on which the firing time is delivered
	C() <-chan time.Time

	// Reset rearms the timer, with the semantics of time.Timer.Reset
	Reset(time.Duration) bool

	// Stop disarms the timer, with the semantics of time.Timer.Stop
	Stop() bool
}

// WrapTimer adapts an existing *time.Timer to the Timer interface, for
// callers that already hold one.  NewTimer is the usual way to obtain a
// Timer.
func WrapTimer(t *time.Timer) Timer {
	return wrappedTimer{t: t}
}

type wrappedTimer struct {
	t *time.Timer
}

func (wt wrappedTimer) C() <-chan time.Time { return wt.t.C }

func (wt wrappedTimer) Reset(d time.Duration) bool { return wt.t.Reset(d) }

func (wt wrappedTimer) Stop() bool { return wt.t.Stop() }

