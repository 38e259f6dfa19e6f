// Package clock isolates time-based behavior behind an interface so that
// code measuring or waiting on wall-clock time can be tested deterministically.
// Production code uses System().  Tests substitute a clocktest.Mock and
// script its return values instead of sleeping for real.
package clock

import "time"

// Interface is the subset of the time package this library depends on.
type Interface interface {
	// Now returns the current wall-clock time, as time.Now does
	Now() time.Time

	// Sleep blocks the calling goroutine for the given duration
	Sleep(time.Duration)

	// NewTimer starts a Timer that fires once after the given duration
	NewTimer(time.Duration) Timer
}

// System returns the Interface backed directly by the time package.
// The returned value is stateless and shareable.
func System() Interface {
	return systemClock{}
}

type systemClock struct{}

func (sc systemClock) Now() time.Time        { return time.Now() }
func (sc systemClock) Sleep(d time.Duration) { time.Sleep(d) }

func (sc systemClock) NewTimer(d time.Duration) Timer {
	return wrappedTimer{t: time.NewTimer(d)}
}
