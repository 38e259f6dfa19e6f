package binsem

import (
	"fmt"
)

func ExampleSemaphore() {
	var (
		ready = New(false)
		value int
	)

	go func() {
		value = 42
		ready.Signal()
	}()

	// the mutex inside the semaphore orders the write to value before the read below
	ready.Wait()
	fmt.Println(value)

	// Output:
	// 42
}

func ExampleSemaphore_signalIfNeeded() {
	s := New(false)

	// multiple producers may report readiness without coordinating among themselves
	for i := 0; i < 3; i++ {
		s.SignalIfNeeded()
	}

	// only a single permit was produced
	s.Wait()
	fmt.Println(s.Signaled())

	// Output:
	// false
}
