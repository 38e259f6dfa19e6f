/*
Package binsem provides a binary semaphore: a synchronization primitive holding
exactly one of two states, signaled and unsignaled, used to hand off a single
permit of execution between goroutines.

Unlike channel-based semaphores, this implementation is a shared flag guarded by
a mutex and condition variable, which lets it detect misuse: signaling an
already-signaled semaphore is a programmer error and panics.  Use SignalIfNeeded
for the idempotent variant.

Semaphore values are lightweight handles.  Copying a Semaphore clones the handle;
all copies share the same underlying state and are interchangeable for signaling
and waiting.  Handles compare equal exactly when they share that state.
*/
package binsem
