package notatimer

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
)

var (
	// ErrAlreadyRunning is returned when Run or RunAsync is called while a loop
	// is still active on the same Runner.
	ErrAlreadyRunning = errors.New("notatimer: runner is already running")

	// ErrNilStep is returned when no step function is provided.
	ErrNilStep = errors.New("notatimer: step function must not be nil")
)

// StepFunc is the caller-supplied predicate invoked once per loop iteration.
// Returning true continues the loop; returning false finishes it naturally.
type StepFunc func() bool

// Runner executes a step function repeatedly, either on the calling goroutine
// (Run) or on a background goroutine (RunAsync), until the function returns
// false or Stop is called.
//
// The two flags are independent atomics so that Stop and IsRunning never
// contend with the hot loop. The mutex guards only the detached-run handle and
// the captured failure, never the loop itself.
type Runner struct {
	keepRunning atomic.Bool
	running     atomic.Bool

	mu     sync.Mutex
	done   chan struct{}
	runErr error

	logger *slog.Logger
}

// NewRunner creates an idle Runner. The logger defaults to a no-op; use
// WithLogger to override.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the loop on the calling goroutine until step returns false or
// Stop is observed. The stop flag is checked before each invocation, so a stop
// takes effect before the next call, never the one in flight.
//
// The liveness flag is cleared on every exit path, including a panicking step;
// the panic itself propagates to the caller.
func (r *Runner) Run(step StepFunc) error {
	if step == nil {
		return ErrNilStep
	}
	if !r.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	r.keepRunning.Store(true)
	r.loop(step)
	return nil
}

// RunAsync launches the loop on a background goroutine and returns once the
// loop has started. By the time it returns, IsRunning already reports true:
// the liveness flag is set before the goroutine is launched, and the start
// rendezvous guarantees the loop body is scheduled.
//
// The step function is retained only for the duration of the detached loop.
// A panicking step is recovered, converted to an error, and surfaced by Wait.
func (r *Runner) RunAsync(step StepFunc) error {
	if step == nil {
		return ErrNilStep
	}
	if !r.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	r.keepRunning.Store(true)

	started := make(chan struct{})
	done := make(chan struct{})

	r.mu.Lock()
	r.done = done
	r.runErr = nil
	r.mu.Unlock()

	go func() {
		defer close(done)
		defer func() {
			if p := recover(); p != nil {
				r.setErr(fmt.Errorf("notatimer: step function panicked: %v", p))
			}
		}()
		close(started)
		r.loop(step)
	}()

	// One-shot rendezvous: never proceed before the loop goroutine exists.
	<-started
	return nil
}

// loop is the shared loop body. The deferred store is the cleanup guarantee:
// the liveness flag is cleared no matter how the loop exits.
func (r *Runner) loop(step StepFunc) {
	defer r.running.Store(false)

	r.logger.Debug("loop started")
	for r.keepRunning.Load() && step() {
	}
	r.logger.Debug("loop finished", "stopped", !r.keepRunning.Load())
}

// Stop requests a cooperative stop. It is idempotent, never blocks, and is
// safe from any goroutine, including when no loop is active. It does not
// interrupt an in-flight step; the loop exits before the next invocation.
func (r *Runner) Stop() {
	r.keepRunning.Store(false)
}

// IsRunning reports whether a loop is currently executing. The value is
// advisory: it may be stale immediately after return and is intended for
// polling, not synchronization.
func (r *Runner) IsRunning() bool {
	return r.running.Load()
}

// Wait blocks until any outstanding detached loop has fully exited and
// returns the failure captured from it, if any. It does not request a stop.
// If no detached loop was ever started, Wait returns immediately.
//
// Wait is the teardown guarantee: a Runner must not be discarded while a
// detached loop still references it, so callers defer Wait (or Close) after
// RunAsync.
func (r *Runner) Wait() error {
	r.mu.Lock()
	done := r.done
	r.mu.Unlock()

	if done == nil {
		return nil
	}
	<-done
	return r.Err()
}

// Close stops the runner and waits for any detached loop to drain. It lets a
// Runner sit in a defer chain like any other closable resource.
func (r *Runner) Close() error {
	r.Stop()
	return r.Wait()
}

// Err returns the failure captured from the most recent detached loop, or nil.
// It is reset by the next RunAsync.
func (r *Runner) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runErr
}

func (r *Runner) setErr(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runErr = err
}
