package notatimer

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SignalManager ties cooperative stop to OS signals and context cancellation.
// It captures SIGINT (Ctrl+C) and SIGTERM so a long-lived detached loop can be
// stopped at the next iteration boundary instead of being killed mid-step.
type SignalManager struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewSignalManager creates a new manager and immediately starts listening for
// signals.
func NewSignalManager() *SignalManager {
	sm := &SignalManager{}
	sm.Reset()
	return sm
}

// Context returns the current signal context. It is cancelled when a signal
// arrives or Stop is called.
func (sm *SignalManager) Context() context.Context {
	return sm.ctx
}

// Reset re-arms the signal listener. Should be called after a signal has been
// handled to allow capturing subsequent signals.
func (sm *SignalManager) Reset() {
	if sm.cancel != nil {
		sm.cancel()
	}
	sm.ctx, sm.cancel = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// Stop permanently stops the signal listener.
func (sm *SignalManager) Stop() {
	if sm.cancel != nil {
		sm.cancel()
	}
}

// Bind stops r when the signal context fires. It returns immediately; the
// watch runs on its own goroutine and exits with the context.
func (sm *SignalManager) Bind(r *Runner) {
	ctx := sm.ctx
	go func() {
		<-ctx.Done()
		r.Stop()
	}()
}
