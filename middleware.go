package notatimer

import (
	"log/slog"
	"sync/atomic"
)

// StepMiddleware wraps a StepFunc with extra behavior around each iteration.
// Middleware never changes the loop contract: the wrapped function still
// returns true to continue and false to finish.
type StepMiddleware func(StepFunc) StepFunc

// ChainSteps applies middlewares to step. The first middleware is the
// outermost wrapper, so it observes the iteration before the others.
func ChainSteps(step StepFunc, mws ...StepMiddleware) StepFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		step = mws[i](step)
	}
	return step
}

// CountSteps counts every invocation of the wrapped step into n. The counter
// is atomic so it can be read concurrently while a detached loop runs.
func CountSteps(n *atomic.Uint64) StepMiddleware {
	return func(next StepFunc) StepFunc {
		return func() bool {
			n.Add(1)
			return next()
		}
	}
}

// LimitSteps finishes the loop after at most max invocations, regardless of
// what the wrapped step returns. A max of zero means the step never runs.
func LimitSteps(max uint64) StepMiddleware {
	var n uint64
	return func(next StepFunc) StepFunc {
		return func() bool {
			if n >= max {
				return false
			}
			n++
			cont := next()
			return cont && n < max
		}
	}
}

// LogSteps logs loop progress every `every` iterations at debug level.
// An interval of zero disables logging.
func LogSteps(logger *slog.Logger, every uint64) StepMiddleware {
	var n uint64
	return func(next StepFunc) StepFunc {
		return func() bool {
			n++
			if every > 0 && n%every == 0 {
				logger.Debug("loop progress", "iterations", n)
			}
			return next()
		}
	}
}
