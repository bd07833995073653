package notatimer_test

import (
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	notatimer "github.com/kevin-j-channon/not-a-timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountSteps(t *testing.T) {
	r := notatimer.NewRunner()

	var n atomic.Uint64
	count := 100
	step := notatimer.ChainSteps(func() bool {
		count--
		return count > 0
	}, notatimer.CountSteps(&n))

	require.NoError(t, r.Run(step))

	assert.Equal(t, uint64(100), n.Load(), "one count per invocation, including the final false one")
	assert.Equal(t, 0, count)
}

func TestLimitSteps_BoundsAnUnboundedStep(t *testing.T) {
	r := notatimer.NewRunner()

	var n atomic.Uint64
	step := notatimer.ChainSteps(
		func() bool { return true },
		notatimer.CountSteps(&n),
		notatimer.LimitSteps(50),
	)

	require.NoError(t, r.Run(step))
	assert.Equal(t, uint64(50), n.Load())
}

func TestLimitSteps_ZeroNeverRunsStep(t *testing.T) {
	r := notatimer.NewRunner()

	ran := false
	step := notatimer.ChainSteps(func() bool {
		ran = true
		return true
	}, notatimer.LimitSteps(0))

	require.NoError(t, r.Run(step))
	assert.False(t, ran)
}

func TestLimitSteps_NaturalCompletionWins(t *testing.T) {
	r := notatimer.NewRunner()

	count := 10
	step := notatimer.ChainSteps(func() bool {
		count--
		return count > 0
	}, notatimer.LimitSteps(1000))

	require.NoError(t, r.Run(step))
	assert.Equal(t, 0, count)
}

func TestChainSteps_OutermostFirst(t *testing.T) {
	var order []string
	mw := func(name string) notatimer.StepMiddleware {
		return func(next notatimer.StepFunc) notatimer.StepFunc {
			return func() bool {
				order = append(order, name)
				return next()
			}
		}
	}

	step := notatimer.ChainSteps(func() bool { return false }, mw("outer"), mw("inner"))
	step()

	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestLogSteps_PreservesResult(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	count := 5
	step := notatimer.ChainSteps(func() bool {
		count--
		return count > 0
	}, notatimer.LogSteps(logger, 2))

	r := notatimer.NewRunner()
	require.NoError(t, r.Run(step))
	assert.Equal(t, 0, count)
}
