package notatimer_test

import (
	"testing"
	"time"

	notatimer "github.com/kevin-j-channon/not-a-timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAsync_WaitDrainsNaturalCompletion(t *testing.T) {
	r := notatimer.NewRunner()

	// Large enough that the loop is still going when Wait is entered.
	count := int64(5_000_000)
	require.NoError(t, r.RunAsync(func() bool {
		count--
		return count > 0
	}))

	// No stop: teardown must block until the loop finishes on its own.
	require.NoError(t, r.Wait())

	assert.Equal(t, int64(0), count)
	assert.False(t, r.IsRunning())
}

func TestRunAsync_StopHaltsBeforeNaturalCompletion(t *testing.T) {
	r := notatimer.NewRunner()

	count := int64(1) << 40
	require.NoError(t, r.RunAsync(func() bool {
		count--
		return count > 0
	}))

	time.Sleep(100 * time.Millisecond)
	r.Stop()
	require.NoError(t, r.Wait())

	assert.Greater(t, count, int64(0), "loop must have stopped early")
	assert.Less(t, count, int64(1)<<40, "loop must have made progress")
}

func TestRunAsync_LivenessReporting(t *testing.T) {
	r := notatimer.NewRunner()

	count := int64(1) << 40
	require.NoError(t, r.RunAsync(func() bool {
		count--
		return count > 0
	}))

	// Handshake guarantee: liveness is already observable on return.
	assert.True(t, r.IsRunning())

	r.Stop()
	require.Eventually(t, func() bool { return !r.IsRunning() },
		time.Second, time.Millisecond, "liveness must clear once the in-flight iteration finishes")

	require.NoError(t, r.Wait())
	assert.Greater(t, count, int64(0))
}

func TestRunAsync_RejectsOverlappingLoop(t *testing.T) {
	r := notatimer.NewRunner()
	defer r.Close()

	require.NoError(t, r.RunAsync(func() bool { return true }))

	assert.ErrorIs(t, r.Run(func() bool { return false }), notatimer.ErrAlreadyRunning)
	assert.ErrorIs(t, r.RunAsync(func() bool { return false }), notatimer.ErrAlreadyRunning)
}

func TestRunAsync_PanicSurfacedByWait(t *testing.T) {
	r := notatimer.NewRunner()

	require.NoError(t, r.RunAsync(func() bool { panic("step exploded") }))

	err := r.Wait()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step exploded")
	assert.False(t, r.IsRunning())

	// The captured failure stays queryable until the next detached run.
	assert.Equal(t, err, r.Err())

	require.NoError(t, r.RunAsync(func() bool { return false }))
	require.NoError(t, r.Wait())
	assert.NoError(t, r.Err())
}

func TestClose_StopsAndDrains(t *testing.T) {
	r := notatimer.NewRunner()

	count := int64(1) << 40
	require.NoError(t, r.RunAsync(func() bool {
		count--
		return count > 0
	}))

	require.NoError(t, r.Close())

	assert.False(t, r.IsRunning())
	assert.Greater(t, count, int64(0))
}

func TestRunAsync_WaitIsReentrant(t *testing.T) {
	r := notatimer.NewRunner()

	require.NoError(t, r.RunAsync(func() bool { return false }))

	done := make(chan error, 2)
	go func() { done <- r.Wait() }()
	go func() { done <- r.Wait() }()

	for i := 0; i < 2; i++ {
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("Wait hung")
		}
	}
}
