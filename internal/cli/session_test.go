package cli_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevin-j-channon/not-a-timer/internal/cli"
	"github.com/kevin-j-channon/not-a-timer/internal/config"
	"github.com/kevin-j-channon/not-a-timer/internal/logging"
	"github.com/kevin-j-channon/not-a-timer/pkg/ports"
)

func newSession(t *testing.T) *cli.Session {
	t.Helper()

	s, err := cli.NewSession(config.Default(), logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSession_Run_RecordsCompletedCountdown(t *testing.T) {
	s := newSession(t)

	require.NoError(t, s.Run(cli.RunOptions{Count: 100, RunID: "countdown"}))

	record, err := s.Store.Load(context.Background(), "countdown")
	require.NoError(t, err)
	assert.Equal(t, ports.OutcomeCompleted, record.Outcome)
	assert.Equal(t, uint64(100), record.Iterations)
	assert.Empty(t, record.Error)
	assert.False(t, record.FinishedAt.Before(record.StartedAt))
}

func TestSession_Run_DetachedStopRecordsStopped(t *testing.T) {
	s := newSession(t)

	go func() {
		time.Sleep(50 * time.Millisecond)
		for s.Runner.IsRunning() {
			s.Runner.Stop()
			time.Sleep(time.Millisecond)
		}
	}()

	require.NoError(t, s.Run(cli.RunOptions{Count: 1 << 40, Detach: true, RunID: "interrupted"}))

	record, err := s.Store.Load(context.Background(), "interrupted")
	require.NoError(t, err)
	assert.Equal(t, ports.OutcomeStopped, record.Outcome)
	assert.Greater(t, record.Iterations, uint64(0), "loop must have made progress before the stop")
}

func TestSession_Run_GeneratesRunID(t *testing.T) {
	s := newSession(t)

	require.NoError(t, s.Run(cli.RunOptions{Count: 10}))

	ids, err := s.Store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Contains(t, ids[0], "run-")
}
