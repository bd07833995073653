package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunRunStoreContract runs a suite of tests to verify that a RunStore
// implementation adheres to the defined interface contract.
func RunRunStoreContract(t *testing.T, store RunStore) {
	ctx := context.Background()
	runID := "contract-test-run-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		record := RunRecord{
			ID:         runID,
			StartedAt:  time.Now().Add(-time.Second).UTC().Truncate(time.Millisecond),
			FinishedAt: time.Now().UTC().Truncate(time.Millisecond),
			Iterations: 100,
			Outcome:    OutcomeCompleted,
		}

		err := store.Save(ctx, record)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, record.ID, loaded.ID)
		assert.Equal(t, record.Iterations, loaded.Iterations)
		assert.Equal(t, record.Outcome, loaded.Outcome)
		assert.True(t, record.StartedAt.Equal(loaded.StartedAt))
		assert.True(t, record.FinishedAt.Equal(loaded.FinishedAt))
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+runID)
		assert.ErrorIs(t, err, ErrRunNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, RunRecord{ID: runID, Outcome: OutcomeStopped})
		require.NoError(t, err)

		err = store.Delete(ctx, runID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, runID)
		assert.ErrorIs(t, err, ErrRunNotFound, "Load after Delete should return ErrRunNotFound")

		// Deleting again is a no-op, not an error.
		assert.NoError(t, store.Delete(ctx, runID))
	})

	t.Run("List", func(t *testing.T) {
		id1 := runID + "-1"
		id2 := runID + "-2"
		_ = store.Save(ctx, RunRecord{ID: id1, Outcome: OutcomeCompleted, FinishedAt: time.Now()})
		_ = store.Save(ctx, RunRecord{ID: id2, Outcome: OutcomeStopped, FinishedAt: time.Now()})

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		runs, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, runs, id1)
		assert.Contains(t, runs, id2)
	})
}
