package ports

import (
	"context"
	"errors"
	"time"
)

// ErrRunNotFound is returned when a run record does not exist in the store.
var ErrRunNotFound = errors.New("run not found")

// Run outcomes as recorded in RunRecord.Outcome.
const (
	OutcomeCompleted = "completed" // step function returned false
	OutcomeStopped   = "stopped"   // external Stop observed
	OutcomeFailed    = "failed"    // step function panicked
)

// RunRecord captures the result of one completed loop cycle.
type RunRecord struct {
	ID         string    `json:"id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Iterations uint64    `json:"iterations"`
	Outcome    string    `json:"outcome"`
	Error      string    `json:"error,omitempty"`
}

// Duration returns the wall-clock span of the run.
func (r RunRecord) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// RunStore defines the interface for persisting run history.
type RunStore interface {
	// Save persists the record, keyed by its ID.
	Save(ctx context.Context, record RunRecord) error

	// Load retrieves a record by ID.
	// Returns ErrRunNotFound if the record does not exist.
	Load(ctx context.Context, id string) (RunRecord, error)

	// List returns the IDs of all recorded runs.
	List(ctx context.Context) ([]string, error)

	// Delete removes a record. Deleting a missing record is not an error.
	Delete(ctx context.Context, id string) error
}
