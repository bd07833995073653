// Package memory provides the ephemeral in-process RunStore, the default when
// no shared backend is configured.
package memory

import (
	"context"
	"sync"

	"github.com/kevin-j-channon/not-a-timer/pkg/ports"
)

// Store implements ports.RunStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]ports.RunRecord
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]ports.RunRecord),
	}
}

// Save persists the record in memory.
func (s *Store) Save(ctx context.Context, record ports.RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[record.ID] = record
	return nil
}

// Load retrieves a record from memory.
func (s *Store) Load(ctx context.Context, id string) (ports.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.data[id]
	if !ok {
		return ports.RunRecord{}, ports.ErrRunNotFound
	}
	return record, nil
}

// Delete removes a record.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns the IDs of all recorded runs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]string, 0, len(s.data))
	for id := range s.data {
		runs = append(runs, id)
	}
	return runs, nil
}
