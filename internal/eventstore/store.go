package eventstore

import (
	"sync"

	"ledger_go/internal/event"
)

// Store is an in-memory append-only event log. It is the single source of
// truth: all aggregate state is a projection folded from this log. The log
// lives for the duration of the process and is never compacted.
type Store struct {
	mu     sync.RWMutex
	events []event.Event
}

// New creates an empty event store.
func New() *Store {
	return &Store{}
}

// Append adds one event to the end of the log. It performs no validation
// and no deduplication; validation happens in the aggregates before any
// event is produced.
func (s *Store) Append(e event.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

// AllEvents returns a snapshot copy of the log in append order. The copy
// is independent of subsequent appends.
func (s *Store) AllEvents() []event.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]event.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Len returns the current number of events in the log.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}
