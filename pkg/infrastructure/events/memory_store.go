package events

import "sync"

// MemoryJournal is a thread-safe in-memory journal. Events are kept in
// arrival order, both globally and within each run's stream.
type MemoryJournal struct {
	mu      sync.RWMutex
	streams map[string][]Event
	all     []Event
}

var _ Journal = (*MemoryJournal)(nil)

// NewMemoryJournal creates an empty journal.
func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{
		streams: make(map[string][]Event),
	}
}

// Append records an event, assigning its version within the run stream.
func (j *MemoryJournal) Append(event Event) {
	j.mu.Lock()
	defer j.mu.Unlock()

	event.Version = len(j.streams[event.RunID]) + 1
	j.streams[event.RunID] = append(j.streams[event.RunID], event)
	j.all = append(j.all, event)
}

// Events returns the recorded events of one run, in append order.
func (j *MemoryJournal) Events(runID string) []Event {
	j.mu.RLock()
	defer j.mu.RUnlock()

	return append([]Event(nil), j.streams[runID]...)
}

// All returns every recorded event across runs, in append order.
func (j *MemoryJournal) All() []Event {
	j.mu.RLock()
	defer j.mu.RUnlock()

	return append([]Event(nil), j.all...)
}
