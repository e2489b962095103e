package form

import (
	"sync"

	"github.com/Krithish69/Agriculture-Prediction/internal/report"
)

// Snapshot is an immutable copy of the store's state. Mutations replace
// the snapshot wholesale, so observers can compare snapshots by value to
// detect change.
type Snapshot struct {
	Fields  Fields
	Loading bool

	// ErrMsg is the submission error message, empty when the last
	// submission succeeded or none was made.
	ErrMsg string

	// LocationStatus is the transient enrichment status line.
	LocationStatus string

	// LocationName is the resolved place label from the last successful
	// enrichment.
	LocationName string

	// Report is the reconciled financial report of the last successful
	// submission, nil before the first one.
	Report *report.Report
}

// Store owns the form state. All reads and writes go through it; every
// mutation produces a fresh Snapshot and notifies subscribers.
type Store struct {
	mu    sync.Mutex
	state Snapshot
	subs  []func(Snapshot)
}

// NewStore creates a store with the given initial field values.
func NewStore(fields Fields) *Store {
	return &Store{state: Snapshot{Fields: fields}}
}

// Subscribe registers an observer called after every state change.
// Observers run synchronously under the store lock order, in
// registration order.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Set merges one changed field into the state, preserving all others.
// No validation is performed at this layer.
func (s *Store) Set(name, raw string) error {
	s.mu.Lock()
	fields, err := s.state.Fields.WithField(name, raw)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.state.Fields = fields
	s.publish()
	return nil
}

// Update applies an arbitrary mutation to the state. Enrichment uses it
// to apply its merged weather fields and place name in one atomic step.
func (s *Store) Update(fn func(*Snapshot)) {
	s.mu.Lock()
	fn(&s.state)
	s.publish()
}

// BeginSubmit flips the loading flag on. It returns false, without
// changing state, when a submission is already in flight.
func (s *Store) BeginSubmit() bool {
	s.mu.Lock()
	if s.state.Loading {
		s.mu.Unlock()
		return false
	}
	s.state.Loading = true
	s.state.ErrMsg = ""
	s.publish()
	return true
}

// EndSubmit releases the loading flag and records the submission outcome.
// On failure the previous report is left untouched.
func (s *Store) EndSubmit(rep *report.Report, errMsg string) {
	s.mu.Lock()
	s.state.Loading = false
	s.state.ErrMsg = errMsg
	if rep != nil {
		s.state.Report = rep
	}
	s.publish()
}

// SetLocationStatus replaces the enrichment status line.
func (s *Store) SetLocationStatus(msg string) {
	s.mu.Lock()
	s.state.LocationStatus = msg
	s.publish()
}

// ClearLocationStatus blanks the status line only if it still shows the
// given message. The delayed status clear uses this so it never wipes a
// newer attempt's status.
func (s *Store) ClearLocationStatus(ifEquals string) {
	s.mu.Lock()
	if s.state.LocationStatus != ifEquals {
		s.mu.Unlock()
		return
	}
	s.state.LocationStatus = ""
	s.publish()
}

// SetLocationName replaces the resolved place label.
func (s *Store) SetLocationName(name string) {
	s.mu.Lock()
	s.state.LocationName = name
	s.publish()
}

// publish snapshots the state, releases the lock and notifies
// subscribers. Callers must hold the lock.
func (s *Store) publish() {
	snap := s.state
	subs := s.subs
	s.mu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}
}
