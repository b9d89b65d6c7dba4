// Package store provides the normalized client-side state slices. Each store
// owns exactly one collection plus its loading status and is mutated only by
// its own fetch-triggered transitions; no two stores write the same data.
package store

import (
	"sync"

	"github.com/dawar-shafaque/restaurant-application/models"
)

// Status is the observable state of a store's single async fetch.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusError
)

// Store is a snapshot container driven by one fetch operation. Begin
// transitions to loading synchronously and hands back a generation token;
// Resolve and Fail apply only while that token is still the latest, so a
// stale response settling after a newer dispatch is discarded instead of
// overwriting fresher data.
type Store[T any] struct {
	mu     sync.Mutex
	status Status
	data   T
	errMsg string
	gen    uint64
}

// Snapshot is a point-in-time view of the store.
type Snapshot[T any] struct {
	Status Status
	Data   T
	Err    string
}

// Begin marks the store loading and returns the new generation.
func (s *Store[T]) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.status = StatusLoading
	s.errMsg = ""
	return s.gen
}

// Resolve installs data for the given generation. It reports whether the
// result was applied; a false return means a newer fetch superseded it.
func (s *Store[T]) Resolve(gen uint64, data T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	s.status = StatusLoaded
	s.data = data
	s.errMsg = ""
	return true
}

// Fail records an error for the given generation, subject to the same
// staleness rule as Resolve.
func (s *Store[T]) Fail(gen uint64, msg string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	s.status = StatusError
	s.errMsg = msg
	return true
}

// Reset returns the store to idle with zero-value data. Leaving the booking
// page resets the table search results this way.
func (s *Store[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.status = StatusIdle
	var zero T
	s.data = zero
	s.errMsg = ""
}

// Snapshot returns the current status, data and error message.
func (s *Store[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot[T]{Status: s.status, Data: s.data, Err: s.errMsg}
}

// Stores bundles the four domain slices.
type Stores struct {
	Locations       Store[[]models.Location]
	LocationOptions Store[[]models.LocationOption]
	Tables          Store[[]models.Table]
	Profile         Store[models.UserProfile]
}

func NewStores() *Stores {
	return &Stores{}
}
