package store

import (
	"sort"
	"sync"
	"time"

	"verdant/internal/core/domain/model/kernel"
)

// Store owns the state tree. Reads take a snapshot pointer; writes go
// through the dispatcher methods in actions.go, which funnel into the
// unexported commit. There is deliberately no public setter: the
// dispatchers are the whole mutation surface.
type Store struct {
	mu    sync.Mutex
	state *AppState

	subMu  sync.Mutex
	subs   map[int]func()
	nextID int

	now func() time.Time
	seq *kernel.OrderSequence
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithClock replaces the wall clock. Tests use this to pin checkout and
// timeline timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithOrderSequence replaces the order id sequence.
func WithOrderSequence(seq *kernel.OrderSequence) Option {
	return func(s *Store) { s.seq = seq }
}

// New creates a store holding the given initial state.
func New(initial AppState, opts ...Option) *Store {
	s := &Store{
		state: &initial,
		subs:  make(map[int]func()),
		now:   time.Now,
		seq:   kernel.NewOrderSequence(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state tree. The returned tree is an immutable
// snapshot: it never changes after commit, so callers may hold it across
// further transitions.
func (s *Store) State() *AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers a listener invoked synchronously after every
// committed transition. The returned function removes the listener; it is
// safe to call more than once.
func (s *Store) Subscribe(listener func()) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = listener

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// commit runs a transition under the writer lock. The updater receives the
// current tree and returns the next one; returning the same pointer (or
// nil) marks the transition a no-op and skips notification. The new tree
// is only assigned after the updater returns, so an updater that panics
// leaves the last committed tree in place.
//
// Listeners run synchronously before commit returns, outside the writer
// lock so they can read the store freely.
func (s *Store) commit(update func(current *AppState) *AppState) {
	var listeners []func()

	func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		next := update(s.state)
		if next == nil || next == s.state {
			return
		}
		s.state = next
		listeners = s.listenerSnapshot()
	}()

	for _, listener := range listeners {
		listener()
	}
}

// listenerSnapshot copies the current listeners in registration order.
func (s *Store) listenerSnapshot() []func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	if len(s.subs) == 0 {
		return nil
	}
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	listeners := make([]func(), 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, s.subs[id])
	}
	return listeners
}
