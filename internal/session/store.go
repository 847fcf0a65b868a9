// Package session keeps one view state per browser session.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/ingostrakh/insurehub/internal/viewstate"
)

// ErrEmptyID is returned when an operation is given a blank session id.
var ErrEmptyID = errors.New("session id is required")

// Config bounds the store.
type Config struct {
	MaxSessions int
	TTL         time.Duration
}

// Store maps session ids to view states. Sessions are evicted when the store
// is full (least recently used first) or after TTL without activity. A
// missing session reads as viewstate.Default().
type Store struct {
	mu     sync.Mutex
	states *expirable.LRU[string, viewstate.State]

	subs    map[string]map[uint64]chan viewstate.State
	nextSub uint64
}

// NewStore creates an empty store.
func NewStore(cfg Config) *Store {
	size := cfg.MaxSessions
	if size <= 0 {
		size = 10000
	}
	return &Store{
		states: expirable.NewLRU[string, viewstate.State](size, nil, cfg.TTL),
		subs:   make(map[string]map[uint64]chan viewstate.State),
	}
}

// NewID returns a fresh random session id.
func NewID() string {
	return uuid.NewString()
}

// Get returns the state for id and refreshes its expiry.
func (s *Store) Get(id string) (viewstate.State, error) {
	if id == "" {
		return viewstate.State{}, ErrEmptyID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.load(id)
	s.states.Add(id, st)
	return st, nil
}

// Update applies fn to the state for id. If fn returns an error the stored
// state is left as it was. The new state is published to subscribers.
func (s *Store) Update(id string, fn func(*viewstate.State) error) (viewstate.State, error) {
	if id == "" {
		return viewstate.State{}, ErrEmptyID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.load(id)
	next := st
	if err := fn(&next); err != nil {
		return st, err
	}

	s.states.Add(id, next)
	s.publish(id, next)
	return next, nil
}

// Apply is Update with a single viewstate.Action.
func (s *Store) Apply(id string, a viewstate.Action) (viewstate.State, error) {
	return s.Update(id, func(st *viewstate.State) error { return st.Apply(a) })
}

// Delete drops the session. Subscribers stay attached and will see the
// default state on the next update.
func (s *Store) Delete(id string) {
	s.states.Remove(id)
}

// Len returns the number of tracked sessions.
func (s *Store) Len() int {
	return s.states.Len()
}

// Subscribe returns a channel receiving every state committed for id after
// the call. Slow readers only see the most recent state. cancel must be
// called to release the subscription.
func (s *Store) Subscribe(id string) (<-chan viewstate.State, func()) {
	ch := make(chan viewstate.State, 1)

	s.mu.Lock()
	s.nextSub++
	key := s.nextSub
	if s.subs[id] == nil {
		s.subs[id] = make(map[uint64]chan viewstate.State)
	}
	s.subs[id][key] = ch
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs[id], key)
			if len(s.subs[id]) == 0 {
				delete(s.subs, id)
			}
			close(ch)
		})
	}
	return ch, cancel
}

// load must be called with s.mu held.
func (s *Store) load(id string) viewstate.State {
	if st, ok := s.states.Get(id); ok {
		return st
	}
	return viewstate.Default()
}

// publish must be called with s.mu held.
func (s *Store) publish(id string, st viewstate.State) {
	for _, ch := range s.subs[id] {
		select {
		case ch <- st:
		default:
			// Replace the stale snapshot.
			select {
			case <-ch:
			default:
			}
			ch <- st
		}
	}
}
