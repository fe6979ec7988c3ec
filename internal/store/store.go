package store

import (
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/talkincode/restodesk/internal/domain"
)

const commitTopic = "store:commit"

// Commit is published after every transition.
type Commit struct {
	Prev   State
	Next   State
	Action Action
}

// CommitFunc observes committed transitions. It runs synchronously after
// the new snapshot is visible and must not call Dispatch.
type CommitFunc func(c Commit)

// Store owns the current snapshot and is the single writer of state.
type Store struct {
	dispatchMu sync.Mutex
	mu         sync.RWMutex
	state      State
	bus        EventBus.Bus
	now        func() time.Time
}

type Option func(*Store)

// WithClock overrides the clock used to stamp actions that carry a time.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates a store holding initial.
func New(initial State, opts ...Option) *Store {
	s := &Store{
		state: initial,
		bus:   EventBus.New(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies the actions in order, publishing a commit for each, and
// returns the final snapshot. Nil actions are skipped.
func (s *Store) Dispatch(actions ...Action) State {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	for _, a := range actions {
		if a == nil {
			continue
		}
		a = s.stamp(a)

		s.mu.Lock()
		prev := s.state
		next := Apply(prev, a)
		s.state = next
		s.mu.Unlock()

		s.bus.Publish(commitTopic, Commit{Prev: prev, Next: next, Action: a})
	}
	return s.State()
}

// OnCommit registers fn to observe every committed transition.
func (s *Store) OnCommit(fn CommitFunc) error {
	return s.bus.Subscribe(commitTopic, func(c Commit) { fn(c) })
}

func (s *Store) stamp(a Action) Action {
	if u, ok := a.(UpdateOrder); ok && u.At.IsZero() {
		u.At = domain.FromTime(s.now())
		return u
	}
	return a
}
