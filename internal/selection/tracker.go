package selection

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"calendar-grid/pkg/slotgrid"
)

var (
	ErrSessionNotFound = errors.New("selection session not found")
	ErrNotSelecting    = errors.New("selection session is not selecting")
)

// Tracker keeps gesture state for clients that drive the machine remotely, one
// session per press-drag-release. Abandoned sessions expire.
type Tracker struct {
	machine  Machine
	mu       sync.Mutex
	sessions *expirable.LRU[string, State]
}

// NewTracker creates a Tracker holding at most size sessions for ttl each.
func NewTracker(m Machine, size int, ttl time.Duration) *Tracker {
	if size <= 0 {
		size = 1000
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Tracker{
		machine:  m,
		sessions: expirable.NewLRU[string, State](size, nil, ttl),
	}
}

// Machine returns the underlying state machine.
func (t *Tracker) Machine() Machine {
	return t.machine
}

// Begin handles pointer-down and opens a session.
func (t *Tracker) Begin(day string, index int) (string, State, error) {
	st, err := t.machine.PointerDown(day, index)
	if err != nil {
		return "", State{}, err
	}
	id := uuid.NewString()
	t.sessions.Add(id, st)
	return id, st, nil
}

// Get returns the current state of a session.
func (t *Tracker) Get(id string) (State, error) {
	st, ok := t.sessions.Get(id)
	if !ok {
		return State{}, ErrSessionNotFound
	}
	return st, nil
}

// Move handles pointer-move over a slot cell.
func (t *Tracker) Move(id, day string, index int) (State, error) {
	return t.update(id, func(st State) State {
		return t.machine.Move(st, day, index)
	})
}

// MoveTo handles pointer-move outside any slot cell.
func (t *Tracker) MoveTo(id string, rect slotgrid.Rect, x, y float64, columns []string, rowHeight float64) (State, error) {
	return t.update(id, func(st State) State {
		return t.machine.MoveTo(st, rect, x, y, columns, rowHeight)
	})
}

// Release handles pointer-up: the session ends and its selection is returned.
func (t *Tracker) Release(id string) (Selection, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	st, ok := t.sessions.Get(id)
	if !ok {
		return Selection{}, ErrSessionNotFound
	}
	sel, _, ok := t.machine.Release(st)
	t.sessions.Remove(id)
	if !ok {
		return Selection{}, ErrNotSelecting
	}
	return sel, nil
}

// Cancel drops a session.
func (t *Tracker) Cancel(id string) error {
	if !t.sessions.Remove(id) {
		return ErrSessionNotFound
	}
	return nil
}

// Len returns the number of live sessions.
func (t *Tracker) Len() int {
	return t.sessions.Len()
}

func (t *Tracker) update(id string, fn func(State) State) (State, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	st, ok := t.sessions.Get(id)
	if !ok {
		return State{}, ErrSessionNotFound
	}
	st = fn(st)
	t.sessions.Add(id, st)
	return st, nil
}
