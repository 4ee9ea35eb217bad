// Package selection turns press-drag-release gestures over the slot grid into
// candidate event intervals. The gesture state is an explicit value so every
// transition is a pure function.
package selection

import (
	"errors"
	"fmt"
	"time"

	"calendar-grid/pkg/daterange"
	"calendar-grid/pkg/slotgrid"
)

var (
	ErrInvalidSlot = errors.New("slot index out of range")
	ErrInvalidDay  = errors.New("invalid day")
)

// Phase is the gesture phase.
type Phase int

const (
	Idle Phase = iota
	Selecting
)

func (p Phase) String() string {
	if p == Selecting {
		return "selecting"
	}
	return "idle"
}

// Selection is a slot span inside one day column. StartIndex may exceed EndIndex
// while dragging backward; Normalize orders them.
type Selection struct {
	Day        string
	StartIndex int
	EndIndex   int
}

// Normalize returns the covered slots as [start, endExclusive). The span always
// holds at least one slot.
func (s Selection) Normalize() (start, endExclusive int) {
	start, end := s.StartIndex, s.EndIndex
	if start > end {
		start, end = end, start
	}
	return start, end + 1
}

// Slots returns the number of covered slots.
func (s Selection) Slots() int {
	start, end := s.Normalize()
	return end - start
}

// Anchor is where the pointer went down.
type Anchor struct {
	Day   string
	Index int
}

// State is either Idle or Selecting{Anchor, Current}.
type State struct {
	Phase   Phase
	Anchor  Anchor
	Current Selection
}

// Machine holds the grid geometry the transitions clamp against.
type Machine struct {
	grid slotgrid.Config
}

// New creates a Machine for grid.
func New(grid slotgrid.Config) Machine {
	return Machine{grid: grid}
}

// Grid returns the grid configuration.
func (m Machine) Grid() slotgrid.Config {
	return m.grid
}

// PointerDown anchors a new selection on (day, index). Any selection in progress is
// replaced.
func (m Machine) PointerDown(day string, index int) (State, error) {
	if !m.grid.InRange(index) {
		return State{}, fmt.Errorf("%w: %d", ErrInvalidSlot, index)
	}
	if _, err := time.Parse(daterange.DayKeyFormat, day); err != nil {
		return State{}, fmt.Errorf("%w: %q", ErrInvalidDay, day)
	}
	return State{
		Phase:   Selecting,
		Anchor:  Anchor{Day: day, Index: index},
		Current: Selection{Day: day, StartIndex: index, EndIndex: index},
	}, nil
}

// Move extends the selection to index. Moves while idle or over another day column
// are ignored; the index is clamped into the grid.
func (m Machine) Move(st State, day string, index int) State {
	if st.Phase != Selecting || day != st.Anchor.Day {
		return st
	}
	st.Current.EndIndex = m.grid.Clamp(index)
	return st
}

// MoveTo is the geometric fallback of Move for pointer positions that are not over
// a slot cell. columns maps grid columns to day keys.
func (m Machine) MoveTo(st State, rect slotgrid.Rect, x, y float64, columns []string, rowHeight float64) State {
	if st.Phase != Selecting {
		return st
	}
	if rowHeight <= 0 {
		rowHeight = m.grid.SlotPixelHeight
	}
	pos, ok := slotgrid.CoordinatesToSlot(rect, x, y, len(columns), rowHeight)
	if !ok {
		return st
	}
	return m.Move(st, columns[pos.Column], pos.Slot)
}

// Release commits the selection. ok is false when no gesture was in progress.
func (m Machine) Release(st State) (sel Selection, next State, ok bool) {
	if st.Phase != Selecting {
		return Selection{}, State{}, false
	}
	return st.Current, State{}, true
}

// Cancel drops the anchor and the selection.
func (m Machine) Cancel(State) State {
	return State{}
}

// Click is the single-click shorthand: a two-slot block starting at index. On the
// last slot the block is shifted back one slot so it keeps its length.
func (m Machine) Click(day string, index int) (Selection, error) {
	st, err := m.PointerDown(day, index)
	if err != nil {
		return Selection{}, err
	}
	start, end := index, index+1
	if !m.grid.InRange(end) {
		start, end = index-1, index
	}
	return Selection{Day: st.Anchor.Day, StartIndex: start, EndIndex: end}, nil
}

// Derive converts a committed selection into absolute start and end instants,
// built as wall-clock times on the selection's day in loc.
func (m Machine) Derive(sel Selection, loc *time.Location) (start, end time.Time, err error) {
	if loc == nil {
		loc = time.UTC
	}
	day, err := time.ParseInLocation(daterange.DayKeyFormat, sel.Day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDay, sel.Day)
	}
	if !m.grid.InRange(sel.StartIndex) || !m.grid.InRange(sel.EndIndex) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %d..%d", ErrInvalidSlot, sel.StartIndex, sel.EndIndex)
	}

	first, endExclusive := sel.Normalize()
	return m.grid.At(day, first, loc), m.grid.At(day, endExclusive, loc), nil
}
