package daterange

import (
	"errors"
	"fmt"
	"time"
)

// ViewType is the calendar display granularity.
type ViewType string

const (
	ViewDay      ViewType = "day"
	ViewWorkWeek ViewType = "work-week"
	ViewWeek     ViewType = "week"
	ViewMonth    ViewType = "month"
	ViewList     ViewType = "list"
)

// DayKeyFormat is the layout of calendar-day identifiers.
const DayKeyFormat = "2006-01-02"

var ErrInvalidView = errors.New("invalid view type")

// Views lists every supported view type.
var Views = []ViewType{ViewDay, ViewWorkWeek, ViewWeek, ViewMonth, ViewList}

// Valid reports whether v is one of the supported view types.
func (v ViewType) Valid() bool {
	switch v {
	case ViewDay, ViewWorkWeek, ViewWeek, ViewMonth, ViewList:
		return true
	}
	return false
}

// IsGrid reports whether the view lays events out spatially (every view except list).
func (v ViewType) IsGrid() bool {
	return v != ViewList
}

// ParseViewType converts outside input into a ViewType. Empty input means week.
func ParseViewType(s string) (ViewType, error) {
	if s == "" {
		return ViewWeek, nil
	}
	v := ViewType(s)
	if !v.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidView, s)
	}
	return v, nil
}

// DateRange is an inclusive [Start, End] interval.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t lies inside the range, boundaries included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Overlaps reports whether [start, end) intersects the range.
// A zero-length interval overlaps when its start is contained.
func (r DateRange) Overlaps(start, end time.Time) bool {
	if !end.After(start) {
		return r.Contains(start)
	}
	return !start.After(r.End) && end.After(r.Start)
}
