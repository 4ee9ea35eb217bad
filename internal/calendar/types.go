package calendar

import (
	"time"

	"calendar-grid/internal/bucket"
	"calendar-grid/internal/model"
	"calendar-grid/internal/selection"
	"calendar-grid/pkg/daterange"
	"calendar-grid/pkg/slotgrid"
)

// --- UseCase Inputs ---

// RangeInput selects a view anchored on a reference date. Date accepts
// YYYY-MM-DD, RFC3339 or relative words ("today", "next monday"); empty means now.
type RangeInput struct {
	View daterange.ViewType
	Date string
}

type ListEventsInput struct {
	View      daterange.ViewType
	Date      string
	Providers []string
	Limit     int
	NoCache   bool
}

type CreateEventInput struct {
	Draft model.EventDraft
}

type CreateFromSelectionInput struct {
	Selection   selection.Selection
	Title       string
	Description string
	Location    string
	Attendees   []string
}

type ExportInput struct {
	View      daterange.ViewType
	Date      string
	Providers []string
}

type BeginSelectionInput struct {
	Day   string
	Index int
}

// PointerInput is a pointer position that is not over a slot cell.
type PointerInput struct {
	Rect      slotgrid.Rect
	X         float64
	Y         float64
	Columns   []string // day key of each grid column, left to right
	RowHeight float64
}

// MoveSelectionInput moves the pointer either over a slot (Index set) or by raw
// coordinates (Pointer set).
type MoveSelectionInput struct {
	ID      string
	Day     string
	Index   *int
	Pointer *PointerInput
}

type ClickSelectionInput struct {
	Day   string
	Index int
}

// --- UseCase Outputs ---

type RangeOutput struct {
	View     daterange.ViewType
	Range    daterange.DateRange
	Days     []string
	Timezone string
}

type SlotsOutput struct {
	Timezone        string
	SlotMinutes     int
	SlotPixelHeight float64
	Slots           []slotgrid.TimeSlot
}

type ListEventsOutput struct {
	View       daterange.ViewType
	Range      daterange.DateRange
	Timezone   string
	Generation uint64
	Days       []bucket.Day
	Total      int
	Cached     bool
	// Invalid lists recurring events whose rule could not be expanded.
	Invalid []string
}

type CreateEventOutput struct {
	Event model.Event
}

type ExportOutput struct {
	Filename string
	Body     []byte
}

type SelectionOutput struct {
	ID    string
	State selection.State
}

// ReleaseSelectionOutput is a committed selection and the interval it covers.
type ReleaseSelectionOutput struct {
	Selection selection.Selection
	Start     time.Time
	End       time.Time
}
