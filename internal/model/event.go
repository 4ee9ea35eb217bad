package model

import "time"

// Event is a calendar event as returned by an event source.
type Event struct {
	ID          string
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
	Location    string
	Attendees   []string
	Recurrence  string // RRULE body without the "RRULE:" prefix; empty for single events
	Provider    string // source provider, e.g. "google" or "microsoft"
	HTMLLink    string
}

// Duration returns the length of the event.
func (e Event) Duration() time.Duration {
	return e.EndTime.Sub(e.StartTime)
}

// IsRecurring reports whether the event carries a recurrence rule.
func (e Event) IsRecurring() bool {
	return e.Recurrence != ""
}

// EventDraft is the payload of a not yet persisted event.
type EventDraft struct {
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
	Location    string
	Attendees   []string
}
