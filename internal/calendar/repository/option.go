package repository

import (
	"time"

	"calendar-grid/internal/model"
)

// ListEventsOptions holds the window and filters of an event fetch.
type ListEventsOptions struct {
	Providers []string
	Limit     int
	Start     time.Time
	End       time.Time
	Timezone  string
	NoCache   bool
}

// CreateEventOptions holds the event to persist. Instants are UTC.
type CreateEventOptions struct {
	Draft    model.EventDraft
	Timezone string
}
