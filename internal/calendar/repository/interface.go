package repository

import (
	"context"

	"calendar-grid/internal/model"
)

// Source is an external calendar backend events are read from and written to.
type Source interface {
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.Event, error)
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.Event, error)
	// Active reports whether at least one provider integration is usable.
	Active() bool
	Name() string
}
