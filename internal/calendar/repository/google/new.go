// Package google reads and writes events directly against Google Calendar, for
// deployments that run without the office gateway.
package google

import (
	"context"
	"fmt"

	"calendar-grid/internal/calendar/repository"
	"calendar-grid/pkg/gcalendar"
	"calendar-grid/pkg/log"
)

const providerName = "google"

// Client is the subset of the Google Calendar client the source needs.
type Client interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type implRepository struct {
	client     Client
	calendarID string
	l          log.Logger
}

// New creates a Google Calendar backed Source. A nil client yields an inactive
// source that reports ErrNoIntegration.
func New(client Client, calendarID string, l log.Logger) repository.Source {
	if calendarID == "" {
		calendarID = "primary"
	}
	return &implRepository{client: client, calendarID: calendarID, l: l}
}

func (r *implRepository) Name() string {
	return providerName
}

func (r *implRepository) Active() bool {
	return r.client != nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("calendar/repository/google.%s", method)
}
