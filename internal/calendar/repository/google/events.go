package google

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"calendar-grid/internal/calendar/repository"
	"calendar-grid/internal/model"
	"calendar-grid/pkg/gcalendar"
)

// ListEvents lists events in the window. Google expands recurring events itself,
// so the returned occurrences carry no recurrence rule.
func (r *implRepository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, error) {
	if !r.Active() {
		return nil, repository.ErrNoIntegration
	}
	if len(opt.Providers) > 0 && !slices.Contains(opt.Providers, providerName) {
		return []model.Event{}, nil
	}

	items, err := r.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID:   r.calendarID,
		TimeMin:      opt.Start,
		TimeMax:      opt.End,
		MaxResults:   int64(opt.Limit),
		SingleEvents: true,
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}

	events := make([]model.Event, 0, len(items))
	for _, item := range items {
		events = append(events, toModel(item))
	}
	return events, nil
}

// CreateEvent inserts the draft into the configured calendar.
func (r *implRepository) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.Event, error) {
	if !r.Active() {
		return model.Event{}, repository.ErrNoIntegration
	}

	d := opt.Draft
	created, err := r.client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  r.calendarID,
		Summary:     d.Title,
		Description: d.Description,
		Location:    d.Location,
		Attendees:   d.Attendees,
		StartTime:   d.StartTime.UTC(),
		EndTime:     d.EndTime.UTC(),
		AllDay:      d.AllDay,
		Timezone:    opt.Timezone,
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.Event{}, fmt.Errorf("%w: %v", repository.ErrFailedToCreate, err)
	}
	return toModel(*created), nil
}

func toModel(ev gcalendar.Event) model.Event {
	var rule string
	for _, line := range ev.Recurrence {
		if strings.HasPrefix(line, "RRULE:") {
			rule = strings.TrimPrefix(line, "RRULE:")
			break
		}
	}
	return model.Event{
		ID:          ev.ID,
		Title:       ev.Summary,
		Description: ev.Description,
		StartTime:   ev.StartTime,
		EndTime:     ev.EndTime,
		AllDay:      ev.AllDay,
		Location:    ev.Location,
		Attendees:   ev.Attendees,
		Recurrence:  rule,
		Provider:    providerName,
		HTMLLink:    ev.HtmlLink,
	}
}
