package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"calendar-grid/internal/calendar"
	repo "calendar-grid/internal/calendar/repository"
	"calendar-grid/internal/model"
)

// CreateEvent validates a draft and persists it through the source. Instants are
// sent in UTC. There is no retry: a rejection returns a *calendar.CreateError
// holding the draft as submitted.
func (uc *implUseCase) CreateEvent(ctx context.Context, input calendar.CreateEventInput) (calendar.CreateEventOutput, error) {
	draft, err := uc.normalizeDraft(input.Draft)
	if err != nil {
		return calendar.CreateEventOutput{}, err
	}
	if !uc.source.Active() {
		return calendar.CreateEventOutput{}, calendar.ErrNoIntegration
	}

	ev, err := uc.source.CreateEvent(ctx, repo.CreateEventOptions{
		Draft:    draft,
		Timezone: uc.location().String(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateEvent %s.CreateEvent: %v", uc.source.Name(), err)
		if errors.Is(err, repo.ErrNoIntegration) {
			return calendar.CreateEventOutput{}, calendar.ErrNoIntegration
		}
		return calendar.CreateEventOutput{}, &calendar.CreateError{Draft: input.Draft, Err: err}
	}

	// Cached pages may now miss the new event.
	uc.cache.Purge()

	return calendar.CreateEventOutput{Event: ev}, nil
}

// CreateFromSelection derives the interval of a committed selection and creates
// an event over it.
func (uc *implUseCase) CreateFromSelection(ctx context.Context, input calendar.CreateFromSelectionInput) (calendar.CreateEventOutput, error) {
	start, end, err := uc.tracker.Machine().Derive(input.Selection, uc.location())
	if err != nil {
		return calendar.CreateEventOutput{}, fmt.Errorf("%w: %v", calendar.ErrInvalidSelection, err)
	}

	return uc.CreateEvent(ctx, calendar.CreateEventInput{Draft: model.EventDraft{
		Title:       input.Title,
		Description: input.Description,
		StartTime:   start,
		EndTime:     end,
		Location:    input.Location,
		Attendees:   input.Attendees,
	}})
}

// normalizeDraft checks the draft and converts its instants to UTC. All-day drafts
// become floating dates: the local calendar dates at UTC midnight, at least one
// day long.
func (uc *implUseCase) normalizeDraft(d model.EventDraft) (model.EventDraft, error) {
	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" {
		return d, fmt.Errorf("%w: title is required", calendar.ErrInvalidPayload)
	}
	if d.StartTime.IsZero() || d.EndTime.IsZero() {
		return d, fmt.Errorf("%w: start_time and end_time are required", calendar.ErrInvalidPayload)
	}

	if d.AllDay {
		start, end := uc.floatingDate(d.StartTime), uc.floatingDate(d.EndTime)
		if !end.After(start) {
			end = start.AddDate(0, 0, 1)
		}
		d.StartTime, d.EndTime = start, end
	} else if !d.StartTime.Before(d.EndTime) {
		return d, fmt.Errorf("%w: start_time must be before end_time", calendar.ErrInvalidPayload)
	}

	d.StartTime = d.StartTime.UTC()
	d.EndTime = d.EndTime.UTC()
	d.Attendees = cleanAttendees(d.Attendees)
	return d, nil
}

func (uc *implUseCase) floatingDate(t time.Time) time.Time {
	t = t.In(uc.location())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func cleanAttendees(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, a := range in {
		a = strings.ToLower(strings.TrimSpace(a))
		if a == "" {
			continue
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}

