package google

import (
	"context"
	"errors"
	"testing"
	"time"

	"calendar-grid/internal/calendar/repository"
	"calendar-grid/internal/model"
	"calendar-grid/pkg/gcalendar"
	"calendar-grid/pkg/log"
)

type mockClient struct {
	listReq   gcalendar.ListEventsRequest
	createReq gcalendar.CreateEventRequest
	events    []gcalendar.Event
	err       error
}

func (m *mockClient) ListEvents(_ context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	m.listReq = req
	return m.events, m.err
}

func (m *mockClient) CreateEvent(_ context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.createReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &gcalendar.Event{ID: "g-1", Summary: req.Summary, StartTime: req.StartTime, EndTime: req.EndTime}, nil
}

func TestListEvents(t *testing.T) {
	start := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	m := &mockClient{events: []gcalendar.Event{{
		ID:         "a",
		Summary:    "Planning",
		StartTime:  start.Add(9 * time.Hour),
		EndTime:    start.Add(10 * time.Hour),
		Recurrence: []string{"EXDATE:20240610T090000Z", "RRULE:FREQ=DAILY"},
	}}}
	src := New(m, "", log.NewNop())

	events, err := src.ListEvents(context.Background(), repository.ListEventsOptions{Start: start, End: start.AddDate(0, 0, 7), Limit: 25})
	if err != nil {
		t.Fatalf("ListEvents() error: %v", err)
	}
	if m.listReq.CalendarID != "primary" || !m.listReq.SingleEvents || m.listReq.MaxResults != 25 {
		t.Errorf("unexpected request: %+v", m.listReq)
	}
	if len(events) != 1 || events[0].Title != "Planning" || events[0].Provider != "google" {
		t.Fatalf("unexpected events: %+v", events)
	}
	if events[0].Recurrence != "FREQ=DAILY" {
		t.Errorf("Recurrence = %q", events[0].Recurrence)
	}
}

func TestListEvents_ProviderFilter(t *testing.T) {
	m := &mockClient{events: []gcalendar.Event{{ID: "a"}}}
	src := New(m, "team", log.NewNop())

	events, err := src.ListEvents(context.Background(), repository.ListEventsOptions{Providers: []string{"microsoft"}})
	if err != nil || len(events) != 0 {
		t.Errorf("expected no events for other providers, got %v, %v", events, err)
	}
}

func TestListEvents_Failures(t *testing.T) {
	if _, err := New(nil, "", log.NewNop()).ListEvents(context.Background(), repository.ListEventsOptions{}); !errors.Is(err, repository.ErrNoIntegration) {
		t.Errorf("expected ErrNoIntegration, got %v", err)
	}

	src := New(&mockClient{err: errors.New("boom")}, "", log.NewNop())
	if _, err := src.ListEvents(context.Background(), repository.ListEventsOptions{}); !errors.Is(err, repository.ErrFailedToList) {
		t.Errorf("expected ErrFailedToList, got %v", err)
	}
}

func TestCreateEvent(t *testing.T) {
	m := &mockClient{}
	src := New(m, "team", log.NewNop())
	loc := time.FixedZone("UTC-4", -4*3600)

	ev, err := src.CreateEvent(context.Background(), repository.CreateEventOptions{
		Draft: model.EventDraft{
			Title:     "1:1",
			StartTime: time.Date(2024, 6, 12, 10, 0, 0, 0, loc),
			EndTime:   time.Date(2024, 6, 12, 10, 30, 0, 0, loc),
			Location:  "Room 2",
		},
		Timezone: "America/New_York",
	})
	if err != nil {
		t.Fatalf("CreateEvent() error: %v", err)
	}
	if m.createReq.CalendarID != "team" || m.createReq.StartTime.Location() != time.UTC || m.createReq.Location != "Room 2" {
		t.Errorf("unexpected request: %+v", m.createReq)
	}
	if ev.ID != "g-1" || ev.Title != "1:1" {
		t.Errorf("unexpected event: %+v", ev)
	}

	m.err = errors.New("denied")
	if _, err := src.CreateEvent(context.Background(), repository.CreateEventOptions{}); !errors.Is(err, repository.ErrFailedToCreate) {
		t.Errorf("expected ErrFailedToCreate, got %v", err)
	}
}
