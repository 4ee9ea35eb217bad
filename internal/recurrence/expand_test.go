package recurrence_test

import (
	"testing"
	"time"

	"calendar-grid/internal/model"
	"calendar-grid/internal/recurrence"
	"calendar-grid/pkg/daterange"
)

func weekOf(t *testing.T) daterange.DateRange {
	t.Helper()
	c := daterange.NewWithLocation(time.UTC)
	return c.Compute(time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), daterange.ViewWeek)
}

func TestExpand_Daily(t *testing.T) {
	r := weekOf(t)
	ev := model.Event{
		ID:         "standup",
		Title:      "Standup",
		StartTime:  time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 6, 1, 9, 15, 0, 0, time.UTC),
		Recurrence: "RRULE:FREQ=DAILY;COUNT=30",
	}

	res := recurrence.Expand([]model.Event{ev}, r, time.UTC, 0)
	if len(res.Invalid) != 0 || len(res.Truncated) != 0 {
		t.Fatalf("unexpected invalid=%v truncated=%v", res.Invalid, res.Truncated)
	}
	if len(res.Events) != 7 {
		t.Fatalf("expected 7 occurrences in the week, got %d", len(res.Events))
	}

	first := res.Events[0]
	if !first.StartTime.Equal(time.Date(2024, 6, 9, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("first occurrence = %v", first.StartTime)
	}
	if first.Duration() != 15*time.Minute {
		t.Errorf("occurrence duration = %v", first.Duration())
	}
	if first.IsRecurring() {
		t.Errorf("occurrences must not carry the rule")
	}
	if first.ID != "standup_20240609T090000Z" {
		t.Errorf("occurrence id = %s", first.ID)
	}
}

func TestExpand_OverlapFromBeforeRange(t *testing.T) {
	r := weekOf(t)
	// Weekly Saturday 22:00–Sunday 02:00; the June 8 occurrence spills into June 9.
	ev := model.Event{
		ID:         "night",
		StartTime:  time.Date(2024, 6, 1, 22, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 6, 2, 2, 0, 0, 0, time.UTC),
		Recurrence: "FREQ=WEEKLY;BYDAY=SA",
	}

	res := recurrence.Expand([]model.Event{ev}, r, time.UTC, 0)
	if len(res.Events) != 2 {
		t.Fatalf("expected spill-over plus in-range occurrence, got %d", len(res.Events))
	}
	if res.Events[0].StartTime.Day() != 8 || res.Events[1].StartTime.Day() != 15 {
		t.Errorf("occurrences start on %d and %d", res.Events[0].StartTime.Day(), res.Events[1].StartTime.Day())
	}
}

func TestExpand_InvalidAndSingle(t *testing.T) {
	r := weekOf(t)
	single := model.Event{ID: "one", StartTime: r.Start.Add(time.Hour), EndTime: r.Start.Add(2 * time.Hour)}
	broken := model.Event{ID: "bad", StartTime: r.Start, EndTime: r.Start.Add(time.Hour), Recurrence: "FREQ=SOMETIMES"}

	res := recurrence.Expand([]model.Event{single, broken}, r, time.UTC, 0)
	if len(res.Events) != 2 {
		t.Fatalf("expected both events kept, got %d", len(res.Events))
	}
	if len(res.Invalid) != 1 || res.Invalid[0] != "bad" {
		t.Errorf("Invalid = %v", res.Invalid)
	}
}

func TestExpand_Truncated(t *testing.T) {
	r := weekOf(t)
	ev := model.Event{
		ID:         "tick",
		StartTime:  r.Start,
		EndTime:    r.Start.Add(time.Minute),
		Recurrence: "FREQ=HOURLY",
	}

	res := recurrence.Expand([]model.Event{ev}, r, time.UTC, 5)
	if len(res.Events) != 5 {
		t.Errorf("expected cap of 5, got %d", len(res.Events))
	}
	if len(res.Truncated) != 1 {
		t.Errorf("Truncated = %v", res.Truncated)
	}
}

func TestExpand_KeepsLocalHourAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	r := daterange.NewWithLocation(ny).Compute(time.Date(2024, 6, 12, 12, 0, 0, 0, ny), daterange.ViewWeek)

	// Parsed from the wire as a fixed -05:00 offset, in winter.
	est := time.FixedZone("", -5*60*60)
	ev := model.Event{
		ID:         "weekly",
		StartTime:  time.Date(2024, 1, 8, 9, 0, 0, 0, est),
		EndTime:    time.Date(2024, 1, 8, 9, 30, 0, 0, est),
		Recurrence: "RRULE:FREQ=WEEKLY",
	}

	res := recurrence.Expand([]model.Event{ev}, r, ny, 0)
	if len(res.Events) != 1 {
		t.Fatalf("expected 1 occurrence in the week, got %d", len(res.Events))
	}
	got := res.Events[0].StartTime.In(ny)
	want := time.Date(2024, 6, 10, 9, 0, 0, 0, ny)
	if !got.Equal(want) {
		t.Errorf("occurrence starts %v, want %v", got, want)
	}
	if res.Events[0].Duration() != 30*time.Minute {
		t.Errorf("duration = %v", res.Events[0].Duration())
	}
}

func TestExpand_AllDayStaysOnFloatingDates(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	r := daterange.NewWithLocation(tokyo).Compute(time.Date(2024, 6, 12, 12, 0, 0, 0, tokyo), daterange.ViewDay)

	ev := model.Event{
		ID:         "holiday",
		AllDay:     true,
		StartTime:  time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC),
		Recurrence: "FREQ=WEEKLY",
	}

	res := recurrence.Expand([]model.Event{ev}, r, tokyo, 0)
	if len(res.Events) == 0 {
		t.Fatal("expected the June 12 occurrence")
	}
	for _, occ := range res.Events {
		if occ.StartTime.Location() != time.UTC || occ.StartTime.Hour() != 0 {
			t.Errorf("all-day occurrence not at UTC midnight: %v", occ.StartTime)
		}
	}
}
