package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"calendar-grid/internal/bucket"
	"calendar-grid/internal/calendar"
	repo "calendar-grid/internal/calendar/repository"
	"calendar-grid/internal/model"
	"calendar-grid/internal/selection"
	"calendar-grid/pkg/daterange"
	"calendar-grid/pkg/slotgrid"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockSource struct {
	mu       sync.Mutex
	inactive bool
	listFn   func(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error)
	createFn func(ctx context.Context, opt repo.CreateEventOptions) (model.Event, error)

	listCalls int
	created   []repo.CreateEventOptions
}

func (m *mockSource) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error) {
	m.mu.Lock()
	m.listCalls++
	m.mu.Unlock()
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx, opt)
}

func (m *mockSource) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (model.Event, error) {
	m.mu.Lock()
	m.created = append(m.created, opt)
	m.mu.Unlock()
	if m.createFn == nil {
		return model.Event{ID: "new", Title: opt.Draft.Title, StartTime: opt.Draft.StartTime, EndTime: opt.Draft.EndTime}, nil
	}
	return m.createFn(ctx, opt)
}

func (m *mockSource) Active() bool { return !m.inactive }
func (m *mockSource) Name() string { return "mock" }

func (m *mockSource) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listCalls
}

func newYork(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	return loc
}

func newTestUseCase(t *testing.T, src *mockSource) (*implUseCase, *time.Location) {
	t.Helper()
	loc := newYork(t)
	now := time.Date(2024, 6, 12, 10, 0, 0, 0, loc)
	return New(&mockLogger{}, src, Options{
		Location:  loc,
		Grid:      slotgrid.Default(),
		Providers: []string{"google"},
		Now:       func() time.Time { return now },
	}), loc
}

func TestRange(t *testing.T) {
	uc, _ := newTestUseCase(t, &mockSource{})
	ctx := context.Background()

	out, err := uc.Range(ctx, calendar.RangeInput{View: daterange.ViewWorkWeek})
	if err != nil {
		t.Fatalf("Range() error: %v", err)
	}
	want := []string{"2024-06-10", "2024-06-11", "2024-06-12", "2024-06-13", "2024-06-14"}
	if strings.Join(out.Days, ",") != strings.Join(want, ",") {
		t.Errorf("Days = %v, want %v", out.Days, want)
	}
	if out.Timezone != "America/New_York" {
		t.Errorf("Timezone = %s", out.Timezone)
	}

	out, err = uc.Range(ctx, calendar.RangeInput{Date: "2024-06-30"})
	if err != nil {
		t.Fatalf("Range() error: %v", err)
	}
	if out.View != daterange.ViewWeek || out.Days[0] != "2024-06-30" || len(out.Days) != 7 {
		t.Errorf("default week range = %v %v", out.View, out.Days)
	}

	if _, err := uc.Range(ctx, calendar.RangeInput{View: "year"}); !errors.Is(err, calendar.ErrInvalidView) {
		t.Errorf("expected ErrInvalidView, got %v", err)
	}
	if _, err := uc.Range(ctx, calendar.RangeInput{View: daterange.ViewDay, Date: "someday"}); !errors.Is(err, calendar.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestSlots(t *testing.T) {
	uc, _ := newTestUseCase(t, &mockSource{})

	out := uc.Slots(context.Background())
	if len(out.Slots) != 65 {
		t.Fatalf("expected 65 slots, got %d", len(out.Slots))
	}
	if out.Slots[0].Label != "6:00 AM" || out.Slots[64].Label != "10:00 PM" {
		t.Errorf("labels = %q .. %q", out.Slots[0].Label, out.Slots[64].Label)
	}
	if out.SlotMinutes != 15 || out.SlotPixelHeight != 24 {
		t.Errorf("unexpected geometry: %+v", out)
	}
}

func TestListEvents_Bucketing(t *testing.T) {
	loc := newYork(t)
	late := model.Event{
		ID:        "late",
		Title:     "Release night",
		StartTime: time.Date(2024, 6, 12, 23, 0, 0, 0, loc),
		EndTime:   time.Date(2024, 6, 13, 1, 0, 0, 0, loc),
	}
	src := &mockSource{listFn: func(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error) {
		if opt.Timezone != "America/New_York" || len(opt.Providers) != 1 || opt.Limit != defaultLimit {
			t.Errorf("unexpected options: %+v", opt)
		}
		return []model.Event{late}, nil
	}}
	uc, _ := newTestUseCase(t, src)
	sc := model.Scope{UserID: "u1", PanelID: "main"}

	grid, err := uc.ListEvents(context.Background(), sc, calendar.ListEventsInput{View: daterange.ViewWeek})
	if err != nil {
		t.Fatalf("ListEvents() error: %v", err)
	}
	if got := keysWithEvents(grid.Days); got != "2024-06-12,2024-06-13" {
		t.Errorf("grid buckets = %s", got)
	}

	list, err := uc.ListEvents(context.Background(), sc, calendar.ListEventsInput{View: daterange.ViewList, NoCache: true})
	if err != nil {
		t.Fatalf("ListEvents() error: %v", err)
	}
	if got := keysWithEvents(list.Days); got != "2024-06-12" {
		t.Errorf("list buckets = %s", got)
	}
	if list.Generation <= grid.Generation {
		t.Errorf("generations must increase: %d then %d", grid.Generation, list.Generation)
	}
}

func keysWithEvents(days []bucket.Day) string {
	var keys []string
	for _, d := range days {
		if d.Len() > 0 {
			keys = append(keys, d.Key)
		}
	}
	return strings.Join(keys, ",")
}

func TestListEvents_Cache(t *testing.T) {
	src := &mockSource{listFn: func(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error) {
		return []model.Event{}, nil
	}}
	uc, _ := newTestUseCase(t, src)
	sc := model.Scope{UserID: "u1", PanelID: "main"}
	ctx := context.Background()

	first, _ := uc.ListEvents(ctx, sc, calendar.ListEventsInput{View: daterange.ViewMonth})
	second, _ := uc.ListEvents(ctx, sc, calendar.ListEventsInput{View: daterange.ViewMonth})
	if first.Cached || !second.Cached || src.calls() != 1 {
		t.Errorf("expected second fetch from cache: cached=%v/%v calls=%d", first.Cached, second.Cached, src.calls())
	}

	third, _ := uc.ListEvents(ctx, sc, calendar.ListEventsInput{View: daterange.ViewMonth, NoCache: true})
	if third.Cached || src.calls() != 2 {
		t.Errorf("noCache must reach the source: cached=%v calls=%d", third.Cached, src.calls())
	}

	if _, err := uc.CreateEvent(ctx, calendar.CreateEventInput{Draft: model.EventDraft{
		Title:     "Lunch",
		StartTime: time.Date(2024, 6, 12, 16, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 6, 12, 17, 0, 0, 0, time.UTC),
	}}); err != nil {
		t.Fatalf("CreateEvent() error: %v", err)
	}
	uc.ListEvents(ctx, sc, calendar.ListEventsInput{View: daterange.ViewMonth})
	if src.calls() != 3 {
		t.Errorf("create must invalidate the cache, calls=%d", src.calls())
	}
}

func TestListEvents_Recurrence(t *testing.T) {
	loc := newYork(t)
	src := &mockSource{listFn: func(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error) {
		return []model.Event{{
			ID:         "standup",
			Title:      "Standup",
			StartTime:  time.Date(2024, 6, 1, 9, 0, 0, 0, loc),
			EndTime:    time.Date(2024, 6, 1, 9, 15, 0, 0, loc),
			Recurrence: "RRULE:FREQ=DAILY",
		}}, nil
	}}
	uc, _ := newTestUseCase(t, src)

	out, err := uc.ListEvents(context.Background(), model.Scope{PanelID: "p"}, calendar.ListEventsInput{View: daterange.ViewWeek})
	if err != nil {
		t.Fatalf("ListEvents() error: %v", err)
	}
	if out.Total != 7 {
		t.Errorf("expected 7 occurrences, got %d", out.Total)
	}
	for _, d := range out.Days {
		if len(d.Timed) != 1 {
			t.Errorf("day %s has %d events", d.Key, len(d.Timed))
		}
	}
}

func TestListEvents_Superseded(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	src := &mockSource{}
	src.listFn = func(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error) {
		first := false
		once.Do(func() { first = true })
		if first {
			close(entered)
			<-release
		}
		return []model.Event{}, nil
	}
	uc, _ := newTestUseCase(t, src)
	sc := model.Scope{UserID: "u1", PanelID: "main"}

	errc := make(chan error, 1)
	go func() {
		_, err := uc.ListEvents(context.Background(), sc, calendar.ListEventsInput{View: daterange.ViewWeek})
		errc <- err
	}()
	<-entered

	// The user navigates while the first fetch is outstanding.
	if _, err := uc.ListEvents(context.Background(), sc, calendar.ListEventsInput{View: daterange.ViewMonth}); err != nil {
		t.Fatalf("newer fetch failed: %v", err)
	}
	// Another panel does not interfere.
	if _, err := uc.ListEvents(context.Background(), model.Scope{UserID: "u1", PanelID: "side"}, calendar.ListEventsInput{View: daterange.ViewDay}); err != nil {
		t.Fatalf("other panel failed: %v", err)
	}

	close(release)
	if err := <-errc; !errors.Is(err, calendar.ErrSuperseded) {
		t.Errorf("expected ErrSuperseded, got %v", err)
	}
}

func TestListEvents_RejectedRequestKeepsGeneration(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	src := &mockSource{}
	src.listFn = func(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error) {
		first := false
		once.Do(func() { first = true })
		if first {
			close(entered)
			<-release
		}
		return []model.Event{}, nil
	}
	uc, _ := newTestUseCase(t, src)
	sc := model.Scope{UserID: "u1", PanelID: "main"}

	errc := make(chan error, 1)
	go func() {
		_, err := uc.ListEvents(context.Background(), sc, calendar.ListEventsInput{View: daterange.ViewWeek})
		errc <- err
	}()
	<-entered

	if _, err := uc.ListEvents(context.Background(), sc, calendar.ListEventsInput{Date: "not a date"}); !errors.Is(err, calendar.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if _, err := uc.ListEvents(context.Background(), sc, calendar.ListEventsInput{View: "year"}); !errors.Is(err, calendar.ErrInvalidView) {
		t.Fatalf("expected ErrInvalidView, got %v", err)
	}

	close(release)
	if err := <-errc; err != nil {
		t.Errorf("in-flight fetch failed after rejected requests: %v", err)
	}
}

func TestListEvents_TotalCountsListedEvents(t *testing.T) {
	loc := newYork(t)
	src := &mockSource{listFn: func(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error) {
		return []model.Event{
			{ID: "early", StartTime: time.Date(2024, 6, 11, 23, 0, 0, 0, loc), EndTime: time.Date(2024, 6, 12, 1, 0, 0, 0, loc)},
			{ID: "today", StartTime: time.Date(2024, 6, 12, 14, 0, 0, 0, loc), EndTime: time.Date(2024, 6, 12, 15, 0, 0, 0, loc)},
		}, nil
	}}
	uc, _ := newTestUseCase(t, src)

	out, err := uc.ListEvents(context.Background(), model.Scope{UserID: "u1", PanelID: "p"}, calendar.ListEventsInput{View: daterange.ViewList})
	if err != nil {
		t.Fatalf("ListEvents() error: %v", err)
	}
	if out.Total != 1 {
		t.Errorf("Total = %d, want 1", out.Total)
	}
}

func TestListEvents_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     *mockSource
		wantErr error
	}{
		{"inactive", &mockSource{inactive: true}, calendar.ErrNoIntegration},
		{"source has no integration", &mockSource{listFn: func(context.Context, repo.ListEventsOptions) ([]model.Event, error) {
			return nil, repo.ErrNoIntegration
		}}, calendar.ErrNoIntegration},
		{"fetch failure", &mockSource{listFn: func(context.Context, repo.ListEventsOptions) ([]model.Event, error) {
			return nil, repo.ErrFailedToList
		}}, calendar.ErrFetchFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUseCase(t, tt.src)
			_, err := uc.ListEvents(context.Background(), model.Scope{}, calendar.ListEventsInput{})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCreateEvent(t *testing.T) {
	src := &mockSource{}
	uc, loc := newTestUseCase(t, src)
	ctx := context.Background()

	valid := model.EventDraft{
		Title:     "  Design review ",
		StartTime: time.Date(2024, 6, 12, 9, 0, 0, 0, loc),
		EndTime:   time.Date(2024, 6, 12, 9, 30, 0, 0, loc),
		Attendees: []string{"A@example.com", "a@example.com", " "},
	}

	out, err := uc.CreateEvent(ctx, calendar.CreateEventInput{Draft: valid})
	if err != nil {
		t.Fatalf("CreateEvent() error: %v", err)
	}
	if out.Event.ID != "new" {
		t.Errorf("unexpected event: %+v", out.Event)
	}
	sent := src.created[0].Draft
	if sent.Title != "Design review" || sent.StartTime.Location() != time.UTC || sent.StartTime.Hour() != 13 {
		t.Errorf("draft not normalized: %+v", sent)
	}
	if len(sent.Attendees) != 1 || sent.Attendees[0] != "a@example.com" {
		t.Errorf("attendees = %v", sent.Attendees)
	}

	invalid := []model.EventDraft{
		{Title: "", StartTime: valid.StartTime, EndTime: valid.EndTime},
		{Title: "x", StartTime: valid.EndTime, EndTime: valid.StartTime},
		{Title: "x", StartTime: valid.StartTime, EndTime: valid.StartTime},
		{Title: "x"},
	}
	for i, d := range invalid {
		if _, err := uc.CreateEvent(ctx, calendar.CreateEventInput{Draft: d}); !errors.Is(err, calendar.ErrInvalidPayload) {
			t.Errorf("draft %d: expected ErrInvalidPayload, got %v", i, err)
		}
	}
}

func TestCreateEvent_AllDay(t *testing.T) {
	src := &mockSource{}
	uc, loc := newTestUseCase(t, src)

	_, err := uc.CreateEvent(context.Background(), calendar.CreateEventInput{Draft: model.EventDraft{
		Title:     "Holiday",
		AllDay:    true,
		StartTime: time.Date(2024, 7, 4, 21, 0, 0, 0, loc),
		EndTime:   time.Date(2024, 7, 4, 21, 0, 0, 0, loc),
	}})
	if err != nil {
		t.Fatalf("CreateEvent() error: %v", err)
	}
	sent := src.created[0].Draft
	if got := sent.StartTime.Format(time.RFC3339); got != "2024-07-04T00:00:00Z" {
		t.Errorf("start = %s", got)
	}
	if got := sent.EndTime.Format(time.RFC3339); got != "2024-07-05T00:00:00Z" {
		t.Errorf("end = %s", got)
	}
}

func TestCreateEvent_Failure(t *testing.T) {
	src := &mockSource{createFn: func(context.Context, repo.CreateEventOptions) (model.Event, error) {
		return model.Event{}, repo.ErrFailedToCreate
	}}
	uc, loc := newTestUseCase(t, src)
	draft := model.EventDraft{
		Title:     "Retro",
		StartTime: time.Date(2024, 6, 14, 15, 0, 0, 0, loc),
		EndTime:   time.Date(2024, 6, 14, 16, 0, 0, 0, loc),
	}

	_, err := uc.CreateEvent(context.Background(), calendar.CreateEventInput{Draft: draft})
	if !errors.Is(err, calendar.ErrCreateFailed) {
		t.Fatalf("expected ErrCreateFailed, got %v", err)
	}
	var cerr *calendar.CreateError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *CreateError, got %T", err)
	}
	if cerr.Draft.Title != "Retro" || !cerr.Draft.StartTime.Equal(draft.StartTime) {
		t.Errorf("draft not preserved: %+v", cerr.Draft)
	}

	src.inactive = true
	if _, err := uc.CreateEvent(context.Background(), calendar.CreateEventInput{Draft: draft}); !errors.Is(err, calendar.ErrNoIntegration) {
		t.Errorf("expected ErrNoIntegration, got %v", err)
	}
}

func TestCreateFromSelection(t *testing.T) {
	src := &mockSource{}
	uc, _ := newTestUseCase(t, src)

	_, err := uc.CreateFromSelection(context.Background(), calendar.CreateFromSelectionInput{
		Selection: selection.Selection{Day: "2024-06-12", StartIndex: 10, EndIndex: 5},
		Title:     "Focus",
	})
	if err != nil {
		t.Fatalf("CreateFromSelection() error: %v", err)
	}
	sent := src.created[0].Draft
	if got := sent.StartTime.Format(time.RFC3339); got != "2024-06-12T11:15:00Z" {
		t.Errorf("start = %s", got)
	}
	if got := sent.EndTime.Format(time.RFC3339); got != "2024-06-12T12:45:00Z" {
		t.Errorf("end = %s", got)
	}

	_, err = uc.CreateFromSelection(context.Background(), calendar.CreateFromSelectionInput{
		Selection: selection.Selection{Day: "2024-06-12", StartIndex: 70, EndIndex: 71},
		Title:     "Out of grid",
	})
	if !errors.Is(err, calendar.ErrInvalidSelection) {
		t.Errorf("expected ErrInvalidSelection, got %v", err)
	}
}

func TestSelectionGestures(t *testing.T) {
	uc, _ := newTestUseCase(t, &mockSource{})
	ctx := context.Background()

	begun, err := uc.BeginSelection(ctx, calendar.BeginSelectionInput{Day: "2024-06-12", Index: 10})
	if err != nil {
		t.Fatalf("BeginSelection() error: %v", err)
	}

	five := 5
	if _, err := uc.MoveSelection(ctx, calendar.MoveSelectionInput{ID: begun.ID, Day: "2024-06-12", Index: &five}); err != nil {
		t.Fatalf("MoveSelection() error: %v", err)
	}
	if _, err := uc.MoveSelection(ctx, calendar.MoveSelectionInput{ID: begun.ID}); !errors.Is(err, calendar.ErrInvalidPayload) {
		t.Errorf("expected ErrInvalidPayload, got %v", err)
	}

	released, err := uc.ReleaseSelection(ctx, begun.ID)
	if err != nil {
		t.Fatalf("ReleaseSelection() error: %v", err)
	}
	if released.End.Sub(released.Start) != 90*time.Minute {
		t.Errorf("slots 5..10 should cover 90m, got %v", released.End.Sub(released.Start))
	}

	if _, err := uc.ReleaseSelection(ctx, begun.ID); !errors.Is(err, calendar.ErrSelectionNotFound) {
		t.Errorf("expected ErrSelectionNotFound, got %v", err)
	}
	if err := uc.CancelSelection(ctx, "missing"); !errors.Is(err, calendar.ErrSelectionNotFound) {
		t.Errorf("expected ErrSelectionNotFound, got %v", err)
	}
	if _, err := uc.BeginSelection(ctx, calendar.BeginSelectionInput{Day: "2024-06-12", Index: 65}); !errors.Is(err, calendar.ErrInvalidSelection) {
		t.Errorf("expected ErrInvalidSelection, got %v", err)
	}
}

func TestSelectionGestures_Pointer(t *testing.T) {
	uc, _ := newTestUseCase(t, &mockSource{})
	ctx := context.Background()

	begun, _ := uc.BeginSelection(ctx, calendar.BeginSelectionInput{Day: "2024-06-12", Index: 2})
	out, err := uc.MoveSelection(ctx, calendar.MoveSelectionInput{ID: begun.ID, Pointer: &calendar.PointerInput{
		Rect:    slotgrid.Rect{Left: 100, Top: 50, Width: 700, Height: 65 * 24},
		X:       100 + 3*100 + 10,
		Y:       50 + 12*24 + 5,
		Columns: []string{"2024-06-09", "2024-06-10", "2024-06-11", "2024-06-12", "2024-06-13", "2024-06-14", "2024-06-15"},
	}})
	if err != nil {
		t.Fatalf("MoveSelection() error: %v", err)
	}
	if out.State.Current.EndIndex != 12 {
		t.Errorf("EndIndex = %d, want 12", out.State.Current.EndIndex)
	}
	if err := uc.CancelSelection(ctx, begun.ID); err != nil {
		t.Errorf("CancelSelection() error: %v", err)
	}
}

func TestClickSelection(t *testing.T) {
	uc, _ := newTestUseCase(t, &mockSource{})

	out, err := uc.ClickSelection(context.Background(), calendar.ClickSelectionInput{Day: "2024-06-12", Index: 20})
	if err != nil {
		t.Fatalf("ClickSelection() error: %v", err)
	}
	if out.Selection.StartIndex != 20 || out.Selection.EndIndex != 21 {
		t.Errorf("selection = %+v", out.Selection)
	}
	if out.End.Sub(out.Start) != 30*time.Minute {
		t.Errorf("click should cover 30m, got %v", out.End.Sub(out.Start))
	}
}

func TestExportICS(t *testing.T) {
	loc := newYork(t)
	src := &mockSource{listFn: func(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error) {
		return []model.Event{
			{ID: "1", Title: "Standup", StartTime: time.Date(2024, 6, 12, 9, 0, 0, 0, loc), EndTime: time.Date(2024, 6, 12, 9, 15, 0, 0, loc), Attendees: []string{"a@example.com"}},
			{ID: "2", Title: "Offsite", AllDay: true, StartTime: time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC), EndTime: time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)},
		}, nil
	}}
	uc, _ := newTestUseCase(t, src)

	out, err := uc.ExportICS(context.Background(), calendar.ExportInput{View: daterange.ViewWeek})
	if err != nil {
		t.Fatalf("ExportICS() error: %v", err)
	}
	if out.Filename != "calendar-week-2024-06-09.ics" {
		t.Errorf("Filename = %s", out.Filename)
	}
	body := string(out.Body)
	for _, want := range []string{"BEGIN:VCALENDAR", "SUMMARY:Standup", "DTSTART:20240612T130000Z", "DTSTART;VALUE=DATE:20240613", "mailto:a@example.com"} {
		if !strings.Contains(body, want) {
			t.Errorf("export missing %q:\n%s", want, body)
		}
	}
}

func TestExportICS_Empty(t *testing.T) {
	uc, _ := newTestUseCase(t, &mockSource{})
	if _, err := uc.ExportICS(context.Background(), calendar.ExportInput{View: daterange.ViewDay}); !errors.Is(err, calendar.ErrNothingToExport) {
		t.Errorf("expected ErrNothingToExport, got %v", err)
	}
}

func TestGenerations(t *testing.T) {
	g := newGenerations()
	a := g.begin("u/p")
	if !g.current("u/p", a) {
		t.Fatalf("first generation must be current")
	}
	b := g.begin("u/p")
	if g.current("u/p", a) || !g.current("u/p", b) {
		t.Errorf("only the newest generation is current")
	}
	if !g.current("other", 99) {
		t.Errorf("unknown panels are treated as current")
	}
}
