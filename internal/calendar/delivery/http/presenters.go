package http

import (
	"fmt"
	"strings"
	"time"

	"calendar-grid/internal/bucket"
	"calendar-grid/internal/calendar"
	"calendar-grid/internal/model"
	"calendar-grid/internal/selection"
	"calendar-grid/pkg/daterange"
	"calendar-grid/pkg/response"
	"calendar-grid/pkg/slotgrid"
)

const maxLimit = 2500

// --- Request DTOs ---

type rangeReq struct {
	View string `form:"view"`
	Date string `form:"date"`
}

func (r rangeReq) validate() error {
	_, err := parseView(r.View)
	return err
}

func (r rangeReq) toInput() calendar.RangeInput {
	view, _ := parseView(r.View)
	return calendar.RangeInput{View: view, Date: r.Date}
}

// ---

type listEventsReq struct {
	View      string `form:"view"`
	Date      string `form:"date"`
	Providers string `form:"providers"` // comma separated
	Limit     int    `form:"limit"`
	NoCache   bool   `form:"no_cache"`
	PanelID   string `form:"panel_id"`
}

func (r listEventsReq) validate() error {
	if _, err := parseView(r.View); err != nil {
		return err
	}
	if r.Limit < 0 || r.Limit > maxLimit {
		return fmt.Errorf("%w: limit must be between 0 and %d", calendar.ErrInvalidPayload, maxLimit)
	}
	return nil
}

func (r listEventsReq) toInput() calendar.ListEventsInput {
	view, _ := parseView(r.View)
	return calendar.ListEventsInput{
		View:      view,
		Date:      r.Date,
		Providers: splitList(r.Providers),
		Limit:     r.Limit,
		NoCache:   r.NoCache,
	}
}

// ---

type exportReq struct {
	View      string `form:"view"`
	Date      string `form:"date"`
	Providers string `form:"providers"`
}

func (r exportReq) validate() error {
	_, err := parseView(r.View)
	return err
}

func (r exportReq) toInput() calendar.ExportInput {
	view, _ := parseView(r.View)
	return calendar.ExportInput{View: view, Date: r.Date, Providers: splitList(r.Providers)}
}

// ---

type createEventReq struct {
	Title       string    `json:"title"       binding:"required,max=255"`
	Description string    `json:"description" binding:"max=5000"`
	StartTime   time.Time `json:"start_time"  binding:"required"`
	EndTime     time.Time `json:"end_time"    binding:"required"`
	AllDay      bool      `json:"all_day"`
	Location    string    `json:"location"    binding:"max=255"`
	Attendees   []string  `json:"attendees"   binding:"omitempty,max=100,dive,email"`
}

func (r createEventReq) validate() error {
	if !r.AllDay && !r.StartTime.Before(r.EndTime) {
		return fmt.Errorf("%w: start_time must be before end_time", calendar.ErrInvalidPayload)
	}
	return nil
}

func (r createEventReq) toInput() calendar.CreateEventInput {
	return calendar.CreateEventInput{Draft: model.EventDraft{
		Title:       r.Title,
		Description: r.Description,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		AllDay:      r.AllDay,
		Location:    r.Location,
		Attendees:   r.Attendees,
	}}
}

// ---

type createFromSelectionReq struct {
	Day         string   `json:"day"         binding:"required"`
	StartIndex  *int     `json:"start_index" binding:"required"`
	EndIndex    *int     `json:"end_index"   binding:"required"`
	Title       string   `json:"title"       binding:"required,max=255"`
	Description string   `json:"description" binding:"max=5000"`
	Location    string   `json:"location"    binding:"max=255"`
	Attendees   []string `json:"attendees"   binding:"omitempty,max=100,dive,email"`
}

func (r createFromSelectionReq) validate() error { return nil }

func (r createFromSelectionReq) toInput() calendar.CreateFromSelectionInput {
	return calendar.CreateFromSelectionInput{
		Selection:   selection.Selection{Day: r.Day, StartIndex: *r.StartIndex, EndIndex: *r.EndIndex},
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Attendees:   r.Attendees,
	}
}

// ---

type slotReq struct {
	Day   string `json:"day"   binding:"required"`
	Index *int   `json:"index" binding:"required"`
}

func (r slotReq) validate() error { return nil }

func (r slotReq) toBeginInput() calendar.BeginSelectionInput {
	return calendar.BeginSelectionInput{Day: r.Day, Index: *r.Index}
}

func (r slotReq) toClickInput() calendar.ClickSelectionInput {
	return calendar.ClickSelectionInput{Day: r.Day, Index: *r.Index}
}

// ---

type rectReq struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"  binding:"gt=0"`
	Height float64 `json:"height" binding:"gte=0"`
}

type pointerReq struct {
	Rect      rectReq  `json:"rect"`
	X         float64  `json:"x"`
	Y         float64  `json:"y"`
	Columns   []string `json:"columns"    binding:"required,min=1,max=31"`
	RowHeight float64  `json:"row_height" binding:"gte=0"`
}

type moveSelectionReq struct {
	ID      string      `json:"-"` // populated from URI param
	Day     string      `json:"day"`
	Index   *int        `json:"index"`
	Pointer *pointerReq `json:"pointer"`
}

func (r moveSelectionReq) validate() error {
	if r.Index == nil && r.Pointer == nil {
		return fmt.Errorf("%w: index or pointer is required", calendar.ErrInvalidPayload)
	}
	if r.Index != nil && r.Day == "" {
		return fmt.Errorf("%w: day is required with index", calendar.ErrInvalidPayload)
	}
	return nil
}

func (r moveSelectionReq) toInput() calendar.MoveSelectionInput {
	in := calendar.MoveSelectionInput{ID: r.ID, Day: r.Day, Index: r.Index}
	if p := r.Pointer; p != nil && r.Index == nil {
		in.Pointer = &calendar.PointerInput{
			Rect:      slotgrid.Rect{Left: p.Rect.Left, Top: p.Rect.Top, Width: p.Rect.Width, Height: p.Rect.Height},
			X:         p.X,
			Y:         p.Y,
			Columns:   p.Columns,
			RowHeight: p.RowHeight,
		}
	}
	return in
}

func parseView(s string) (daterange.ViewType, error) {
	view, err := daterange.ParseViewType(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", calendar.ErrInvalidView, s)
	}
	return view, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// --- Response DTOs ---

type rangeResp struct {
	View     string            `json:"view"`
	Timezone string            `json:"timezone"`
	Start    response.DateTime `json:"start"`
	End      response.DateTime `json:"end"`
	Days     []string          `json:"days"`
}

func (h *handler) newRangeResp(out calendar.RangeOutput) rangeResp {
	return rangeResp{
		View:     string(out.View),
		Timezone: out.Timezone,
		Start:    response.DateTime(out.Range.Start),
		End:      response.DateTime(out.Range.End),
		Days:     out.Days,
	}
}

type slotResp struct {
	Index  int    `json:"index"`
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
	Label  string `json:"label"`
}

type slotsResp struct {
	Timezone        string     `json:"timezone"`
	SlotMinutes     int        `json:"slot_minutes"`
	SlotPixelHeight float64    `json:"slot_pixel_height"`
	Slots           []slotResp `json:"slots"`
}

func (h *handler) newSlotsResp(out calendar.SlotsOutput) slotsResp {
	slots := make([]slotResp, len(out.Slots))
	for i, s := range out.Slots {
		slots[i] = slotResp{Index: s.Index, Hour: s.Hour, Minute: s.Minute, Label: s.Label}
	}
	return slotsResp{
		Timezone:        out.Timezone,
		SlotMinutes:     out.SlotMinutes,
		SlotPixelHeight: out.SlotPixelHeight,
		Slots:           slots,
	}
}

type eventResp struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	StartTime   response.DateTime `json:"start_time"`
	EndTime     response.DateTime `json:"end_time"`
	AllDay      bool              `json:"all_day"`
	Location    string            `json:"location,omitempty"`
	Attendees   []string          `json:"attendees,omitempty"`
	Provider    string            `json:"provider,omitempty"`
	HTMLLink    string            `json:"html_link,omitempty"`
}

// newEventResp renders timed events in loc. All-day events are floating dates
// and keep their UTC midnight.
func newEventResp(ev model.Event, loc *time.Location) eventResp {
	start, end := ev.StartTime, ev.EndTime
	if !ev.AllDay && loc != nil {
		start, end = start.In(loc), end.In(loc)
	}
	return eventResp{
		ID:          ev.ID,
		Title:       ev.Title,
		Description: ev.Description,
		StartTime:   response.DateTime(start),
		EndTime:     response.DateTime(end),
		AllDay:      ev.AllDay,
		Location:    ev.Location,
		Attendees:   ev.Attendees,
		Provider:    ev.Provider,
		HTMLLink:    ev.HTMLLink,
	}
}

func newEventResps(events []model.Event, loc *time.Location) []eventResp {
	out := make([]eventResp, len(events))
	for i, ev := range events {
		out[i] = newEventResp(ev, loc)
	}
	return out
}

type dayResp struct {
	Date   string      `json:"date"`
	AllDay []eventResp `json:"all_day"`
	Timed  []eventResp `json:"timed"`
}

type listEventsResp struct {
	View               string            `json:"view"`
	Timezone           string            `json:"timezone"`
	Start              response.DateTime `json:"start"`
	End                response.DateTime `json:"end"`
	Generation         uint64            `json:"generation"`
	Total              int               `json:"total"`
	Cached             bool              `json:"cached"`
	InvalidRecurrences []string          `json:"invalid_recurrences,omitempty"`
	Days               []dayResp         `json:"days"`
}

func (h *handler) newListEventsResp(out calendar.ListEventsOutput) listEventsResp {
	loc := out.Range.Start.Location()
	days := make([]dayResp, len(out.Days))
	for i, d := range out.Days {
		days[i] = newDayResp(d, loc)
	}
	return listEventsResp{
		View:               string(out.View),
		Timezone:           out.Timezone,
		Start:              response.DateTime(out.Range.Start),
		End:                response.DateTime(out.Range.End),
		Generation:         out.Generation,
		Total:              out.Total,
		Cached:             out.Cached,
		InvalidRecurrences: out.Invalid,
		Days:               days,
	}
}

func newDayResp(d bucket.Day, loc *time.Location) dayResp {
	return dayResp{
		Date:   d.Key,
		AllDay: newEventResps(d.AllDay, loc),
		Timed:  newEventResps(d.Timed, loc),
	}
}

type createResp struct {
	Event eventResp `json:"event"`
}

func (h *handler) newCreateResp(out calendar.CreateEventOutput) createResp {
	return createResp{Event: newEventResp(out.Event, time.UTC)}
}

// draftResp echoes a rejected draft so the client can resubmit it.
type draftResp struct {
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	StartTime   response.DateTime `json:"start_time"`
	EndTime     response.DateTime `json:"end_time"`
	AllDay      bool              `json:"all_day"`
	Location    string            `json:"location,omitempty"`
	Attendees   []string          `json:"attendees,omitempty"`
}

func newDraftResp(d model.EventDraft) map[string]draftResp {
	return map[string]draftResp{"draft": {
		Title:       d.Title,
		Description: d.Description,
		StartTime:   response.DateTime(d.StartTime),
		EndTime:     response.DateTime(d.EndTime),
		AllDay:      d.AllDay,
		Location:    d.Location,
		Attendees:   d.Attendees,
	}}
}

type selectionResp struct {
	Day        string `json:"day"`
	StartIndex int    `json:"start_index"`
	EndIndex   int    `json:"end_index"`
}

func newSelectionResp(sel selection.Selection) selectionResp {
	return selectionResp{Day: sel.Day, StartIndex: sel.StartIndex, EndIndex: sel.EndIndex}
}

type anchorResp struct {
	Day   string `json:"day"`
	Index int    `json:"index"`
}

type selectionStateResp struct {
	ID        string        `json:"id"`
	Phase     string        `json:"phase"`
	Anchor    anchorResp    `json:"anchor"`
	Selection selectionResp `json:"selection"`
}

func (h *handler) newSelectionStateResp(out calendar.SelectionOutput) selectionStateResp {
	return selectionStateResp{
		ID:        out.ID,
		Phase:     out.State.Phase.String(),
		Anchor:    anchorResp{Day: out.State.Anchor.Day, Index: out.State.Anchor.Index},
		Selection: newSelectionResp(out.State.Current),
	}
}

type releaseResp struct {
	Selection       selectionResp     `json:"selection"`
	StartTime       response.DateTime `json:"start_time"`
	EndTime         response.DateTime `json:"end_time"`
	DurationMinutes int               `json:"duration_minutes"`
}

func (h *handler) newReleaseResp(out calendar.ReleaseSelectionOutput) releaseResp {
	return releaseResp{
		Selection:       newSelectionResp(out.Selection),
		StartTime:       response.DateTime(out.Start.UTC()),
		EndTime:         response.DateTime(out.End.UTC()),
		DurationMinutes: int(out.End.Sub(out.Start) / time.Minute),
	}
}
