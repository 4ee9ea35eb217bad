// Package recurrence expands recurring events into the occurrences that fall
// inside a date range, so they can be bucketed like single events.
package recurrence

import (
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"calendar-grid/internal/model"
	"calendar-grid/pkg/daterange"
)

// DefaultMaxOccurrences caps the expansion of a single rule.
const DefaultMaxOccurrences = 1000

// Result holds the expanded events plus the ids whose rule could not be used.
type Result struct {
	Events    []model.Event
	Invalid   []string // ids of events whose RRULE did not parse; kept unexpanded
	Truncated []string // ids that hit the occurrence cap
}

// Expand replaces every recurring event with its occurrences overlapping r.
// Timed rules repeat on the wall clock of loc, so DST changes keep the local
// hour; all-day rules repeat on floating UTC dates. Single events pass through
// untouched. maxPerEvent <= 0 uses DefaultMaxOccurrences.
func Expand(events []model.Event, r daterange.DateRange, loc *time.Location, maxPerEvent int) Result {
	if maxPerEvent <= 0 {
		maxPerEvent = DefaultMaxOccurrences
	}
	if loc == nil {
		loc = time.UTC
	}

	res := Result{Events: make([]model.Event, 0, len(events))}
	for _, ev := range events {
		if !ev.IsRecurring() {
			res.Events = append(res.Events, ev)
			continue
		}

		occurrences, truncated, err := expandOne(ev, r, loc, maxPerEvent)
		if err != nil {
			res.Invalid = append(res.Invalid, ev.ID)
			res.Events = append(res.Events, ev)
			continue
		}
		if truncated {
			res.Truncated = append(res.Truncated, ev.ID)
		}
		res.Events = append(res.Events, occurrences...)
	}
	return res
}

func expandOne(ev model.Event, r daterange.DateRange, loc *time.Location, maxPerEvent int) ([]model.Event, bool, error) {
	body := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(ev.Recurrence), "RRULE:"))
	rule, err := rrule.StrToRRule(body)
	if err != nil {
		return nil, false, fmt.Errorf("parse rrule for %s: %w", ev.ID, err)
	}
	if ev.AllDay {
		loc = time.UTC
	}
	rule.DTStart(ev.StartTime.In(loc))

	dur := ev.Duration()
	if dur < 0 {
		dur = 0
	}

	// Occurrences starting up to one duration before the range still overlap it.
	from := r.Start.Add(-dur).In(loc)
	to := r.End.In(loc)
	starts := rule.Between(from, to, true)

	truncated := false
	if len(starts) > maxPerEvent {
		starts = starts[:maxPerEvent]
		truncated = true
	}

	out := make([]model.Event, 0, len(starts))
	for _, start := range starts {
		end := start.Add(dur)
		if dur > 0 && !r.Overlaps(start, end) {
			continue
		}
		occ := ev
		occ.ID = fmt.Sprintf("%s_%s", ev.ID, start.UTC().Format("20060102T150405Z"))
		occ.StartTime = start
		occ.EndTime = end
		occ.Recurrence = ""
		occ.Attendees = append([]string(nil), ev.Attendees...)
		out = append(out, occ)
	}
	return out, truncated, nil
}
