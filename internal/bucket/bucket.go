// Package bucket groups calendar events under the local calendar days they render on.
package bucket

import (
	"sort"
	"time"

	"calendar-grid/internal/model"
	"calendar-grid/pkg/daterange"
)

// Mode selects the membership rule.
type Mode int

const (
	// ModeGrid places an event on every day its interval overlaps.
	ModeGrid Mode = iota
	// ModeList places an event only on the day it starts.
	ModeList
)

// ModeFor returns the membership rule used by a view.
func ModeFor(view daterange.ViewType) Mode {
	if view == daterange.ViewList {
		return ModeList
	}
	return ModeGrid
}

// Day is the set of events rendered under one day column.
type Day struct {
	Key    string
	AllDay []model.Event
	Timed  []model.Event
}

// Len returns the number of events in the day.
func (d Day) Len() int {
	return len(d.AllDay) + len(d.Timed)
}

type window struct {
	start time.Time
	end   time.Time // exclusive: next local midnight
}

// Group buckets events under days (day keys in daterange.DayKeyFormat). Every
// requested day is present in the result, in the given order, even when empty.
// Unparseable day keys are skipped.
func Group(events []model.Event, days []string, loc *time.Location, mode Mode) []Day {
	out, _ := Place(events, days, loc, mode)
	return out
}

// Place is Group that also reports how many events landed on at least one day.
// An event spanning several grid days counts once.
func Place(events []model.Event, days []string, loc *time.Location, mode Mode) ([]Day, int) {
	if loc == nil {
		loc = time.UTC
	}

	out := make([]Day, 0, len(days))
	windows := make([]window, 0, len(days))
	index := make(map[string]int, len(days))
	for _, key := range days {
		start, err := time.ParseInLocation(daterange.DayKeyFormat, key, loc)
		if err != nil {
			continue
		}
		index[key] = len(out)
		out = append(out, Day{Key: key, AllDay: []model.Event{}, Timed: []model.Event{}})
		windows = append(windows, window{
			start: start,
			end:   time.Date(start.Year(), start.Month(), start.Day()+1, 0, 0, 0, 0, loc),
		})
	}

	placed := 0
	for _, ev := range events {
		start, end := localInterval(ev, loc)

		if mode == ModeList {
			i, ok := index[start.Format(daterange.DayKeyFormat)]
			if ok {
				out[i] = appendEvent(out[i], ev)
				placed++
			}
			continue
		}

		landed := false
		for i, w := range windows {
			if overlaps(w, start, end) {
				out[i] = appendEvent(out[i], ev)
				landed = true
			}
		}
		if landed {
			placed++
		}
	}

	for i := range out {
		sortByStart(out[i].AllDay)
		sortByStart(out[i].Timed)
	}
	return out, placed
}

// localInterval returns the event's interval in loc. All-day events are floating
// dates: their calendar dates are kept and re-anchored at local midnight.
func localInterval(ev model.Event, loc *time.Location) (time.Time, time.Time) {
	if !ev.AllDay {
		return ev.StartTime.In(loc), ev.EndTime.In(loc)
	}

	s, e := ev.StartTime, ev.EndTime
	start := time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, loc)
	end := time.Date(e.Year(), e.Month(), e.Day(), 0, 0, 0, 0, loc)
	if !end.After(start) {
		end = time.Date(start.Year(), start.Month(), start.Day()+1, 0, 0, 0, 0, loc)
	}
	return start, end
}

func overlaps(w window, start, end time.Time) bool {
	if !end.After(start) {
		return !start.Before(w.start) && start.Before(w.end)
	}
	return start.Before(w.end) && end.After(w.start)
}

func appendEvent(d Day, ev model.Event) Day {
	if ev.AllDay {
		d.AllDay = append(d.AllDay, ev)
	} else {
		d.Timed = append(d.Timed, ev)
	}
	return d
}

func sortByStart(events []model.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].StartTime.Equal(events[j].StartTime) {
			return events[i].Title < events[j].Title
		}
		return events[i].StartTime.Before(events[j].StartTime)
	})
}
