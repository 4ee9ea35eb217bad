package daterange

import (
	"fmt"
	"time"
)

// Computer turns a reference date and a view type into a DateRange in one timezone.
type Computer struct {
	location *time.Location
}

// New creates a Computer for the given IANA timezone. "" and "Local" mean the
// system zone.
func New(timezone string) (*Computer, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Computer{location: loc}, nil
}

// NewWithLocation creates a Computer for an already loaded location.
func NewWithLocation(loc *time.Location) *Computer {
	if loc == nil {
		loc = time.UTC
	}
	return &Computer{location: loc}
}

// LoadLocation loads an IANA timezone, mapping "" and "Local" to time.Local.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// Location returns the effective timezone.
func (c *Computer) Location() *time.Location {
	return c.location
}

// Compute returns the inclusive range shown by view around ref.
// view must be valid; use ParseViewType on outside input.
func (c *Computer) Compute(ref time.Time, view ViewType) DateRange {
	day := c.StartOfDay(ref)

	switch view {
	case ViewDay:
		return DateRange{Start: day, End: c.EndOfDay(day)}

	case ViewWorkWeek:
		// Monday is offset 0, Sunday offset 6.
		offset := (int(day.Weekday()) + 6) % 7
		start := c.addDays(day, -offset)
		return DateRange{Start: start, End: c.EndOfDay(c.addDays(start, 4))}

	case ViewWeek:
		start := c.addDays(day, -int(day.Weekday()))
		return DateRange{Start: start, End: c.EndOfDay(c.addDays(start, 6))}

	case ViewMonth:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, c.location)
		last := time.Date(day.Year(), day.Month()+1, 0, 0, 0, 0, 0, c.location)
		return DateRange{Start: start, End: c.EndOfDay(last)}

	case ViewList:
		return DateRange{Start: day, End: c.EndOfDay(c.addDays(day, 7))}
	}

	panic(fmt.Sprintf("daterange: unhandled view type %q", view))
}

// StartOfDay returns local midnight of t's calendar day.
func (c *Computer) StartOfDay(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location)
}

// EndOfDay returns 23:59:59.999 of t's calendar day.
func (c *Computer) EndOfDay(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), c.location)
}

// Days lists the calendar-day keys covered by r, in order.
func (c *Computer) Days(r DateRange) []string {
	if r.End.Before(r.Start) {
		return nil
	}
	first := c.StartOfDay(r.Start)
	var days []string
	for i := 0; ; i++ {
		d := c.addDays(first, i)
		if d.After(r.End) {
			break
		}
		days = append(days, d.Format(DayKeyFormat))
	}
	return days
}

// DayKey returns the calendar-day identifier of t in the effective timezone.
func (c *Computer) DayKey(t time.Time) string {
	return t.In(c.location).Format(DayKeyFormat)
}

// ParseDay parses a day key into local midnight.
func (c *Computer) ParseDay(key string) (time.Time, error) {
	return time.ParseInLocation(DayKeyFormat, key, c.location)
}

// addDays steps by calendar days so DST changes keep local midnight.
func (c *Computer) addDays(day time.Time, n int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day()+n, 0, 0, 0, 0, c.location)
}
