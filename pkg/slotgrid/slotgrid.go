package slotgrid

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DefaultStartHour is the first hour shown in the grid.
	DefaultStartHour = 6
	// DefaultEndHour is the last hour shown; its :00 boundary slot is included.
	DefaultEndHour = 22
	// DefaultSlotMinutes is the slot granularity.
	DefaultSlotMinutes = 15
	// DefaultSlotPixelHeight is the rendered height of one slot row.
	DefaultSlotPixelHeight = 24

	// LabelFormat is the display layout of slot labels.
	LabelFormat = "3:04 PM"
)

var ErrInvalidConfig = errors.New("invalid slot grid config")

// TimeSlot is one row of the grid.
type TimeSlot struct {
	Index  int
	Hour   int
	Minute int
	Label  string
}

// Config describes the displayed day window.
type Config struct {
	StartHour       int
	EndHour         int
	SlotMinutes     int
	SlotPixelHeight float64
}

// Default returns the 06:00–22:00, 15-minute grid.
func Default() Config {
	return Config{
		StartHour:       DefaultStartHour,
		EndHour:         DefaultEndHour,
		SlotMinutes:     DefaultSlotMinutes,
		SlotPixelHeight: DefaultSlotPixelHeight,
	}
}

// Validate checks the window and granularity.
func (c Config) Validate() error {
	if c.StartHour < 0 || c.EndHour > 23 || c.StartHour > c.EndHour {
		return fmt.Errorf("%w: hours %d..%d", ErrInvalidConfig, c.StartHour, c.EndHour)
	}
	if c.SlotMinutes <= 0 || 60%c.SlotMinutes != 0 {
		return fmt.Errorf("%w: slot minutes %d must divide an hour", ErrInvalidConfig, c.SlotMinutes)
	}
	if c.SlotPixelHeight <= 0 {
		return fmt.Errorf("%w: slot pixel height must be positive", ErrInvalidConfig)
	}
	return nil
}

// SlotsPerHour returns how many slots make up one hour.
func (c Config) SlotsPerHour() int {
	return 60 / c.SlotMinutes
}

// TotalSlots counts every slot including the closing boundary slot (65 by default).
func (c Config) TotalSlots() int {
	return (c.EndHour-c.StartHour)*c.SlotsPerHour() + 1
}

// SlotDuration is the length of one slot.
func (c Config) SlotDuration() time.Duration {
	return time.Duration(c.SlotMinutes) * time.Minute
}

// InRange reports whether index addresses a slot.
func (c Config) InRange(index int) bool {
	return index >= 0 && index < c.TotalSlots()
}

// Clamp moves index into [0, TotalSlots-1].
func (c Config) Clamp(index int) int {
	if index < 0 {
		return 0
	}
	if last := c.TotalSlots() - 1; index > last {
		return last
	}
	return index
}

// Clock maps a slot index to its wall-clock hour and minute. Indices past the last
// slot keep counting so an exclusive end index resolves to the following boundary.
func (c Config) Clock(index int) (hour, minute int) {
	perHour := c.SlotsPerHour()
	return c.StartHour + index/perHour, (index % perHour) * c.SlotMinutes
}

// At returns the instant at which slot index begins on day (local midnight in loc).
func (c Config) At(day time.Time, index int, loc *time.Location) time.Time {
	day = day.In(loc)
	hour, minute := c.Clock(index)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc)
}

// IndexOf returns the slot containing t's wall-clock time in loc, clamped to the grid.
func (c Config) IndexOf(t time.Time, loc *time.Location) int {
	t = t.In(loc)
	mins := (t.Hour()-c.StartHour)*60 + t.Minute()
	if mins < 0 {
		return 0
	}
	return c.Clamp(mins / c.SlotMinutes)
}

// Slots generates the ordered slot rows with labels formatted in loc.
func (c Config) Slots(loc *time.Location) []TimeSlot {
	if loc == nil {
		loc = time.UTC
	}
	// Labels are formatted on a fixed reference day so DST never shifts them.
	ref := time.Date(2000, time.January, 1, 0, 0, 0, 0, loc)

	total := c.TotalSlots()
	slots := make([]TimeSlot, 0, total)
	for i := 0; i < total; i++ {
		hour, minute := c.Clock(i)
		slots = append(slots, TimeSlot{
			Index:  i,
			Hour:   hour,
			Minute: minute,
			Label:  c.At(ref, i, loc).Format(LabelFormat),
		})
	}
	return slots
}
