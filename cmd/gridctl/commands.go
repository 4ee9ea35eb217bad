package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"calendar-grid/internal/selection"
	"calendar-grid/pkg/datemath"
	"calendar-grid/pkg/daterange"
	"calendar-grid/pkg/slotgrid"
)

const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// Context is handed to every command's Run.
type Context struct {
	In       io.Reader
	Out      io.Writer
	Computer *daterange.Computer
	Parser   *datemath.Parser
	Now      func() time.Time
}

func newContext(timezone string, out io.Writer, now func() time.Time) (*Context, error) {
	loc, err := daterange.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Context{
		Out:      out,
		Computer: daterange.NewWithLocation(loc),
		Parser:   datemath.NewParserWithLocation(loc),
		Now:      now,
	}, nil
}

// GridFlags override the displayed day window.
type GridFlags struct {
	StartHour   int `help:"First displayed hour." default:"6"`
	EndHour     int `help:"Last displayed hour." default:"22"`
	SlotMinutes int `help:"Minutes per slot." default:"15"`
}

func (f GridFlags) grid() (slotgrid.Config, error) {
	cfg := slotgrid.Default()
	cfg.StartHour = f.StartHour
	cfg.EndHour = f.EndHour
	cfg.SlotMinutes = f.SlotMinutes
	if err := cfg.Validate(); err != nil {
		return slotgrid.Config{}, err
	}
	return cfg, nil
}

type RangeCmd struct {
	View string `help:"day, work-week, week, month or list." default:"week" short:"v"`
	Date string `arg:"" optional:"" help:"Reference date (YYYY-MM-DD, RFC3339, today, next monday...)."`
}

func (c *RangeCmd) Run(ctx *Context) error {
	view, err := daterange.ParseViewType(c.View)
	if err != nil {
		return err
	}
	ref, err := ctx.Parser.ParseReference(c.Date, ctx.Now())
	if err != nil {
		return err
	}

	r := ctx.Computer.Compute(ref, view)
	fmt.Fprintf(ctx.Out, "%s %s → %s\n", view, r.Start.Format(timeLayout), r.End.Format(timeLayout))
	fmt.Fprintf(ctx.Out, "days: %s\n", strings.Join(ctx.Computer.Days(r), " "))
	return nil
}

type SlotsCmd struct {
	GridFlags
}

func (c *SlotsCmd) Run(ctx *Context) error {
	grid, err := c.grid()
	if err != nil {
		return err
	}
	for _, slot := range grid.Slots(ctx.Computer.Location()) {
		fmt.Fprintf(ctx.Out, "%3d  %02d:%02d  %s\n", slot.Index, slot.Hour, slot.Minute, slot.Label)
	}
	return nil
}

type SelectCmd struct {
	GridFlags
	Day  string `arg:"" help:"Day of the column (YYYY-MM-DD)."`
	From int    `arg:"" help:"Slot index where the drag started."`
	To   int    `arg:"" optional:"" default:"-1" help:"Slot index where the drag ended. Omit for a click."`
}

func (c *SelectCmd) Run(ctx *Context) error {
	grid, err := c.grid()
	if err != nil {
		return err
	}
	if _, err := ctx.Computer.ParseDay(c.Day); err != nil {
		return fmt.Errorf("invalid day %q: %w", c.Day, err)
	}

	m := selection.New(grid)
	var sel selection.Selection
	if c.To < 0 {
		if sel, err = m.Click(c.Day, c.From); err != nil {
			return err
		}
	} else {
		st, err := m.PointerDown(c.Day, c.From)
		if err != nil {
			return err
		}
		st = m.Move(st, c.Day, c.To)
		sel, _, _ = m.Release(st)
	}

	start, end, err := m.Derive(sel, ctx.Computer.Location())
	if err != nil {
		return err
	}
	first, endExclusive := sel.Normalize()
	fmt.Fprintf(ctx.Out, "%s slots %d..%d\n", sel.Day, first, endExclusive-1)
	fmt.Fprintf(ctx.Out, "start: %s\nend:   %s\n", start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339))
	return nil
}
