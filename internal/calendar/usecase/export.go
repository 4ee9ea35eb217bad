package usecase

import (
	"bytes"
	"context"
	"fmt"

	ics "github.com/emersion/go-ical"
	"github.com/google/uuid"

	"calendar-grid/internal/calendar"
	"calendar-grid/internal/model"
	"calendar-grid/internal/recurrence"
)

const productID = "-//calendar-grid//calendar-grid//EN"

// ExportICS renders the events of a view as an iCalendar document. Recurring
// events are exported as their individual occurrences.
func (uc *implUseCase) ExportICS(ctx context.Context, input calendar.ExportInput) (calendar.ExportOutput, error) {
	r, view, err := uc.resolve(input.View, input.Date)
	if err != nil {
		return calendar.ExportOutput{}, err
	}

	events, _, err := uc.fetch(ctx, r, input.Providers, 0, false)
	if err != nil {
		return calendar.ExportOutput{}, err
	}
	expanded := recurrence.Expand(events, r, uc.location(), uc.maxOcc)
	if len(expanded.Events) == 0 {
		return calendar.ExportOutput{}, calendar.ErrNothingToExport
	}

	body, err := uc.encodeICS(expanded.Events)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExportICS encodeICS: %v", err)
		return calendar.ExportOutput{}, err
	}

	return calendar.ExportOutput{
		Filename: fmt.Sprintf("calendar-%s-%s.ics", view, uc.computer.DayKey(r.Start)),
		Body:     body,
	}, nil
}

func (uc *implUseCase) encodeICS(events []model.Event) ([]byte, error) {
	cal := ics.NewCalendar()
	cal.Props.SetText(ics.PropVersion, "2.0")
	cal.Props.SetText(ics.PropProductID, productID)

	stamp := uc.now().UTC()
	for _, ev := range events {
		comp := ics.NewComponent(ics.CompEvent)
		uid := ev.ID
		if uid == "" {
			uid = uuid.NewString()
		}
		comp.Props.SetText(ics.PropUID, uid)
		comp.Props.SetText(ics.PropSummary, ev.Title)
		comp.Props.SetDateTime(ics.PropDateTimeStamp, stamp)

		if ev.Description != "" {
			comp.Props.SetText(ics.PropDescription, ev.Description)
		}
		if ev.Location != "" {
			comp.Props.SetText(ics.PropLocation, ev.Location)
		}
		if ev.HTMLLink != "" {
			comp.Props.SetText(ics.PropURL, ev.HTMLLink)
		}
		for _, a := range ev.Attendees {
			prop := ics.NewProp(ics.PropAttendee)
			prop.Value = "mailto:" + a
			comp.Props.Add(prop)
		}

		if ev.AllDay {
			comp.Props.SetDate(ics.PropDateTimeStart, ev.StartTime)
			comp.Props.SetDate(ics.PropDateTimeEnd, ev.EndTime)
		} else {
			comp.Props.SetDateTime(ics.PropDateTimeStart, ev.StartTime.UTC())
			comp.Props.SetDateTime(ics.PropDateTimeEnd, ev.EndTime.UTC())
		}
		if ev.Provider != "" {
			comp.Props.SetText("X-CALENDAR-PROVIDER", ev.Provider)
		}

		cal.Children = append(cal.Children, comp)
	}

	var buf bytes.Buffer
	if err := ics.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("encode ICS: %w", err)
	}
	return buf.Bytes(), nil
}
