package usecase

import (
	"context"
	"fmt"
	"time"

	"calendar-grid/internal/calendar"
	"calendar-grid/pkg/daterange"
)

// Range computes the visible interval of a view and the day columns it spans.
func (uc *implUseCase) Range(ctx context.Context, input calendar.RangeInput) (calendar.RangeOutput, error) {
	r, view, err := uc.resolve(input.View, input.Date)
	if err != nil {
		return calendar.RangeOutput{}, err
	}
	return calendar.RangeOutput{
		View:     view,
		Range:    r,
		Days:     uc.computer.Days(r),
		Timezone: uc.location().String(),
	}, nil
}

// Slots returns the slot rows of the grid in the effective timezone.
func (uc *implUseCase) Slots(ctx context.Context) calendar.SlotsOutput {
	grid := uc.grid()
	return calendar.SlotsOutput{
		Timezone:        uc.location().String(),
		SlotMinutes:     grid.SlotMinutes,
		SlotPixelHeight: grid.SlotPixelHeight,
		Slots:           grid.Slots(uc.location()),
	}
}

func (uc *implUseCase) resolve(view daterange.ViewType, date string) (daterange.DateRange, daterange.ViewType, error) {
	if view == "" {
		view = daterange.ViewWeek
	}
	if !view.Valid() {
		return daterange.DateRange{}, "", fmt.Errorf("%w: %q", calendar.ErrInvalidView, view)
	}
	ref, err := uc.reference(date)
	if err != nil {
		return daterange.DateRange{}, "", err
	}
	return uc.computer.Compute(ref, view), view, nil
}

func (uc *implUseCase) reference(date string) (time.Time, error) {
	ref, err := uc.parser.ParseReference(date, uc.now())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", calendar.ErrInvalidDate, err)
	}
	return ref, nil
}
