package usecase

import (
	"context"
	"errors"
	"fmt"

	"calendar-grid/internal/calendar"
	"calendar-grid/internal/selection"
)

// BeginSelection handles pointer-down on a slot and opens a gesture session.
func (uc *implUseCase) BeginSelection(ctx context.Context, input calendar.BeginSelectionInput) (calendar.SelectionOutput, error) {
	id, st, err := uc.tracker.Begin(input.Day, input.Index)
	if err != nil {
		return calendar.SelectionOutput{}, mapSelectionErr(err)
	}
	return calendar.SelectionOutput{ID: id, State: st}, nil
}

// MoveSelection handles pointer-move, over a slot or by raw coordinates.
func (uc *implUseCase) MoveSelection(ctx context.Context, input calendar.MoveSelectionInput) (calendar.SelectionOutput, error) {
	var (
		st  selection.State
		err error
	)
	switch {
	case input.Index != nil:
		st, err = uc.tracker.Move(input.ID, input.Day, *input.Index)
	case input.Pointer != nil:
		p := input.Pointer
		st, err = uc.tracker.MoveTo(input.ID, p.Rect, p.X, p.Y, p.Columns, p.RowHeight)
	default:
		return calendar.SelectionOutput{}, fmt.Errorf("%w: index or pointer is required", calendar.ErrInvalidPayload)
	}
	if err != nil {
		return calendar.SelectionOutput{}, mapSelectionErr(err)
	}
	return calendar.SelectionOutput{ID: input.ID, State: st}, nil
}

// ReleaseSelection handles pointer-up: the session ends and the covered interval
// is returned to seed the create dialog.
func (uc *implUseCase) ReleaseSelection(ctx context.Context, id string) (calendar.ReleaseSelectionOutput, error) {
	sel, err := uc.tracker.Release(id)
	if err != nil {
		return calendar.ReleaseSelectionOutput{}, mapSelectionErr(err)
	}
	return uc.derive(sel)
}

// CancelSelection drops a gesture session.
func (uc *implUseCase) CancelSelection(ctx context.Context, id string) error {
	return mapSelectionErr(uc.tracker.Cancel(id))
}

// ClickSelection is the click-to-create shorthand: a two-slot block.
func (uc *implUseCase) ClickSelection(ctx context.Context, input calendar.ClickSelectionInput) (calendar.ReleaseSelectionOutput, error) {
	sel, err := uc.tracker.Machine().Click(input.Day, input.Index)
	if err != nil {
		return calendar.ReleaseSelectionOutput{}, mapSelectionErr(err)
	}
	return uc.derive(sel)
}

func (uc *implUseCase) derive(sel selection.Selection) (calendar.ReleaseSelectionOutput, error) {
	start, end, err := uc.tracker.Machine().Derive(sel, uc.location())
	if err != nil {
		return calendar.ReleaseSelectionOutput{}, mapSelectionErr(err)
	}
	return calendar.ReleaseSelectionOutput{Selection: sel, Start: start, End: end}, nil
}

func mapSelectionErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, selection.ErrSessionNotFound):
		return calendar.ErrSelectionNotFound
	case errors.Is(err, selection.ErrInvalidSlot),
		errors.Is(err, selection.ErrInvalidDay),
		errors.Is(err, selection.ErrNotSelecting):
		return fmt.Errorf("%w: %v", calendar.ErrInvalidSelection, err)
	default:
		return err
	}
}
