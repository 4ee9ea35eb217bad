package calendar

import (
	"context"

	"calendar-grid/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Grid geometry
	Range(ctx context.Context, input RangeInput) (RangeOutput, error)
	Slots(ctx context.Context) SlotsOutput

	// Events
	ListEvents(ctx context.Context, sc model.Scope, input ListEventsInput) (ListEventsOutput, error)
	CreateEvent(ctx context.Context, input CreateEventInput) (CreateEventOutput, error)
	CreateFromSelection(ctx context.Context, input CreateFromSelectionInput) (CreateEventOutput, error)
	ExportICS(ctx context.Context, input ExportInput) (ExportOutput, error)

	// Gestures
	BeginSelection(ctx context.Context, input BeginSelectionInput) (SelectionOutput, error)
	MoveSelection(ctx context.Context, input MoveSelectionInput) (SelectionOutput, error)
	ReleaseSelection(ctx context.Context, id string) (ReleaseSelectionOutput, error)
	CancelSelection(ctx context.Context, id string) error
	ClickSelection(ctx context.Context, input ClickSelectionInput) (ReleaseSelectionOutput, error)
}
