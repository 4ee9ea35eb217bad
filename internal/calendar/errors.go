package calendar

import (
	"errors"

	"calendar-grid/internal/model"
)

var (
	ErrNoIntegration     = errors.New("no active calendar integration")
	ErrFetchFailed       = errors.New("failed to fetch events")
	ErrCreateFailed      = errors.New("failed to create event")
	ErrInvalidView       = errors.New("invalid view type")
	ErrInvalidDate       = errors.New("invalid reference date")
	ErrInvalidSelection  = errors.New("invalid selection")
	ErrInvalidPayload    = errors.New("invalid payload")
	ErrSelectionNotFound = errors.New("selection not found")
	ErrSuperseded        = errors.New("superseded by a newer request")
	ErrNothingToExport   = errors.New("no events in range")
)

// CreateError is returned when the source rejects an event. It carries the
// submitted draft so the caller can resubmit it unchanged.
type CreateError struct {
	Draft model.EventDraft
	Err   error
}

func (e *CreateError) Error() string {
	if e.Err == nil {
		return ErrCreateFailed.Error()
	}
	return ErrCreateFailed.Error() + ": " + e.Err.Error()
}

func (e *CreateError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrCreateFailed) hold for every CreateError.
func (e *CreateError) Is(target error) bool {
	return target == ErrCreateFailed
}
