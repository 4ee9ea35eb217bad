package repository

import "errors"

var (
	ErrNoIntegration   = errors.New("no active calendar integration")
	ErrFailedToList    = errors.New("failed to list events")
	ErrFailedToCreate  = errors.New("failed to create event")
	ErrInvalidResponse = errors.New("invalid response from calendar source")
)
