package http

import (
	"errors"
	"net/http"

	"calendar-grid/internal/calendar"
	pkgErrors "calendar-grid/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Upstream failures keep their sentinel message so provider details stay in logs.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, calendar.ErrInvalidView),
		errors.Is(err, calendar.ErrInvalidDate),
		errors.Is(err, calendar.ErrInvalidSelection),
		errors.Is(err, calendar.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, calendar.ErrSelectionNotFound),
		errors.Is(err, calendar.ErrNothingToExport):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, calendar.ErrSuperseded):
		return pkgErrors.NewHTTPError(http.StatusConflict, calendar.ErrSuperseded.Error())
	case errors.Is(err, calendar.ErrNoIntegration):
		return pkgErrors.NewHTTPError(http.StatusFailedDependency, calendar.ErrNoIntegration.Error())
	case errors.Is(err, calendar.ErrFetchFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, calendar.ErrFetchFailed.Error())
	case errors.Is(err, calendar.ErrCreateFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, calendar.ErrCreateFailed.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
