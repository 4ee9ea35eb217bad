package errors

import "net/http"

// HTTPError is an error that carries the HTTP status and the error code sent to clients.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError builds an HTTPError whose error code equals the status.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: status,
		Code:       status,
		Message:    message,
	}
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)
