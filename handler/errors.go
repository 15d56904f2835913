package handler

import (
	"errors"
	"net/http"
)

// ErrNilResponse indicates a handler returned nil instead of a Response.
var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError is an error with an HTTP status code and a client-facing message.
type HTTPError struct {
	Code    int
	Message string
}

func (e HTTPError) Error() string { return e.Message }

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}

var (
	ErrBadRequest          = HTTPError{Code: http.StatusBadRequest, Message: "bad_request"}
	ErrNotFound            = HTTPError{Code: http.StatusNotFound, Message: "not_found"}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Message: "internal_server_error"}
)

type errorResponse struct{ err error }

// Render hands the error back to Wrap, which passes it to the ErrorHandler.
func (r errorResponse) Render(http.ResponseWriter, *http.Request) error { return r.err }

// Error creates a response that routes err to the error handler.
func Error(err error) Response {
	if err == nil {
		err = ErrInternalServerError
	}
	return errorResponse{err: err}
}
