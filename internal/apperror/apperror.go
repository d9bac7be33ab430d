package apperror

import (
	"errors"
	"net/http"
)

// Error is an application error carrying the HTTP status it should surface
// with. Persistence and unexpected failures keep their cause for the logs
// but never leak it to the client.
type Error struct {
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func Unauthorized(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: msg}
}

func Validation(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

func Persistence(msg string, cause error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: msg, cause: cause}
}

// StatusOf maps any error to the status code it should surface with.
// Unknown errors are treated as unexpected server failures.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the client-facing message for err. Server-side failures
// collapse to a generic message.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Status != http.StatusInternalServerError {
		return appErr.Message
	}
	return "An unexpected error occurred"
}
