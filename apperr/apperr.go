// Package apperr carries the error taxonomy the API surfaces: every failure
// a handler returns maps to one of these codes and its HTTP status. Remote
// provider errors are wrapped, never fatal.
package apperr

import (
	"errors"
	"net/http"
)

type Code string

const (
	CodeNotAuthenticated Code = "NOT_AUTHENTICATED"
	CodeNotFound         Code = "NOT_FOUND"
	CodeDuplicate        Code = "DUPLICATE"
	CodeValidation       Code = "VALIDATION_ERROR"
	CodeRemote           Code = "REMOTE_ERROR"
	CodeInternal         Code = "INTERNAL_ERROR"
)

var statusByCode = map[Code]int{
	CodeNotAuthenticated: http.StatusUnauthorized,
	CodeNotFound:         http.StatusNotFound,
	CodeDuplicate:        http.StatusConflict,
	CodeValidation:       http.StatusBadRequest,
	CodeRemote:           http.StatusBadGateway,
	CodeInternal:         http.StatusInternalServerError,
}

// HTTPStatus maps a code to its response status, defaulting to 500 for
// unknown codes.
func HTTPStatus(code Code) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

type Error struct {
	code    Code
	message string
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

// Wrap attaches a code and message to an underlying error, keeping the
// provider text reachable through Unwrap.
func Wrap(code Code, err error, message string) *Error {
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Code() Code { return e.code }

// Message is the human-readable text without the wrapped cause.
func (e *Error) Message() string { return e.message }

// CodeOf extracts the code from an error chain, or CodeInternal when none is
// present.
func CodeOf(err error) Code {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.code
	}
	return CodeInternal
}

func IsNotAuthenticated(err error) bool { return CodeOf(err) == CodeNotAuthenticated }

func IsNotFound(err error) bool { return CodeOf(err) == CodeNotFound }

func IsDuplicate(err error) bool { return CodeOf(err) == CodeDuplicate }
