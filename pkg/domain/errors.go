package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNoDataProvided  = NewClientInputError("No data provided")
	ErrInvalidJSON     = NewClientInputError("Invalid JSON data")
	ErrInvalidEndpoint = NewClientInputError("Invalid endpoint")
)

// ClientInputError is a request the caller has to fix. It never mutates
// state and maps to 400.
type ClientInputError struct {
	Message string
}

func (e *ClientInputError) Error() string {
	return e.Message
}

func NewClientInputError(message string) *ClientInputError {
	return &ClientInputError{Message: message}
}

// InternalError is an unexpected failure while handling one request. It
// maps to 500 and does not affect other requests.
type InternalError struct {
	Cause error
}

func (e *InternalError) Error() string {
	if e.Cause == nil {
		return "internal error"
	}
	return e.Cause.Error()
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(cause error) error {
	return &InternalError{Cause: cause}
}

func NewInternalErrorf(format string, args ...interface{}) error {
	return &InternalError{Cause: fmt.Errorf(format, args...)}
}

func IsClientInputError(err error) bool {
	if err == nil {
		return false
	}
	var clientErr *ClientInputError
	return errors.As(err, &clientErr)
}

func IsInternalError(err error) bool {
	if err == nil {
		return false
	}
	var internalErr *InternalError
	return errors.As(err, &internalErr)
}
