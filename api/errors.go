// File: api/errors.go
// License: Apache-2.0
//
// Common error types and error handling utilities for the libds library.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library.
var (
	ErrOutOfRange        = errors.New("position out of range")
	ErrAllocationFailure = errors.New("could not allocate memory")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrNotSupported      = errors.New("operation not supported")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	CodeOK ErrorCode = iota
	CodeOutOfRange
	CodeAllocationFailure
	CodeInvalidArgument
	CodeNotSupported
)

// sentinel maps each code to the sentinel matched by errors.Is.
func (c ErrorCode) sentinel() error {
	switch c {
	case CodeOutOfRange:
		return ErrOutOfRange
	case CodeAllocationFailure:
		return ErrAllocationFailure
	case CodeInvalidArgument:
		return ErrInvalidArgument
	case CodeNotSupported:
		return ErrNotSupported
	}
	return nil
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if len(e.Context) == 0 {
		return msg
	}
	return fmt.Sprintf("%s (context: %+v)", msg, e.Context)
}

// Unwrap exposes the cause chain and the code sentinel to errors.Is.
func (e *Error) Unwrap() []error {
	out := make([]error, 0, 2)
	if s := e.Code.sentinel(); s != nil {
		out = append(out, s)
	}
	if e.Cause != nil {
		out = append(out, e.Cause)
	}
	return out
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithCause attaches the underlying error that triggered this one.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
