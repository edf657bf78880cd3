package errors

import (
	"errors"
	"fmt"
)

// Re-exported standard library helpers so callers only import this package.
var (
	New    = errors.New
	Unwrap = errors.Unwrap
	Is     = errors.Is
	As     = errors.As
)

// Error extends the basic error interface with an application code.
type Error interface {
	error
	Code() string
	Unwrap() error
}

// AppError is the default Error implementation.
type AppError struct {
	code    string
	message string
	err     error
}

func (e *AppError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.message, e.err.Error())
	}
	return e.message
}

func (e *AppError) Code() string {
	return e.code
}

func (e *AppError) Unwrap() error {
	return e.err
}

// NewAppError creates a new application error with an explicit code.
func NewAppError(code string, message string, err error) *AppError {
	return &AppError{
		code:    code,
		message: message,
		err:     err,
	}
}

// Wrap wraps an existing error, preserving its code when it already is
// an AppError.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if As(err, &appErr) {
		return NewAppError(appErr.Code(), message, err)
	}

	return NewAppError(ErrInternal, message, err)
}

// CodeOf returns the application code of err, or ErrInternal when err
// carries none.
func CodeOf(err error) string {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr.Code()
	}
	return ErrInternal
}

// Shorthand constructors for the codes used throughout the guards and
// usecases.

func NotFound(message string) *AppError {
	return NewAppError(ErrNotFound, message, nil)
}

func InvalidArgument(message string) *AppError {
	return NewAppError(ErrInvalidArgument, message, nil)
}

func Unauthenticated(message string) *AppError {
	return NewAppError(ErrUnauthenticated, message, nil)
}

func Unauthorized(message string) *AppError {
	return NewAppError(ErrUnauthorized, message, nil)
}

func Conflict(message string) *AppError {
	return NewAppError(ErrConflict, message, nil)
}

func Unprocessable(message string) *AppError {
	return NewAppError(ErrUnprocessable, message, nil)
}

func Internal(message string, err error) *AppError {
	return NewAppError(ErrInternal, message, err)
}
