package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInsufficientFunds indicates that a savings transfer exceeds the available balance or savings.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrStoreUnavailable indicates that the underlying persistence layer failed.
var ErrStoreUnavailable = errors.New("store unavailable")

// AppError pairs an HTTP status code with a message and an optional cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError. A nil cause is allowed.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets server-side AppErrors match ErrStoreUnavailable so callers can
// report them generically without inspecting the code.
func (e *AppError) Is(target error) bool {
	return target == ErrStoreUnavailable && e.Code >= 500
}

// NewValidationError wraps a message so that errors.Is(err, ErrValidation) holds.
func NewValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
