package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidInput indicates that a pricing calculation was given inputs it cannot price,
// e.g. a missing pricing tier or an area below the service minimum.
var ErrInvalidInput = errors.New("invalid pricing input")

// ErrLockOutsideTransaction is returned when a row lock is requested without an enclosing
// database transaction. The lock would be released immediately, so the request is refused.
var ErrLockOutsideTransaction = errors.New("row lock requested outside of a transaction")

// ErrAlreadySettled indicates that a booking's cash-on-delivery payout was already credited.
var ErrAlreadySettled = errors.New("booking already settled")

// ErrInternal indicates an unexpected failure in an underlying dependency.
var ErrInternal = errors.New("internal error")

// AppError carries a status-like code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError builds an AppError. err may be nil.
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
