package errors

import (
	"errors"
	"fmt"

	"meetline/internal/meeting"
)

// ErrorCode represents an error code
type ErrorCode string

const (
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"
	ErrCodeBadRequest    ErrorCode = "BAD_REQUEST"
	ErrCodeInternalError ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
)

// AppError represents an application error. Validation errors additionally
// carry the per-field failures so the transport can highlight the offending
// fields.
type AppError struct {
	Code    ErrorCode
	Message string
	Fields  meeting.ValidationErrors
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with an AppError
func Wrap(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation creates an AppError carrying schema field failures.
func Validation(fields meeting.ValidationErrors) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fields.Error(),
		Fields:  fields,
	}
}

// As extracts an AppError from an error chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}

// IsNotFound checks if error is NotFound
func IsNotFound(err error) bool {
	if appErr, ok := As(err); ok {
		return appErr.Code == ErrCodeNotFound
	}
	return false
}

// IsValidation checks if error is a validation failure
func IsValidation(err error) bool {
	if appErr, ok := As(err); ok {
		return appErr.Code == ErrCodeValidation
	}
	return false
}
