package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrDatabase     = errors.New("database error")
	ErrValidation   = errors.New("validation failed")
	ErrNotReady     = errors.New("result not ready")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// NewValidationError marks bad caller input. Validation failures are never
// retried and surface immediately to the caller of Submit.
func NewValidationError(message string) error {
	return NewAppError("VALIDATION_ERROR", message, ErrValidation)
}

// IsValidationError reports whether err originated from input validation.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func NotReadyError(message string) error {
	return status.Error(codes.FailedPrecondition, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
