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

	// ErrDuplicateContent is a control-flow outcome, not a failure: the
	// content hash already has a record for this owner.
	ErrDuplicateContent = errors.New("duplicate content")

	// ErrQuotaExceeded halts further recognition-engine calls for the
	// remainder of the job; partial results are surfaced.
	ErrQuotaExceeded = errors.New("engine quota exceeded")
)

// TransientError marks failures worth retrying with backoff
// (network, timeout, engine 5xx).
type TransientError struct {
	Op    string
	Cause error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient: %s: %v", e.Op, e.Cause)
}

func (e *TransientError) Unwrap() error { return e.Cause }

// PermanentError marks failures that must be recorded, never retried
// (corrupt or unsupported document).
type PermanentError struct {
	Op    string
	Cause error
}

func (e *PermanentError) Error() string {
	return fmt.Sprintf("permanent: %s: %v", e.Op, e.Cause)
}

func (e *PermanentError) Unwrap() error { return e.Cause }

func Transient(op string, cause error) error {
	return &TransientError{Op: op, Cause: cause}
}

func Permanent(op string, cause error) error {
	return &PermanentError{Op: op, Cause: cause}
}

// IsTransient reports whether err should be retried.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// IsPermanent reports whether err is terminal for its item.
func IsPermanent(err error) bool {
	var pe *PermanentError
	return errors.As(err, &pe)
}

func IsQuota(err error) bool {
	return errors.Is(err, ErrQuotaExceeded)
}

func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateContent)
}

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

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
