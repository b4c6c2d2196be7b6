package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Command line errors
	ErrUsage          ErrorCode = "USAGE"
	ErrInvalidPattern ErrorCode = "INVALID_PATTERN"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrRename     ErrorCode = "RENAME"
)

// FrepError represents a structured error with code and details
type FrepError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FrepError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FrepError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FrepError) Is(target error) bool {
	var targetErr *FrepError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FrepError with the given code and message
func New(code ErrorCode, message string) *FrepError {
	return &FrepError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FrepError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FrepError {
	return &FrepError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FrepError
func Wrap(err error, code ErrorCode, message string) *FrepError {
	if err == nil {
		return nil
	}
	return &FrepError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FrepError {
	if err == nil {
		return nil
	}
	return &FrepError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FrepError) WithDetail(key string, value interface{}) *FrepError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// Cause returns the innermost non-FrepError in the chain, or the error
// itself when nothing is wrapped. Diagnostics print the cause so the user
// sees the OS message rather than the code prefix.
func Cause(err error) error {
	for err != nil {
		var frepErr *FrepError
		if !errors.As(err, &frepErr) || frepErr.Wrapped == nil {
			return err
		}
		err = frepErr.Wrapped
	}
	return err
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var frepErr *FrepError
	if errors.As(err, &frepErr) {
		return frepErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FrepError
func GetErrorCode(err error) ErrorCode {
	var frepErr *FrepError
	if errors.As(err, &frepErr) {
		return frepErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FrepError
func GetErrorDetails(err error) map[string]interface{} {
	var frepErr *FrepError
	if errors.As(err, &frepErr) {
		return frepErr.Details
	}
	return nil
}
