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
	ErrUnknown ErrorCode = "UNKNOWN"

	// Line-level parse errors; each carries the offending line in Details
	ErrTooShort         ErrorCode = "TOO_SHORT"
	ErrInvalidDirection ErrorCode = "INVALID_DIRECTION"
	ErrInvalidMagnitude ErrorCode = "INVALID_MAGNITUDE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Input-file errors
	ErrFileNotFound   ErrorCode = "FILE_NOT_FOUND"
	ErrFilePermission ErrorCode = "FILE_PERMISSION"
	ErrFileRead       ErrorCode = "FILE_READ"
)

// SafecrackerError represents a structured error with code and details
type SafecrackerError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SafecrackerError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SafecrackerError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SafecrackerError) Is(target error) bool {
	var targetErr *SafecrackerError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SafecrackerError with the given code and message
func New(code ErrorCode, message string) *SafecrackerError {
	return &SafecrackerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SafecrackerError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SafecrackerError {
	return &SafecrackerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SafecrackerError
func Wrap(err error, code ErrorCode, message string) *SafecrackerError {
	if err == nil {
		return nil
	}
	return &SafecrackerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SafecrackerError {
	if err == nil {
		return nil
	}
	return &SafecrackerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SafecrackerError) WithDetail(key string, value interface{}) *SafecrackerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var scErr *SafecrackerError
	if errors.As(err, &scErr) {
		return scErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SafecrackerError
func GetErrorCode(err error) ErrorCode {
	var scErr *SafecrackerError
	if errors.As(err, &scErr) {
		return scErr.Code
	}
	return ErrUnknown
}

// GetDetail returns a single detail value from an error, if present
func GetDetail(err error, key string) (interface{}, bool) {
	var scErr *SafecrackerError
	if errors.As(err, &scErr) {
		v, ok := scErr.Details[key]
		return v, ok
	}
	return nil, false
}
