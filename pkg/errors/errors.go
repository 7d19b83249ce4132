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
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrPermission   ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Manifest errors
	ErrManifestInvalid ErrorCode = "MANIFEST_INVALID"
	ErrOverlayParse    ErrorCode = "OVERLAY_PARSE"

	// Staging errors
	ErrMissingSource ErrorCode = "MISSING_SOURCE_FILE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
	ErrFileCopy      ErrorCode = "FILE_COPY"
	ErrFileWrite     ErrorCode = "FILE_WRITE"
	ErrChmod         ErrorCode = "CHMOD"
)

// StageError represents a structured error with code and details
type StageError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *StageError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *StageError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *StageError) Is(target error) bool {
	var targetErr *StageError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new StageError with the given code and message
func New(code ErrorCode, message string) *StageError {
	return &StageError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new StageError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *StageError {
	return &StageError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a StageError
func Wrap(err error, code ErrorCode, message string) *StageError {
	if err == nil {
		return nil
	}
	return &StageError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *StageError {
	if err == nil {
		return nil
	}
	return &StageError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *StageError) WithDetail(key string, value interface{}) *StageError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a StageError
func GetErrorCode(err error) ErrorCode {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a StageError
func GetErrorDetails(err error) map[string]interface{} {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Details
	}
	return nil
}
