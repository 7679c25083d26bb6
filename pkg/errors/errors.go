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
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrPermission   ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Matching errors
	ErrInvalidMatchType ErrorCode = "INVALID_MATCH_TYPE"
	ErrInvalidTask      ErrorCode = "INVALID_TASK"
	ErrPatternCompile   ErrorCode = "PATTERN_COMPILE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileCopy     ErrorCode = "FILE_COPY"
	ErrFileMove     ErrorCode = "FILE_MOVE"
	ErrFileRemove   ErrorCode = "FILE_REMOVE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// FilewiseError represents a structured error with code and details
type FilewiseError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FilewiseError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FilewiseError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FilewiseError) Is(target error) bool {
	var targetErr *FilewiseError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FilewiseError with the given code and message
func New(code ErrorCode, message string) *FilewiseError {
	return &FilewiseError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FilewiseError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FilewiseError {
	return &FilewiseError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FilewiseError
func Wrap(err error, code ErrorCode, message string) *FilewiseError {
	if err == nil {
		return nil
	}
	return &FilewiseError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FilewiseError {
	if err == nil {
		return nil
	}
	return &FilewiseError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FilewiseError) WithDetail(key string, value interface{}) *FilewiseError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var fwErr *FilewiseError
	if errors.As(err, &fwErr) {
		return fwErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FilewiseError
func GetErrorCode(err error) ErrorCode {
	var fwErr *FilewiseError
	if errors.As(err, &fwErr) {
		return fwErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FilewiseError
func GetErrorDetails(err error) map[string]interface{} {
	var fwErr *FilewiseError
	if errors.As(err, &fwErr) {
		return fwErr.Details
	}
	return nil
}
