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

	// Run preconditions (wrong host platform and similar); fatal before any mutation
	ErrPrecondition ErrorCode = "PRECONDITION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileRead    ErrorCode = "FILE_READ"
	ErrFileWrite   ErrorCode = "FILE_WRITE"
	ErrBackupWrite ErrorCode = "BACKUP_WRITE"

	// Collaborator errors (installer, plugin fetcher)
	ErrMissingCollaborator ErrorCode = "MISSING_COLLABORATOR"
	ErrCollaboratorFailed  ErrorCode = "COLLABORATOR_FAILED"
)

// DotmergeError represents a structured error with code and details
type DotmergeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DotmergeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DotmergeError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DotmergeError) Is(target error) bool {
	var targetErr *DotmergeError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DotmergeError with the given code and message
func New(code ErrorCode, message string) *DotmergeError {
	return &DotmergeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DotmergeError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DotmergeError {
	return &DotmergeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DotmergeError
func Wrap(err error, code ErrorCode, message string) *DotmergeError {
	if err == nil {
		return nil
	}
	return &DotmergeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DotmergeError {
	if err == nil {
		return nil
	}
	return &DotmergeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DotmergeError) WithDetail(key string, value interface{}) *DotmergeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *DotmergeError) WithDetails(details map[string]interface{}) *DotmergeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dmErr *DotmergeError
	if errors.As(err, &dmErr) {
		return dmErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DotmergeError
func GetErrorCode(err error) ErrorCode {
	var dmErr *DotmergeError
	if errors.As(err, &dmErr) {
		return dmErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DotmergeError
func GetErrorDetails(err error) map[string]interface{} {
	var dmErr *DotmergeError
	if errors.As(err, &dmErr) {
		return dmErr.Details
	}
	return nil
}
// IsFatal reports whether err stops the whole invocation. Every other
// error only aborts the target file or collaborator step it came from.
func IsFatal(err error) bool {
	switch GetErrorCode(err) {
	case ErrPrecondition, ErrConfigLoad, ErrConfigValid:
		return true
	}
	return false
}

// ForFile wraps err with code and records the target path as a detail.
func ForFile(err error, code ErrorCode, path string, message string) *DotmergeError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, message).WithDetail("path", path)
}
