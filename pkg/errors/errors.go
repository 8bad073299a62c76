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
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrAlreadyExists  ErrorCode = "ALREADY_EXISTS"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Precondition errors
	ErrStorageMissing ErrorCode = "STORAGE_MISSING"
	ErrNotInitialized ErrorCode = "NOT_INITIALIZED"
	ErrConfigMissing  ErrorCode = "CONFIG_MISSING"
	ErrOutsideBase    ErrorCode = "OUTSIDE_BASE"

	// Consistency errors. The registry and the storage directory disagree.
	ErrConsistency ErrorCode = "CONSISTENCY"

	// Tracking errors
	ErrIsDirectory    ErrorCode = "IS_DIRECTORY"
	ErrAlreadyTracked ErrorCode = "ALREADY_TRACKED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigSave  ErrorCode = "CONFIG_SAVE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileRead   ErrorCode = "FILE_READ"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrFileCopy   ErrorCode = "FILE_COPY"
	ErrFileRemove ErrorCode = "FILE_REMOVE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"

	// Collaborator errors
	ErrGitCommand ErrorCode = "GIT_COMMAND"
	ErrPrompt     ErrorCode = "PROMPT"
)

// DotrError represents a structured error with code and details
type DotrError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DotrError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DotrError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DotrError) Is(target error) bool {
	var targetErr *DotrError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DotrError with the given code and message
func New(code ErrorCode, message string) *DotrError {
	return &DotrError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DotrError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DotrError {
	return &DotrError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DotrError
func Wrap(err error, code ErrorCode, message string) *DotrError {
	if err == nil {
		return nil
	}
	return &DotrError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DotrError {
	if err == nil {
		return nil
	}
	return &DotrError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DotrError) WithDetail(key string, value interface{}) *DotrError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dotrErr *DotrError
	if errors.As(err, &dotrErr) {
		return dotrErr.Code == code
	}
	return false
}

// IsConsistencyViolation reports whether err signals that a tracked file and
// its storage copy drifted apart. Callers should stop the batch and report.
// The check walks the whole chain, so a consistency error wrapped by an
// outer code is still found.
func IsConsistencyViolation(err error) bool {
	return errors.Is(err, &DotrError{Code: ErrConsistency})
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DotrError
func GetErrorCode(err error) ErrorCode {
	var dotrErr *DotrError
	if errors.As(err, &dotrErr) {
		return dotrErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DotrError
func GetErrorDetails(err error) map[string]interface{} {
	var dotrErr *DotrError
	if errors.As(err, &dotrErr) {
		return dotrErr.Details
	}
	return nil
}
