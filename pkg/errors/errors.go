package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an error category with a stable value for testing
// and for mapping failures to per-link outcomes.
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Manifest errors
	ErrManifestNotFound ErrorCode = "MANIFEST_NOT_FOUND"
	ErrSourceMissing    ErrorCode = "SOURCE_MISSING"

	// Link errors. These map one-to-one onto the failure reasons a
	// single link request can report.
	ErrDirCreate       ErrorCode = "DIR_CREATE"
	ErrLinkCreate      ErrorCode = "LINK_CREATE"
	ErrPermission      ErrorCode = "PERMISSION"
	ErrBackupDirCreate ErrorCode = "BACKUP_DIR_CREATE"
	ErrBackupMove      ErrorCode = "BACKUP_MOVE"

	// ErrLinkAfterBackup is the partial-failure state: the original was
	// moved into the backup directory but the symlink was not created.
	// It is reported distinctly so the caller can locate the displaced
	// original.
	ErrLinkAfterBackup ErrorCode = "LINK_AFTER_BACKUP"
)

// DotlnkError is a structured error carrying a code and optional details.
type DotlnkError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DotlnkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DotlnkError) Unwrap() error {
	return e.Wrapped
}

// Is matches two DotlnkErrors by code.
func (e *DotlnkError) Is(target error) bool {
	var targetErr *DotlnkError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DotlnkError with the given code and message
func New(code ErrorCode, message string) *DotlnkError {
	return &DotlnkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DotlnkError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DotlnkError {
	return &DotlnkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DotlnkError. Returns nil for a nil
// error so call sites can wrap unconditionally.
func Wrap(err error, code ErrorCode, message string) *DotlnkError {
	if err == nil {
		return nil
	}
	return &DotlnkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DotlnkError {
	if err == nil {
		return nil
	}
	return &DotlnkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DotlnkError) WithDetail(key string, value interface{}) *DotlnkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dotlnkErr *DotlnkError
	if errors.As(err, &dotlnkErr) {
		return dotlnkErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if the
// error is not a DotlnkError.
func GetErrorCode(err error) ErrorCode {
	var dotlnkErr *DotlnkError
	if errors.As(err, &dotlnkErr) {
		return dotlnkErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DotlnkError
func GetErrorDetails(err error) map[string]interface{} {
	var dotlnkErr *DotlnkError
	if errors.As(err, &dotlnkErr) {
		return dotlnkErr.Details
	}
	return nil
}
