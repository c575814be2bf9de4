package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Manifest errors
	ErrMissingFile  ErrorCode = "MISSING_FILE"
	ErrParse        ErrorCode = "PARSE"
	ErrIncludeCycle ErrorCode = "INCLUDE_CYCLE"

	// Command line errors
	ErrArgument ErrorCode = "ARGUMENT"

	// Configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// ManifestError represents a structured error with code and details
type ManifestError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ManifestError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ManifestError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ManifestError) Is(target error) bool {
	var targetErr *ManifestError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ManifestError with the given code and message
func New(code ErrorCode, message string) *ManifestError {
	return &ManifestError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ManifestError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ManifestError {
	return &ManifestError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ManifestError
func Wrap(err error, code ErrorCode, message string) *ManifestError {
	if err == nil {
		return nil
	}
	return &ManifestError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ManifestError {
	if err == nil {
		return nil
	}
	return &ManifestError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ManifestError) WithDetail(key string, value interface{}) *ManifestError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *ManifestError) WithDetails(details map[string]interface{}) *ManifestError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// MissingFiles builds the single error reported when one or more manifest
// paths do not exist. The paths keep the order they were given in.
func MissingFiles(paths ...string) *ManifestError {
	return Newf(ErrMissingFile, "missing files: %s", strings.Join(paths, ", ")).
		WithDetail("paths", append([]string(nil), paths...))
}

// Parse builds a parse error located at a line of a named source.
func Parse(source string, line int, format string, args ...interface{}) *ManifestError {
	return Newf(ErrParse, "%s:%d: %s", source, line, fmt.Sprintf(format, args...)).
		WithDetail("source", source).
		WithDetail("line", line)
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var manifestErr *ManifestError
	if errors.As(err, &manifestErr) {
		return manifestErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ManifestError
func GetErrorCode(err error) ErrorCode {
	var manifestErr *ManifestError
	if errors.As(err, &manifestErr) {
		return manifestErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ManifestError
func GetErrorDetails(err error) map[string]interface{} {
	var manifestErr *ManifestError
	if errors.As(err, &manifestErr) {
		return manifestErr.Details
	}
	return nil
}

// DetailKeys returns the detail keys of an error in sorted order, mostly for
// stable log output.
func DetailKeys(err error) []string {
	details := GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
