package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest   = 4000
	CodeInvalidTag       = 4001
	CodeInvalidFormat    = 4002
	CodeInvalidPriority  = 4003
	CodeOverrideNotFound = 4040

	// 5xxx - Server errors
	CodeInternalServer         = 5000
	CodeDiagnosticsUnavailable = 5010
	CodeNotInitialized         = 5030
	CodeDatabaseConnection     = 5031
)

// Base error types
var (
	// ErrNotInitialized is returned by every operation except init before a successful init
	ErrNotInitialized = errors.New("logcat is not initialized, call Init before use")

	// ErrInvalidTag is returned when the application tag is empty or too long
	ErrInvalidTag = errors.New("invalid application tag")

	// ErrInvalidFormat is returned when a format string cannot be expanded with its arguments
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidPriority is returned when a priority name cannot be parsed
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrOverrideNotFound is returned when no level override exists for a tag
	ErrOverrideNotFound = errors.New("level override not found")

	// ErrReadOnlySource is returned when writing to an override source that cannot be written
	ErrReadOnlySource = errors.New("override source is read-only")

	// ErrDiagnosticsUnavailable is returned by a dumper whose introspection port was not configured
	ErrDiagnosticsUnavailable = errors.New("diagnostics unavailable")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidTag):
		return CodeInvalidTag
	case errors.Is(err, ErrInvalidFormat):
		return CodeInvalidFormat
	case errors.Is(err, ErrInvalidPriority):
		return CodeInvalidPriority
	case errors.Is(err, ErrOverrideNotFound):
		return CodeOverrideNotFound
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrNotInitialized):
		return CodeNotInitialized
	case errors.Is(err, ErrDiagnosticsUnavailable):
		return CodeDiagnosticsUnavailable
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// TagError provides detailed information about a rejected application tag
type TagError struct {
	Tag    string
	Reason string
}

// Error implements the error interface
func (e *TagError) Error() string {
	return fmt.Sprintf("invalid application tag %q: %s", e.Tag, e.Reason)
}

// Is checks if the target error is an ErrInvalidTag
func (e *TagError) Is(target error) bool {
	return target == ErrInvalidTag
}

// FormatError provides detailed information about a format string that failed to expand
type FormatError struct {
	Format string
	Reason string
}

// Error implements the error interface
func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid format %q: %s", e.Format, e.Reason)
}

// Is checks if the target error is an ErrInvalidFormat
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// PriorityError provides detailed information about an unparsable priority
type PriorityError struct {
	Value string
}

// Error implements the error interface
func (e *PriorityError) Error() string {
	return fmt.Sprintf("invalid priority %q: must be one of VERBOSE, DEBUG, INFO, WARN, ERROR, ASSERT or SUPPRESS", e.Value)
}

// Is checks if the target error is an ErrInvalidPriority
func (e *PriorityError) Is(target error) bool {
	return target == ErrInvalidPriority
}

// IsNotInitializedError checks if the error is caused by a missing init
func IsNotInitializedError(err error) bool {
	return errors.Is(err, ErrNotInitialized)
}

// IsInvalidTagError checks if the error is a rejected application tag
func IsInvalidTagError(err error) bool {
	return errors.Is(err, ErrInvalidTag)
}

// IsInvalidFormatError checks if the error is a malformed format string
func IsInvalidFormatError(err error) bool {
	return errors.Is(err, ErrInvalidFormat)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrOverrideNotFound)
}
