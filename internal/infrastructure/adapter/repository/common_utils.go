package repository

import (
	"context"
	"errors"
	"strings"
)

// ErrorType represents the kind of database failure, used when logging it
type ErrorType string

const (
	TimeoutError    ErrorType = "timeout"
	TransientError  ErrorType = "transient"
	ConnectionError ErrorType = "connection"
	ConstraintError ErrorType = "constraint"
	UnknownError    ErrorType = "unknown"
)

// ErrorClassifier provides methods to classify database errors
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case c.IsTimeoutError(err):
		return TimeoutError
	case c.IsTransientError(err):
		return TransientError
	case c.IsConnectionError(err):
		return ConnectionError
	case c.IsConstraintError(err):
		return ConstraintError
	default:
		return UnknownError
	}
}

// IsTimeoutError checks if the operation ran out of time
func (c *ErrorClassifier) IsTimeoutError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || containsAny(err, "timeout", "deadline exceeded")
}

// IsTransientError checks if an error is transient and can be retried
func (c *ErrorClassifier) IsTransientError(err error) bool {
	return containsAny(err, "connection reset", "connection refused", "eof", "server closed", "broken pipe")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	return containsAny(err, "connection", "dial", "network")
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	return containsAny(err, "constraint", "violates", "duplicate key", "not null", "value too long")
}

func containsAny(err error, fragments ...string) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, f := range fragments {
		if strings.Contains(msg, f) {
			return true
		}
	}
	return false
}
