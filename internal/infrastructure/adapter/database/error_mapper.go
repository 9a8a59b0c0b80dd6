package database

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	domainErr "github.com/amirhossein-jamali/logcat/internal/domain/error"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrOverrideNotFound
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "broken pipe"):
		return fmt.Errorf("%w: %s: %v", domainErr.ErrDatabaseConnection, operation, err)

	case strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded"):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)

	default:
		return fmt.Errorf("%w: %s: %v", domainErr.ErrInternalServer, operation, err)
	}
}
