package logger

import (
	"github.com/amirhossein-jamali/logcat/internal/domain/entity"
)

// NoopLineLogger implements the LineLogger interface but doesn't write anything.
// It still reports the message length so callers see a successful write.
type NoopLineLogger struct{}

// NewNoopLineLogger creates a new no-op line logger
func NewNoopLineLogger() *NoopLineLogger {
	return &NoopLineLogger{}
}

// Println discards the line
func (l *NoopLineLogger) Println(_ entity.Priority, _ string, msg string) int {
	return len(msg)
}

// Sync does nothing
func (l *NoopLineLogger) Sync() error {
	return nil
}

// Close does nothing
func (l *NoopLineLogger) Close() error {
	return nil
}
