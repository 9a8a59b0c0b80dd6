package core

import "github.com/amirhossein-jamali/logcat/internal/domain/entity"

// LineLogger is the host line-oriented log sink
type LineLogger interface {
	// Println writes one line under tag at priority and returns the number
	// of bytes written, or a negative value when the sink failed
	Println(priority entity.Priority, tag, msg string) int
}

// LineLoggerFunc adapts a function to LineLogger
type LineLoggerFunc func(priority entity.Priority, tag, msg string) int

// Println calls f(priority, tag, msg)
func (f LineLoggerFunc) Println(priority entity.Priority, tag, msg string) int {
	return f(priority, tag, msg)
}

// Logger is the tagged printf-style surface infrastructure code reports
// through. The façade implements it, so adapters log like any other caller.
type Logger interface {
	Debugf(tag, format string, args ...any) (int, error)
	Infof(tag, format string, args ...any) (int, error)
	Warnf(tag, format string, args ...any) (int, error)
	Errorf(tag, format string, args ...any) (int, error)
}
