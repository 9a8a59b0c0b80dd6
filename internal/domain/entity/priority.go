package entity

import (
	"math"
	"strings"

	errs "github.com/amirhossein-jamali/logcat/internal/domain/error"
)

// Priority is the severity of a log line. Values match the native Android
// log priorities so numeric levels carry over unchanged.
type Priority int

const (
	// Verbose is the most verbose priority, for development only
	Verbose Priority = 2
	// Debug is for diagnostic output stripped at runtime by default
	Debug Priority = 3
	// Info is the default minimum admitted priority
	Info Priority = 4
	// Warn is for recoverable problems
	Warn Priority = 5
	// Error is for failed operations
	Error Priority = 6
	// Assert is for conditions that should never happen
	Assert Priority = 7

	// Suppress is only meaningful as an override value and denies every priority
	Suppress Priority = math.MaxInt8
)

// DefaultMinimum is the minimum admitted priority when no override exists
const DefaultMinimum = Info

// Priorities lists every message priority from most to least verbose
func Priorities() []Priority {
	return []Priority{Verbose, Debug, Info, Warn, Error, Assert}
}

// IsValid reports whether p is a message priority
func (p Priority) IsValid() bool {
	return p >= Verbose && p <= Assert
}

// String returns the upper-case name of the priority
func (p Priority) String() string {
	switch p {
	case Verbose:
		return "VERBOSE"
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	case Assert:
		return "ASSERT"
	case Suppress:
		return "SUPPRESS"
	default:
		return "UNKNOWN"
	}
}

// Letter returns the single-letter form used in emitted lines
func (p Priority) Letter() string {
	switch p {
	case Verbose:
		return "V"
	case Debug:
		return "D"
	case Info:
		return "I"
	case Warn:
		return "W"
	case Error:
		return "E"
	case Assert:
		return "A"
	case Suppress:
		return "S"
	default:
		return "?"
	}
}

// Admits reports whether a message at priority msg passes when p is the
// minimum admitted priority.
func (p Priority) Admits(msg Priority) bool {
	if p == Suppress {
		return false
	}
	return msg >= p
}

// ParsePriority parses a level name or letter, case-insensitively.
// SUPPRESS is accepted because it is a valid override value.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "VERBOSE", "V":
		return Verbose, nil
	case "DEBUG", "D":
		return Debug, nil
	case "INFO", "I":
		return Info, nil
	case "WARN", "WARNING", "W":
		return Warn, nil
	case "ERROR", "E":
		return Error, nil
	case "ASSERT", "A":
		return Assert, nil
	case "SUPPRESS", "S":
		return Suppress, nil
	default:
		return 0, &errs.PriorityError{Value: s}
	}
}
