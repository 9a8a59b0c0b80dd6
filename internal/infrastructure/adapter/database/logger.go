package database

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	coreport "github.com/amirhossein-jamali/logcat/internal/domain/port/core"
)

// LogTag is the component tag database messages are written under
const LogTag = "db"

var gormLogLevels = map[string]logger.LogLevel{
	"silent": logger.Silent,
	"error":  logger.Error,
	"warn":   logger.Warn,
	"info":   logger.Info,
}

// DatabaseLogger is a GORM logger that writes through the façade
type DatabaseLogger struct {
	log           coreport.Logger
	logLevel      logger.LogLevel
	slowThreshold time.Duration
	timeProvider  coreport.TimeProvider
}

// NewDatabaseLogger creates a database logger. Unknown levels fall back to warn.
func NewDatabaseLogger(log coreport.Logger, timeProvider coreport.TimeProvider, level string) *DatabaseLogger {
	logLevel, ok := gormLogLevels[strings.ToLower(level)]
	if !ok {
		logLevel = logger.Warn
	}

	return &DatabaseLogger{
		log:           log,
		logLevel:      logLevel,
		slowThreshold: time.Duration(200 * coreport.Millisecond),
		timeProvider:  timeProvider,
	}
}

// LogMode sets the log level for the logger
func (l *DatabaseLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.logLevel = level
	return &newLogger
}

// WithSlowThreshold returns a new logger with updated slow threshold
func (l *DatabaseLogger) WithSlowThreshold(threshold time.Duration) *DatabaseLogger {
	newLogger := *l
	newLogger.slowThreshold = threshold
	return &newLogger
}

// Info logs info messages
func (l *DatabaseLogger) Info(_ context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Info {
		_, _ = l.log.Infof(LogTag, msg, data...)
	}
}

// Warn logs warn messages
func (l *DatabaseLogger) Warn(_ context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Warn {
		_, _ = l.log.Warnf(LogTag, msg, data...)
	}
}

// Error logs error messages
func (l *DatabaseLogger) Error(_ context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Error {
		_, _ = l.log.Errorf(LogTag, msg, data...)
	}
}

// Trace logs SQL operations. A missing record is not an error here, the
// repository reports it to its caller.
func (l *DatabaseLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logLevel <= logger.Silent {
		return
	}

	var elapsed time.Duration
	if l.timeProvider != nil {
		elapsed = l.timeProvider.Since(begin).Std()
	} else {
		elapsed = time.Since(begin)
	}

	sql, rows := fc()
	kind := extractQueryType(sql)
	table := extractTableName(sql)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.logLevel >= logger.Error:
		_, _ = l.log.Errorf(LogTag, "SQL error on %s %s after %s: %v [%s]", kind, table, elapsed, err, sql)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.logLevel >= logger.Warn:
		_, _ = l.log.Warnf(LogTag, "Slow SQL query on %s %s: %s rows=%d [%s]", kind, table, elapsed, rows, sql)
	case l.logLevel >= logger.Info:
		_, _ = l.log.Debugf(LogTag, "SQL %s %s: %s rows=%d [%s]", kind, table, elapsed, rows, sql)
	}
}

// extractQueryType determines the type of SQL query (SELECT, INSERT, UPDATE, DELETE)
func extractQueryType(sql string) string {
	sqlUpper := strings.ToUpper(strings.TrimSpace(sql))

	for _, kind := range []string{"SELECT", "INSERT", "UPDATE", "DELETE"} {
		if strings.HasPrefix(sqlUpper, kind) {
			return kind
		}
	}
	return "QUERY"
}

// extractTableName attempts to extract the table name from the SQL query
func extractTableName(sql string) string {
	trimmed := strings.TrimSpace(sql)
	sqlUpper := strings.ToUpper(trimmed)
	if len(sqlUpper) != len(trimmed) {
		trimmed = sqlUpper
	}

	var fromIndex int
	switch {
	case strings.Contains(sqlUpper, " FROM "):
		fromIndex = strings.Index(sqlUpper, " FROM ") + 6
	case strings.Contains(sqlUpper, " INTO "):
		fromIndex = strings.Index(sqlUpper, " INTO ") + 6
	case strings.HasPrefix(sqlUpper, "UPDATE "):
		fromIndex = 7
	default:
		return ""
	}

	remainder := strings.TrimSpace(trimmed[fromIndex:])
	if end := strings.IndexAny(remainder, " (\n"); end != -1 {
		remainder = remainder[:end]
	}
	return strings.Trim(remainder, `"`)
}
