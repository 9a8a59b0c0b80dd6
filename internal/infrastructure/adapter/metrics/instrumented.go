// Package metrics counts the lines going through a LineLogger with OpenTelemetry.
//
// Usage:
//
//	sink := metrics.Instrument(logger.NewDefaultLineLogger(), metrics.DefaultConfig())
package metrics

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/amirhossein-jamali/logcat/internal/domain/entity"
	"github.com/amirhossein-jamali/logcat/internal/domain/port/core"
)

const instrumentationName = "github.com/amirhossein-jamali/logcat"

// Config configures the instrumentation
type Config struct {
	// MeterProvider supplies the meter. Defaults to otel.GetMeterProvider().
	MeterProvider metric.MeterProvider
	// CustomAttributes are added to every measurement
	CustomAttributes []attribute.KeyValue
}

// DefaultConfig returns a Config resolved from the global OTel SDK
func DefaultConfig() Config {
	return Config{}
}

// InstrumentedLineLogger decorates a LineLogger with line, byte and failure counters
type InstrumentedLineLogger struct {
	next     core.LineLogger
	attrs    []attribute.KeyValue
	lines    metric.Int64Counter
	bytes    metric.Int64Counter
	failures metric.Int64Counter
}

// Instrument wraps next. Instruments that cannot be created are skipped.
func Instrument(next core.LineLogger, cfg Config) *InstrumentedLineLogger {
	if cfg.MeterProvider == nil {
		cfg.MeterProvider = otel.GetMeterProvider()
	}
	meter := cfg.MeterProvider.Meter(instrumentationName)

	l := &InstrumentedLineLogger{next: next, attrs: cfg.CustomAttributes}
	l.lines, _ = meter.Int64Counter("logcat.lines",
		metric.WithUnit("{line}"),
		metric.WithDescription("Number of lines handed to the host logger"),
	)
	l.bytes, _ = meter.Int64Counter("logcat.bytes",
		metric.WithUnit("By"),
		metric.WithDescription("Bytes written by the host logger"),
	)
	l.failures, _ = meter.Int64Counter("logcat.failures",
		metric.WithUnit("{line}"),
		metric.WithDescription("Lines the host logger failed to write"),
	)
	return l
}

// Println forwards the line and records its outcome
func (l *InstrumentedLineLogger) Println(priority entity.Priority, tag, msg string) int {
	n := l.next.Println(priority, tag, msg)

	ctx := context.Background()
	attrs := make([]attribute.KeyValue, 0, len(l.attrs)+2)
	attrs = append(attrs,
		attribute.String("priority", priority.String()),
		attribute.String("tag", tag),
	)
	attrs = append(attrs, l.attrs...)
	opt := metric.WithAttributes(attrs...)

	if l.lines != nil {
		l.lines.Add(ctx, 1, opt)
	}
	if n < 0 {
		if l.failures != nil {
			l.failures.Add(ctx, 1, opt)
		}
		return n
	}
	if l.bytes != nil {
		l.bytes.Add(ctx, int64(n), opt)
	}
	return n
}
