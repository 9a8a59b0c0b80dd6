package facade

import (
	"errors"
	"runtime"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/amirhossein-jamali/logcat/internal/domain/entity"
)

// stackTracer is implemented by errors created with github.com/pkg/errors
type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// println runs one message through the pipeline: gate, build, obfuscate,
// prefix with the component tag and emit. build is only called for admitted
// messages.
func (f *Facade) println(priority entity.Priority, tag string, decision Obfuscation, build func() (string, error)) (int, error) {
	s, err := f.snapshotFor(priority)
	if err != nil {
		return 0, err
	}
	if !f.admits(s, priority) {
		return Denied, nil
	}

	msg, err := build()
	if err != nil {
		return 0, err
	}

	msg = f.obfuscate(msg, decision)
	return f.emit(priority, s.appTag, entity.ComposeMessage(tag, msg)), nil
}

// emit hands the line to the host sink; its byte count, negative on
// failure, is returned as is
func (f *Facade) emit(priority entity.Priority, appTag, line string) int {
	return f.sink.Println(priority, appTag, line)
}

func plain(msg string) func() (string, error) {
	return func() (string, error) {
		return msg, nil
	}
}

func withError(msg string, err error) func() (string, error) {
	return func() (string, error) {
		return msg + "\n" + StackTraceString(err), nil
	}
}

func formatted(format string, args []any) func() (string, error) {
	return func() (string, error) {
		return formatMessage(format, args)
	}
}

// StackTraceString renders err followed by the call stack it was created
// with, one "\tat Function(File:Line)" line per frame. The stack is the
// deepest one recorded by github.com/pkg/errors along the Unwrap chain.
// A nil error renders as "".
func StackTraceString(err error) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(err.Error())

	for _, pc := range deepestStack(err) {
		b.WriteString("\n\tat ")
		b.WriteString(frameOf(uintptr(pc) - 1).String())
	}
	return b.String()
}

func deepestStack(err error) pkgerrors.StackTrace {
	var st pkgerrors.StackTrace
	for ; err != nil; err = errors.Unwrap(err) {
		if tracer, ok := err.(stackTracer); ok {
			st = tracer.StackTrace()
		}
	}
	return st
}

func frameOf(pc uintptr) entity.Frame {
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return entity.Frame{Function: "unknown"}
	}
	file, line := fn.FileLine(pc)
	return entity.Frame{Function: fn.Name(), File: file, Line: line}
}
