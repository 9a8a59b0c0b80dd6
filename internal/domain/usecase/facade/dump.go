package facade

import (
	"runtime"
	"strings"

	"github.com/amirhossein-jamali/logcat/internal/domain/entity"
	errs "github.com/amirhossein-jamali/logcat/internal/domain/error"
)

const nilGoroutineMessage = "Cannot print stack trace for thread - thread is null"

// PrintCurrentStackTrace dumps the calling goroutine's stack at priority
func (f *Facade) PrintCurrentStackTrace(tag string, priority entity.Priority) (int, error) {
	if f.stacks == nil {
		if _, err := f.snapshotFor(priority); err != nil {
			return 0, err
		}
		return 0, errs.ErrDiagnosticsUnavailable
	}
	g := f.stacks.Current()
	return f.PrintStackTrace(tag, priority, &g)
}

// PrintStackTrace dumps the stack of g at priority, one frame per line,
// innermost first. A nil g is reported with a WARN line instead.
func (f *Facade) PrintStackTrace(tag string, priority entity.Priority, g *entity.Goroutine) (int, error) {
	if _, err := f.snapshotFor(priority); err != nil {
		return 0, err
	}
	if g == nil {
		return f.WarnTag(tag, nilGoroutineMessage)
	}
	if f.stacks == nil {
		return 0, errs.ErrDiagnosticsUnavailable
	}

	return f.println(priority, tag, ObfuscateDefault, func() (string, error) {
		frames, err := f.stacks.Capture(*g)
		if err != nil {
			return "", err
		}

		var b strings.Builder
		for _, frame := range f.trimCaptureFrames(frames) {
			b.WriteString(frame.String())
			b.WriteByte('\n')
		}
		return b.String(), nil
	})
}

// PrintCurrentThreads dumps the group of the calling goroutine at priority
func (f *Facade) PrintCurrentThreads(tag string, priority entity.Priority) (int, error) {
	if _, err := f.snapshotFor(priority); err != nil {
		return 0, err
	}
	if f.threads == nil || f.stacks == nil {
		return 0, errs.ErrDiagnosticsUnavailable
	}
	return f.PrintThreads(tag, priority, f.threads.GroupOf(f.stacks.Current()))
}

// PrintThreads lists the live goroutines of group, and of the groups below
// it, at priority. The list is cut to the group's active count.
func (f *Facade) PrintThreads(tag string, priority entity.Priority, group entity.ThreadGroup) (int, error) {
	if _, err := f.snapshotFor(priority); err != nil {
		return 0, err
	}
	if f.threads == nil {
		return 0, errs.ErrDiagnosticsUnavailable
	}

	count := f.threads.ActiveCount(group)
	threads, err := f.threads.Enumerate(group)
	if err != nil {
		return 0, err
	}
	if len(threads) > count {
		threads = threads[:count]
	}

	lines := make([]string, len(threads))
	for i, t := range threads {
		lines[i] = t.String()
	}
	return f.println(priority, tag, ObfuscateDefault, plain("\n"+strings.Join(lines, "\n")))
}

// PrintMemoryInfo has the configured reporter emit a memory snapshot at priority
func (f *Facade) PrintMemoryInfo(priority entity.Priority) (int, error) {
	s, err := f.snapshotFor(priority)
	if err != nil {
		return 0, err
	}
	if !f.admits(s, priority) {
		return Denied, nil
	}
	if f.memory == nil {
		return 0, errs.ErrDiagnosticsUnavailable
	}
	return f.memory.Report(f.sink, priority, s.appTag), nil
}

// trimCaptureFrames drops the leading frames that belong to the façade and
// the capture adapters
func (f *Facade) trimCaptureFrames(frames []entity.Frame) []entity.Frame {
	for len(frames) > 0 && f.isCaptureFrame(frames[0]) {
		frames = frames[1:]
	}
	return frames
}

func (f *Facade) isCaptureFrame(frame entity.Frame) bool {
	for _, prefix := range f.framePrefixes {
		if strings.HasPrefix(frame.Function, prefix) {
			return true
		}
	}
	return false
}

// packagePrefix returns the qualified name prefix of this package's functions
func packagePrefix() string {
	pc, _, _, _ := runtime.Caller(0)
	name := runtime.FuncForPC(pc).Name()
	return strings.TrimSuffix(name, "packagePrefix")
}
